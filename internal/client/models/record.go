// Package models defines client-side data models used by the CryptoNote CLI.
package models

// NoteRecord is a note row as persisted. Title, Contents and Date each hold
// an independent envelope payload (base64 nonce||ciphertext||tag); the row
// store never sees plaintext.
type NoteRecord struct {
	// ID is assigned by the store on first insert. Zero means not yet persisted.
	ID int64

	Title    string
	Contents string
	Date     string
}
