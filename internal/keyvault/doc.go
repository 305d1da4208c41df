// Package keyvault manages the symmetric keys CryptoNote encrypts with.
//
// Keys are 256-bit AES keys bound to AES-GCM and identified by an alias.
// Their durable copy lives in a Boundary (the OS keychain through
// 99designs/keyring in production, an in-memory map in tests), outside the
// application's SQLite database, so clearing application data does not
// remove them. Losing the boundary copy makes everything sealed under it
// unrecoverable; there is no escrow.
//
// In process, key material is held in memguard Enclaves. Callers only ever
// get a *Key handle yielding an AES-GCM instance, or use EncryptUnder and
// DecryptUnder, which pick a fresh nonce per call; raw bytes are never
// returned.
//
// Vault.GetOrCreateKey is safe for concurrent use and creates at most one key
// per alias.
package keyvault
