package cryptox

import (
	"crypto/cipher"
	"encoding/base64"
	"fmt"
	"io"
)

// AEADKey is a handle able to hand out an AES-GCM instance over key material
// it never exposes. Nonces are chosen by Envelope, never by the caller.
type AEADKey interface {
	AEAD() (cipher.AEAD, error)
}

// Envelope seals byte strings into self-contained nonce||ciphertext||tag
// payloads, base64 encoded.
//
// A fresh nonce is read from rand on every Seal, so two seals of the same
// plaintext under the same key never share a nonce. Envelope holds no mutable
// state and is safe for concurrent use as long as rand is.
type Envelope struct {
	rand io.Reader
}

// NewEnvelope returns an Envelope drawing nonces from rand.
func NewEnvelope(rand io.Reader) *Envelope {
	return &Envelope{rand: rand}
}

func aeadFor(key AEADKey) (cipher.AEAD, error) {
	g, err := key.AEAD()
	if err != nil {
		return nil, err
	}
	if g.NonceSize() != NonceSize || g.Overhead() != TagSize {
		return nil, fmt.Errorf("unsupported AEAD: nonce %d, tag %d", g.NonceSize(), g.Overhead())
	}
	return g, nil
}

// Seal encrypts plaintext under key and returns base64(nonce||ciphertext||tag).
func (e *Envelope) Seal(key AEADKey, plaintext []byte) (string, error) {
	g, err := aeadFor(key)
	if err != nil {
		return "", fmt.Errorf("seal: %w", err)
	}

	nonce := make([]byte, NonceSize, NonceSize+len(plaintext)+TagSize)
	if _, err := io.ReadFull(e.rand, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	payload := g.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(payload), nil
}

// Open reverses Seal. It returns ErrMalformedPayload for undecodable or short
// input and ErrAuthenticationFailed when the tag check fails. A key that
// cannot be used at all is reported with its own error.
func (e *Envelope) Open(key AEADKey, payload string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if len(raw) < NonceSize+TagSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than nonce and tag", ErrMalformedPayload, len(raw))
	}

	g, err := aeadFor(key)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	plaintext, err := g.Open(nil, raw[:NonceSize], raw[NonceSize:], nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}
