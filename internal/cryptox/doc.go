// Package cryptox implements the password and envelope primitives of
// CryptoNote.
//
// # Components
//
//   - Params: the configuration value (salt/hash sizes, PBKDF2 iterations and
//     PRF, key aliases) passed to each component at construction.
//   - PasswordHasher: PBKDF2 verifiers encoded as salt||hash, checked with
//     a constant-time comparison.
//   - Envelope: AES-256-GCM payloads encoded as base64(nonce||ciphertext||tag)
//     under an AEADKey handle that never exposes raw key bytes.
//
// # Errors
//
// Failures are reported with sentinel errors matched by errors.Is:
// ErrMalformedVerifier, ErrMalformedPayload, ErrAuthenticationFailed and
// ErrInvalidParams. Nothing in this package turns a cryptographic failure
// into an empty value.
//
// Random input (salts and nonces) comes from the io.Reader supplied by the
// caller, normally crypto/rand.Reader.
package cryptox
