package cryptox

import (
	"crypto/sha1"
	"fmt"
	"hash"
)

const (
	DefaultSaltSize   = 32
	DefaultHashSize   = 32
	DefaultIterations = 8192

	// NonceSize and TagSize are fixed by AES-GCM as used here.
	NonceSize = 12
	TagSize   = 16

	// KeySize is the AES-256 key length in bytes.
	KeySize = 32

	NoteKeyAlias      = "cryptonote_key"
	IntegrityKeyAlias = "cryptonote_hash_key"
)

// Params is the configuration value handed to every crypto component at
// construction time. Tests use a copy with a low iteration count.
type Params struct {
	SaltSize   int
	HashSize   int
	Iterations int

	// PRF is the keyed hash iterated by PBKDF2. HMAC-SHA1 keeps the on-disk
	// verifier compatible; it only yields 20 bytes of strength per block.
	PRF func() hash.Hash

	NoteKeyAlias      string
	IntegrityKeyAlias string
}

// DefaultParams returns the production parameters.
func DefaultParams() Params {
	return Params{
		SaltSize:          DefaultSaltSize,
		HashSize:          DefaultHashSize,
		Iterations:        DefaultIterations,
		PRF:               sha1.New,
		NoteKeyAlias:      NoteKeyAlias,
		IntegrityKeyAlias: IntegrityKeyAlias,
	}
}

// VerifierSize is the raw length of salt||hash.
func (p Params) VerifierSize() int {
	return p.SaltSize + p.HashSize
}

// Validate checks that p can be used.
func (p Params) Validate() error {
	switch {
	case p.SaltSize <= 0:
		return fmt.Errorf("%w: salt size %d", ErrInvalidParams, p.SaltSize)
	case p.HashSize <= 0:
		return fmt.Errorf("%w: hash size %d", ErrInvalidParams, p.HashSize)
	case p.Iterations <= 0:
		return fmt.Errorf("%w: iterations %d", ErrInvalidParams, p.Iterations)
	case p.PRF == nil:
		return fmt.Errorf("%w: no PRF", ErrInvalidParams)
	case p.NoteKeyAlias == "" || p.IntegrityKeyAlias == "":
		return fmt.Errorf("%w: empty key alias", ErrInvalidParams)
	case p.NoteKeyAlias == p.IntegrityKeyAlias:
		return fmt.Errorf("%w: note and integrity aliases must differ", ErrInvalidParams)
	}
	return nil
}
