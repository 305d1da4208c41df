package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/dmitrijs2005/cryptonote/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

// Verifier is salt||hash. Its length is always Params.VerifierSize().
type Verifier []byte

// String returns the standard base64 (padded) text form of v.
func (v Verifier) String() string {
	return base64.StdEncoding.EncodeToString(v)
}

// PasswordHasher derives and checks password verifiers with PBKDF2.
type PasswordHasher struct {
	params Params
	rand   io.Reader
}

// NewPasswordHasher returns a hasher drawing salts from rand.
func NewPasswordHasher(params Params, rand io.Reader) (*PasswordHasher, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &PasswordHasher{params: params, rand: rand}, nil
}

// Hash generates a fresh salt and returns salt||Derive(password, salt).
func (h *PasswordHasher) Hash(password []byte) (Verifier, error) {
	salt := make([]byte, h.params.SaltSize)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	v := make(Verifier, 0, h.params.VerifierSize())
	v = append(v, salt...)
	v = append(v, h.Derive(password, salt)...)
	return v, nil
}

// Derive is the deterministic core: PBKDF2(password, salt, iterations) truncated
// or extended to HashSize bytes.
func (h *PasswordHasher) Derive(password, salt []byte) []byte {
	return pbkdf2.Key(password, salt, h.params.Iterations, h.params.HashSize, h.params.PRF)
}

// Verify recomputes the hash for password with the salt stored in v and
// compares it in constant time.
func (h *PasswordHasher) Verify(password []byte, v Verifier) (bool, error) {
	if len(v) != h.params.VerifierSize() {
		return false, fmt.Errorf("%w: got %d bytes, want %d", ErrMalformedVerifier, len(v), h.params.VerifierSize())
	}

	salt := v[:h.params.SaltSize]
	stored := v[h.params.SaltSize:]

	candidate := h.Derive(password, salt)
	defer common.WipeByteArray(candidate)

	return subtle.ConstantTimeCompare(stored, candidate) == 1, nil
}

// DecodeVerifier parses the base64 text form of a verifier. It fails instead
// of truncating when the decoded length is wrong.
func (h *PasswordHasher) DecodeVerifier(s string) (Verifier, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedVerifier, err)
	}
	if len(raw) != h.params.VerifierSize() {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrMalformedVerifier, len(raw), h.params.VerifierSize())
	}
	return Verifier(raw), nil
}
