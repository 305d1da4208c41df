package keyvault

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/cryptonote/internal/common"
	"github.com/dmitrijs2005/cryptonote/internal/cryptox"
	"github.com/dmitrijs2005/cryptonote/internal/logging"
)

// Vault hands out Key handles by alias, creating keys on first use.
type Vault struct {
	boundary Boundary
	rand     io.Reader
	envelope *cryptox.Envelope
	log      logging.Logger

	mu   sync.Mutex
	keys map[string]*Key
}

// New returns a Vault persisting keys in boundary. rand supplies both key
// material and the nonces of EncryptUnder.
func New(boundary Boundary, rand io.Reader, log logging.Logger) *Vault {
	return &Vault{
		boundary: boundary,
		rand:     rand,
		envelope: cryptox.NewEnvelope(rand),
		log:      log,
		keys:     make(map[string]*Key),
	}
}

// GetOrCreateKey returns the key stored under alias, generating and storing a
// new one if none exists. Concurrent callers for the same alias get the same
// key; at most one is ever created.
func (v *Vault) GetOrCreateKey(ctx context.Context, alias string) (*Key, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if k, ok := v.keys[alias]; ok {
		return k, nil
	}

	raw, err := v.boundary.Load(ctx, alias)
	switch {
	case err == nil:
	case errors.Is(err, ErrKeyNotFound):
		raw, err = v.generate(ctx, alias)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return v.cache(alias, raw)
}

// Key returns the existing key for alias without creating one.
func (v *Vault) Key(ctx context.Context, alias string) (*Key, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if k, ok := v.keys[alias]; ok {
		return k, nil
	}

	raw, err := v.boundary.Load(ctx, alias)
	if err != nil {
		return nil, err
	}
	return v.cache(alias, raw)
}

// HasKey reports whether a key exists for alias.
func (v *Vault) HasKey(ctx context.Context, alias string) (bool, error) {
	v.mu.Lock()
	_, ok := v.keys[alias]
	v.mu.Unlock()
	if ok {
		return true, nil
	}
	return v.boundary.Has(ctx, alias)
}

// EncryptUnder seals plaintext under the key for alias, creating the key if
// needed, and returns the base64 nonce||ciphertext||tag payload. Every call
// draws a fresh nonce.
func (v *Vault) EncryptUnder(ctx context.Context, alias string, plaintext []byte) (string, error) {
	k, err := v.GetOrCreateKey(ctx, alias)
	if err != nil {
		return "", err
	}
	return v.envelope.Seal(k, plaintext)
}

// DecryptUnder opens a payload produced by EncryptUnder. It fails with
// ErrKeyNotFound if the alias was never created and with
// cryptox.ErrAuthenticationFailed if the payload does not verify.
func (v *Vault) DecryptUnder(ctx context.Context, alias string, payload string) ([]byte, error) {
	k, err := v.Key(ctx, alias)
	if err != nil {
		return nil, err
	}
	return v.envelope.Open(k, payload)
}

// generate must be called with v.mu held.
func (v *Vault) generate(ctx context.Context, alias string) ([]byte, error) {
	raw := make([]byte, cryptox.KeySize)
	if _, err := io.ReadFull(v.rand, raw); err != nil {
		return nil, fmt.Errorf("generate key %s: %w", alias, err)
	}
	if err := v.boundary.Store(ctx, alias, raw); err != nil {
		common.WipeByteArray(raw)
		return nil, err
	}
	v.log.Info(ctx, "key created", "alias", alias)
	return raw, nil
}

// cache must be called with v.mu held.
func (v *Vault) cache(alias string, raw []byte) (*Key, error) {
	k, err := newKey(alias, raw)
	if err != nil {
		return nil, err
	}
	v.keys[alias] = k
	return k, nil
}
