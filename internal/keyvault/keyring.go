package keyvault

import (
	"context"
	"errors"
	"fmt"

	"github.com/99designs/keyring"
)

// KeyringConfig selects and configures the OS key store.
type KeyringConfig struct {
	// ServiceName namespaces the items, e.g. "cryptonote".
	ServiceName string

	// Backends lists allowed keyring backends in preference order
	// ("keychain", "secret-service", "wincred", "kwallet", "file", ...).
	// Empty means every backend available on the platform.
	Backends []string

	// FileDir and FilePassword configure the encrypted-file fallback.
	FileDir      string
	FilePassword keyring.PromptFunc
}

// KeyringBoundary stores keys in an OS keychain through 99designs/keyring.
type KeyringBoundary struct {
	ring keyring.Keyring
}

// OpenKeyring opens the configured keyring. Failure to open any backend is
// reported as ErrKeyUnavailable.
func OpenKeyring(cfg KeyringConfig) (*KeyringBoundary, error) {
	backends := make([]keyring.BackendType, 0, len(cfg.Backends))
	for _, b := range cfg.Backends {
		backends = append(backends, keyring.BackendType(b))
	}

	ring, err := keyring.Open(keyring.Config{
		ServiceName:              cfg.ServiceName,
		AllowedBackends:          backends,
		FileDir:                  cfg.FileDir,
		FilePasswordFunc:         cfg.FilePassword,
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: open keyring: %v", ErrKeyUnavailable, err)
	}
	return NewKeyringBoundary(ring), nil
}

// NewKeyringBoundary wraps an already opened keyring.
func NewKeyringBoundary(ring keyring.Keyring) *KeyringBoundary {
	return &KeyringBoundary{ring: ring}
}

func (b *KeyringBoundary) Load(_ context.Context, alias string) ([]byte, error) {
	item, err := b.ring.Get(alias)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", ErrKeyUnavailable, alias, err)
	}
	return append([]byte(nil), item.Data...), nil
}

func (b *KeyringBoundary) Store(_ context.Context, alias string, key []byte) error {
	err := b.ring.Set(keyring.Item{
		Key:         alias,
		Data:        append([]byte(nil), key...),
		Label:       "CryptoNote " + alias,
		Description: "AES-256-GCM key",
	})
	if err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrKeyUnavailable, alias, err)
	}
	return nil
}

func (b *KeyringBoundary) Has(_ context.Context, alias string) (bool, error) {
	keys, err := b.ring.Keys()
	if err != nil {
		return false, fmt.Errorf("%w: list keys: %v", ErrKeyUnavailable, err)
	}
	for _, k := range keys {
		if k == alias {
			return true, nil
		}
	}
	return false, nil
}
