package keyvault

import "context"

// Boundary persists raw key material for the Vault.
//
// Load returns ErrKeyNotFound when nothing is stored under alias. Any other
// failure must wrap ErrKeyUnavailable.
type Boundary interface {
	Load(ctx context.Context, alias string) ([]byte, error)
	Store(ctx context.Context, alias string, key []byte) error
	Has(ctx context.Context, alias string) (bool, error)
}
