package metadata

import (
	"context"
	"errors"
)

// ErrValueExists is returned by Create when the key already holds a
// non-empty value.
var ErrValueExists = errors.New("setting already has a value")

// Repository reads settings and writes them once.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Create(ctx context.Context, key string, value []byte) error
}
