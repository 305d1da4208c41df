package keyvault

import "errors"

var (
	// ErrKeyUnavailable is returned when the protected boundary cannot be
	// reached or holds unusable material. It is not retried.
	ErrKeyUnavailable = errors.New("key store unavailable")

	// ErrKeyNotFound is returned when a key is requested for an alias that
	// was never created.
	ErrKeyNotFound = errors.New("key not found")
)
