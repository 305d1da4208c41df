package services

import "errors"

var (
	// ErrCredentialCorrupted means the sealed verifier could not be opened or
	// did not decode, or its integrity key is gone.
	ErrCredentialCorrupted = errors.New("stored credential is corrupted")

	// ErrNotRegistered is returned by Authenticate before any password exists.
	ErrNotRegistered = errors.New("not registered")

	// ErrAlreadyRegistered is returned by Register once a verifier is stored.
	ErrAlreadyRegistered = errors.New("already registered")

	ErrPasswordTooShort = errors.New("password too short")

	// ErrDataUnavailable wraps note decryption failures.
	ErrDataUnavailable = errors.New("data unavailable")
)
