package cryptox

import "errors"

var (
	// ErrMalformedVerifier is returned when a stored verifier does not decode
	// to exactly SaltSize+HashSize bytes.
	ErrMalformedVerifier = errors.New("malformed verifier")

	// ErrMalformedPayload is returned when an envelope payload is not valid
	// base64 or is shorter than nonce+tag.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrAuthenticationFailed is returned when the AEAD tag does not verify.
	// It does not say which part of the payload was wrong.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInvalidParams is returned by Params.Validate.
	ErrInvalidParams = errors.New("invalid crypto params")
)
