// Package common defines sentinel errors and small helpers shared across
// CryptoNote packages. Callers should use errors.Is to match these values.
package common

import "errors"

// ErrorNotFound is returned by repositories when a row does not exist.
var ErrorNotFound = errors.New("not found")
