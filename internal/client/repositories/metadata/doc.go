// Package metadata is the settings store of the local database: a flat
// string-keyed table of byte values. The credential layer keeps the sealed
// password verifier here under a fixed key.
//
// Get returns (nil, nil) for an absent key so callers can treat "missing" and
// "empty" the same way. Create never overwrites a non-empty value.
package metadata
