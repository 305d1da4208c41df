// Package config loads runtime configuration for the CryptoNote CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   data directory
//	-k string   comma-separated keyring backends (e.g. "keychain,file")
//	-l string   log level
//
// # JSON schema
//
// Absent or zero-valued keys leave the default in place:
//
//	{
//	  "data_dir": "/home/me/.config/cryptonote",
//	  "database_file": "cryptonote.db",
//	  "keyring_service": "cryptonote",
//	  "keyring_backends": ["secret-service", "file"],
//	  "keyring_file_dir": "",
//	  "hash_iterations": 8192,
//	  "min_password_length": 8,
//	  "log_level": "warn"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
