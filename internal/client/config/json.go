package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/cryptonote/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	DataDir           string   `json:"data_dir"`
	DatabaseFile      string   `json:"database_file"`
	KeyringService    string   `json:"keyring_service"`
	KeyringBackends   []string `json:"keyring_backends"`
	KeyringFileDir    string   `json:"keyring_file_dir"`
	HashIterations    int      `json:"hash_iterations"`
	MinPasswordLength int      `json:"min_password_length"`
	LogLevel          string   `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Zero values in the file are ignored. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.DataDir, jc.DataDir)
	setString(&cfg.DatabaseFile, jc.DatabaseFile)
	setString(&cfg.KeyringService, jc.KeyringService)
	setString(&cfg.KeyringFileDir, jc.KeyringFileDir)
	setString(&cfg.LogLevel, jc.LogLevel)
	if len(jc.KeyringBackends) > 0 {
		cfg.KeyringBackends = jc.KeyringBackends
	}
	if jc.HashIterations > 0 {
		cfg.HashIterations = jc.HashIterations
	}
	if jc.MinPasswordLength > 0 {
		cfg.MinPasswordLength = jc.MinPasswordLength
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
