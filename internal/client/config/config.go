package config

import (
	"path/filepath"

	"github.com/dmitrijs2005/cryptonote/internal/cryptox"
	"github.com/dmitrijs2005/cryptonote/internal/filex"
)

// Config holds runtime settings for the CryptoNote CLI.
//
// Fields:
//   - DataDir: directory holding the database (and the file keyring).
//   - DatabaseFile: SQLite file name inside DataDir.
//   - KeyringService: service name the keys are stored under.
//   - KeyringBackends: keyring backends to try, in order; empty means all
//     available on this platform.
//   - KeyringFileDir: directory of the encrypted-file backend; empty means
//     DataDir/keyring.
//   - HashIterations: PBKDF2 iteration count.
//   - MinPasswordLength: shortest accepted password.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	DataDir           string
	DatabaseFile      string
	KeyringService    string
	KeyringBackends   []string
	KeyringFileDir    string
	HashIterations    int
	MinPasswordLength int
	LogLevel          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = filex.DefaultDataDir("cryptonote")
	c.DatabaseFile = "cryptonote.db"
	c.KeyringService = "cryptonote"
	c.KeyringBackends = nil
	c.KeyringFileDir = ""
	c.HashIterations = cryptox.DefaultIterations
	c.MinPasswordLength = 8
	c.LogLevel = "warn"
}

// DatabasePath is DataDir/DatabaseFile.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

func (c *Config) KeyringDir() string {
	if c.KeyringFileDir != "" {
		return c.KeyringFileDir
	}
	return filepath.Join(c.DataDir, "keyring")
}

// CryptoParams returns the parameter set handed to every crypto component.
func (c *Config) CryptoParams() cryptox.Params {
	p := cryptox.DefaultParams()
	p.Iterations = c.HashIterations
	return p
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
