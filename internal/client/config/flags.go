package config

import (
	"flag"
	"os"
	"strings"

	"github.com/dmitrijs2005/cryptonote/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   data directory
//	-k string   comma-separated keyring backends
//	-l string   log level
//
// Arguments are filtered through flagx.FilterArgs first so flags owned by
// other components do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-k", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	backends := fs.String("k", strings.Join(cfg.KeyringBackends, ","), "comma-separated keyring backends")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.KeyringBackends = flagx.SplitList(*backends)
}
