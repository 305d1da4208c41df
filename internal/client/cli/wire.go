package cli

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"io"

	"github.com/99designs/keyring"
	"github.com/dmitrijs2005/cryptonote/internal/client/config"
	"github.com/dmitrijs2005/cryptonote/internal/client/services"
	"github.com/dmitrijs2005/cryptonote/internal/client/storage"
	"github.com/dmitrijs2005/cryptonote/internal/filex"
	"github.com/dmitrijs2005/cryptonote/internal/keyvault"
	"github.com/dmitrijs2005/cryptonote/internal/logging"
)

// openKeyring is a test seam; tests substitute an in-memory boundary.
var openKeyring = func(cfg keyvault.KeyringConfig) (keyvault.Boundary, error) {
	return keyvault.OpenKeyring(cfg)
}

// NewAppFromConfig opens local storage and the OS key store described by cfg
// and wires the services into an App. The returned *sql.DB must be closed by
// the caller.
func NewAppFromConfig(ctx context.Context, cfg *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, *sql.DB, error) {
	dataDir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("data dir: %w", err)
	}
	cfg.DataDir = dataDir

	params := cfg.CryptoParams()
	if err := params.Validate(); err != nil {
		return nil, nil, err
	}

	boundary, err := openKeyring(keyvault.KeyringConfig{
		ServiceName:  cfg.KeyringService,
		Backends:     cfg.KeyringBackends,
		FileDir:      cfg.KeyringDir(),
		FilePassword: keyring.TerminalPrompt,
	})
	if err != nil {
		return nil, nil, err
	}

	db, err := storage.InitDatabase(ctx, cfg.DatabasePath())
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing database: %w", err)
	}

	vault := keyvault.New(boundary, rand.Reader, log)

	as, err := services.NewAuthService(db, vault, params, rand.Reader, log,
		services.WithMinPasswordLength(cfg.MinPasswordLength))
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	ns := services.NewNoteService(db, services.NewNoteCipher(vault, params), log)

	log.Debug(ctx, "storage opened", "path", cfg.DatabasePath())
	return NewApp(as, ns, log, in, out), db, nil
}
