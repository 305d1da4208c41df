package services

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dmitrijs2005/cryptonote/internal/client/storage"
	"github.com/dmitrijs2005/cryptonote/internal/cryptox"
	"github.com/dmitrijs2005/cryptonote/internal/keyvault"
	"github.com/dmitrijs2005/cryptonote/internal/logging"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "cryptonote.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// overwriteVerifier edits the settings row directly, bypassing the services.
func overwriteVerifier(t *testing.T, db *sql.DB, value []byte) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, VerifierKey, value)
	require.NoError(t, err)
}

func fastParams() cryptox.Params {
	p := cryptox.DefaultParams()
	p.Iterations = 16
	return p
}

type recordedEntry struct {
	level string
	msg   string
	args  []any
}

// recordingLogger keeps every entry so tests can assert on what was logged.
type recordingLogger struct {
	mu      sync.Mutex
	entries *[]recordedEntry
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{entries: &[]recordedEntry{}}
}

func (l *recordingLogger) add(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.entries = append(*l.entries, recordedEntry{level: level, msg: msg, args: args})
}

func (l *recordingLogger) Debug(_ context.Context, msg string, args ...any) {
	l.add("debug", msg, args)
}
func (l *recordingLogger) Info(_ context.Context, msg string, args ...any) { l.add("info", msg, args) }
func (l *recordingLogger) Warn(_ context.Context, msg string, args ...any) { l.add("warn", msg, args) }
func (l *recordingLogger) Error(_ context.Context, msg string, args ...any) {
	l.add("error", msg, args)
}
func (l *recordingLogger) With(...any) logging.Logger { return l }

func (l *recordingLogger) has(level string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range *l.entries {
		if e.level == level {
			return true
		}
	}
	return false
}

// dump renders every entry, args included, for substring checks.
func (l *recordingLogger) dump() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out string
	for _, e := range *l.entries {
		out += fmt.Sprintf("%s %s %v\n", e.level, e.msg, e.args)
	}
	return out
}

type fixture struct {
	db       *sql.DB
	boundary *keyvault.MemoryBoundary
	vault    *keyvault.Vault
	log      *recordingLogger
	auth     AuthService
	notes    NoteService
	cipher   *NoteCipher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		db:       setupDB(t),
		boundary: keyvault.NewMemoryBoundary(),
		log:      newRecordingLogger(),
	}
	f.vault = keyvault.New(f.boundary, rand.Reader, logging.Discard())

	auth, err := NewAuthService(f.db, f.vault, fastParams(), rand.Reader, f.log)
	require.NoError(t, err)
	f.auth = auth

	f.cipher = NewNoteCipher(f.vault, fastParams())
	f.notes = NewNoteService(f.db, f.cipher, f.log)
	return f
}
