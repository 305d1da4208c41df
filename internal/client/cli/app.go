package cli

import (
	"bufio"
	"context"
	"io"

	"github.com/dmitrijs2005/cryptonote/internal/client/services"
	"github.com/dmitrijs2005/cryptonote/internal/logging"
	"github.com/fatih/color"
	"github.com/google/uuid"
)

type App struct {
	authService services.AuthService
	noteService services.NoteService
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	loggedIn    bool
}

// NewApp wires the services to an interactive session reading from in and
// prompting on out. Every log line of the session carries its id.
func NewApp(as services.AuthService, ns services.NoteService, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		authService: as,
		noteService: ns,
		log:         log.With("session", uuid.NewString()),
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

// Run prints the greeting and blocks in the REPL until the user exits or
// input ends.
func (a *App) Run(ctx context.Context) error {
	state, err := a.authService.State(ctx)
	if err != nil {
		return err
	}

	printlnFn(color.CyanString("CryptoNote") + " (type 'help' for commands)")
	if state == services.Unregistered {
		hint("No password set yet. Type " + color.YellowString("register") + " to create one.")
	} else {
		hint("Type " + color.YellowString("login") + " to unlock your notes.")
	}

	runREPL(ctx, a, a.status, a.reader)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

func (a *App) status() string {
	if a.loggedIn {
		return "unlocked"
	}
	return "locked"
}
