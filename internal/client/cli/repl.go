package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	NewNote(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, id int64) error
	Edit(ctx context.Context, id int64) error
	Rename(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

var errUsage = errors.New("usage")

// runREPL reads one command per line from reader and dispatches it to a.
// It returns on EOF or on "exit"/"quit".
//
// Note commands require a logged-in session; the id argument is parsed here
// so handlers always receive a valid number. Errors returned by handlers are
// ignored: handlers report their own failures to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("cryptonote (%s)> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if needsLogin(cmd) && !a.isLoggedIn() {
			failure("Please log in first")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: new, (l)ist, show <id>, edit <id>, title <id>, delete <id>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "new":
			_ = a.NewNote(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "show", "edit", "title", "delete":
			id, err := parseID(args)
			if err != nil {
				failure(fmt.Sprintf("Usage: %s <id>", cmd))
				continue
			}
			switch cmd {
			case "show":
				_ = a.Show(ctx, id)
			case "edit":
				_ = a.Edit(ctx, id)
			case "title":
				_ = a.Rename(ctx, id)
			case "delete":
				_ = a.Delete(ctx, id)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func needsLogin(cmd string) bool {
	switch cmd {
	case "new", "l", "list", "show", "edit", "title", "delete", "logout":
		return true
	}
	return false
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(args[0], "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errUsage
	}
	return id, nil
}
