// Package cli provides the interactive CryptoNote command-line client.
//
// The REPL starts locked. On a fresh installation the user sets a password
// with "register"; afterwards "login" unlocks the note commands. Wrong
// passwords and tampered credentials produce the same "incorrect password"
// message; details go to the log only.
//
// Commands once unlocked:
//   - new                 create a note
//   - list                list notes
//   - show <id>           print a note
//   - edit <id>           replace the body
//   - title <id>          rename
//   - delete <id>         delete after confirmation
//   - logout | exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
