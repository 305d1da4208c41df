package cli

import (
	"bytes"
	"context"
	"errors"

	"github.com/dmitrijs2005/cryptonote/internal/client/services"
	"github.com/dmitrijs2005/cryptonote/internal/common"
	"github.com/fatih/color"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

const msgIncorrectPassword = "Incorrect password"

// Register asks for a new password twice and stores it. A successful
// registration also unlocks the session.
func (a *App) Register(ctx context.Context) error {
	password, err := getPassword(a.reader, "New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.reader, "Repeat password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if !bytes.Equal(password, confirm) {
		failure("Passwords do not match")
		return errors.New("passwords do not match")
	}

	if err := a.authService.Register(ctx, password); err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordTooShort):
			failure(err.Error())
		case errors.Is(err, services.ErrAlreadyRegistered):
			failure("A password is already set. Use " + color.YellowString("login"))
		default:
			a.log.Error(ctx, "registration failed", "error", err)
			failure("Registration failed")
		}
		return err
	}

	a.loggedIn = true
	success("Password set, notes unlocked")
	return nil
}

// Login asks for the password and unlocks the session on success. Wrong
// passwords and corrupted credentials print the same message.
func (a *App) Login(ctx context.Context) error {
	if a.loggedIn {
		hint("Already logged in")
		return nil
	}

	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ok, err := a.authService.Authenticate(ctx, password)
	switch {
	case err == nil && ok:
		a.loggedIn = true
		success("Notes unlocked")
		return nil
	case err == nil,
		errors.Is(err, services.ErrCredentialCorrupted),
		errors.Is(err, services.ErrPasswordTooShort):
		failure(msgIncorrectPassword)
	case errors.Is(err, services.ErrNotRegistered):
		failure("No password set yet. Use " + color.YellowString("register"))
	default:
		a.log.Error(ctx, "login failed", "error", err)
		failure("Data unavailable")
	}
	if err == nil {
		err = errors.New(msgIncorrectPassword)
	}
	return err
}

// Logout locks the session. Stored data is untouched.
func (a *App) Logout(ctx context.Context) error {
	a.loggedIn = false
	a.log.Debug(ctx, "logged out")
	success("Locked")
	return nil
}
