package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lfanzott/schulmanager/internal/accounts"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password and creates a regular user
// account. The reserved admin name and taken names are rejected by the
// account service.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.accounts.Register(ctx, userName, password, accounts.RoleUser); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account created. You can log in now.")
	return nil
}

// Login prompts for credentials and authenticates against the account store.
// On success the session gets an ID and a user-scoped logger.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	role, err := a.accounts.Authenticate(ctx, userName, password)
	if err != nil {
		return err
	}

	a.userName = userName
	a.role = role
	a.sessionID = uuid.NewString()
	a.log.Info(ctx, "login", "user", userName, "role", role, "session", a.sessionID)

	fmt.Fprintf(a.out, "Welcome, %s!\n", userName)
	return nil
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	a.log.Info(ctx, "logout", "user", a.userName, "session", a.sessionID)
	a.userName = ""
	a.role = ""
	a.sessionID = ""
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
