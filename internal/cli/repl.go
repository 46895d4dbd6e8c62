package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	ListTermine(ctx context.Context) error
	AddTermin(ctx context.Context) error
	DeleteTermin(ctx context.Context) error
	ImportTermine(ctx context.Context) error

	ListZiele(ctx context.Context) error
	AddZiel(ctx context.Context) error
	ToggleZiel(ctx context.Context) error
	DeleteZiel(ctx context.Context) error
	ImportZiele(ctx context.Context) error

	Stats(ctx context.Context) error

	PathInfo(ctx context.Context) error
	SetTerminPath(ctx context.Context) error
	SetZielPath(ctx context.Context) error
	ResetPaths(ctx context.Context) error
	ResetAll(ctx context.Context) error
	ToggleDarkMode(ctx context.Context) error

	Users(ctx context.Context) error
	AddUser(ctx context.Context) error
	DeleteUser(ctx context.Context) error
	RenameUser(ctx context.Context) error
	ChangeUserPassword(ctx context.Context) error
	ChangeUserRole(ctx context.Context) error
}

const helpLoggedOut = "Available commands: register, login, exit"

const helpLoggedIn = `Available commands:
  termine | addtermin | deltermin | importtermine
  ziele | addziel | toggleziel | delziel | importziele
  stats
  paths | settermpath | setzielpath | resetpaths | resetall | darkmode
  logout | exit`

const helpAdmin = `Admin commands:
  users | adduser | deluser | renameuser | passwd | role`

// runREPL starts a read-eval-print loop for the SchulManager CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are printed, not fatal; the loop keeps
// running so one bad input never ends the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	report := func(err error) {
		if err != nil {
			fmt.Fprintln(w, "Error:", err)
		}
	}

	for {
		fmt.Fprintf(w, "sm %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				fmt.Fprintln(w, helpLoggedOut)
			case "register":
				report(a.Register(ctx))
			case "login":
				report(a.Login(ctx))
			case "exit", "quit":
				fmt.Fprintln(w, "Bye!")
				return
			default:
				fmt.Fprintln(w, "Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "help":
			fmt.Fprintln(w, helpLoggedIn)
			if a.isAdmin() {
				fmt.Fprintln(w, helpAdmin)
			}

		case "termine":
			report(a.ListTermine(ctx))
		case "addtermin":
			report(a.AddTermin(ctx))
		case "deltermin":
			report(a.DeleteTermin(ctx))
		case "importtermine":
			report(a.ImportTermine(ctx))

		case "ziele":
			report(a.ListZiele(ctx))
		case "addziel":
			report(a.AddZiel(ctx))
		case "toggleziel":
			report(a.ToggleZiel(ctx))
		case "delziel":
			report(a.DeleteZiel(ctx))
		case "importziele":
			report(a.ImportZiele(ctx))

		case "stats":
			report(a.Stats(ctx))

		case "paths":
			report(a.PathInfo(ctx))
		case "settermpath":
			report(a.SetTerminPath(ctx))
		case "setzielpath":
			report(a.SetZielPath(ctx))
		case "resetpaths":
			report(a.ResetPaths(ctx))
		case "resetall":
			report(a.ResetAll(ctx))
		case "darkmode":
			report(a.ToggleDarkMode(ctx))

		case "users":
			report(requireAdmin(a, func() error { return a.Users(ctx) }))
		case "adduser":
			report(requireAdmin(a, func() error { return a.AddUser(ctx) }))
		case "deluser":
			report(requireAdmin(a, func() error { return a.DeleteUser(ctx) }))
		case "renameuser":
			report(requireAdmin(a, func() error { return a.RenameUser(ctx) }))
		case "passwd":
			report(requireAdmin(a, func() error { return a.ChangeUserPassword(ctx) }))
		case "role":
			report(requireAdmin(a, func() error { return a.ChangeUserRole(ctx) }))

		case "logout":
			report(a.Logout(ctx))

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}

func requireAdmin(a execIface, fn func() error) error {
	if !a.isAdmin() {
		return fmt.Errorf("admin privileges required")
	}
	return fn()
}
