package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	admin    bool
	calls    []string
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }
func (s *stubExec) isAdmin() bool    { return s.admin }

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) Register(context.Context) error { s.loggedIn = false; return s.record("register") }
func (s *stubExec) Login(context.Context) error    { s.loggedIn = true; return s.record("login") }
func (s *stubExec) Logout(context.Context) error   { s.loggedIn = false; return s.record("logout") }

func (s *stubExec) ListTermine(context.Context) error   { return s.record("termine") }
func (s *stubExec) AddTermin(context.Context) error     { return s.record("addtermin") }
func (s *stubExec) DeleteTermin(context.Context) error  { return s.record("deltermin") }
func (s *stubExec) ImportTermine(context.Context) error { return s.record("importtermine") }

func (s *stubExec) ListZiele(context.Context) error   { return s.record("ziele") }
func (s *stubExec) AddZiel(context.Context) error     { return s.record("addziel") }
func (s *stubExec) ToggleZiel(context.Context) error  { return s.record("toggleziel") }
func (s *stubExec) DeleteZiel(context.Context) error  { return s.record("delziel") }
func (s *stubExec) ImportZiele(context.Context) error { return s.record("importziele") }

func (s *stubExec) Stats(context.Context) error { return s.record("stats") }

func (s *stubExec) PathInfo(context.Context) error       { return s.record("paths") }
func (s *stubExec) SetTerminPath(context.Context) error  { return s.record("settermpath") }
func (s *stubExec) SetZielPath(context.Context) error    { return s.record("setzielpath") }
func (s *stubExec) ResetPaths(context.Context) error     { return s.record("resetpaths") }
func (s *stubExec) ResetAll(context.Context) error       { return s.record("resetall") }
func (s *stubExec) ToggleDarkMode(context.Context) error { return s.record("darkmode") }

func (s *stubExec) Users(context.Context) error              { return s.record("users") }
func (s *stubExec) AddUser(context.Context) error            { return s.record("adduser") }
func (s *stubExec) DeleteUser(context.Context) error         { return s.record("deluser") }
func (s *stubExec) RenameUser(context.Context) error         { return s.record("renameuser") }
func (s *stubExec) ChangeUserPassword(context.Context) error { return s.record("passwd") }
func (s *stubExec) ChangeUserRole(context.Context) error     { return s.record("role") }

func runScript(t *testing.T, s *stubExec, script string) string {
	t.Helper()
	var out bytes.Buffer
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), s, func() string { return "" }, scanner, &out)
	return out.String()
}

func TestREPL_LoggedOutCommands(t *testing.T) {
	s := &stubExec{}
	out := runScript(t, s, "help\nregister\ntermine\nexit\n")

	require.Equal(t, []string{"register"}, s.calls)
	require.Contains(t, out, helpLoggedOut)
	require.Contains(t, out, "Unknown command: termine")
	require.Contains(t, out, "Bye!")
}

func TestREPL_LoginUnlocksCommands(t *testing.T) {
	s := &stubExec{}
	runScript(t, s, "login\ntermine\naddziel\nstats\ndarkmode\nlogout\nexit\n")

	require.Equal(t, []string{"login", "termine", "addziel", "stats", "darkmode", "logout"}, s.calls)
}

func TestREPL_AdminGate(t *testing.T) {
	s := &stubExec{loggedIn: true}
	out := runScript(t, s, "users\nexit\n")

	require.NotContains(t, s.calls, "users")
	require.Contains(t, out, "admin privileges required")

	s = &stubExec{loggedIn: true, admin: true}
	runScript(t, s, "users\nadduser\ndeluser\nrenameuser\npasswd\nrole\nexit\n")
	require.Equal(t, []string{"users", "adduser", "deluser", "renameuser", "passwd", "role"}, s.calls)
}

func TestREPL_EOFEndsLoop(t *testing.T) {
	s := &stubExec{loggedIn: true}
	out := runScript(t, s, "termine\n")

	require.Equal(t, []string{"termine"}, s.calls)
	require.NotContains(t, out, "Bye!")
}

func TestREPL_BlankLinesIgnored(t *testing.T) {
	s := &stubExec{loggedIn: true}
	runScript(t, s, "\n\n  \nziele\nexit\n")

	require.Equal(t, []string{"ziele"}, s.calls)
}

func TestREPL_HelpShowsAdminSection(t *testing.T) {
	s := &stubExec{loggedIn: true, admin: true}
	out := runScript(t, s, "help\nexit\n")

	require.Contains(t, out, "Admin commands:")
}
