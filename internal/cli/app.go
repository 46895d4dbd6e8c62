// Package cli implements the interactive SchulManager session: login and
// registration, appointment and goal editing, statistics, storage-path
// management and the admin console, all on top of the flat-file record store.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lfanzott/schulmanager/internal/accounts"
	"github.com/lfanzott/schulmanager/internal/appointments"
	"github.com/lfanzott/schulmanager/internal/config"
	"github.com/lfanzott/schulmanager/internal/csvx"
	"github.com/lfanzott/schulmanager/internal/goals"
	"github.com/lfanzott/schulmanager/internal/logging"
	"github.com/lfanzott/schulmanager/internal/paths"
)

// bootstrapAdminPassword is the seed password when no admin account exists
// yet; the session log reminds the operator to change it.
const bootstrapAdminPassword = "admin"

type App struct {
	cfg      *config.Config
	log      logging.Logger
	accounts *accounts.Service
	registry *paths.Registry
	termine  appointments.Repository
	ziele    goals.Repository

	reader *bufio.Reader
	out    io.Writer

	userName  string
	role      accounts.Role
	sessionID string
}

// NewApp wires the record store and returns a ready-to-run session. The
// binding table is loaded and the reserved admin account seeded if missing.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	locker := csvx.NewPathLocker()

	registry := paths.NewRegistry(cfg.BindingFile(), cfg.UserDataRoot, log)
	if err := registry.Load(ctx); err != nil {
		return nil, fmt.Errorf("loading path registry: %w", err)
	}

	accountSvc := accounts.NewService(accounts.NewFileRepository(cfg.AccountFile(), locker, log))

	created, err := accountSvc.EnsureAdmin(ctx, bootstrapAdminPassword)
	if err != nil {
		return nil, fmt.Errorf("seeding admin account: %w", err)
	}
	if created {
		log.Warn(ctx, "seeded admin account with default password, change it", "user", accounts.ReservedName)
	}

	return &App{
		cfg:      cfg,
		log:      log,
		accounts: accountSvc,
		registry: registry,
		termine:  appointments.NewFileRepository(locker, log),
		ziele:    goals.NewFileRepository(locker, log),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) isAdmin() bool {
	return a.role == accounts.RoleAdmin
}

func (a *App) status() string {
	if a.userName == "" {
		return ""
	}
	if a.isAdmin() {
		return fmt.Sprintf("(%s, admin)", a.userName)
	}
	return fmt.Sprintf("(%s)", a.userName)
}

// Run starts the REPL on stdin.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to SchulManager (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin), a.out)
}
