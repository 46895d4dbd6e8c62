package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lfanzott/schulmanager/internal/cli"
	"github.com/lfanzott/schulmanager/internal/config"
	"github.com/lfanzott/schulmanager/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "schulmanager",
	Short: "SchulManager - appointments and goals on flat files",
	Long: `SchulManager keeps school appointments and learning goals in plain
semicolon-delimited files, one set per user, behind a small interactive
session.

Running without a subcommand starts the interactive session. The session
accepts its own flags:

  -d dir      directory for the shared account and binding files
  -r dir      root directory for per-user data files
  -l level    log level (debug|info|warn|error)
  -c file     JSON config file

The same settings can come from the environment (SCHULMANAGER_DATA_DIR,
SCHULMANAGER_USER_DATA_ROOT, SCHULMANAGER_LOG_LEVEL) or a .env file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	// The session parses -d/-r/-l/-c itself as part of the config pipeline.
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			if arg == "-h" || arg == "--help" {
				return cmd.Help()
			}
		}

		cfg := config.LoadConfig()

		log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logging.ParseLevel(cfg.LogLevel),
		})))

		app, err := cli.NewApp(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		app.Run(cmd.Context())
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
