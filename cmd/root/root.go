// Package root contains the root command for the extraction CLI.
package root

import (
	"context"

	"ledgerlens/extractcore/internal/config"
	"ledgerlens/extractcore/internal/container"
	"ledgerlens/extractcore/internal/logging"

	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands, replaced with a
	// fully configured logger during PersistentPreRun.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	appContainer *container.Container

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "extractcore",
		Short: "Extracts structured ledgers from Singapore bank statement PDFs.",
		Long: `extractcore runs a three-tier cascading extraction pipeline over bank
statement PDFs — a table extractor, a word-geometry fallback, and an
LLM-backed fallback for scanned or irregular layouts — and emits a
normalized, validated transaction ledger as JSON or CSV.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("extractcore ready")
			_ = cmd.Help()
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("failed to load configuration: %v", err)
			}

			c, err := container.NewContainer(context.Background(), cfg)
			if err != nil {
				Log.Fatalf("failed to initialize dependencies: %v", err)
			}
			appContainer = c
			Log = c.GetLogger()
		},
	}
)

// GetContainer returns the wired dependency container built during
// PersistentPreRun. Callers should treat a nil return as a programming
// error — every subcommand runs behind the root command's PreRun.
func GetContainer() *container.Container {
	return appContainer
}

// Init initializes the root command. No persistent flags are shared
// across subcommands; each of "extract statement" and "extract batch"
// defines its own, since their inputs (a file vs. a directory) differ.
func Init() {
}

// RequireContainer fetches the container or exits with a clear message,
// for subcommands that would otherwise panic on a nil dereference.
func RequireContainer() *container.Container {
	if appContainer == nil {
		Log.Fatal("container not initialized")
	}
	return appContainer
}
