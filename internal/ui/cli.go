// Package ui implements the brisa command-line interface.
package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/brisa-ai/brisa/internal/config"
	"github.com/brisa-ai/brisa/internal/db"
	"github.com/brisa-ai/brisa/internal/weather"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo    weather.Repository
	config  *config.Config
	root    *cobra.Command
	verbose bool
	noColor bool
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repository is opened lazily from config when history is first needed,
// so a broken database never blocks a plain weather question.
func NewApp(repo weather.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "brisa",
		Short: "A weather assistant for your terminal",
		Long: `Brisa answers plain-language questions about the weather.

Ask in your own words; a language model works out the place and what you
want to know, Open-Meteo supplies the data, and the model sums it up.
Run with no arguments for one interactive question, or use "ask" to
query directly.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			if a.noColor {
				DisableColor()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runInteractive(context.Background())
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "Enable debug logging")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.askCmd())
	a.root.AddCommand(a.historyCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("brisa %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo opens the history database on first use.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}

	dbPath := a.config.Storage.DBPath
	if dbPath == "" {
		return fmt.Errorf("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	repo, err := db.New(dbPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	a.repo = repo
	return nil
}

// Close releases the history database if it was opened.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
