// Package root contains the root command for the application
package root

import (
	"fmt"
	"sync"

	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by every command
type CommonFlags struct {
	LogLevel   string
	LogFormat  string
	Categories string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.NewLogrusAdapter("warn", "text")

	// AppContainer is wired by PersistentPreRunE before any command runs
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "expense-tracker",
		Short: "An interactive command-line ledger for income and expenses.",
		Long: `expense-tracker records income and expense entries, summarizes them by
month, and saves them to or loads them from CSV files.

Run without arguments to start the interactive menu.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: Setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := AppContainer.NewApp(cmd.InOrStdin(), cmd.OutOrStdout())
			return app.Run()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer != nil {
				if err := AppContainer.Close(); err != nil {
					Log.WithError(err).Warn("Failed to close container")
				}
			}
		},
	}

	// SharedFlags holds the values of the persistent flags
	SharedFlags = CommonFlags{}

	initOnce sync.Once
)

// Init initializes the root command and all flags
func Init() {
	initOnce.Do(func() {
		Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
		Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format (text or json)")
		Cmd.PersistentFlags().StringVar(&SharedFlags.Categories, "categories", "", "Categories YAML file")
	})
}

// Setup loads the environment and configuration, applies flag overrides
// and wires the application container.
func Setup(cmd *cobra.Command, args []string) error {
	config.LoadEnv()

	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = SharedFlags.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = SharedFlags.LogFormat
	}
	if flags.Changed("categories") {
		cfg.Categories.File = SharedFlags.Categories
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	AppContainer = c
	Log = c.GetLogger()
	Log.Debug("Configuration loaded",
		logging.F("command", cmd.Name()),
		logging.F(logging.FieldFile, cfg.Categories.File))
	return nil
}
