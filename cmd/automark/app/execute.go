package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/automark/internal/cmd/output"
	"github.com/agentstation/automark/pkg/logging"
)

// globalFlags holds the values of the persistent root flags.
type globalFlags struct {
	configFile string
	verbose    bool
	quiet      bool
	noColor    bool
	format     string
	logLevel   string
}

// Execute runs the automark CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "automark",
		Short:   "Merge marker records into a KML placemark map",
		Version: a.version,
		Long: `Automark merges rows of marker records (name, coordinates, lighthouse,
locale and category) into an existing KML map organized as

  Community Mapping / <lighthouse> / <locale> / <category> / placemarks

A person's existing placemark is replaced wherever it lives; new people are
appended to the folder their record names. Everything else in the map,
styles included, is written back unchanged.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.flags.configFile, "config", "", "config file (default is $HOME/.automark.yaml)")
	flags.BoolVarP(&a.flags.verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolVarP(&a.flags.quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.BoolVar(&a.flags.noColor, "no-color", false, "disable colored output")
	flags.StringVarP(&a.flags.format, "format", "f", "", "report format: table, json, yaml")
	flags.StringVar(&a.flags.logLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("automark {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if a.flags.configFile != "" {
		config, err := LoadConfig(a.flags.configFile)
		if err != nil {
			return err
		}
		a.config = config
	}

	a.config.UpdateFromFlags(a.flags, cmd.Flags().Changed)

	if _, err := output.ParseFormat(a.config.Format); err != nil {
		return err
	}

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	cmd.SetContext(logging.WithLogger(cmd.Context(), a.logger))

	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
