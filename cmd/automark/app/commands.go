package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/automark/cmd/automark/cmd/inspect"
	"github.com/agentstation/automark/cmd/automark/cmd/merge"
	"github.com/agentstation/automark/cmd/automark/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(merge.NewCommand(a))
	rootCmd.AddCommand(inspect.NewCommand(a))
	rootCmd.AddCommand(version.NewCommand(a))
}
