// Package version provides the version command.
package version

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/automark/internal/appcontext"
)

// NewCommand creates the version command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show version information for the automark CLI.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("automark version %s\n", app.Version())
			cmd.Printf("commit: %s\n", app.Commit())
			cmd.Printf("built: %s\n", app.Date())
			cmd.Printf("built by: %s\n", app.BuiltBy())
			cmd.Printf("go version: %s\n", runtime.Version())
			cmd.Printf("platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
