// Package merge provides the merge command implementation.
package merge

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/automark/internal/appcontext"
)

// Flags holds the merge command flags.
type Flags struct {
	Output            string
	Erase             bool
	Strict            bool
	SignedHemispheres bool
	RootFolder        string
}

// NewCommand creates the merge command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var flags *Flags

	cmd := &cobra.Command{
		Use:     "merge MAP [MARKERS...]",
		GroupID: "core",
		Short:   "Merge marker records into a KML map",
		Args:    cobra.MinimumNArgs(1),
		Long: `Merge reads the KML map MAP, applies every row of each MARKERS file in
order and writes the result to --output.

Each row is

  index,name,latitude,longitude,lighthouse,locale,category

with latitude and longitude in degrees-minutes-seconds (41°24'12.2"N) and
category one of enrollment, skilling or placement. A person already on the
map is replaced wherever their placemark lives; anyone else is appended to
the folder their row names.

Rows naming an unknown folder or category are reported and skipped. Rows
that cannot be parsed are skipped too, or stop the run with --strict.`,
		Example: `  automark merge map.kml markers.csv                # Write output.kml
  automark merge map.kml a.csv b.csv -o pune         # Write pune.kml
  automark merge map.kml markers.csv --erase         # Start from empty folders
  automark merge map.kml markers.csv --strict -f json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := Execute(cmd.Context(), app, flags, args[0], args[1:], cmd.OutOrStdout(), cmd.ErrOrStderr())
			return err
		},
	}

	flags = addMergeFlags(cmd, app.Settings())

	return cmd
}

func addMergeFlags(cmd *cobra.Command, defaults appcontext.Settings) *Flags {
	flags := &Flags{}

	cmd.Flags().StringVarP(&flags.Output, "output", "o", defaults.Output,
		"path of the merged map (.kml is appended when there is no extension)")
	cmd.Flags().BoolVar(&flags.Erase, "erase", defaults.Erase,
		"remove every existing placemark before merging")
	cmd.Flags().BoolVar(&flags.Strict, "strict", defaults.Strict,
		"stop at the first row that cannot be parsed")
	cmd.Flags().BoolVar(&flags.SignedHemispheres, "signed-hemispheres", defaults.SignedHemispheres,
		"make S latitudes and W longitudes negative")
	cmd.Flags().StringVar(&flags.RootFolder, "root-folder", defaults.RootFolder,
		"name of the top-level folder holding the lighthouses (empty: last folder)")

	return flags
}
