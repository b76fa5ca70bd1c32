// Package inspect provides the inspect command, which lists the category
// folders of a map and, optionally, their placemarks.
package inspect

import (
	"context"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/automark/internal/appcontext"
	"github.com/agentstation/automark/internal/cmd/alerts"
	"github.com/agentstation/automark/internal/cmd/output"
	"github.com/agentstation/automark/pkg/coords"
	"github.com/agentstation/automark/pkg/index"
	"github.com/agentstation/automark/pkg/kml"
	"github.com/agentstation/automark/pkg/logging"
	"github.com/agentstation/automark/pkg/placemark"
)

// Flags holds the inspect command flags.
type Flags struct {
	Entries    bool
	RootFolder string
}

// Container is one category folder in the report.
type Container struct {
	Lighthouse string  `json:"lighthouse" yaml:"lighthouse"`
	Locale     string  `json:"locale" yaml:"locale"`
	Category   string  `json:"category" yaml:"category"`
	Count      int     `json:"count" yaml:"count"`
	Entries    []Entry `json:"entries,omitempty" yaml:"entries,omitempty"`
}

// Entry is one placemark in the report, with coordinates in both notations.
type Entry struct {
	Name         string  `json:"name" yaml:"name"`
	Latitude     float64 `json:"latitude" yaml:"latitude"`
	Longitude    float64 `json:"longitude" yaml:"longitude"`
	LatitudeDMS  string  `json:"latitude_dms" yaml:"latitude_dms"`
	LongitudeDMS string  `json:"longitude_dms" yaml:"longitude_dms"`
	Category     string  `json:"category" yaml:"category"`
}

// NewCommand creates the inspect command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "inspect MAP",
		GroupID: "core",
		Short:   "List the category folders of a KML map",
		Args:    cobra.ExactArgs(1),
		Example: `  automark inspect map.kml
  automark inspect map.kml --entries
  automark inspect map.kml -f yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Execute(cmd.Context(), app, flags, args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().BoolVar(&flags.Entries, "entries", false, "list every placemark with DMS coordinates")
	cmd.Flags().StringVar(&flags.RootFolder, "root-folder", app.Settings().RootFolder,
		"name of the top-level folder holding the lighthouses (empty: last folder)")

	return cmd
}

// Execute loads and indexes the map and prints its containers. Duplicate
// keys are reported on stderr.
func Execute(ctx context.Context, app appcontext.Interface, flags *Flags, mapPath string, stdout, stderr io.Writer) error {
	ctx = logging.WithDocument(logging.WithLogger(ctx, app.Logger()), mapPath)

	doc, err := kml.Load(mapPath)
	if err != nil {
		return err
	}
	idx, err := index.Build(ctx, doc, index.WithRootFolder(flags.RootFolder))
	if err != nil {
		return err
	}

	format := output.DetectFormat(app.OutputFormat())
	writer := alerts.NewFormatWriter(stderr, format)
	for _, d := range idx.Duplicates() {
		if err := writer.WriteAlert(alerts.NewWarning(d.Warning().Error())); err != nil {
			return err
		}
	}

	report := Build(idx, flags.Entries)

	switch format {
	case output.FormatJSON, output.FormatYAML:
		return output.NewFormatter(format).Format(stdout, report)
	}
	return output.NewFormatter(format).Format(stdout, Table(report, flags.Entries))
}

// Build collects the report for every container in document order.
func Build(idx *index.Index, withEntries bool) []Container {
	report := make([]Container, 0, len(idx.Containers()))
	for _, c := range idx.Containers() {
		p := c.Path()
		item := Container{
			Lighthouse: p.Group,
			Locale:     p.Subgroup,
			Category:   p.Category,
			Count:      c.Len(),
		}
		if withEntries {
			for _, e := range c.Entries() {
				item.Entries = append(item.Entries, newEntry(e))
			}
		}
		report = append(report, item)
	}
	return report
}

func newEntry(e placemark.Entry) Entry {
	return Entry{
		Name:         e.Key,
		Latitude:     e.Latitude,
		Longitude:    e.Longitude,
		LatitudeDMS:  coords.FormatDMS(e.Latitude, coords.Latitude),
		LongitudeDMS: coords.FormatDMS(e.Longitude, coords.Longitude),
		Category:     e.Category.String(),
	}
}

// Table renders the report as one row per container, or one row per entry
// when entries are listed.
func Table(report []Container, withEntries bool) output.Data {
	if !withEntries {
		data := output.Data{
			Headers:         output.Headers("lighthouse", "locale", "category", "count"),
			ColumnAlignment: []output.Align{output.AlignLeft, output.AlignLeft, output.AlignLeft, output.AlignRight},
		}
		for _, c := range report {
			data.Rows = append(data.Rows, []string{c.Lighthouse, c.Locale, c.Category, strconv.Itoa(c.Count)})
		}
		return data
	}

	data := output.Data{
		Headers: output.Headers("lighthouse", "locale", "category", "name", "latitude", "longitude"),
	}
	for _, c := range report {
		for _, e := range c.Entries {
			data.Rows = append(data.Rows, []string{c.Lighthouse, c.Locale, c.Category, e.Name, e.LatitudeDMS, e.LongitudeDMS})
		}
	}
	return data
}
