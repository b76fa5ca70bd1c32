package merge

import (
	"context"
	"fmt"
	"io"

	"github.com/agentstation/automark/internal/appcontext"
	"github.com/agentstation/automark/internal/cmd/alerts"
	"github.com/agentstation/automark/internal/cmd/output"
	"github.com/agentstation/automark/pkg/index"
	"github.com/agentstation/automark/pkg/kml"
	"github.com/agentstation/automark/pkg/logging"
	"github.com/agentstation/automark/pkg/merge"
	"github.com/agentstation/automark/pkg/records"
	"github.com/agentstation/automark/pkg/save"
)

// Execute runs a merge: load the map, index it, apply every marker file in
// order, save, then print the completion alert to stderr and the run report
// to stdout. Diagnostics for each mutation and anomaly go to stderr as they
// happen.
func Execute(ctx context.Context, app appcontext.Interface, flags *Flags, mapPath string, markerPaths []string, stdout, stderr io.Writer) (*merge.Result, error) {
	logger := app.Logger()
	ctx = logging.WithDocument(logging.WithLogger(ctx, logger), mapPath)

	format := output.DetectFormat(app.OutputFormat())
	writer := alerts.NewFormatWriter(stderr, format)
	if app.Settings().NoColor {
		writer.WithConfig(alerts.WriterConfig{ShowDetails: true})
	}

	doc, err := kml.Load(mapPath)
	if err != nil {
		return nil, err
	}

	idx, err := index.Build(ctx, doc, index.WithRootFolder(flags.RootFolder))
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info().
		Int("containers", len(idx.Containers())).
		Int("entries", idx.Len()).
		Msg("Indexed map")

	var alertErr error
	engine := merge.New(idx,
		merge.WithErase(flags.Erase),
		merge.WithStrict(flags.Strict),
		merge.WithSignedHemispheres(flags.SignedHemispheres),
		merge.WithNotifier(alerts.Notifier(writer, &alertErr)),
	)

	if flags.Erase {
		engine.EraseAll(ctx)
	}

	for _, path := range markerPaths {
		recs, err := records.ReadFile(path)
		if err != nil {
			return nil, err
		}

		fileCtx := logging.WithSource(ctx, path)
		logging.FromContext(fileCtx).Debug().Int("records", len(recs)).Msg("Merging records")

		if err := engine.Merge(fileCtx, recs); err != nil {
			return engine.Result(), err
		}
	}
	if alertErr != nil {
		return nil, alertErr
	}

	saved, err := doc.Save(save.WithPath(flags.Output))
	if err != nil {
		return nil, err
	}

	result := engine.Result()
	result.Output = saved
	logging.FromContext(ctx).Info().
		Str("output", saved).
		Int("added", result.Added).
		Int("replaced", result.Replaced).
		Int("skipped", result.Skipped).
		Msg("Merge complete")

	if err := writer.WriteAlert(alerts.NewSuccess(fmt.Sprintf("Saved %s", saved)).
		WithDetails(result.Summary())); err != nil {
		return result, err
	}

	return result, printResult(stdout, format, result)
}
