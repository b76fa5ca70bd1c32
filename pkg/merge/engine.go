// Package merge applies marker records to an indexed placemark document.
//
// Each record either replaces the entry that already carries its identity
// key, wherever that entry lives, or is appended to the container its
// lighthouse, locale and category name. Records that cannot be placed are
// reported and leave the document untouched.
package merge

import (
	"context"
	"fmt"

	"github.com/agentstation/utc"

	"github.com/agentstation/automark/pkg/coords"
	"github.com/agentstation/automark/pkg/errors"
	"github.com/agentstation/automark/pkg/index"
	"github.com/agentstation/automark/pkg/logging"
	"github.com/agentstation/automark/pkg/placemark"
	"github.com/agentstation/automark/pkg/records"
)

// Engine merges records into the document behind an index. It is not safe
// for concurrent use.
type Engine struct {
	idx    *index.Index
	opts   *Options
	result Result
	erased bool
}

// New creates an engine over idx. Duplicate keys found while building idx are
// reported immediately, one notice each.
func New(idx *index.Index, opts ...Option) *Engine {
	o := Defaults().Apply(opts...)
	e := &Engine{
		idx:  idx,
		opts: o,
		result: Result{
			Before: idx.Len(),
			Erase:  o.Erase,
			Strict: o.Strict,
		},
	}

	for _, d := range idx.Duplicates() {
		e.result.Duplicates++
		e.notify(context.Background(), Notice{
			Kind:     KindDuplicate,
			Key:      d.Key,
			Path:     d.Current,
			Previous: d.Previous,
			Err:      d.Warning(),
		})
	}

	return e
}

// Merge applies records in order. When erase mode is on the document is
// emptied first, once per engine. Lookup errors are reported and skipped;
// format errors are skipped too unless strict mode is on, in which case the
// first one is returned. Cancellation is checked between records.
func (e *Engine) Merge(ctx context.Context, recs []records.Record) error {
	if e.opts.Erase {
		e.EraseAll(ctx)
	}

	for _, rec := range recs {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", errors.ErrCanceled, err)
		}
		if err := e.MergeRecord(ctx, rec); err != nil {
			if e.opts.Strict && errors.IsFormat(err) {
				return err
			}
		}
	}

	return nil
}

// MergeRecord applies a single record. It returns the per-record error, if
// any, after reporting it; the document is not modified in that case.
func (e *Engine) MergeRecord(ctx context.Context, rec records.Record) error {
	e.result.Records++

	if rec.Err != nil {
		return e.fail(ctx, rec, rec.Err)
	}

	category, err := placemark.ParseCategory(rec.Category)
	if err != nil {
		return e.fail(ctx, rec, err)
	}

	key := placemark.Normalize(rec.Name)
	if key == "" {
		return e.fail(ctx, rec, errors.NewFormatError("name", rec.Name, "name is empty", nil))
	}

	lat, err := e.coordinate("latitude", rec.Latitude)
	if err != nil {
		return e.fail(ctx, rec, err)
	}
	lng, err := e.coordinate("longitude", rec.Longitude)
	if err != nil {
		return e.fail(ctx, rec, err)
	}

	target, ok := e.idx.Lookup(rec.Group, rec.Subgroup, category.String())
	if !ok {
		p := index.NewPath(rec.Group, rec.Subgroup, category.String())
		return e.fail(ctx, rec, errors.NewLookupError(p.Group, p.Subgroup, p.Category))
	}

	n := Notice{Kind: KindAdded, Key: key, Path: target.Path(), Source: rec.Source, Line: rec.Line}
	if owner, ok := e.idx.Owner(key); ok {
		owner.Remove(key)
		e.idx.Unbind(key)
		n.Kind = KindReplaced
		n.Previous = owner.Path()
	}

	target.Append(placemark.New(key, lat, lng, category).Element())
	e.idx.Bind(key, target)

	if n.Kind == KindReplaced {
		e.result.Replaced++
	} else {
		e.result.Added++
	}
	e.notify(ctx, n)

	return nil
}

// EraseAll removes every entry from every container and resets the identity
// index. It runs at most once per engine and returns the number of entries
// removed.
func (e *Engine) EraseAll(ctx context.Context) int {
	if e.erased {
		return 0
	}
	e.erased = true

	removed := 0
	for _, c := range e.idx.Containers() {
		for _, label := range c.Clear() {
			e.notify(ctx, Notice{Kind: KindErased, Key: placemark.Normalize(label), Path: c.Path()})
			removed++
		}
	}
	e.idx.Reset()
	e.result.Erased += removed

	return removed
}

// Result returns a snapshot of the run so far.
func (e *Engine) Result() *Result {
	r := e.result
	r.Failures = append([]Failure(nil), e.result.Failures...)
	r.After = e.idx.Len()
	r.Completed = utc.Now()
	return &r
}

func (e *Engine) coordinate(field, raw string) (float64, error) {
	c, err := coords.Parse(raw)
	if err != nil {
		var ferr *errors.FormatError
		if errors.As(err, &ferr) {
			ferr.Field = field
		}
		return 0, err
	}
	if e.opts.SignedHemispheres {
		return c.Signed(), nil
	}
	return c.Decimal(), nil
}

func (e *Engine) fail(ctx context.Context, rec records.Record, cause error) error {
	err := errors.WrapRecord(rec.Source, rec.Line, cause)

	e.result.Skipped++
	e.result.Failures = append(e.result.Failures, Failure{
		Source: rec.Source,
		Line:   rec.Line,
		Name:   rec.Name,
		Error:  cause.Error(),
	})
	e.notify(ctx, Notice{
		Kind:   KindSkipped,
		Key:    placemark.Normalize(rec.Name),
		Source: rec.Source,
		Line:   rec.Line,
		Err:    err,
	})

	return err
}

func (e *Engine) notify(ctx context.Context, n Notice) {
	logging.FromContext(ctx).Debug().
		Str("kind", string(n.Kind)).
		Str("key", n.Key).
		Str("container", n.Path.String()).
		Msg(n.Message())

	if e.opts.Notify != nil {
		e.opts.Notify(n)
	}
}
