package postprocess

import (
	"context"
	"log/slog"

	"github.com/arthurdick/familytree-text/diag"
	"github.com/arthurdick/familytree-text/internal/trace"
	"github.com/arthurdick/familytree-text/record"
)

// Option configures a [Run] call, following the teacher's functional-option
// style (see graph/internal/walk.WalkOption).
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger enables debug-level tracing of the post-processing pass.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// Run implements spec §4.3: implicit reciprocal unions, child-list
// reconciliation, and place-expression parsing, in that order (union
// reconciliation must run first so step-parent injection in the kinship
// engine sees every spouse, and child-list reconciliation depends on
// nothing else). It mutates doc in place and returns the frozen
// [record.RecordGraph] handed to the kinship engine, along with any
// Warning(DATA_CONSISTENCY) diagnostics raised along the way.
func Run(ctx context.Context, doc *record.Document, opts ...Option) (*record.RecordGraph, diag.Result) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	op := trace.Begin(ctx, cfg.logger, "ftt.postprocess.run", slog.Int("records", doc.RecordCount()))

	collector := diag.NewCollectorUnlimited()
	reconcileUnions(doc, collector)
	reconcileChildren(doc)
	parsePlaces(doc)
	result := collector.Result()

	graph := doc.Freeze()
	op.End(nil, slog.Int("issues", result.Len()))
	return graph, result
}
