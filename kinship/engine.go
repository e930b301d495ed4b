package kinship

import (
	"context"
	"log/slog"

	"github.com/arthurdick/familytree-text/internal/normalize"
	"github.com/arthurdick/familytree-text/internal/trace"
	"github.com/arthurdick/familytree-text/record"
)

// Engine holds the derived indices of spec §4.4.1, built once from an
// immutable [record.RecordGraph]. Per spec §5, the record graph is
// never mutated once handed to the engine, and multiple queries may run
// against the same Engine without conflict.
type Engine struct {
	graph  *record.RecordGraph
	idx    *indices
	logger *slog.Logger
}

// NewEngine builds the derived indices of spec §4.4.1 from graph,
// including inferred step-parent injection.
func NewEngine(ctx context.Context, graph *record.RecordGraph, opts ...Option) *Engine {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	op := trace.Begin(ctx, cfg.logger, "ftt.kinship.newengine", slog.Int("records", graph.RecordCount()))
	idx := buildIndices(graph)
	op.End(nil)

	return &Engine{graph: graph, idx: idx, logger: cfg.logger}
}

// Ancestors returns the full multi-path ancestor map for id (spec
// §4.4.2), exposed directly for GEDCOM converters and pedigree-chart UI
// layouts that need raw ancestor-path data independent of a specific
// (A, B) query.
func (e *Engine) Ancestors(id string) map[string][]PathInfo {
	return ancestorsOf(e.idx, id)
}

// Calculate computes the ordered relationship list between idA and idB
// per spec §4.4.3. It never returns an empty slice: an unrelated pair
// yields [None{}].
func (e *Engine) Calculate(ctx context.Context, idA, idB string) []Relationship {
	op := trace.Begin(ctx, e.logger, "ftt.kinship.calculate",
		slog.String("a", idA), slog.String("b", idB))

	rels := enumerate(e.idx, idA, idB)

	trace.DebugLazy(ctx, e.logger, "ftt.kinship.calculate.relationships", func() []slog.Attr {
		return []slog.Attr{slog.Any("relationships", normalize.Normalize(rels))}
	})

	op.End(nil, slog.Int("relationships", len(rels)))
	return rels
}
