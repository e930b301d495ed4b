// Package validate implements the six-step validation pass of spec §4.2:
// header presence, dangling references, ghost children, circular lineage,
// controlled-vocabulary membership, and date-literal grammar. Validation
// runs after [parse.Parse] produces a [record.Document] and before
// [postprocess] derives a [record.RecordGraph]; every check is diagnostic
// only and never mutates the document.
package validate

import (
	"context"
	"log/slog"

	"github.com/arthurdick/familytree-text/diag"
	"github.com/arthurdick/familytree-text/internal/trace"
	"github.com/arthurdick/familytree-text/record"
)

// Check runs every validation step against doc in spec order and returns
// the accumulated diagnostics. Later steps still run even when earlier
// ones find errors, since each step inspects an independent concern.
func Check(ctx context.Context, doc *record.Document, opts ...Option) diag.Result {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	op := trace.Begin(ctx, cfg.logger, "ftt.validate.check", slog.Int("records", doc.RecordCount()))

	collector := diag.NewCollectorUnlimited()
	checkHeaders(doc, collector)
	checkDanglingReferences(doc, collector)
	checkGhostChildren(doc, collector)
	checkCycles(doc, collector)
	checkVocabulary(doc, collector)
	checkDates(doc, collector)
	result := collector.Result()

	op.End(nil, slog.Int("issues", result.Len()))
	return result
}
