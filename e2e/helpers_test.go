// Package e2e exercises the full parse -> validate -> postprocess ->
// kinship -> kinshiptext pipeline against the fixture scenarios of
// spec §8, adapted from the teacher's own e2e/spec suite.
package e2e_test

import (
	"testing"

	"github.com/arthurdick/familytree-text/diag"
	"github.com/arthurdick/familytree-text/kinship"
	"github.com/arthurdick/familytree-text/location"
	"github.com/arthurdick/familytree-text/parse"
	"github.com/arthurdick/familytree-text/postprocess"
	"github.com/arthurdick/familytree-text/record"
	"github.com/arthurdick/familytree-text/validate"
)

func src(t *testing.T) location.SourceID {
	t.Helper()
	return location.MustNewSourceID("inline:e2e_fixture")
}

// pipeline result: the merged diagnostics from every stage, and the
// frozen graph (nil if parsing failed outright).
type pipelineResult struct {
	graph      *record.RecordGraph
	doc        *record.Document
	diagnostic diag.Result
}

func runPipeline(t *testing.T, input string) pipelineResult {
	t.Helper()
	doc, parseResult := parse.Parse(t.Context(), src(t), []byte(input))
	validateResult := validate.Check(t.Context(), doc)

	merged := diag.NewCollectorUnlimited()
	merged.Merge(parseResult)
	merged.Merge(validateResult)

	graph, ppResult := postprocess.Run(t.Context(), doc)
	merged.Merge(ppResult)

	return pipelineResult{graph: graph, doc: doc, diagnostic: merged.Result()}
}

func codesOf(issues []diag.Issue) []diag.Code {
	out := make([]diag.Code, len(issues))
	for i, issue := range issues {
		out[i] = issue.Code()
	}
	return out
}

func calculate(t *testing.T, graph *record.RecordGraph, idA, idB string) []kinship.Relationship {
	t.Helper()
	engine := kinship.NewEngine(t.Context(), graph)
	return engine.Calculate(t.Context(), idA, idB)
}

func findLineage(t *testing.T, rels []kinship.Relationship) kinship.Lineage {
	t.Helper()
	for _, r := range rels {
		if l, ok := r.(kinship.Lineage); ok {
			return l
		}
	}
	t.Fatalf("no Lineage relationship found among %d results: %#v", len(rels), rels)
	return kinship.Lineage{}
}

func findStepParent(t *testing.T, rels []kinship.Relationship) kinship.StepParent {
	t.Helper()
	for _, r := range rels {
		if sp, ok := r.(kinship.StepParent); ok {
			return sp
		}
	}
	t.Fatalf("no StepParent relationship found among %d results: %#v", len(rels), rels)
	return kinship.StepParent{}
}
