package validate

import (
	"strings"

	"github.com/arthurdick/familytree-text/diag"
	"github.com/arthurdick/familytree-text/location"
	"github.com/arthurdick/familytree-text/record"
)

// color tracks White (unseen, the zero value), Gray (on the current DFS
// path), and Black (fully processed) per spec §4.2 step 4 / §4.5.
type color uint8

const (
	white color = iota
	gray
	black
)

// cycleFrame is one level of the explicit DFS stack. parents is computed
// once when the frame is pushed; idx tracks how many have been expanded so
// far, so a frame is visited once per parent (idx advancing by one each
// time) and a final time to pop (idx == len(parents)).
type cycleFrame struct {
	id      string
	parents []string
	idx     int
}

// checkCycles implements spec §4.2 step 4: iterative depth-first search
// over the lineage subgraph (edges child→parent where the parent type is a
// blood-traversal type or unspecified), using an explicit frame stack
// rather than recursion so pathological inputs cannot overflow the call
// stack.
func checkCycles(doc *record.Document, collector *diag.Collector) {
	colors := make(map[string]color)
	for _, id := range doc.RecordOrder() {
		rec, _ := doc.Record(id)
		if rec.Kind() != record.KindIndividual || colors[id] != white {
			continue
		}
		walkFrom(doc, id, colors, collector)
	}
}

func walkFrom(doc *record.Document, start string, colors map[string]color, collector *diag.Collector) {
	colors[start] = gray
	path := []string{start}
	stack := []*cycleFrame{{id: start, parents: lineageParentsOf(doc, start)}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.idx >= len(top.parents) {
			colors[top.id] = black
			stack = stack[:len(stack)-1]
			path = path[:len(path)-1]
			continue
		}
		p := top.parents[top.idx]
		top.idx++

		switch colors[p] {
		case white:
			colors[p] = gray
			path = append(path, p)
			stack = append(stack, &cycleFrame{id: p, parents: lineageParentsOf(doc, p)})
		case gray:
			reportCycle(doc, append(append([]string{}, path...), p), collector)
			// The offending edge is dropped; the frame that found it keeps
			// expanding its remaining parents.
		case black:
			// Already fully processed via another path; nothing to do.
		}
	}
}

// lineageParentsOf returns id's parents whose PARENT[1] type participates
// in blood traversal (BIO, ADO, LEGL, SURR, DONR, or unspecified), per the
// lineageParents derived index definition in spec §4.4.1. Unresolvable or
// placeholder parent references are skipped; they carry no lineage of
// their own to traverse.
func lineageParentsOf(doc *record.Document, id string) []string {
	rec, ok := doc.Record(id)
	if !ok {
		return nil
	}
	var parents []string
	for _, f := range rec.Fields("PARENT") {
		ref, ok := f.Segment(0)
		if !ok || ref == "" || record.IsPlaceholderRef(ref) {
			continue
		}
		if _, exists := doc.Record(ref); !exists {
			continue
		}
		t, _ := f.Segment(1)
		if t == "" || IsLineageParentType(t) {
			parents = append(parents, ref)
		}
	}
	return parents
}

func reportCycle(doc *record.Document, path []string, collector *diag.Collector) {
	span := location.Span{}
	if rec, ok := doc.Record(path[0]); ok {
		span = rec.Span()
	}
	collector.Collect(diag.NewIssue(diag.Error, diag.E_CIRCULAR_LINEAGE,
		"circular lineage: "+strings.Join(path, " -> ")).
		WithSpan(span).Build())
}
