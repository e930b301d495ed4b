package record

import "github.com/arthurdick/familytree-text/immutable"

// RecordGraph is the frozen, post-processed snapshot of a [Document] handed
// to the kinship engine (spec §3.3: "the kinship engine must treat the
// RecordGraph as read-only"). Obtain one via [Document.Freeze].
//
// Headers are exposed through [immutable.Properties] so the kinship engine
// gets the same case-insensitive, deterministically-ordered access that the
// rest of the codebase uses for exposed string-keyed maps. Records
// themselves remain *[Record] values: Record's own mutator methods
// (AddField, SetPlace, ...) exist for [parse] and [postprocess] to build the
// graph and must not be called once a RecordGraph has been taken from it.
type RecordGraph struct {
	headers     immutable.Properties
	headerOrder []string
	records     map[string]*Record
	recordOrder []string
}

func newRecordGraph(d *Document) *RecordGraph {
	g := &RecordGraph{
		headerOrder: d.HeaderKeys(),
		recordOrder: d.RecordOrder(),
	}
	if len(d.headers) > 0 {
		props := make(map[string]any, len(d.headers))
		for k, v := range d.headers {
			props[k] = v
		}
		g.headers = immutable.WrapPropertiesClone(props)
	}
	if len(d.records) > 0 {
		g.records = make(map[string]*Record, len(d.records))
		for id, r := range d.records {
			g.records[id] = r
		}
	}
	return g
}

// Headers returns the document's HEAD_* values.
func (g *RecordGraph) Headers() immutable.Properties {
	if g == nil {
		return immutable.Properties{}
	}
	return g.headers
}

// HeaderKeys returns header keys in first-occurrence file order.
func (g *RecordGraph) HeaderKeys() []string {
	if g == nil || len(g.headerOrder) == 0 {
		return nil
	}
	out := make([]string, len(g.headerOrder))
	copy(out, g.headerOrder)
	return out
}

// Record looks up a Record by normalized ID.
func (g *RecordGraph) Record(id string) (*Record, bool) {
	if g == nil {
		return nil, false
	}
	r, ok := g.records[id]
	return r, ok
}

// Records returns every Record in definition order.
func (g *RecordGraph) Records() []*Record {
	if g == nil || len(g.recordOrder) == 0 {
		return nil
	}
	out := make([]*Record, len(g.recordOrder))
	for i, id := range g.recordOrder {
		out[i] = g.records[id]
	}
	return out
}

// RecordOrder returns the record IDs in definition order.
func (g *RecordGraph) RecordOrder() []string {
	if g == nil || len(g.recordOrder) == 0 {
		return nil
	}
	out := make([]string, len(g.recordOrder))
	copy(out, g.recordOrder)
	return out
}

// RecordCount returns the total number of records.
func (g *RecordGraph) RecordCount() int {
	if g == nil {
		return 0
	}
	return len(g.records)
}
