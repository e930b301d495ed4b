package record

// Document is the parsed file (spec §3.1): headers, the records table keyed
// by normalized ID, and (once validation has run) the accumulated
// diagnostics. A Document exclusively owns every Record.
//
// Document is mutable during parsing and post-processing. Call [Document.Freeze]
// once post-processing completes to obtain a [RecordGraph] for the kinship
// engine.
type Document struct {
	headers     map[string]string
	headerOrder []string
	records     map[string]*Record
	recordOrder []string
}

// NewDocument constructs an empty Document.
func NewDocument() *Document {
	return &Document{
		headers: make(map[string]string),
		records: make(map[string]*Record),
	}
}

// SetHeader sets a HEAD_* value. Re-setting an existing header overwrites
// its value but preserves its original position in [Document.HeaderKeys].
func (d *Document) SetHeader(key, value string) {
	if d == nil {
		return
	}
	if _, ok := d.headers[key]; !ok {
		d.headerOrder = append(d.headerOrder, key)
	}
	d.headers[key] = value
}

// Header returns the value for key and true if it was set.
func (d *Document) Header(key string) (string, bool) {
	if d == nil {
		return "", false
	}
	v, ok := d.headers[key]
	return v, ok
}

// HeaderKeys returns the header keys in first-occurrence file order.
func (d *Document) HeaderKeys() []string {
	if d == nil || len(d.headerOrder) == 0 {
		return nil
	}
	out := make([]string, len(d.headerOrder))
	copy(out, d.headerOrder)
	return out
}

// Headers returns a defensive copy of all headers.
func (d *Document) Headers() map[string]string {
	if d == nil || len(d.headers) == 0 {
		return nil
	}
	out := make(map[string]string, len(d.headers))
	for k, v := range d.headers {
		out[k] = v
	}
	return out
}

// AddRecord registers a new Record under its normalized ID, in definition
// order. Returns false without modifying the Document if id is already
// present (callers must check [Document.Record] first and raise a
// duplicate-ID diagnostic themselves; spec §4.1 "Key handling" treats this
// as recoverable, not fatal).
func (d *Document) AddRecord(r *Record) bool {
	if d == nil || r == nil {
		return false
	}
	if _, exists := d.records[r.ID()]; exists {
		return false
	}
	d.records[r.ID()] = r
	d.recordOrder = append(d.recordOrder, r.ID())
	return true
}

// Record looks up a Record by normalized ID.
func (d *Document) Record(id string) (*Record, bool) {
	if d == nil {
		return nil, false
	}
	r, ok := d.records[id]
	return r, ok
}

// Records returns every Record in definition order (by source line, per
// spec §4.1 "ID normalization preserves ordering of definition by source
// line for deterministic output").
func (d *Document) Records() []*Record {
	if d == nil || len(d.recordOrder) == 0 {
		return nil
	}
	out := make([]*Record, len(d.recordOrder))
	for i, id := range d.recordOrder {
		out[i] = d.records[id]
	}
	return out
}

// RecordOrder returns the record IDs in definition order.
func (d *Document) RecordOrder() []string {
	if d == nil || len(d.recordOrder) == 0 {
		return nil
	}
	out := make([]string, len(d.recordOrder))
	copy(out, d.recordOrder)
	return out
}

// RecordCount returns the total number of records.
func (d *Document) RecordCount() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// Stats summarizes a Document: record counts by [Kind] and, when severity
// counts are supplied via [Document.StatsWithDiagnostics], diagnostic counts
// by severity. This is the "Import summary" analogous to what GEDCOM
// importers conventionally print after a load (see SPEC_FULL.md
// "Supplemented features").
type Stats struct {
	Individuals   int
	Sources       int
	Events        int
	Placeholders  int
	ErrorCount    int
	WarningCount  int
}

// Stats returns record counts by kind, with zero diagnostic counts. Use
// [Document.StatsWithDiagnostics] when diagnostic counts are also needed.
func (d *Document) Stats() Stats {
	return d.StatsWithDiagnostics(0, 0)
}

// StatsWithDiagnostics returns record counts by kind plus the given error
// and warning counts. Callers typically derive errorCount/warningCount from
// a [diag.Result]'s SeverityCounts, which is accumulated outside Document
// (by [parse.Parse] and [validate.Check]) rather than stored on it, keeping
// Document a pure data-model type.
func (d *Document) StatsWithDiagnostics(errorCount, warningCount int) Stats {
	s := Stats{ErrorCount: errorCount, WarningCount: warningCount}
	if d == nil {
		return s
	}
	for _, r := range d.records {
		switch r.Kind() {
		case KindIndividual:
			s.Individuals++
		case KindSource:
			s.Sources++
		case KindEvent:
			s.Events++
		case KindPlaceholder:
			s.Placeholders++
		}
	}
	return s
}

// Freeze produces a [RecordGraph] snapshot of the Document for handoff to
// the kinship engine. Per spec §3.3, the graph is immutable to the kinship
// engine from this point forward; callers must not continue mutating
// Document (via Record.AddField, Field.SetPlace, etc.) after Freeze.
func (d *Document) Freeze() *RecordGraph {
	return newRecordGraph(d)
}
