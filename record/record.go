package record

import "github.com/arthurdick/familytree-text/location"

// Record represents one ID-anchored block (spec §3.1). A Record owns every
// Field and Modifier defined within its block, exclusively (spec §3.3).
type Record struct {
	id         string
	kind       Kind
	span       location.Span
	fields     map[string][]*Field
	fieldOrder []string
}

// NewRecord constructs an empty Record with the given normalized ID and
// kind. Use [Record.AddField] to populate it.
func NewRecord(id string, kind Kind, span location.Span) *Record {
	return &Record{
		id:     id,
		kind:   kind,
		span:   span,
		fields: make(map[string][]*Field),
	}
}

// ID returns the Record's normalized ID, including any sigil.
func (r *Record) ID() string {
	if r == nil {
		return ""
	}
	return r.id
}

// Kind returns the Record's kind.
func (r *Record) Kind() Kind {
	if r == nil {
		return KindIndividual
	}
	return r.kind
}

// Span returns the source location of the record's `ID:` line.
func (r *Record) Span() location.Span {
	if r == nil {
		return location.Span{}
	}
	return r.span
}

// AddField appends a new Field occurrence under key, preserving file order.
func (r *Record) AddField(f *Field) {
	if r == nil || f == nil {
		return
	}
	if _, ok := r.fields[f.Key()]; !ok {
		r.fieldOrder = append(r.fieldOrder, f.Key())
	}
	r.fields[f.Key()] = append(r.fields[f.Key()], f)
}

// Fields returns all Field occurrences under key, in file order. Returns
// nil if the key has no fields.
func (r *Record) Fields(key string) []*Field {
	if r == nil || r.fields == nil {
		return nil
	}
	fs := r.fields[key]
	if len(fs) == 0 {
		return nil
	}
	out := make([]*Field, len(fs))
	copy(out, fs)
	return out
}

// Field returns the first Field occurrence under key, if any. Most keys
// (SEX, BORN, DIED) are single-valued by convention; this is a convenience
// over Fields(key)[0].
func (r *Record) Field(key string) (*Field, bool) {
	fs := r.Fields(key)
	if len(fs) == 0 {
		return nil, false
	}
	return fs[0], true
}

// SetFields replaces every Field occurrence under key with fields, in the
// given order. Used by [postprocess] to rewrite a CHILD manifest after
// reconciliation (spec §4.3.2); parse and validate never call this.
func (r *Record) SetFields(key string, fields []*Field) {
	if r == nil {
		return
	}
	if _, ok := r.fields[key]; !ok {
		r.fieldOrder = append(r.fieldOrder, key)
	}
	r.fields[key] = append([]*Field(nil), fields...)
}

// HasField reports whether the record has at least one Field under key.
func (r *Record) HasField(key string) bool {
	if r == nil || r.fields == nil {
		return false
	}
	return len(r.fields[key]) > 0
}

// FieldKeys returns the distinct field keys present on this record, in
// first-occurrence file order.
func (r *Record) FieldKeys() []string {
	if r == nil || len(r.fieldOrder) == 0 {
		return nil
	}
	out := make([]string, len(r.fieldOrder))
	copy(out, r.fieldOrder)
	return out
}

// FieldCount returns the total number of Field occurrences across all keys.
func (r *Record) FieldCount() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, fs := range r.fields {
		n += len(fs)
	}
	return n
}
