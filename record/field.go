package record

import "github.com/arthurdick/familytree-text/location"

// Field represents one occurrence of a data key under a Record (spec §3.1).
// A Record may have multiple Fields under the same key (e.g. several NAME
// entries); each occurrence is a distinct Field preserving file order.
type Field struct {
	key        string
	raw        string
	segments   []string
	modifiers  map[string][]*Modifier
	modOrder   []string
	place      Place
	hasPlace   bool
	span       location.Span
	isImplicit bool
}

// NewField constructs a Field. segments is the pipe-split, NFC-normalized,
// unescaped parse of raw (see spec §4.1 "Buffer flush").
func NewField(key, raw string, segments []string, span location.Span) *Field {
	return &Field{
		key:      key,
		raw:      raw,
		segments: append([]string(nil), segments...),
		span:     span,
	}
}

// Key returns the Field's key, e.g. "NAME" or "PARENT".
func (f *Field) Key() string {
	if f == nil {
		return ""
	}
	return f.key
}

// Raw returns the raw, unsplit field text as it appeared in source (after
// buffer flush, before pipe-splitting).
func (f *Field) Raw() string {
	if f == nil {
		return ""
	}
	return f.raw
}

// Segments returns a defensive copy of the pipe-split segments.
func (f *Field) Segments() []string {
	if f == nil || len(f.segments) == 0 {
		return nil
	}
	out := make([]string, len(f.segments))
	copy(out, f.segments)
	return out
}

// Segment returns the segment at index i, or ("", false) if i is out of
// range. Callers use this for positional access, e.g. PARENT[0] (the
// referenced ID) and PARENT[1] (the lineage type).
func (f *Field) Segment(i int) (string, bool) {
	if f == nil || i < 0 || i >= len(f.segments) {
		return "", false
	}
	return f.segments[i], true
}

// SegmentCount returns the number of pipe segments.
func (f *Field) SegmentCount() int {
	if f == nil {
		return 0
	}
	return len(f.segments)
}

// Span returns the source location of the field's key line.
func (f *Field) Span() location.Span {
	if f == nil {
		return location.Span{}
	}
	return f.span
}

// IsImplicit reports whether this Field was synthesized by post-processing
// (an implicit reciprocal UNION or a reconciled CHILD entry) rather than
// read directly from source. Per spec §4.3.1, implicit fields are skipped
// by vocabulary validation.
func (f *Field) IsImplicit() bool {
	return f != nil && f.isImplicit
}

// MarkImplicit flags the field as synthesized by post-processing.
func (f *Field) MarkImplicit() {
	if f != nil {
		f.isImplicit = true
	}
}

// AddModifier attaches a Modifier to this field, stacking it under the
// modifier's key alongside any prior modifiers of the same key.
func (f *Field) AddModifier(m *Modifier) {
	if f == nil || m == nil {
		return
	}
	if f.modifiers == nil {
		f.modifiers = make(map[string][]*Modifier)
	}
	if _, ok := f.modifiers[m.Key()]; !ok {
		f.modOrder = append(f.modOrder, m.Key())
	}
	f.modifiers[m.Key()] = append(f.modifiers[m.Key()], m)
}

// Modifiers returns the stacked modifiers under the given key, in source
// order. Returns nil if none exist.
func (f *Field) Modifiers(key string) []*Modifier {
	if f == nil || f.modifiers == nil {
		return nil
	}
	mods := f.modifiers[key]
	if len(mods) == 0 {
		return nil
	}
	out := make([]*Modifier, len(mods))
	copy(out, mods)
	return out
}

// ModifierKeys returns the distinct modifier keys attached to this field,
// in first-occurrence order.
func (f *Field) ModifierKeys() []string {
	if f == nil || len(f.modOrder) == 0 {
		return nil
	}
	out := make([]string, len(f.modOrder))
	copy(out, f.modOrder)
	return out
}

// AllModifiers returns every modifier attached to this field across all
// keys, in key-insertion then stack order.
func (f *Field) AllModifiers() []*Modifier {
	if f == nil {
		return nil
	}
	var out []*Modifier
	for _, key := range f.modOrder {
		out = append(out, f.modifiers[key]...)
	}
	return out
}

// SetPlace attaches parsed place metadata to the field (spec §4.3.3).
func (f *Field) SetPlace(p Place) {
	if f == nil {
		return
	}
	f.place = p
	f.hasPlace = true
}

// Place returns the field's place metadata and true if it was set.
func (f *Field) Place() (Place, bool) {
	if f == nil || !f.hasPlace {
		return Place{}, false
	}
	return f.place, true
}
