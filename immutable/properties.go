package immutable

// Properties provides immutable access to a set of named text values.
//
// Properties backs [record.RecordGraph.Headers]: once [record.Document.Freeze]
// builds a RecordGraph, its HEAD_* values are handed to the kinship engine
// and the JSON exporter through Properties rather than a live
// map[string]string, so nothing downstream of Freeze can mutate what parse
// produced.
//
// Properties is safe for concurrent read access.
type Properties struct {
	entries map[string]Value
}

// WrapPropertiesClone wraps a deep clone of the property map.
//
// The caller may freely retain and mutate the original map after cloning.
// This is safe for maps from external sources or shared references, which
// is how [record.RecordGraph] uses it: the source map is a [record.Document]
// field that parse and postprocess may still be mutating elsewhere.
func WrapPropertiesClone(props map[string]any) Properties {
	if props == nil {
		return Properties{}
	}

	entries := make(map[string]Value, len(props))
	for k, v := range props {
		entries[k] = Value{val: v}
	}
	return Properties{entries: entries}
}

// Get returns the value for the given property name and true if it exists.
// Returns (zero Value, false) if the property does not exist.
func (p Properties) Get(name string) (Value, bool) {
	v, ok := p.entries[name]
	return v, ok
}
