// Package immutable provides the frozen-view container [record.RecordGraph]
// hands to the kinship engine and the JSON exporter once a tree has been
// fully parsed and postprocessed.
//
// FamilyTree-Text has no typed field values (spec §2): every HEAD_* header
// is a text run, so the package only needs to wrap string-valued maps, not
// the arbitrary-value trees a general-purpose immutable container would
// support.
//
// # Core Types
//
// [Value] wraps a single property value:
//
//	if s, ok := val.String(); ok {
//	    fmt.Println(s)
//	}
//
// [Properties] is a frozen, string-keyed map of [Value]:
//
//	props := immutable.WrapPropertiesClone(headerMap)
//	if v, ok := props.Get("HEAD_FORMAT"); ok {
//	    format, _ := v.String()
//	}
//
// # Ownership Semantics
//
// WrapPropertiesClone performs a deep clone before wrapping: the caller may
// freely retain and mutate the source map afterward. record.RecordGraph
// relies on this because the header map it clones from still belongs to a
// live record.Document at the moment RecordGraph is built.
//
//	headers := map[string]any{"HEAD_FORMAT": "1.0"}
//	props := immutable.WrapPropertiesClone(headers)
//	headers["HEAD_FORMAT"] = "mutated" // safe: props is isolated
//
// # Concurrency Safety
//
// Properties and Value are safe for concurrent read access: the underlying
// map is never modified after WrapPropertiesClone returns.
//
// # Package Dependencies
//
// Per the Foundation Rule, immutable imports only stdlib packages. It must
// not import higher-level packages like record, parse, validate,
// postprocess, kinship, or exportjson.
package immutable
