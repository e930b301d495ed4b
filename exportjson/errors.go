package exportjson

import "errors"

// ErrNilGraph is returned by MarshalGraph when the supplied graph is nil.
var ErrNilGraph = errors.New("exportjson: nil record graph")
