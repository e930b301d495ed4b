package exportjson

// WriteOption configures serialization behavior, following the
// teacher's adapter/json.WriteOption functional-option shape.
type WriteOption func(*writeConfig)

type writeConfig struct {
	indent string
}

// WithIndent sets the indentation string for pretty-printing. Use ""
// for compact output (the default).
func WithIndent(indent string) WriteOption {
	return func(c *writeConfig) { c.indent = indent }
}

func resolve(opts []WriteOption) writeConfig {
	var cfg writeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
