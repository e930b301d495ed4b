package kinship

import "log/slog"

// Option configures a [NewEngine] call, following the functional-option
// style used throughout this module (see parse.Option, validate.Option).
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger enables debug-level tracing of index construction and
// relationship calculation.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}
