package validate

import "log/slog"

// Option configures a [Check] call, following the teacher's functional-option
// style (see graph/internal/walk.WalkOption).
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger enables debug-level tracing of the validation pass via log/slog.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}
