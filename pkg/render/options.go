package render

import "go.uber.org/zap"

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger used for pipeline diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// RegisterOption configures a single extension registration.
type RegisterOption func(*registration)

// WithPriority sets the ordering slot of an extension. Hooks of lower
// priority run first; equal priorities keep registration order.
func WithPriority(priority int) RegisterOption {
	return func(r *registration) {
		r.priority = priority
	}
}
