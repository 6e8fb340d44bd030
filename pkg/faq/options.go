package faq

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-faqschema/pkg/sanitize"
)

// Option configures an Emitter or Extension.
type Option func(*config)

type config struct {
	logger    *zap.Logger
	sanitizer sanitize.Func
	validate  bool
	priority  int
}

func defaultConfig() config {
	return config{
		logger:    zap.NewNop(),
		sanitizer: sanitize.StripMarkup,
		validate:  true,
		priority:  DefaultPriority,
	}
}

func newConfig(options ...Option) config {
	cfg := defaultConfig()
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// WithLogger sets the logger used for debug diagnostics of skipped entries
// and suppressed output.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithSanitizer replaces the markup stripper applied to question and answer
// text.
func WithSanitizer(fn sanitize.Func) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.sanitizer = fn
		}
	}
}

// WithValidation toggles the required-field check run on the serialized
// document before it is written.
func WithValidation(enabled bool) Option {
	return func(cfg *config) {
		cfg.validate = enabled
	}
}

// WithPriority sets the pipeline slot of the Extension. The default places
// the FAQ block after other late page output.
func WithPriority(priority int) Option {
	return func(cfg *config) {
		cfg.priority = priority
	}
}
