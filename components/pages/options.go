package pages

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type GuardFunc func(r *http.Request) error

type Options struct {
	// RoutePrefix is stripped from the request path before the slug lookup.
	RoutePrefix string
	Guard       GuardFunc
	Logger      *zap.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePrefix: "/",
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	opts.RoutePrefix = "/" + strings.Trim(strings.TrimSpace(opts.RoutePrefix), "/")
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return opts
}

func WithRoutePrefix(prefix string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePrefix = prefix
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}
