package pages

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-faqschema/pkg/site"
)

// PageRenderer renders a page by slug. *page.Renderer satisfies it.
type PageRenderer interface {
	RenderPage(ctx context.Context, slug string) ([]byte, error)
}

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// NewHandler builds a net/http handler with default options plus any
// overrides.
func NewHandler(renderer PageRenderer, fns ...OptionFn) http.Handler {
	return HandlerWithOptions(renderer, NewOptions(fns...))
}

// HandlerWithOptions builds a net/http handler from a pre-constructed Options
// value.
func HandlerWithOptions(renderer PageRenderer, opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil || renderer == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}

		slug, ok := slugFromPath(r.URL.Path, opts.RoutePrefix)
		if !ok {
			http.NotFound(w, r)
			return
		}

		body, err := renderer.RenderPage(r.Context(), slug)
		if err != nil {
			if errors.Is(err, site.ErrPageNotFound) {
				http.NotFound(w, r)
				return
			}
			opts.Logger.Error("page render failed", zap.String("slug", slug), zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		if _, err := w.Write(body); err != nil {
			opts.Logger.Debug("page write failed", zap.String("slug", slug), zap.Error(err))
		}
	})
}

func slugFromPath(path, prefix string) (string, bool) {
	if prefix != "/" {
		if path != prefix && !strings.HasPrefix(path, prefix+"/") {
			return "", false
		}
		path = strings.TrimPrefix(path, prefix)
	}
	slug := site.NormalizeSlug(path)
	if slug == "" {
		slug = "index"
	}
	return slug, true
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}
