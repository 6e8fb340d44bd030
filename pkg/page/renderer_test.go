package page_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-faqschema/pkg/faq"
	"github.com/goliatone/go-faqschema/pkg/fields"
	"github.com/goliatone/go-faqschema/pkg/jsonld"
	"github.com/goliatone/go-faqschema/pkg/page"
	"github.com/goliatone/go-faqschema/pkg/render"
	"github.com/goliatone/go-faqschema/pkg/site"
	"github.com/goliatone/go-faqschema/pkg/testsupport"
)

const (
	startMarker = "<!-- FAQ Schema Markup Start -->"
	endMarker   = "<!-- FAQ Schema Markup End -->"
	scriptOpen  = `<script type="application/ld+json">`
)

func newRenderer(t *testing.T) *page.Renderer {
	t.Helper()

	s, err := site.LoadFile(filepath.Join("testdata", "site.yaml"))
	if err != nil {
		t.Fatalf("load site: %v", err)
	}
	store := fields.NewMap()
	s.SeedFields(store)

	pipeline := render.NewPipeline()
	if _, err := faq.Register(pipeline, store); err != nil {
		t.Fatalf("register faq: %v", err)
	}

	r, err := page.NewRenderer(s, pipeline)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func schemaNames(t *testing.T, out string) []string {
	t.Helper()

	if strings.Count(out, startMarker) != 1 || strings.Count(out, endMarker) != 1 {
		t.Fatalf("expected exactly one faq block in %q", out)
	}
	start := strings.Index(out, scriptOpen) + len(scriptOpen)
	end := strings.Index(out[start:], "</script>")
	if start < len(scriptOpen) || end < 0 {
		t.Fatalf("script element not found in %q", out)
	}

	var doc jsonld.FAQPage
	if err := json.Unmarshal([]byte(out[start:start+end]), &doc); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	names := make([]string, 0, len(doc.MainEntity))
	for _, q := range doc.MainEntity {
		names = append(names, q.Name)
	}
	return names
}

func TestRenderPageAggregatesAcrossQueries(t *testing.T) {
	r := newRenderer(t)

	out, err := r.RenderPage(testsupport.Context(), "help")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	want := []string{
		"Can I return an item?",
		"How long does shipping take?",
		"Which cards do you accept?",
	}
	if diff := cmp.Diff(want, schemaNames(t, html)); diff != "" {
		t.Fatalf("mainEntity mismatch (-want +got):\n%s", diff)
	}

	for _, fragment := range []string{
		"<title>Help | Acme Help Center</title>",
		`<section data-query="news">`,
		`<li data-type="post">Spring launch</li>`,
		`<li data-type="faq">Draft question</li>`,
	} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected %q in page output:\n%s", fragment, html)
		}
	}

	if main, footer := strings.Index(html, "</main>"), strings.Index(html, startMarker); footer < main {
		t.Fatalf("expected faq block after main content")
	}
}

func TestRenderPageWithoutFAQsHasNoBlock(t *testing.T) {
	r := newRenderer(t)

	var buf bytes.Buffer
	if err := r.Render(testsupport.Context(), "/", &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(buf.String(), "FAQ Schema Markup") {
		t.Fatalf("expected no faq block on the home page:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "<footer></footer>") {
		t.Fatalf("expected empty footer:\n%s", buf.String())
	}
}

func TestFooterIsPerRequest(t *testing.T) {
	r := newRenderer(t)
	ctx := testsupport.Context()

	help, err := r.Footer(ctx, "help")
	if err != nil {
		t.Fatalf("footer help: %v", err)
	}
	checkout, err := r.Footer(ctx, "checkout")
	if err != nil {
		t.Fatalf("footer checkout: %v", err)
	}

	if len(schemaNames(t, help)) != 3 {
		t.Fatalf("expected three entries for help, got %q", help)
	}
	if diff := cmp.Diff([]string{"Which cards do you accept?"}, schemaNames(t, checkout)); diff != "" {
		t.Fatalf("checkout leaked entries (-want +got):\n%s", diff)
	}
	if !strings.HasPrefix(checkout, "\n"+startMarker+"\n"+scriptOpen) || !strings.HasSuffix(checkout, "</script>\n"+endMarker+"\n") {
		t.Fatalf("unexpected block framing %q", checkout)
	}
}

func TestRenderErrors(t *testing.T) {
	r := newRenderer(t)
	ctx := testsupport.Context()

	if _, err := r.RenderPage(ctx, "missing"); !errors.Is(err, site.ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
	if err := r.Render(ctx, "help", testsupport.FailingWriter{}); err == nil {
		t.Fatalf("expected write error")
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := r.RenderPage(cancelled, "help"); err == nil {
		t.Fatalf("expected cancelled context to fail the query")
	}

	if _, err := page.NewRenderer(nil, nil); err == nil {
		t.Fatalf("expected error without site")
	}
}

func TestRenderPageStripsMarkupFromTitles(t *testing.T) {
	s, err := site.Parse([]byte(`
name: Docs
items:
  - { id: 1, type: post, title: "<em>New</em> &amp; improved" }
pages:
  - slug: news
    title: News
    queries:
      - { name: latest, type: post }
`), "inline")
	if err != nil {
		t.Fatalf("parse site: %v", err)
	}
	r, err := page.NewRenderer(s, nil)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.RenderPage(testsupport.Context(), "news")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), `<li data-type="post">New &amp; improved</li>`) {
		t.Fatalf("expected plain text title in:\n%s", out)
	}
}
