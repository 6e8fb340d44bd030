package pongo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-faqschema/pkg/content"
	"github.com/goliatone/go-faqschema/pkg/render/template/pongo"
	"github.com/goliatone/go-faqschema/pkg/testsupport"
)

func newEngine(t *testing.T, options ...pongo.Option) *pongo.Engine {
	t.Helper()

	options = append([]pongo.Option{pongo.WithFS(os.DirFS(filepath.Join("testdata", "templates")))}, options...)
	engine, err := pongo.New(options...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngineRenderTemplate(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "hello.golden"))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}

	again, err := engine.RenderTemplate("hello.tpl", map[string]any{"name": "Ada"})
	if err != nil || again != got {
		t.Fatalf("expected cached template with explicit extension to match, got %q, %v", again, err)
	}
}

func TestEnginePlainTextFilterAndNumbers(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.RenderTemplate("note", map[string]any{
		"name":  "Ada",
		"body":  "<p>Fish &amp; <em>chips</em></p>",
		"count": 3,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "note.golden"))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestEngineStructDataUsesJSONNames(t *testing.T) {
	dir := t.TempDir()
	body := "{% for item in items %}{{ item.id }}={{ item.title }};{% endfor %}"
	if err := os.WriteFile(filepath.Join(dir, "list.tpl"), []byte(body), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	engine, err := pongo.New(pongo.WithBaseDir(dir))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	data := struct {
		Items []content.Item `json:"items"`
	}{
		Items: []content.Item{{ID: 1, Type: "faq", Title: "First"}, {ID: 2, Type: "post", Title: "Second"}},
	}
	got, err := engine.RenderTemplate("list", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "1=First;2=Second;" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngineBaseDirOverridesFS(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hello.tpl"), []byte("Hi {{ name }}"), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	engine := newEngine(t, pongo.WithBaseDir(dir))

	got, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hi Ada" {
		t.Fatalf("expected override template, got %q", got)
	}

	// Templates missing from the directory still come from the FS.
	if _, err := engine.RenderTemplate("note", map[string]any{"name": "x"}); err != nil {
		t.Fatalf("fallback render: %v", err)
	}
}

func TestEngineErrors(t *testing.T) {
	if _, err := pongo.New(); err == nil {
		t.Fatalf("expected error without template source")
	}

	engine := newEngine(t)
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected missing template error")
	}
	if _, err := engine.RenderTemplate("hello", []string{"not", "an", "object"}); err == nil {
		t.Fatalf("expected error for non-object data")
	}
}
