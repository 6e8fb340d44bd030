package faqschema_test

import (
	"io"
	"io/fs"
	"strings"
	"testing"

	faqschema "github.com/goliatone/go-faqschema"
	"github.com/goliatone/go-faqschema/pkg/content"
	"github.com/goliatone/go-faqschema/pkg/render"
	"github.com/goliatone/go-faqschema/pkg/testsupport"
)

func TestRegisterQuickStart(t *testing.T) {
	ctx := testsupport.Context()
	store := testsupport.FieldMap(map[int64][2]string{1: {"Q1", "A1"}})

	pipeline := render.NewPipeline()
	if _, err := faqschema.Register(pipeline, store, faqschema.WithPriority(200)); err != nil {
		t.Fatalf("register: %v", err)
	}

	cycle := pipeline.Begin(ctx)
	cycle.Results(ctx, []content.Item{testsupport.FAQ(1)})
	out := testsupport.CaptureOutput(t, func(w io.Writer) { cycle.Finish(ctx, w) })

	if !strings.Contains(out, `"mainEntity":[{"@type":"Question","name":"Q1","acceptedAnswer":{"@type":"Answer","text":"A1"}}]`) {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	if _, err := fs.Stat(faqschema.EmbeddedTemplates(), "page.tpl"); err != nil {
		t.Fatalf("expected page.tpl in embedded templates: %v", err)
	}
}
