package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-faqschema/pkg/content"
	"github.com/goliatone/go-faqschema/pkg/fields"
)

// FAQ returns an item of type faq with the given id.
func FAQ(id int64) content.Item {
	return content.Item{ID: id, Type: content.TypeFAQ}
}

// Post returns an item of a non-FAQ type with the given id.
func Post(id int64) content.Item {
	return content.Item{ID: id, Type: "post"}
}

// FieldMap builds an in-memory field store from question/answer pairs keyed by
// item id. A missing key leaves the field absent.
func FieldMap(entries map[int64][2]string) *fields.Map {
	store := fields.NewMap()
	for id, qa := range entries {
		store.Set(id, fields.Question, qa[0])
		store.Set(id, fields.Answer, qa[1])
	}
	return store
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// CaptureOutput runs fn against a fresh buffer and returns what it wrote.
func CaptureOutput(t *testing.T, fn func(io.Writer)) string {
	t.Helper()

	var buf bytes.Buffer
	fn(&buf)
	return buf.String()
}

// FailingWriter is an io.Writer whose writes always fail.
type FailingWriter struct {
	Err error
}

func (w FailingWriter) Write([]byte) (int, error) {
	if w.Err != nil {
		return 0, w.Err
	}
	return 0, io.ErrClosedPipe
}
