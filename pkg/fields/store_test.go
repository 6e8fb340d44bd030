package fields_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-faqschema/pkg/fields"
)

type label string

func (l label) String() string { return "label:" + string(l) }

func TestMapFieldNotFound(t *testing.T) {
	store := fields.NewMap()
	store.Set(1, fields.Question, "Q1")

	if _, err := store.Field(context.Background(), fields.Answer, 1); !errors.Is(err, fields.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.Field(context.Background(), fields.Question, 2); !errors.Is(err, fields.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown item, got %v", err)
	}

	got, err := store.Field(context.Background(), fields.Question, 1)
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	if got != "Q1" {
		t.Fatalf("expected Q1, got %#v", got)
	}
}

func TestText(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  string
		ok    bool
	}{
		{name: "string", value: "hello", want: "hello", ok: true},
		{name: "empty string", value: "", want: "", ok: true},
		{name: "bytes", value: []byte("raw"), want: "raw", ok: true},
		{name: "stringer", value: label("x"), want: "label:x", ok: true},
		{name: "int", value: 42, want: "42", ok: true},
		{name: "float", value: 1.5, want: "1.5", ok: true},
		{name: "bool", value: true, ok: false},
		{name: "nil", value: nil, ok: false},
		{name: "map", value: map[string]any{"a": 1}, ok: false},
		{name: "slice", value: []string{"a"}, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := fields.Text(tc.value)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("Text(%#v) = (%q, %v), want (%q, %v)", tc.value, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestEmpty(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "nil", value: nil, want: true},
		{name: "false", value: false, want: true},
		{name: "true", value: true, want: true},
		{name: "empty string", value: "", want: true},
		{name: "zero string", value: "0", want: true},
		{name: "zero int", value: 0, want: true},
		{name: "zero float", value: 0.0, want: true},
		{name: "negative zero float", value: -0.0, want: true},
		{name: "slice", value: []string{"a"}, want: true},
		{name: "text", value: "Q", want: false},
		{name: "zero prefixed text", value: "0.0", want: false},
		{name: "space", value: " ", want: false},
		{name: "int", value: 7, want: false},
		{name: "float", value: 0.5, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := fields.Empty(tc.value); got != tc.want {
				t.Fatalf("Empty(%#v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestLookupDegradesToEmpty(t *testing.T) {
	store := fields.NewMap()
	store.Set(1, fields.Question, []any{"not", "text"})
	store.Set(2, fields.Question, "Q2")
	store.Set(3, fields.Question, false)
	store.Set(4, fields.Question, "0")
	store.Set(5, fields.Question, 0)

	ctx := context.Background()
	if got := fields.Lookup(ctx, store, fields.Question, 1); got != "" {
		t.Fatalf("expected empty for composite value, got %q", got)
	}
	if got := fields.Lookup(ctx, store, fields.Question, 9); got != "" {
		t.Fatalf("expected empty for missing item, got %q", got)
	}
	for _, id := range []int64{3, 4, 5} {
		if got := fields.Lookup(ctx, store, fields.Question, id); got != "" {
			t.Fatalf("expected empty for item %d, got %q", id, got)
		}
	}
	if got := fields.Lookup(ctx, nil, fields.Question, 2); got != "" {
		t.Fatalf("expected empty for nil store, got %q", got)
	}
	if got := fields.Lookup(ctx, store, fields.Question, 2); got != "Q2" {
		t.Fatalf("expected Q2, got %q", got)
	}
}
