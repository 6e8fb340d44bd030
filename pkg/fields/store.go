package fields

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
)

// Field names read by the FAQ emitter.
const (
	Question = "question"
	Answer   = "answer"
)

// ErrNotFound is returned when an item has no value for the requested field.
var ErrNotFound = errors.New("fields: not found")

// Store resolves a named field for an item.
type Store interface {
	Field(ctx context.Context, name string, id int64) (any, error)
}

// Map is an in-memory Store keyed by item id and field name.
type Map struct {
	mu     sync.RWMutex
	values map[int64]map[string]any
}

// Ensure Map implements the Store interface.
var _ Store = (*Map)(nil)

// NewMap creates an empty in-memory store.
func NewMap() *Map {
	return &Map{values: make(map[int64]map[string]any)}
}

// Set stores value under name for the given item, replacing any previous
// value.
func (m *Map) Set(id int64, name string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.values == nil {
		m.values = make(map[int64]map[string]any)
	}
	item, ok := m.values[id]
	if !ok {
		item = make(map[string]any)
		m.values[id] = item
	}
	item[name] = value
}

// Field implements Store.
func (m *Map) Field(_ context.Context, name string, id int64) (any, error) {
	if m == nil {
		return nil, ErrNotFound
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[id][name]
	if !ok {
		return nil, fmt.Errorf("fields: item %d field %q: %w", id, name, ErrNotFound)
	}
	return value, nil
}

// Text coerces a stored field value to text. Booleans, composite values and
// nil are not text and report false.
func Text(value any) (string, bool) {
	switch v := value.(type) {
	case nil, bool:
		return "", false
	case string:
		return v, true
	case []byte:
		return string(v), true
	case fmt.Stringer:
		return v.String(), true
	case int:
		return strconv.Itoa(v), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}

// Empty reports whether a stored value counts as unset: nil, false, "",
// "0", numeric zero and anything that is not text.
func Empty(value any) bool {
	text, ok := Text(value)
	if !ok || text == "" || text == "0" {
		return true
	}
	switch v := value.(type) {
	case float32:
		return v == 0
	case float64:
		return v == 0
	}
	return false
}

// Lookup fetches a field and coerces it to text. Missing fields, retrieval
// errors and empty values all yield an empty string.
func Lookup(ctx context.Context, store Store, name string, id int64) string {
	if store == nil {
		return ""
	}
	value, err := store.Field(ctx, name, id)
	if err != nil || Empty(value) {
		return ""
	}
	text, _ := Text(value)
	return text
}
