package dictionary

import (
	"bytes"
	"encoding/json"
)

// Result is the output of a projecting Fetch operation.
//
// It follows the collapsing convention of the dictionary-api clients this
// package is compatible with: when exactly one item was produced, Value and
// the JSON encoding yield that item alone instead of a one-element list.
// Two or more items yield the full list and zero items yield nil (JSON null).
//
// Callers that want a fixed shape should use Items, which never collapses.
type Result[T any] struct {
	items []T
}

// NewResult wraps items without copying them
func NewResult[T any](items []T) Result[T] {
	return Result[T]{items: items}
}

// Items returns every projected item, regardless of count
func (r Result[T]) Items() []T {
	return r.items
}

// Len returns the number of projected items
func (r Result[T]) Len() int {
	return len(r.items)
}

// Single returns the only item when the result collapses to one
func (r Result[T]) Single() (T, bool) {
	if len(r.items) == 1 {
		return r.items[0], true
	}
	var zero T
	return zero, false
}

// Value returns T for a single item, []T for two or more, nil for none
func (r Result[T]) Value() any {
	switch len(r.items) {
	case 0:
		return nil
	case 1:
		return r.items[0]
	default:
		return r.items
	}
}

// MarshalJSON encodes the collapsed Value
func (r Result[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Value())
}

// UnmarshalJSON accepts null, a bare item or a list
func (r *Result[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		r.items = nil
		return nil
	case len(data) > 0 && data[0] == '[':
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		r.items = items
		return nil
	default:
		var item T
		if err := json.Unmarshal(data, &item); err != nil {
			return err
		}
		r.items = []T{item}
		return nil
	}
}
