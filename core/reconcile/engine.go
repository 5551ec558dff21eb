package reconcile

import (
	"fmt"
	"reflect"

	"sync-actions/core/diff"
)

// Mapper turns the delta between two normalized snapshots into actions.
type Mapper func(delta *diff.Delta, previous, next map[string]any) ([]UpdateAction, error)

// Prepare normalizes previous and next into fresh JSON documents.
func Prepare(previous, next any) (map[string]any, map[string]any, error) {
	if isNil(previous) || isNil(next) {
		return nil, nil, ErrMissingObject
	}

	prevDoc, err := diff.NormalizeObject(previous)
	if err != nil {
		return nil, nil, fmt.Errorf("normalize previous: %w", err)
	}
	nextDoc, err := diff.NormalizeObject(next)
	if err != nil {
		return nil, nil, fmt.Errorf("normalize next: %w", err)
	}
	return prevDoc, nextDoc, nil
}

// BuildActions normalizes previous and next into JSON documents, diffs
// them and hands the delta to mapActions. Identical snapshots yield an
// empty list without calling mapActions.
func BuildActions(previous, next any, mapActions Mapper, opts ...diff.Option) ([]UpdateAction, error) {
	prevDoc, nextDoc, err := Prepare(previous, next)
	if err != nil {
		return nil, err
	}

	raw, err := diff.Diff(prevDoc, nextDoc, opts...)
	if err != nil {
		return nil, fmt.Errorf("diff snapshots: %w", err)
	}

	delta, ok := raw.(*diff.Delta)
	if !ok || delta.Len() == 0 {
		return []UpdateAction{}, nil
	}

	actions, err := mapActions(delta, prevDoc, nextDoc)
	if err != nil {
		return nil, err
	}
	if actions == nil {
		actions = []UpdateAction{}
	}
	return actions, nil
}

// ArrayDelta returns the array delta of a list field. A list that was added,
// removed or replaced wholesale is re-diffed item by item so callers always
// walk per-item entries.
func ArrayDelta(node Node, previous, next []any, opts ...diff.Option) (*diff.Delta, error) {
	switch node.Kind {
	case Array:
		return node.Delta, nil
	case Added, Changed, Removed:
		if previous == nil {
			previous = []any{}
		}
		if next == nil {
			next = []any{}
		}
		raw, err := diff.Diff(previous, next, opts...)
		if err != nil {
			return nil, err
		}
		delta, _ := raw.(*diff.Delta)
		return delta, nil
	default:
		return nil, nil
	}
}

// List returns obj[field] as a list, or nil.
func List(obj map[string]any, field string) []any {
	if obj == nil {
		return nil
	}
	items, _ := obj[field].([]any)
	return items
}

// ObjectField returns obj[field] as an object, or nil.
func ObjectField(obj map[string]any, field string) map[string]any {
	if obj == nil {
		return nil
	}
	m, _ := obj[field].(map[string]any)
	return m
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
