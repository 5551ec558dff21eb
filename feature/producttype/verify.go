package producttype

import (
	"fmt"

	"sync-actions/core/diff"
	"sync-actions/core/reconcile"
)

// unversionedFields are server managed and never touched by actions.
var unversionedFields = []string{"id", "version", "createdAt", "lastModifiedAt"}

// Verify replays actions against previous and reports whether the result
// matches next. Server managed fields, null values and empty lists are
// ignored in the comparison.
func Verify(previous, next any, actions []reconcile.UpdateAction) (bool, error) {
	applied, err := Apply(previous, actions)
	if err != nil {
		return false, err
	}
	expected, err := diff.NormalizeObject(next)
	if err != nil {
		return false, fmt.Errorf("normalize next: %w", err)
	}

	for _, f := range unversionedFields {
		delete(applied, f)
		delete(expected, f)
	}

	delta, err := diff.Diff(canonical(applied), canonical(expected))
	if err != nil {
		return false, err
	}
	return delta == nil, nil
}

// canonical drops null values and empty lists from objects.
func canonical(v any) any {
	switch value := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, item := range value {
			if item == nil {
				continue
			}
			if list, ok := item.([]any); ok && len(list) == 0 {
				continue
			}
			out[k] = canonical(item)
		}
		return out
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = canonical(item)
		}
		return out
	default:
		return v
	}
}
