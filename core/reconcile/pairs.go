package reconcile

import "sync-actions/core/diff"

// ExtractPair returns the previous and next items an array delta key refers
// to, using the path index built by diff.FindMatchingPairs. Either side is
// nil when the item does not exist there.
func ExtractPair(paths diff.Paths, key string, previous, next []any) (map[string]any, map[string]any) {
	pair, ok := paths[key]
	if !ok {
		index, removed, valid := diff.ParseKey(key)
		if !valid {
			return nil, nil
		}
		if removed {
			pair = diff.Pair{Old: index, New: -1}
		} else {
			pair = diff.Pair{Old: -1, New: index}
		}
	}
	return objectAt(previous, pair.Old), objectAt(next, pair.New)
}

func objectAt(items []any, index int) map[string]any {
	m, _ := itemAt(items, index).(map[string]any)
	return m
}
