package diff

import "sync-actions/core/utils"

// Pair holds the previous and next array positions an array delta key
// refers to. A position of -1 means the item is absent on that side.
type Pair struct {
	Old int
	New int
}

// Paths maps array delta keys to the positions they refer to.
type Paths map[string]Pair

// FindMatchingPairs resolves every key of an array delta to the matching
// item positions in before and after, joining the two sides on identifier.
// A changed key "i" always points at after[i]; a removed key "_i" always
// points at before[i].
func FindMatchingPairs(delta *Delta, before, after []any, identifier string) Paths {
	beforeByIndex, beforeByID := indexCollection(before, identifier)
	afterByIndex, afterByID := indexCollection(after, identifier)

	paths := make(Paths, delta.Len())
	if delta == nil {
		return paths
	}

	for _, e := range delta.Entries {
		index, removed, ok := ParseKey(e.Key)
		if !ok {
			continue
		}

		if removed {
			pair := Pair{Old: index, New: -1}
			if id, ok := beforeByIndex[index]; ok {
				if pos, ok := afterByID[id]; ok {
					pair.New = pos
				}
			}
			paths[e.Key] = pair
			continue
		}

		pair := Pair{Old: -1, New: index}
		if id, ok := afterByIndex[index]; ok {
			if pos, ok := beforeByID[id]; ok {
				pair.Old = pos
			}
		}
		paths[e.Key] = pair
	}
	return paths
}

func indexCollection(items []any, identifier string) (map[int]string, map[string]int) {
	byIndex := make(map[int]string, len(items))
	byID := make(map[string]int, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		v, ok := m[identifier]
		if !ok || v == nil {
			continue
		}
		id := utils.ToString(v)
		byIndex[i] = id
		byID[id] = i
	}
	return byIndex, byID
}
