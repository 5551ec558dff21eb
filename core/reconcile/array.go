package reconcile

import (
	"sync-actions/core/diff"
	"sync-actions/core/utils"
)

// ArrayConfig describes how one keyed list is turned into actions.
// Nil callbacks disable the corresponding event.
type ArrayConfig struct {
	// KeyField is the identity field of list items (e.g., "key").
	KeyField string

	// Add builds the actions for an item that only exists in next.
	Add func(next any) []UpdateAction

	// Change builds the actions for an item present on both sides.
	Change func(previous, next any) []UpdateAction

	// Remove builds the actions for an item that only exists in previous.
	Remove func(previous any) []UpdateAction
}

// identityIndex maps item identities to their position in a list.
type identityIndex map[string]int

func buildIdentityIndex(items []any, field string) identityIndex {
	index := make(identityIndex, len(items))
	for i, item := range items {
		if id, ok := identityOf(item, field); ok {
			index[id] = i
		}
	}
	return index
}

func identityOf(item any, field string) (string, bool) {
	m, ok := item.(map[string]any)
	if !ok || field == "" {
		return "", false
	}
	v, ok := m[field]
	if !ok || v == nil {
		return "", false
	}
	return utils.ToString(v), true
}

// ArrayActions walks an array delta once and reconciles previous against
// next. Items are matched by KeyField through lookup tables built up front.
// The result holds every change action, then every remove action, then
// every add action, each bucket in delta order.
func ArrayActions(delta *diff.Delta, previous, next []any, cfg ArrayConfig) []UpdateAction {
	if delta == nil {
		return nil
	}

	prevIndex := buildIdentityIndex(previous, cfg.KeyField)
	var changes, removes, adds []UpdateAction
	changed := make(map[string]bool)

	for _, e := range delta.Entries {
		index, removed, ok := diff.ParseKey(e.Key)
		if !ok {
			continue
		}
		node := Classify(e.Value)

		if !removed {
			switch node.Kind {
			case Added:
				if cfg.Add != nil {
					adds = append(adds, cfg.Add(itemAt(next, index))...)
				}
			case Object:
				if cfg.Change == nil {
					continue
				}
				newItem := itemAt(next, index)
				oldItem := resolvePrevious(node, newItem, previous, prevIndex, index, cfg.KeyField)
				markChanged(changed, oldItem, cfg.KeyField)
				changes = append(changes, cfg.Change(oldItem, newItem)...)
			case Changed:
				if cfg.Change == nil {
					continue
				}
				markChanged(changed, node.Old, cfg.KeyField)
				changes = append(changes, cfg.Change(node.Old, node.New)...)
			}
			continue
		}

		switch node.Kind {
		case Removed:
			if cfg.Remove != nil {
				removes = append(removes, cfg.Remove(itemAt(previous, index))...)
			}
		case Moved:
			if cfg.Change == nil {
				continue
			}
			oldItem := itemAt(previous, index)
			if id, ok := identityOf(oldItem, cfg.KeyField); ok && changed[id] {
				continue
			}
			markChanged(changed, oldItem, cfg.KeyField)
			changes = append(changes, cfg.Change(oldItem, itemAt(next, node.To))...)
		}
	}

	return Flatten([][]UpdateAction{changes, removes, adds})
}

// resolvePrevious finds the previous item a nested object delta refers to.
// A changed identity field is resolved through its old value.
func resolvePrevious(node Node, newItem any, previous []any, prevIndex identityIndex, index int, keyField string) any {
	if keyNode, ok := node.Field(keyField); ok && keyNode.Kind == Changed && keyNode.Old != nil {
		if pos, found := prevIndex[utils.ToString(keyNode.Old)]; found {
			return previous[pos]
		}
	}
	if id, ok := identityOf(newItem, keyField); ok {
		if pos, found := prevIndex[id]; found {
			return previous[pos]
		}
	}
	return itemAt(previous, index)
}

func markChanged(changed map[string]bool, item any, keyField string) {
	if id, ok := identityOf(item, keyField); ok {
		changed[id] = true
	}
}

func itemAt(items []any, index int) any {
	if index < 0 || index >= len(items) {
		return nil
	}
	return items[index]
}
