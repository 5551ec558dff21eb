package producttype

import (
	"reflect"

	"sync-actions/core/diff"
	"sync-actions/core/reconcile"
	"sync-actions/core/utils"
)

const enumKeyField = "key"

// EnumActions builds the actions that turn the values of the previous
// attribute type into the values of the next one. node is the delta of the
// type's "values" field.
//
// Per-value removals collapse into one trailing removeEnumValues action and
// reorders collapse into one change*Order action carrying the full next
// values. Collapsed actions always follow the per-value ones, order first.
func EnumActions(attributeName string, node reconcile.Node, previous, next map[string]any) ([]reconcile.UpdateAction, error) {
	prevValues := reconcile.List(previous, fieldValues)
	nextValues := reconcile.List(next, fieldValues)

	delta, err := reconcile.ArrayDelta(node, prevValues, nextValues, diff.WithObjectHash(diff.HashByField(enumKeyField)))
	if err != nil {
		return nil, err
	}

	typeName, _ := previous[fieldName].(string)
	if typeName == "" {
		typeName, _ = next[fieldName].(string)
	}
	vocab := vocabularyFor(typeName)

	nextByKey := make(map[string]map[string]any, len(nextValues))
	for _, v := range nextValues {
		if key, ok := enumKey(v); ok {
			nextByKey[key] = v.(map[string]any)
		}
	}

	newAction := func(name string) reconcile.UpdateAction {
		return reconcile.NewAction(name).With(fieldAttributeName, attributeName)
	}

	raw := reconcile.ArrayActions(delta, prevValues, nextValues, reconcile.ArrayConfig{
		KeyField: enumKeyField,
		Add: func(value any) []reconcile.UpdateAction {
			return []reconcile.UpdateAction{newAction(vocab.add).With(fieldValue, value)}
		},
		Change: func(oldValue, newValue any) []reconcile.UpdateAction {
			oldKey, _ := enumKey(oldValue)
			if inNext, found := nextByKey[oldKey]; found {
				if !reflect.DeepEqual(label(oldValue), inNext["label"]) {
					return []reconcile.UpdateAction{newAction(vocab.changeLabel).With(fieldNewValue, newValue)}
				}
				return []reconcile.UpdateAction{newAction(vocab.changeOrder).With(fieldValue, newValue)}
			}
			return []reconcile.UpdateAction{
				newAction(ActionRemoveEnumValue).With(fieldValue, oldValue),
				newAction(vocab.add).With(fieldValue, newValue),
			}
		},
		Remove: func(value any) []reconcile.UpdateAction {
			return []reconcile.UpdateAction{newAction(ActionRemoveEnumValue).With(fieldValue, value)}
		},
	})

	var (
		actions      []reconcile.UpdateAction
		removedKeys  []string
		removed      = make(map[string]bool)
		addedKeys    []string
		orderChanged bool
	)
	for _, action := range raw {
		switch action.Name() {
		case ActionRemoveEnumValue:
			key, _ := enumKey(action[fieldValue])
			if !removed[key] {
				removed[key] = true
				removedKeys = append(removedKeys, key)
			}
		case vocab.changeOrder:
			orderChanged = true
		default:
			if action.Name() == vocab.add {
				if key, ok := enumKey(action[fieldValue]); ok {
					addedKeys = append(addedKeys, key)
				}
			}
			actions = append(actions, action)
		}
	}

	if !orderChanged {
		orderChanged = !sameKeys(replayKeys(prevValues, removed, addedKeys), nextValues)
	}
	if orderChanged {
		values := make([]any, len(nextValues))
		copy(values, nextValues)
		actions = append(actions, newAction(vocab.changeOrder).With(fieldValues, values))
	}
	if len(removedKeys) > 0 {
		actions = append(actions, newAction(ActionRemoveEnumValues).With(fieldKeys, removedKeys))
	}
	return actions, nil
}

// replayKeys returns the value keys after removals and appended additions.
func replayKeys(previous []any, removed map[string]bool, added []string) []string {
	keys := make([]string, 0, len(previous)+len(added))
	for _, v := range previous {
		if key, ok := enumKey(v); ok && !removed[key] {
			keys = append(keys, key)
		}
	}
	return append(keys, added...)
}

func sameKeys(keys []string, values []any) bool {
	if len(keys) != len(values) {
		return false
	}
	for i, v := range values {
		if key, _ := enumKey(v); key != keys[i] {
			return false
		}
	}
	return true
}

func enumKey(value any) (string, bool) {
	m, ok := value.(map[string]any)
	if !ok {
		return "", false
	}
	v, ok := m[enumKeyField]
	if !ok || v == nil {
		return "", false
	}
	return utils.ToString(v), true
}

func label(value any) any {
	m, _ := value.(map[string]any)
	return m["label"]
}
