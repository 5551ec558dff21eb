package reconcile

// BuildBaseActions maps scalar field changes of an object delta onto update
// actions. Descriptors are evaluated in order and only fields present in the
// delta produce an action.
//
// A field that becomes defined or changes yields {action, payloadKey: now}.
// A field that becomes undefined yields {action} alone, which unsets it.
// With omitEmptyString, "" on either side counts as undefined.
func BuildBaseActions(descriptors []FieldAction, node Node, previous, next map[string]any, omitEmptyString bool) []UpdateAction {
	if node.Kind != Object {
		return nil
	}

	var actions []UpdateAction
	for _, d := range descriptors {
		if !node.Delta.Has(d.Key) {
			continue
		}
		if action, ok := buildBaseAction(d, previous, next, omitEmptyString); ok {
			actions = append(actions, action)
		}
	}
	return actions
}

func buildBaseAction(d FieldAction, previous, next map[string]any, omitEmptyString bool) (UpdateAction, bool) {
	_, hadBefore := lookupField(previous, d.Key, omitEmptyString)
	now, hasNow := lookupField(next, d.Key, omitEmptyString)

	if !hadBefore && !hasNow {
		return nil, false
	}

	action := NewAction(d.Action)
	if !hasNow {
		return action, true
	}
	payloadKey := d.ActionKey
	if payloadKey == "" {
		payloadKey = d.Key
	}
	return action.With(payloadKey, now), true
}

func lookupField(obj map[string]any, key string, omitEmptyString bool) (any, bool) {
	if obj == nil {
		return nil, false
	}
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, false
	}
	if s, isString := v.(string); isString && omitEmptyString && s == "" {
		return nil, false
	}
	return v, true
}
