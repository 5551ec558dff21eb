package producttype

import (
	"fmt"

	"sync-actions/core/diff"
	"sync-actions/core/reconcile"
	"sync-actions/core/utils"
)

// attributeFieldActions maps attribute-level actions to the field they set
// and the payload field carrying the value.
var attributeFieldActions = map[string]reconcile.FieldAction{}

// baseFieldActions maps product-type actions to the field they set.
var baseFieldActions = map[string]reconcile.FieldAction{}

func init() {
	for _, d := range attributeDescriptors {
		attributeFieldActions[d.Action] = d
	}
	for _, d := range baseDescriptors {
		baseFieldActions[d.Action] = d
	}
}

// Apply replays actions against previous and returns the resulting
// document. previous is never modified.
func Apply(previous any, actions []reconcile.UpdateAction) (map[string]any, error) {
	doc, err := diff.NormalizeObject(previous)
	if err != nil {
		return nil, err
	}

	for i, action := range actions {
		if err := applyAction(doc, action); err != nil {
			return nil, fmt.Errorf("action %d (%s): %w", i, action.Name(), err)
		}
	}
	return doc, nil
}

func applyAction(doc map[string]any, action reconcile.UpdateAction) error {
	name := action.Name()

	if d, ok := baseFieldActions[name]; ok {
		setField(doc, d, action)
		return nil
	}
	if d, ok := attributeFieldActions[name]; ok {
		attribute, err := findAttribute(doc, action)
		if err != nil {
			return err
		}
		setField(attribute, d, action)
		return nil
	}

	switch name {
	case ActionAddAttributeDefinition:
		attribute, err := clonePayload(action, fieldAttribute)
		if err != nil {
			return err
		}
		doc[fieldAttributes] = append(reconcile.List(doc, fieldAttributes), attribute)
	case ActionRemoveAttributeDefinition:
		target := utils.ToString(action[fieldName])
		doc[fieldAttributes] = removeBy(reconcile.List(doc, fieldAttributes), attributeKeyField, map[string]bool{target: true})
	case ActionChangeAttributeOrder:
		order, ok := action[fieldAttributes].([]any)
		if !ok {
			return fmt.Errorf("%w: attributes must be a list", ErrInvalidAction)
		}
		doc[fieldAttributes] = reorder(reconcile.List(doc, fieldAttributes), attributeKeyField, order)
	case ActionAddPlainEnumValue, ActionAddLocalizedEnumValue:
		holder, err := enumHolder(doc, action)
		if err != nil {
			return err
		}
		value, err := clonePayload(action, fieldValue)
		if err != nil {
			return err
		}
		holder[fieldValues] = append(reconcile.List(holder, fieldValues), value)
	case ActionChangePlainEnumValueOrder, ActionChangeLocalizedEnumValueOrder:
		holder, err := enumHolder(doc, action)
		if err != nil {
			return err
		}
		order, ok := action[fieldValues].([]any)
		if !ok {
			return fmt.Errorf("%w: values must be a list", ErrInvalidAction)
		}
		holder[fieldValues] = reorder(reconcile.List(holder, fieldValues), enumKeyField, order)
	case ActionChangePlainEnumValueLabel, ActionChangeLocalizedEnumValueLabel:
		holder, err := enumHolder(doc, action)
		if err != nil {
			return err
		}
		newValue, err := clonePayload(action, fieldNewValue)
		if err != nil {
			return err
		}
		key, ok := enumKey(newValue)
		if !ok {
			return fmt.Errorf("%w: newValue has no key", ErrInvalidAction)
		}
		for _, v := range reconcile.List(holder, fieldValues) {
			if k, _ := enumKey(v); k == key {
				v.(map[string]any)["label"] = label(newValue)
				return nil
			}
		}
		return fmt.Errorf("%w: enum value %q not found", ErrInvalidAction, key)
	case ActionRemoveEnumValue:
		holder, err := enumHolder(doc, action)
		if err != nil {
			return err
		}
		key, ok := enumKey(action[fieldValue])
		if !ok {
			return fmt.Errorf("%w: value has no key", ErrInvalidAction)
		}
		holder[fieldValues] = removeBy(reconcile.List(holder, fieldValues), enumKeyField, map[string]bool{key: true})
	case ActionRemoveEnumValues:
		holder, err := enumHolder(doc, action)
		if err != nil {
			return err
		}
		keys := make(map[string]bool)
		switch list := action[fieldKeys].(type) {
		case []string:
			for _, k := range list {
				keys[k] = true
			}
		case []any:
			for _, k := range list {
				keys[utils.ToString(k)] = true
			}
		default:
			return fmt.Errorf("%w: keys must be a list", ErrInvalidAction)
		}
		holder[fieldValues] = removeBy(reconcile.List(holder, fieldValues), enumKeyField, keys)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return nil
}

// setField sets or unsets the field a descriptor covers.
func setField(obj map[string]any, d reconcile.FieldAction, action reconcile.UpdateAction) {
	payloadKey := d.ActionKey
	if payloadKey == "" {
		payloadKey = d.Key
	}
	value, ok := action[payloadKey]
	if !ok || value == nil {
		delete(obj, d.Key)
		return
	}
	if normalized, err := diff.Normalize(value); err == nil {
		value = normalized
	}
	obj[d.Key] = value
}

func findAttribute(doc map[string]any, action reconcile.UpdateAction) (map[string]any, error) {
	name := utils.ToString(action[fieldAttributeName])
	for _, item := range reconcile.List(doc, fieldAttributes) {
		if n, ok := attributeNameOf(item); ok && n == name {
			return item.(map[string]any), nil
		}
	}
	return nil, fmt.Errorf("%w: attribute %q not found", ErrInvalidAction, name)
}

// enumHolder returns the type object whose values an enum action targets:
// the attribute type itself or, for sets, its element type.
func enumHolder(doc map[string]any, action reconcile.UpdateAction) (map[string]any, error) {
	attribute, err := findAttribute(doc, action)
	if err != nil {
		return nil, err
	}
	t := reconcile.ObjectField(attribute, "type")
	for t != nil {
		if _, ok := t[fieldValues]; ok {
			return t, nil
		}
		typeName, _ := t[fieldName].(string)
		if typeName == "enum" || typeName == "lenum" {
			return t, nil
		}
		t = reconcile.ObjectField(t, "elementType")
	}
	return nil, fmt.Errorf("%w: attribute %q has no enum values", ErrInvalidAction, action[fieldAttributeName])
}

func clonePayload(action reconcile.UpdateAction, field string) (map[string]any, error) {
	raw, ok := action[field]
	if !ok {
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidAction, field)
	}
	m, err := diff.NormalizeObject(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidAction, field, err)
	}
	return m, nil
}

func removeBy(items []any, field string, targets map[string]bool) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok && m[field] != nil && targets[utils.ToString(m[field])] {
			continue
		}
		out = append(out, item)
	}
	return out
}

// reorder puts the items named in order first, in that order, and keeps
// the remaining items after them in their current order. order entries are
// either objects carrying field or bare identities.
func reorder(items []any, field string, order []any) []any {
	byID := make(map[string]any, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok && m[field] != nil {
			byID[utils.ToString(m[field])] = item
		}
	}

	out := make([]any, 0, len(items))
	placed := make(map[string]bool, len(order))
	for _, o := range order {
		id := utils.ToString(o)
		if m, ok := o.(map[string]any); ok {
			id = utils.ToString(m[field])
		}
		if item, ok := byID[id]; ok && !placed[id] {
			placed[id] = true
			out = append(out, item)
		}
	}
	for _, item := range items {
		if m, ok := item.(map[string]any); ok && m[field] != nil && placed[utils.ToString(m[field])] {
			continue
		}
		out = append(out, item)
	}
	return out
}
