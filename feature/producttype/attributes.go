package producttype

import (
	"fmt"

	"sync-actions/core/diff"
	"sync-actions/core/reconcile"
	"sync-actions/core/utils"

	"go.uber.org/zap"
)

const attributeKeyField = "name"

// attributeBuilder accumulates the actions for one attributes delta.
type attributeBuilder struct {
	logger          *zap.Logger
	omitEmptyString bool
	previous        []any
	next            []any
	paths           diff.Paths

	actions      []reconcile.UpdateAction
	orderEmitted bool
}

// AttributeActions builds the actions for the attribute list. delta is the
// array delta of the "attributes" field, paths the index built from it by
// diff.FindMatchingPairs on attribute names. Actions follow the delta
// iteration order.
func AttributeActions(delta *diff.Delta, previous, next []any, paths diff.Paths, omitEmptyString bool, logger *zap.Logger) ([]reconcile.UpdateAction, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &attributeBuilder{
		logger:          logger,
		omitEmptyString: omitEmptyString,
		previous:        previous,
		next:            next,
		paths:           paths,
	}

	if delta == nil {
		return nil, nil
	}
	for _, e := range delta.Entries {
		if err := b.entry(e.Key, reconcile.Classify(e.Value)); err != nil {
			return nil, fmt.Errorf("attribute delta %q: %w", e.Key, err)
		}
	}
	b.ensureOrder()
	return b.actions, nil
}

func (b *attributeBuilder) entry(key string, node reconcile.Node) error {
	oldObj, newObj := reconcile.ExtractPair(b.paths, key, b.previous, b.next)

	switch {
	case reconcile.IsChangedKey(key):
		return b.changed(key, node, oldObj, newObj)
	case reconcile.IsRemovedKey(key):
		b.removed(key, node)
	default:
		b.ignore(key, node)
	}
	return nil
}

func (b *attributeBuilder) changed(key string, node reconcile.Node, oldObj, newObj map[string]any) error {
	if node.IsLeaf() {
		attribute, ok := node.DeltaValue().(map[string]any)
		if !ok || attribute[attributeKeyField] == nil {
			b.ignore(key, node)
			return nil
		}
		b.actions = append(b.actions, reconcile.NewAction(ActionAddAttributeDefinition).With(fieldAttribute, attribute))
		return nil
	}

	if node.Kind != reconcile.Object || oldObj == nil || newObj == nil {
		b.ignore(key, node)
		return nil
	}
	attributeName := oldObj[attributeKeyField]
	handled := false

	if node.Touches(attributeBaseFields...) {
		handled = true
		for _, action := range reconcile.BuildBaseActions(attributeDescriptors, node, oldObj, newObj, b.omitEmptyString) {
			b.actions = append(b.actions, action.With(fieldAttributeName, attributeName))
		}
	}

	if typeNode, ok := node.Field("type"); ok {
		enumActions, found, err := b.typeValues(utils.ToString(attributeName), typeNode, reconcile.ObjectField(oldObj, "type"), reconcile.ObjectField(newObj, "type"))
		if err != nil {
			return err
		}
		handled = handled || found
		b.actions = append(b.actions, enumActions...)
	}

	if !handled {
		b.ignore(key, node)
	}
	return nil
}

// typeValues builds enum actions for a type delta. Values are looked up on
// the type itself and then on a set's element type.
func (b *attributeBuilder) typeValues(attributeName string, typeNode reconcile.Node, oldType, newType map[string]any) ([]reconcile.UpdateAction, bool, error) {
	if valuesNode, ok := typeNode.Field(fieldValues); ok {
		actions, err := EnumActions(attributeName, valuesNode, oldType, newType)
		return actions, true, err
	}
	if elementNode, ok := typeNode.Field("elementType"); ok {
		return b.typeValues(attributeName, elementNode, reconcile.ObjectField(oldType, "elementType"), reconcile.ObjectField(newType, "elementType"))
	}
	return nil, false, nil
}

func (b *attributeBuilder) removed(key string, node reconcile.Node) {
	switch node.Kind {
	case reconcile.Moved:
		b.emitOrder()
	case reconcile.Removed:
		attribute, ok := node.Old.(map[string]any)
		if !ok || attribute[attributeKeyField] == nil {
			b.ignore(key, node)
			return
		}
		b.actions = append(b.actions, reconcile.NewAction(ActionRemoveAttributeDefinition).With(fieldName, attribute[attributeKeyField]))
	default:
		b.ignore(key, node)
	}
}

func (b *attributeBuilder) emitOrder() {
	if b.orderEmitted {
		return
	}
	b.orderEmitted = true
	attributes := make([]any, len(b.next))
	copy(attributes, b.next)
	b.actions = append(b.actions, reconcile.NewAction(ActionChangeAttributeOrder).With(fieldAttributes, attributes))
}

// ensureOrder appends changeAttributeOrder when additions and removals alone
// would not leave the attributes in the next order.
func (b *attributeBuilder) ensureOrder() {
	if b.orderEmitted {
		return
	}

	removed := make(map[string]bool)
	var added []string
	for _, a := range b.actions {
		switch a.Name() {
		case ActionRemoveAttributeDefinition:
			removed[utils.ToString(a[fieldName])] = true
		case ActionAddAttributeDefinition:
			if attribute, ok := a[fieldAttribute].(map[string]any); ok {
				added = append(added, utils.ToString(attribute[attributeKeyField]))
			}
		}
	}

	var replayed []string
	for _, item := range b.previous {
		if name, ok := attributeNameOf(item); ok && !removed[name] {
			replayed = append(replayed, name)
		}
	}
	replayed = append(replayed, added...)

	if len(replayed) != len(b.next) {
		b.emitOrder()
		return
	}
	for i, item := range b.next {
		if name, _ := attributeNameOf(item); name != replayed[i] {
			b.emitOrder()
			return
		}
	}
}

func (b *attributeBuilder) ignore(key string, node reconcile.Node) {
	b.logger.Debug("Ignoring attribute delta",
		zap.String("key", key),
		zap.Stringer("kind", node.Kind),
	)
}

func attributeNameOf(item any) (string, bool) {
	m, ok := item.(map[string]any)
	if !ok || m[attributeKeyField] == nil {
		return "", false
	}
	return utils.ToString(m[attributeKeyField]), true
}
