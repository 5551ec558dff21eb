package producttype

import (
	"encoding/json"
	"fmt"

	"sync-actions/core/diff"
	"sync-actions/core/reconcile"

	"go.uber.org/zap"
)

// Syncer computes product-type update actions.
type Syncer struct {
	logger          *zap.Logger
	omitEmptyString bool
}

// Option configures a Syncer.
type Option func(*Syncer)

// WithLogger sets the logger used for ignored delta shapes.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Syncer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithOmitEmptyString treats empty base-field strings as undefined.
func WithOmitEmptyString(omit bool) Option {
	return func(s *Syncer) {
		s.omitEmptyString = omit
	}
}

// NewSyncer creates a Syncer.
func NewSyncer(opts ...Option) *Syncer {
	s := &Syncer{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BuildActions diffs previous against next and returns the ordered update
// actions. Both snapshots may be typed (models.ProductType) or generic JSON
// documents. Groups optionally allow or ignore the "base" and "attributes"
// action groups.
func (s *Syncer) BuildActions(previous, next any, groups ...reconcile.ActionGroup) ([]reconcile.UpdateAction, error) {
	mapper, err := reconcile.NewGroupMapper(groups)
	if err != nil {
		return nil, err
	}
	return reconcile.BuildActions(previous, next, func(delta *diff.Delta, prev, nxt map[string]any) ([]reconcile.UpdateAction, error) {
		return s.mapActions(mapper, delta, prev, nxt)
	})
}

// BuildActionsFromDelta maps a pre-computed delta onto update actions.
// delta may be a *diff.Delta, a generic map or raw JSON. A nil delta means
// no change.
func (s *Syncer) BuildActionsFromDelta(delta any, previous, next any, groups ...reconcile.ActionGroup) ([]reconcile.UpdateAction, error) {
	mapper, err := reconcile.NewGroupMapper(groups)
	if err != nil {
		return nil, err
	}
	prev, nxt, err := reconcile.Prepare(previous, next)
	if err != nil {
		return nil, err
	}

	parsed, err := parseDelta(delta)
	if err != nil {
		return nil, err
	}
	if parsed == nil {
		return []reconcile.UpdateAction{}, nil
	}

	actions, err := s.mapActions(mapper, parsed, prev, nxt)
	if err != nil {
		return nil, err
	}
	if actions == nil {
		actions = []reconcile.UpdateAction{}
	}
	return actions, nil
}

func (s *Syncer) mapActions(mapper reconcile.GroupMapper, delta *diff.Delta, previous, next map[string]any) ([]reconcile.UpdateAction, error) {
	root := reconcile.Classify(delta)

	base, err := mapper(GroupBase, func() ([]reconcile.UpdateAction, error) {
		return BaseActions(root, previous, next, s.omitEmptyString), nil
	})
	if err != nil {
		return nil, err
	}

	attributes, err := mapper(GroupAttributes, func() ([]reconcile.UpdateAction, error) {
		return s.attributeActions(root, previous, next)
	})
	if err != nil {
		return nil, err
	}

	return append(base, attributes...), nil
}

func (s *Syncer) attributeActions(root reconcile.Node, previous, next map[string]any) ([]reconcile.UpdateAction, error) {
	node, ok := root.Field(fieldAttributes)
	if !ok {
		return nil, nil
	}

	prevAttributes := reconcile.List(previous, fieldAttributes)
	nextAttributes := reconcile.List(next, fieldAttributes)
	delta, err := reconcile.ArrayDelta(node, prevAttributes, nextAttributes)
	if err != nil {
		return nil, fmt.Errorf("diff attributes: %w", err)
	}
	if delta == nil {
		s.logger.Debug("Ignoring attributes delta", zap.Stringer("kind", node.Kind))
		return nil, nil
	}

	paths := diff.FindMatchingPairs(delta, prevAttributes, nextAttributes, attributeKeyField)
	return AttributeActions(delta, prevAttributes, nextAttributes, paths, s.omitEmptyString, s.logger)
}

func parseDelta(delta any) (*diff.Delta, error) {
	switch d := delta.(type) {
	case nil:
		return nil, nil
	case *diff.Delta:
		return d, nil
	case map[string]any:
		return diff.FromMap(d), nil
	case json.RawMessage:
		return parseDelta([]byte(d))
	case []byte:
		if len(d) == 0 || string(d) == "null" {
			return nil, nil
		}
		parsed, err := diff.Parse(d)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", diff.ErrUnsupportedValue, err)
		}
		return parseDelta(parsed)
	default:
		return nil, fmt.Errorf("%w: delta of type %T", diff.ErrUnsupportedValue, delta)
	}
}
