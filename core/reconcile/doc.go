// Package reconcile turns structural deltas into ordered update actions.
//
// Given a previous and a next snapshot of an entity, the reconcile package
// provides the entity-agnostic building blocks that feature packages combine
// into a complete action builder:
//
//   - Classify: decodes a raw delta value into a tagged Node (added, removed,
//     changed, moved, nested object, nested array or ignored).
//   - BuildBaseActions: maps {action, key} descriptors onto scalar field changes.
//   - ArrayActions: reconciles two keyed lists into change, remove and add
//     events using identity lookup tables built in one pass.
//   - ExtractPair: resolves the previous and next items an array delta key
//     refers to.
//   - NewGroupMapper: enables or ignores whole action groups per call.
//   - BuildActions: normalizes both snapshots, diffs them and hands the delta
//     to a feature-specific mapper.
//
// # Actions
//
// An UpdateAction is a flat map with an "action" discriminator and
// action-specific payload fields. The order of a returned action list is
// significant: it is the traversal order of the delta, never re-sorted.
//
// # Usage
//
//	actions, err := reconcile.BuildActions(previous, next, func(d *diff.Delta, prev, next map[string]any) ([]reconcile.UpdateAction, error) {
//	    return reconcile.BuildBaseActions(descriptors, reconcile.Classify(d), prev, next, false), nil
//	})
//
// Everything in this package is pure computation over its inputs and is safe
// for concurrent use.
package reconcile
