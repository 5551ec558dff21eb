package producttype

import "sync-actions/core/reconcile"

// BaseActions builds changeName, setKey and changeDescription actions from
// the top-level delta node.
func BaseActions(node reconcile.Node, previous, next map[string]any, omitEmptyString bool) []reconcile.UpdateAction {
	return reconcile.BuildBaseActions(baseDescriptors, node, previous, next, omitEmptyString)
}
