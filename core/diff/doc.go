// Package diff computes structural deltas between two JSON-shaped values.
//
// The delta encoding is compatible with jsondiffpatch, which is what the
// update-action builders in core/reconcile and feature/producttype consume:
//
//	[new]            value added (object key or array index "i")
//	[old, new]       value replaced
//	[old, 0, 0]      value removed (array entries are keyed "_i")
//	["", j, 3]       array item originally at i moved to index j
//
// Nested objects and arrays produce a *Delta whose entries are kept in a
// stable iteration order: for arrays, changed indexes ascending followed by
// removed/moved indexes ascending; for objects, keys ascending.
//
// Array items are matched by identity using a HashFunc (id, name, key or url
// by default) and aligned with a longest-common-subsequence pass, so an item
// that changes position is reported as a move rather than a remove/add pair.
//
// # Usage
//
//	delta, err := diff.Diff(previous, next)
//	if err != nil {
//	    return err
//	}
//	if delta == nil {
//	    // nothing changed
//	}
package diff
