package reconcile

import (
	"sync-actions/core/diff"
	"sync-actions/core/utils"
)

// Kind identifies the shape of a decoded delta value.
type Kind int

const (
	// Ignored marks a value no builder understands (e.g., text diffs).
	Ignored Kind = iota
	// Added is a [new] leaf.
	Added
	// Changed is an [old, new] leaf.
	Changed
	// Removed is an [old, 0, 0] leaf.
	Removed
	// Moved is a ["", newIndex, 3] array reorder marker.
	Moved
	// Object is a nested object delta.
	Object
	// Array is a nested array delta.
	Array
)

var kindNames = map[Kind]string{
	Ignored: "ignored",
	Added:   "added",
	Changed: "changed",
	Removed: "removed",
	Moved:   "moved",
	Object:  "object",
	Array:   "array",
}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Node is a decoded delta value.
type Node struct {
	// Kind is the decoded shape.
	Kind Kind

	// Old is the previous value for Changed and Removed nodes.
	Old any

	// New is the next value for Added and Changed nodes.
	New any

	// To is the destination index of a Moved node.
	To int

	// Delta holds the nested delta of Object and Array nodes.
	Delta *diff.Delta
}

// Classify decodes a raw delta value. Values of unknown shape decode to an
// Ignored node, never to an error.
func Classify(v any) Node {
	switch value := v.(type) {
	case *diff.Delta:
		if value == nil {
			return Node{Kind: Ignored}
		}
		if value.Array {
			return Node{Kind: Array, Delta: value}
		}
		return Node{Kind: Object, Delta: value}
	case map[string]any:
		return Classify(diff.FromMap(value))
	case []any:
		return classifyLeaf(value)
	default:
		return Node{Kind: Ignored}
	}
}

func classifyLeaf(leaf []any) Node {
	switch len(leaf) {
	case 1:
		return Node{Kind: Added, New: leaf[0]}
	case 2:
		return Node{Kind: Changed, Old: leaf[0], New: leaf[1]}
	case 3:
		if !utils.IsNumber(leaf[2]) {
			return Node{Kind: Ignored}
		}
		switch utils.ToInt(leaf[2]) {
		case diff.RemovedMarker:
			return Node{Kind: Removed, Old: leaf[0]}
		case diff.MovedMarker:
			if !utils.IsNumber(leaf[1]) {
				return Node{Kind: Ignored}
			}
			return Node{Kind: Moved, To: utils.ToInt(leaf[1])}
		}
	}
	return Node{Kind: Ignored}
}

// DeltaValue returns the value a leaf node carries on the next side.
// Removed and nested nodes yield nil.
func (n Node) DeltaValue() any {
	switch n.Kind {
	case Added, Changed:
		return n.New
	default:
		return nil
	}
}

// IsLeaf reports whether the node is a leaf value rather than a nested delta.
func (n Node) IsLeaf() bool {
	switch n.Kind {
	case Added, Changed, Removed, Moved:
		return true
	default:
		return false
	}
}

// Field decodes the nested delta stored under name. It reports false when
// the node is not an object delta or does not touch name.
func (n Node) Field(name string) (Node, bool) {
	if n.Kind != Object {
		return Node{Kind: Ignored}, false
	}
	v, ok := n.Delta.Get(name)
	if !ok {
		return Node{Kind: Ignored}, false
	}
	return Classify(v), true
}

// Touches reports whether an object node has a delta for any of names.
func (n Node) Touches(names ...string) bool {
	if n.Kind != Object {
		return false
	}
	for _, name := range names {
		if n.Delta.Has(name) {
			return true
		}
	}
	return false
}

// IsChangedKey reports whether key addresses an added or changed array index.
func IsChangedKey(key string) bool {
	_, removed, ok := diff.ParseKey(key)
	return ok && !removed
}

// IsRemovedKey reports whether key addresses a removed or moved array index.
func IsRemovedKey(key string) bool {
	_, removed, ok := diff.ParseKey(key)
	return ok && removed
}
