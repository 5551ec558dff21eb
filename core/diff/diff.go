package diff

import (
	"reflect"
	"sort"
	"strconv"

	"sync-actions/core/utils"
)

// HashFunc returns the identity of an array item. When ok is false the item
// is matched by position.
type HashFunc func(item any, index int) (hash string, ok bool)

// IdentityFields are the object fields DefaultHash looks at, in order.
var IdentityFields = []string{"id", "name", "key", "url"}

// DefaultHash identifies objects by their id, name, key or url field.
func DefaultHash(item any, index int) (string, bool) {
	m, ok := item.(map[string]any)
	if !ok {
		return "", false
	}
	for _, field := range IdentityFields {
		if v, ok := m[field]; ok && v != nil {
			return utils.ToString(v), true
		}
	}
	return "", false
}

// HashByField identifies objects by a single field.
func HashByField(field string) HashFunc {
	return func(item any, index int) (string, bool) {
		m, ok := item.(map[string]any)
		if !ok {
			return "", false
		}
		v, ok := m[field]
		if !ok || v == nil {
			return "", false
		}
		return utils.ToString(v), true
	}
}

type options struct {
	hash HashFunc
}

// Option configures Diff.
type Option func(*options)

// WithObjectHash replaces DefaultHash.
func WithObjectHash(fn HashFunc) Option {
	return func(o *options) {
		o.hash = fn
	}
}

type differ struct {
	options
}

// Diff computes the delta between left and right. Both values are
// normalized first; values that cannot be encoded as JSON fail with
// ErrUnsupportedValue. A nil delta means the values are equal.
func Diff(left, right any, opts ...Option) (any, error) {
	o := options{hash: DefaultHash}
	for _, opt := range opts {
		opt(&o)
	}

	l, err := Normalize(left)
	if err != nil {
		return nil, err
	}
	r, err := Normalize(right)
	if err != nil {
		return nil, err
	}

	d := &differ{options: o}
	return d.diff(l, r), nil
}

func (d *differ) diff(left, right any) any {
	switch l := left.(type) {
	case map[string]any:
		if r, ok := right.(map[string]any); ok {
			if delta := d.objects(l, r); delta != nil {
				return delta
			}
			return nil
		}
	case []any:
		if r, ok := right.([]any); ok {
			if delta := d.arrays(l, r); delta != nil {
				return delta
			}
			return nil
		}
	}

	if reflect.DeepEqual(left, right) {
		return nil
	}
	return []any{left, right}
}

func (d *differ) objects(left, right map[string]any) *Delta {
	keys := make([]string, 0, len(left)+len(right))
	for k := range left {
		keys = append(keys, k)
	}
	for k := range right {
		if _, ok := left[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	delta := &Delta{}
	for _, k := range keys {
		lv, inLeft := left[k]
		rv, inRight := right[k]
		switch {
		case inLeft && inRight:
			if child := d.diff(lv, rv); child != nil {
				delta.add(k, child)
			}
		case inLeft:
			delta.add(k, []any{lv, RemovedMarker, RemovedMarker})
		default:
			delta.add(k, []any{rv})
		}
	}

	if len(delta.Entries) == 0 {
		return nil
	}
	return delta
}

// itemHash returns the identity of an array item, falling back to its
// position the way jsondiffpatch does.
func (d *differ) itemHash(item any, index int) string {
	if d.hash != nil {
		if h, ok := d.hash(item, index); ok {
			return h
		}
	}
	return "$$index:" + strconv.Itoa(index)
}

func (d *differ) match(left, right []any, i, j int) bool {
	l, r := left[i], right[j]
	if !isContainer(l) || !isContainer(r) {
		return reflect.DeepEqual(l, r)
	}
	return d.itemHash(l, i) == d.itemHash(r, j)
}

func isContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	}
	return false
}
