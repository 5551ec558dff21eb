package reconcile_test

import (
	"testing"

	"sync-actions/core/diff"
	"sync-actions/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(key, label string) map[string]any {
	return map[string]any{"key": key, "label": label}
}

// recordingConfig turns every event into a marker action.
func recordingConfig() reconcile.ArrayConfig {
	keyOf := func(v any) any {
		m, _ := v.(map[string]any)
		return m["key"]
	}
	return reconcile.ArrayConfig{
		KeyField: "key",
		Add: func(next any) []reconcile.UpdateAction {
			return []reconcile.UpdateAction{reconcile.NewAction("add").With("key", keyOf(next))}
		},
		Change: func(previous, next any) []reconcile.UpdateAction {
			return []reconcile.UpdateAction{reconcile.NewAction("change").With("from", keyOf(previous)).With("to", keyOf(next))}
		},
		Remove: func(previous any) []reconcile.UpdateAction {
			return []reconcile.UpdateAction{reconcile.NewAction("remove").With("key", keyOf(previous))}
		},
	}
}

func arrayDelta(t *testing.T, previous, next []any) *diff.Delta {
	t.Helper()
	raw, err := diff.Diff(previous, next)
	require.NoError(t, err)
	delta, ok := raw.(*diff.Delta)
	require.True(t, ok)
	require.True(t, delta.Array)
	return delta
}

func TestArrayActions_BucketOrder(t *testing.T) {
	previous := []any{item("a", "A"), item("r", "R"), item("c", "C")}
	next := []any{item("a", "A2"), item("c", "C"), item("n", "N")}

	got := reconcile.ArrayActions(arrayDelta(t, previous, next), previous, next, recordingConfig())

	assert.Equal(t, []reconcile.UpdateAction{
		{"action": "change", "from": "a", "to": "a"},
		{"action": "remove", "key": "r"},
		{"action": "add", "key": "n"},
	}, got)
}

func TestArrayActions_Move(t *testing.T) {
	previous := []any{item("a", "A"), item("b", "B")}
	next := []any{item("b", "B"), item("a", "A")}

	got := reconcile.ArrayActions(arrayDelta(t, previous, next), previous, next, recordingConfig())

	require.Len(t, got, 1)
	assert.Equal(t, "change", got[0].Name())
	assert.Equal(t, got[0]["from"], got[0]["to"])
}

func TestArrayActions_MoveWithChangeIsReportedOnce(t *testing.T) {
	previous := []any{item("a", "A"), item("b", "B"), item("c", "C")}
	next := []any{item("c", "C2"), item("a", "A"), item("b", "B")}

	got := reconcile.ArrayActions(arrayDelta(t, previous, next), previous, next, recordingConfig())

	assert.Equal(t, []reconcile.UpdateAction{
		{"action": "change", "from": "c", "to": "c"},
	}, got)
}

func TestArrayActions_ChangedIdentityResolvesPrevious(t *testing.T) {
	previous := []any{item("old", "L")}
	next := []any{item("new", "L")}
	delta := &diff.Delta{Array: true, Entries: []diff.Entry{{
		Key: "0",
		Value: &diff.Delta{Entries: []diff.Entry{
			{Key: "key", Value: []any{"old", "new"}},
		}},
	}}}

	got := reconcile.ArrayActions(delta, previous, next, recordingConfig())

	assert.Equal(t, []reconcile.UpdateAction{{"action": "change", "from": "old", "to": "new"}}, got)
}

func TestArrayActions_ScalarItems(t *testing.T) {
	var events []string
	cfg := reconcile.ArrayConfig{
		Change: func(previous, next any) []reconcile.UpdateAction {
			events = append(events, previous.(string)+">"+next.(string))
			return nil
		},
		Add: func(next any) []reconcile.UpdateAction {
			events = append(events, "+"+next.(string))
			return nil
		},
	}
	delta := &diff.Delta{Array: true, Entries: []diff.Entry{
		{Key: "0", Value: []any{"x", "y"}},
		{Key: "1", Value: []any{"z"}},
	}}

	got := reconcile.ArrayActions(delta, []any{"x"}, []any{"y", "z"}, cfg)

	assert.Empty(t, got)
	assert.Equal(t, []string{"x>y", "+z"}, events)
}

func TestArrayActions_NilCallbacksAndDelta(t *testing.T) {
	previous := []any{item("a", "A")}
	next := []any{item("b", "B")}

	assert.Empty(t, reconcile.ArrayActions(arrayDelta(t, previous, next), previous, next, reconcile.ArrayConfig{KeyField: "key"}))
	assert.Nil(t, reconcile.ArrayActions(nil, previous, next, recordingConfig()))
}

func TestExtractPair(t *testing.T) {
	previous := []any{item("a", "A"), item("b", "B")}
	next := []any{item("b", "B2"), item("c", "C")}
	delta := arrayDelta(t, previous, next)
	paths := diff.FindMatchingPairs(delta, previous, next, "key")

	oldObj, newObj := reconcile.ExtractPair(paths, "0", previous, next)
	assert.Equal(t, item("b", "B"), oldObj)
	assert.Equal(t, item("b", "B2"), newObj)

	oldObj, newObj = reconcile.ExtractPair(paths, "_0", previous, next)
	assert.Equal(t, item("a", "A"), oldObj)
	assert.Nil(t, newObj)

	oldObj, newObj = reconcile.ExtractPair(paths, "1", previous, next)
	assert.Nil(t, oldObj)
	assert.Equal(t, item("c", "C"), newObj)

	oldObj, newObj = reconcile.ExtractPair(paths, "_t", previous, next)
	assert.Nil(t, oldObj)
	assert.Nil(t, newObj)
}

func TestFlatten(t *testing.T) {
	got := reconcile.Flatten([][]reconcile.UpdateAction{
		{reconcile.NewAction("a")},
		nil,
		{reconcile.NewAction("b"), reconcile.NewAction("c")},
	})
	require.Len(t, got, 3)
	assert.Equal(t, "c", got[2].Name())
}
