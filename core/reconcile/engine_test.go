package reconcile_test

import (
	"errors"
	"testing"

	"sync-actions/core/diff"
	"sync-actions/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entity struct {
	Name string `json:"name"`
	Key  string `json:"key,omitempty"`
}

func baseMapper(delta *diff.Delta, previous, next map[string]any) ([]reconcile.UpdateAction, error) {
	return reconcile.BuildBaseActions(nameDescriptors, reconcile.Classify(delta), previous, next, false), nil
}

func TestBuildActions(t *testing.T) {
	actions, err := reconcile.BuildActions(entity{Name: "a"}, &entity{Name: "b", Key: "k"}, baseMapper)
	require.NoError(t, err)
	assert.Equal(t, []reconcile.UpdateAction{
		{"action": "changeName", "name": "b"},
		{"action": "setKey", "key": "k"},
	}, actions)
}

func TestBuildActions_Equal(t *testing.T) {
	called := false
	mapper := func(*diff.Delta, map[string]any, map[string]any) ([]reconcile.UpdateAction, error) {
		called = true
		return nil, nil
	}

	actions, err := reconcile.BuildActions(map[string]any{"name": "a"}, entity{Name: "a"}, mapper)
	require.NoError(t, err)
	assert.NotNil(t, actions)
	assert.Empty(t, actions)
	assert.False(t, called)
}

func TestBuildActions_MissingObject(t *testing.T) {
	var missing *entity

	_, err := reconcile.BuildActions(nil, entity{}, baseMapper)
	assert.ErrorIs(t, err, reconcile.ErrMissingObject)

	_, err = reconcile.BuildActions(entity{}, missing, baseMapper)
	assert.ErrorIs(t, err, reconcile.ErrMissingObject)
}

func TestBuildActions_Errors(t *testing.T) {
	_, err := reconcile.BuildActions(map[string]any{"fn": func() {}}, entity{}, baseMapper)
	assert.ErrorIs(t, err, diff.ErrUnsupportedValue)

	_, err = reconcile.BuildActions([]string{"not", "an", "object"}, entity{}, baseMapper)
	assert.ErrorIs(t, err, diff.ErrUnsupportedValue)

	boom := errors.New("boom")
	_, err = reconcile.BuildActions(entity{Name: "a"}, entity{Name: "b"}, func(*diff.Delta, map[string]any, map[string]any) ([]reconcile.UpdateAction, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestBuildActions_DoesNotMutateInputs(t *testing.T) {
	previous := map[string]any{"name": "a", "tags": []any{"x"}}
	next := map[string]any{"name": "b", "tags": []any{"y"}}

	_, err := reconcile.BuildActions(previous, next, func(_ *diff.Delta, p, n map[string]any) ([]reconcile.UpdateAction, error) {
		p["name"] = "mutated"
		n["tags"] = nil
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "a", previous["name"])
	assert.Equal(t, []any{"y"}, next["tags"])
}

func TestSummarize(t *testing.T) {
	summary := reconcile.Summarize([]reconcile.UpdateAction{
		reconcile.NewAction("setKey"),
		reconcile.NewAction("changeName"),
		reconcile.NewAction("setKey"),
	})

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, map[string]int{"setKey": 2, "changeName": 1}, summary.ByAction)
	assert.Equal(t, []string{"setKey", "changeName"}, summary.Actions)
	assert.Equal(t, []string{"changeName", "setKey"}, summary.SortedNames())
}

func TestUpdateAction_Name(t *testing.T) {
	assert.Equal(t, "", reconcile.UpdateAction{}.Name())
	assert.Equal(t, "x", reconcile.NewAction("x").Name())
}

func TestArrayDelta(t *testing.T) {
	next := []any{map[string]any{"key": "a"}, map[string]any{"key": "b"}}

	delta, err := reconcile.ArrayDelta(reconcile.Classify([]any{next}), nil, next)
	require.NoError(t, err)
	require.NotNil(t, delta)
	assert.True(t, delta.Array)
	assert.Equal(t, []string{"0", "1"}, delta.Keys())

	delta, err = reconcile.ArrayDelta(reconcile.Classify([]any{next, 0, 0}), next, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"_0", "_1"}, delta.Keys())

	nested := &diff.Delta{Array: true}
	delta, err = reconcile.ArrayDelta(reconcile.Classify(nested), nil, nil)
	require.NoError(t, err)
	assert.Same(t, nested, delta)

	delta, err = reconcile.ArrayDelta(reconcile.Classify("x"), nil, nil)
	require.NoError(t, err)
	assert.Nil(t, delta)
}

func TestListAndObject(t *testing.T) {
	doc := map[string]any{"items": []any{1.0}, "type": map[string]any{"name": "enum"}, "name": "x"}

	assert.Equal(t, []any{1.0}, reconcile.List(doc, "items"))
	assert.Nil(t, reconcile.List(doc, "name"))
	assert.Nil(t, reconcile.List(nil, "items"))
	assert.Equal(t, "enum", reconcile.ObjectField(doc, "type")["name"])
	assert.Nil(t, reconcile.ObjectField(doc, "items"))
}
