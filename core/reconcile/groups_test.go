package reconcile_test

import (
	"testing"

	"sync-actions/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildOne() ([]reconcile.UpdateAction, error) {
	return []reconcile.UpdateAction{reconcile.NewAction("changeName")}, nil
}

func TestNewGroupMapper(t *testing.T) {
	tests := []struct {
		name   string
		groups []reconcile.ActionGroup
		typ    string
		want   int
	}{
		{name: "no groups allows everything", groups: nil, typ: "base", want: 1},
		{name: "allowed type runs", groups: []reconcile.ActionGroup{{Type: "base", Group: "allow"}}, typ: "base", want: 1},
		{name: "ignored type is skipped", groups: []reconcile.ActionGroup{{Type: "base", Group: "ignore"}}, typ: "base", want: 0},
		{name: "unlisted type is skipped", groups: []reconcile.ActionGroup{{Type: "attributes", Group: "allow"}}, typ: "base", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapper, err := reconcile.NewGroupMapper(tt.groups)
			require.NoError(t, err)

			got, err := mapper(tt.typ, buildOne)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestNewGroupMapper_InvalidGroup(t *testing.T) {
	_, err := reconcile.NewGroupMapper([]reconcile.ActionGroup{{Type: "base", Group: "maybe"}})
	assert.ErrorIs(t, err, reconcile.ErrInvalidGroup)
}

func TestParseGroups(t *testing.T) {
	groups, err := reconcile.ParseGroups([]string{"attributes=Ignore", " base = allow "})
	require.NoError(t, err)
	assert.Equal(t, []reconcile.ActionGroup{
		{Type: "attributes", Group: "ignore"},
		{Type: "base", Group: "allow"},
	}, groups)

	_, err = reconcile.ParseGroups([]string{"attributes"})
	assert.ErrorIs(t, err, reconcile.ErrInvalidGroup)

	_, err = reconcile.ParseGroups([]string{"=allow"})
	assert.ErrorIs(t, err, reconcile.ErrInvalidGroup)
}
