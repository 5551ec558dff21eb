package reconcile

import (
	"errors"
	"fmt"
	"strings"
)

// Group values accepted by ActionGroup.
const (
	GroupAllow  = "allow"
	GroupIgnore = "ignore"
)

// ErrInvalidGroup is returned for group values other than allow or ignore.
var ErrInvalidGroup = errors.New("invalid action group")

// ActionGroup enables or disables one group of actions.
type ActionGroup struct {
	// Type is the group name (e.g., "base", "attributes").
	Type string `json:"type" mapstructure:"type"`

	// Group is either "allow" or "ignore".
	Group string `json:"group" mapstructure:"group"`
}

// GroupMapper runs build for groupType unless the group is disabled.
type GroupMapper func(groupType string, build func() ([]UpdateAction, error)) ([]UpdateAction, error)

// NewGroupMapper validates groups and returns a mapper over them.
// With no groups every type is allowed. Otherwise only types listed with
// "allow" run.
func NewGroupMapper(groups []ActionGroup) (GroupMapper, error) {
	byType := make(map[string]string, len(groups))
	for _, g := range groups {
		if g.Group != GroupAllow && g.Group != GroupIgnore {
			return nil, fmt.Errorf("%w: %q for %q, use %q or %q", ErrInvalidGroup, g.Group, g.Type, GroupAllow, GroupIgnore)
		}
		byType[g.Type] = g.Group
	}

	return func(groupType string, build func() ([]UpdateAction, error)) ([]UpdateAction, error) {
		if len(byType) == 0 {
			return build()
		}
		if byType[groupType] != GroupAllow {
			return nil, nil
		}
		return build()
	}, nil
}

// ParseGroups parses "type=group" pairs such as "attributes=ignore".
func ParseGroups(values []string) ([]ActionGroup, error) {
	groups := make([]ActionGroup, 0, len(values))
	for _, v := range values {
		typ, group, ok := strings.Cut(v, "=")
		if !ok || strings.TrimSpace(typ) == "" {
			return nil, fmt.Errorf("%w: %q is not type=group", ErrInvalidGroup, v)
		}
		groups = append(groups, ActionGroup{
			Type:  strings.TrimSpace(typ),
			Group: strings.ToLower(strings.TrimSpace(group)),
		})
	}
	return groups, nil
}
