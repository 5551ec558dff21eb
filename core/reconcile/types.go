package reconcile

import "errors"

// ErrMissingObject is returned when either snapshot is missing.
var ErrMissingObject = errors.New("missing either previous or next object")

// ActionField is the discriminator field of every UpdateAction.
const ActionField = "action"

// UpdateAction represents one remotely applicable mutation. It is a flat map
// so payload field names can be configured per action.
type UpdateAction map[string]any

// NewAction creates an action with the given name.
func NewAction(name string) UpdateAction {
	return UpdateAction{ActionField: name}
}

// Name returns the action discriminator.
func (a UpdateAction) Name() string {
	name, _ := a[ActionField].(string)
	return name
}

// With sets a payload field and returns the action.
func (a UpdateAction) With(key string, value any) UpdateAction {
	a[key] = value
	return a
}

// UpdateRequest is the batched request body handed to the transport.
type UpdateRequest struct {
	// Version is the entity version the actions were computed against.
	Version int64 `json:"version"`

	// Actions contains the ordered update actions.
	Actions []UpdateAction `json:"actions"`
}

// FieldAction maps one field of an object onto the action that changes it.
type FieldAction struct {
	// Action is the update action name (e.g., "changeName").
	Action string

	// Key is the field name inside the object (e.g., "name").
	Key string

	// ActionKey is the payload field carrying the new value.
	// If empty, Key is used.
	ActionKey string
}

// Flatten concatenates nested action lists one level deep.
func Flatten(groups [][]UpdateAction) []UpdateAction {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	out := make([]UpdateAction, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
