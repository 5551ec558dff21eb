package models

import (
	"encoding/json"

	"sync-actions/core/reconcile"
)

// ActionsRequest asks for the actions between two inline snapshots.
type ActionsRequest struct {
	Previous map[string]any          `json:"previous"`
	Next     map[string]any          `json:"next"`
	Groups   []reconcile.ActionGroup `json:"groups,omitempty"`
}

// DeltaRequest asks for the actions described by a pre-computed delta.
type DeltaRequest struct {
	Previous map[string]any          `json:"previous"`
	Next     map[string]any          `json:"next"`
	Delta    json.RawMessage         `json:"delta"`
	Groups   []reconcile.ActionGroup `json:"groups,omitempty"`
}

// SnapshotActionsRequest names two stored snapshots to compare.
type SnapshotActionsRequest struct {
	Previous string                  `json:"previous"`
	Next     string                  `json:"next"`
	Groups   []reconcile.ActionGroup `json:"groups,omitempty"`
}

// ActionsResponse is the computed action list.
type ActionsResponse struct {
	// Actions is the ordered update action list.
	Actions []reconcile.UpdateAction `json:"actions"`

	// Summary counts the actions per name.
	Summary reconcile.PlanSummary `json:"summary"`

	// Verified is set when the actions were replayed against previous.
	Verified *bool `json:"verified,omitempty"`

	// PlanID is set when the plan was recorded.
	PlanID string `json:"plan_id,omitempty"`
}

// SnapshotReport is the result of a stored snapshot check.
type SnapshotReport struct {
	Total   int               `json:"total"`
	Valid   int               `json:"valid"`
	Invalid map[string]string `json:"invalid"`
}
