package models

import "time"

// PlanRecord is a computed action list persisted for later inspection.
type PlanRecord struct {
	// ID is a UUID assigned when the plan is recorded.
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// ProductTypeKey is the key (or name) of the next snapshot.
	ProductTypeKey string `gorm:"size:255;index" json:"product_type_key"`

	// PreviousSnapshot is the storage object the previous snapshot came from.
	PreviousSnapshot string `gorm:"size:512" json:"previous_snapshot"`

	// NextSnapshot is the storage object the next snapshot came from.
	NextSnapshot string `gorm:"size:512" json:"next_snapshot"`

	// ActionCount is the number of actions in the plan.
	ActionCount int `json:"action_count"`

	// Actions holds the JSON encoded action list.
	Actions string `gorm:"type:text" json:"actions"`

	// CreatedAt is set by gorm on insert.
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the gorm table name.
func (PlanRecord) TableName() string {
	return "sync_plans"
}
