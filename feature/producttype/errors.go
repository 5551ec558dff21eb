package producttype

import "errors"

var (
	// ErrUnknownAction is returned when applying an action outside the vocabulary.
	ErrUnknownAction = errors.New("unknown update action")
	// ErrInvalidAction is returned when an action payload or target is malformed.
	ErrInvalidAction = errors.New("invalid update action")
	// ErrPlanNotFound is returned when a recorded plan does not exist.
	ErrPlanNotFound = errors.New("plan not found")
	// ErrSnapshotNotFound is returned when a snapshot object does not exist.
	ErrSnapshotNotFound = errors.New("snapshot not found")
	// ErrPlansDisabled is returned when plan persistence is not configured.
	ErrPlansDisabled = errors.New("plan recording is disabled")
)
