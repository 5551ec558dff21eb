package diff

import "strconv"

// Marker values used in the third slot of a three element leaf.
const (
	// RemovedMarker tags [old, 0, 0] removals.
	RemovedMarker = 0
	// MovedMarker tags ["", newIndex, 3] array moves.
	MovedMarker = 3
)

// ParseKey decodes an array delta key. "12" yields (12, false, true) and
// "_12" yields (12, true, true). Any other key yields ok == false.
func ParseKey(key string) (index int, removed bool, ok bool) {
	digits := key
	if len(key) > 0 && key[0] == '_' {
		removed = true
		digits = key[1:]
	}
	if digits == "" {
		return 0, false, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false, false
	}
	return n, removed, true
}

// ChangedKey returns the delta key for an added or changed array index.
func ChangedKey(index int) string {
	return strconv.Itoa(index)
}

// RemovedKey returns the delta key for a removed or moved array index.
func RemovedKey(index int) string {
	return "_" + strconv.Itoa(index)
}
