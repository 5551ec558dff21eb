package diff

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnsupportedValue is returned when a value cannot be represented as JSON.
var ErrUnsupportedValue = errors.New("unsupported value")

// Normalize converts v into its generic JSON shape: map[string]any, []any,
// string, float64, bool or nil. Typed structs are converted through their
// JSON encoding, so struct tags decide field names.
func Normalize(v any) (any, error) {
	switch v.(type) {
	case nil, string, bool, float64:
		return v, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedValue, err)
	}

	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedValue, err)
	}
	return out, nil
}

// NormalizeObject is Normalize for values that must be JSON objects.
func NormalizeObject(v any) (map[string]any, error) {
	out, err := Normalize(v)
	if err != nil {
		return nil, err
	}
	m, ok := out.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected an object, got %T", ErrUnsupportedValue, out)
	}
	return m, nil
}
