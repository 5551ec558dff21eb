package diff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// arrayMarker is the entry jsondiffpatch uses to tag array deltas.
const arrayMarker = "_t"

// Entry is one keyed element of a Delta.
type Entry struct {
	Key   string
	Value any
}

// Delta is an object or array delta. Entries are kept in iteration order.
type Delta struct {
	// Array is true when the delta describes an array ("_t": "a").
	Array bool

	// Entries holds the per-key deltas. Values are either leaf arrays
	// ([]any) or nested *Delta values.
	Entries []Entry
}

// Len returns the number of entries.
func (d *Delta) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Entries)
}

// Get returns the delta stored under key.
func (d *Delta) Get(key string) (any, bool) {
	if d == nil {
		return nil, false
	}
	for _, e := range d.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present in the delta.
func (d *Delta) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Keys returns the entry keys in iteration order.
func (d *Delta) Keys() []string {
	keys := make([]string, 0, d.Len())
	if d == nil {
		return keys
	}
	for _, e := range d.Entries {
		keys = append(keys, e.Key)
	}
	return keys
}

func (d *Delta) add(key string, value any) {
	d.Entries = append(d.Entries, Entry{Key: key, Value: value})
}

// MarshalJSON writes the delta as a JSON object, preserving entry order.
func (d *Delta) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	if d.Array {
		buf.WriteString(`"_t":"a"`)
		first = false
	}
	for _, e := range d.Entries {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal delta entry %s: %w", e.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object delta, preserving key order. Nested
// objects become *Delta values, leaf arrays become []any.
func (d *Delta) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("delta must be a JSON object, got %v", tok)
	}

	d.Array = false
	d.Entries = nil

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected delta key %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("failed to decode delta entry %s: %w", key, err)
		}

		if key == arrayMarker {
			var marker string
			if err := json.Unmarshal(raw, &marker); err == nil && marker == "a" {
				d.Array = true
				continue
			}
		}

		value, err := Parse(raw)
		if err != nil {
			return fmt.Errorf("failed to decode delta entry %s: %w", key, err)
		}
		d.add(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	if !d.Array && indexKeys(d.Keys()) {
		d.Array = true
	}
	return nil
}

// Parse decodes a JSON delta. Objects become *Delta, everything else is
// decoded as a generic JSON value.
func Parse(data []byte) (any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		d := &Delta{}
		if err := d.UnmarshalJSON(trimmed); err != nil {
			return nil, err
		}
		return d, nil
	}

	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// FromMap converts a generic map delta (for example one decoded with
// encoding/json) into a *Delta. Nested maps are converted recursively and
// entries are ordered the same way Diff orders them.
func FromMap(m map[string]any) *Delta {
	d := &Delta{}
	marked := false
	if marker, ok := m[arrayMarker].(string); ok && marker == "a" {
		marked = true
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		if k == arrayMarker && marked {
			continue
		}
		keys = append(keys, k)
	}
	sortKeys(keys)
	d.Array = marked || indexKeys(keys)

	for _, k := range keys {
		v := m[k]
		if nested, ok := v.(map[string]any); ok {
			d.add(k, FromMap(nested))
			continue
		}
		d.add(k, v)
	}
	return d
}

// indexKeys reports whether keys is non-empty and every key is an array
// index ("3" or "_3"). Such a delta is an array delta even without "_t".
func indexKeys(keys []string) bool {
	if len(keys) == 0 {
		return false
	}
	for _, k := range keys {
		if _, _, ok := ParseKey(k); !ok {
			return false
		}
	}
	return true
}

// sortKeys orders delta keys: changed indexes ascending, then removed
// indexes ascending, then any other key lexically.
func sortKeys(keys []string) {
	rank := func(k string) (int, int) {
		if index, removed, ok := ParseKey(k); ok {
			if removed {
				return 1, index
			}
			return 0, index
		}
		return 2, 0
	}
	sort.SliceStable(keys, func(i, j int) bool {
		ri, ii := rank(keys[i])
		rj, ij := rank(keys[j])
		if ri != rj {
			return ri < rj
		}
		if ri == 2 {
			return keys[i] < keys[j]
		}
		return ii < ij
	})
}
