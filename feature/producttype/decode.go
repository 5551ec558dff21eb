package producttype

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sync-actions/core/diff"

	"gopkg.in/yaml.v3"
)

// Snapshot formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FormatOf guesses a snapshot format from a file or object name.
func FormatOf(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses a product-type snapshot into a generic JSON document.
func Decode(data []byte, format string) (map[string]any, error) {
	var raw any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatJSON, "":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q", format)
	}

	doc, err := diff.NormalizeObject(raw)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return doc, nil
}

// DecodeFile reads and parses a snapshot file.
func DecodeFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, FormatOf(path))
}

// Encode renders a document in the given format.
func Encode(doc any, format string) ([]byte, error) {
	if format == FormatYAML {
		normalized, err := diff.Normalize(doc)
		if err != nil {
			return nil, err
		}
		return yaml.Marshal(normalized)
	}
	return json.MarshalIndent(doc, "", "  ")
}
