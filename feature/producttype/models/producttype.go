package models

import (
	"errors"
	"fmt"

	"sync-actions/core/diff"

	"github.com/go-viper/mapstructure/v2"
)

// Attribute type names with enumerated values.
const (
	TypeEnum  = "enum"
	TypeLenum = "lenum"
	TypeSet   = "set"
)

// ErrInvalidProductType is returned by Validate.
var ErrInvalidProductType = errors.New("invalid product type")

// LocalizedString maps locales to text.
type LocalizedString map[string]string

// ProductType is a schema for products: base fields plus an ordered list
// of attribute definitions.
type ProductType struct {
	ID          string                `json:"id,omitempty"`
	Version     int64                 `json:"version,omitempty"`
	Key         string                `json:"key,omitempty"`
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Attributes  []AttributeDefinition `json:"attributes"`
}

// AttributeDefinition describes one attribute. Name is unique within a
// product type and immutable.
type AttributeDefinition struct {
	Name                string          `json:"name"`
	Label               LocalizedString `json:"label,omitempty"`
	IsRequired          bool            `json:"isRequired"`
	AttributeConstraint string          `json:"attributeConstraint,omitempty"`
	InputTip            LocalizedString `json:"inputTip,omitempty"`
	InputHint           string          `json:"inputHint,omitempty"`
	IsSearchable        bool            `json:"isSearchable"`
	Type                AttributeType   `json:"type"`
}

// AttributeType is the type of an attribute. Only enum and lenum carry
// values; set carries an element type. Other variants are opaque.
type AttributeType struct {
	Name            string         `json:"name"`
	Values          []EnumValue    `json:"values,omitempty"`
	ElementType     *AttributeType `json:"elementType,omitempty"`
	ReferenceTypeID string         `json:"referenceTypeId,omitempty"`
}

// EnumValue is one allowed value of an enum attribute. Label is a string
// for enum and a LocalizedString for lenum.
type EnumValue struct {
	Key   string `json:"key"`
	Label any    `json:"label"`
}

// HasValues reports whether the type carries enumerated values.
func (t AttributeType) HasValues() bool {
	return t.Name == TypeEnum || t.Name == TypeLenum
}

// Document converts the product type into its generic JSON document.
func (p ProductType) Document() (map[string]any, error) {
	return diff.NormalizeObject(p)
}

// FromDocument decodes a generic document into a ProductType.
func FromDocument(doc map[string]any) (*ProductType, error) {
	var p ProductType
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &p,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("decode product type: %w", err)
	}
	return &p, nil
}

// AttributeNames returns the attribute names in order.
func (p ProductType) AttributeNames() []string {
	names := make([]string, 0, len(p.Attributes))
	for _, a := range p.Attributes {
		names = append(names, a.Name)
	}
	return names
}

// Validate checks the identities the action builders rely on: attribute
// names and enum value keys must be present and unique.
func (p ProductType) Validate() error {
	seen := make(map[string]bool, len(p.Attributes))
	for i, name := range p.AttributeNames() {
		if name == "" {
			return fmt.Errorf("%w: attribute %d has no name", ErrInvalidProductType, i)
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate attribute %q", ErrInvalidProductType, name)
		}
		seen[name] = true
	}

	for _, a := range p.Attributes {
		if err := a.Type.validate(a.Name); err != nil {
			return err
		}
	}
	return nil
}

func (t AttributeType) validate(attribute string) error {
	if t.ElementType != nil {
		return t.ElementType.validate(attribute)
	}
	if !t.HasValues() {
		return nil
	}
	keys := make(map[string]bool, len(t.Values))
	for _, v := range t.Values {
		if v.Key == "" {
			return fmt.Errorf("%w: attribute %q has an enum value without key", ErrInvalidProductType, attribute)
		}
		if keys[v.Key] {
			return fmt.Errorf("%w: attribute %q has duplicate enum value %q", ErrInvalidProductType, attribute, v.Key)
		}
		keys[v.Key] = true
	}
	return nil
}
