// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package typegen

import (
	"bytes"
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Properties maps property names to their definitions in document order.
type Properties = orderedmap.OrderedMap[string, *Schema]

// Schema is an OpenAPI schema object. Only the keywords needed to derive a
// TypeScript type are decoded; the original JSON is kept so the schema is
// written back unchanged.
type Schema struct {
	Ref         string                                  `json:"$ref,omitzero"`
	Type        TypeSet                                 `json:"type,omitzero"`
	Format      string                                  `json:"format,omitzero"`
	Description string                                  `json:"description,omitzero"`
	Nullable    *bool                                   `json:"nullable,omitzero"`
	Enum        []any                                   `json:"enum,omitzero"`
	Items       *Schema                                 `json:"items,omitzero"`
	Properties  *orderedmap.OrderedMap[string, *Schema] `json:"properties,omitzero"`
	Required    []string                                `json:"required,omitzero"`
	OneOf       []*Schema                               `json:"oneOf,omitzero"`
	AnyOf       []*Schema                               `json:"anyOf,omitzero"`
	AllOf       []*Schema                               `json:"allOf,omitzero"`

	raw json.RawMessage
}

func (s *Schema) UnmarshalJSON(data []byte) error {
	type rawSchema Schema
	if err := json.Unmarshal(data, (*rawSchema)(s)); err != nil {
		return err
	}
	s.raw = bytes.Clone(data)
	return nil
}

func (s *Schema) MarshalJSON() ([]byte, error) {
	if s.raw != nil {
		return s.raw, nil
	}
	type rawSchema Schema
	return json.Marshal((*rawSchema)(s))
}

// IsNullable reports whether nullable is present and true.
func (s *Schema) IsNullable() bool {
	return s.Nullable != nil && *s.Nullable
}

// TypeSet holds the "type" keyword, which OpenAPI 3.0 writes as a string and
// OpenAPI 3.1 may write as an array.
type TypeSet []string

func (t *TypeSet) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = TypeSet{s}
		return nil
	}
	var ts []string
	if err := json.Unmarshal(data, &ts); err != nil {
		return err
	}
	*t = ts
	return nil
}

func (t TypeSet) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return json.Marshal(t[0])
	}
	return json.Marshal([]string(t))
}
