// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package typegen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/go-set/v3"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// CollectionPrefix marks the component schemas Directus generates for
// user-defined collections.
const CollectionPrefix = "Items"

// SchemaDefinition is a component schema describing a collection.
type SchemaDefinition struct {
	Type       string      `json:"type"`
	Properties *Properties `json:"properties"`
	Collection string      `json:"x-collection"`
}

// CollectionSchema is the JSON Schema derived from a [SchemaDefinition].
type CollectionSchema struct {
	Title                string      `json:"title"`
	Type                 string      `json:"type"`
	Properties           *Properties `json:"properties"`
	Required             []string    `json:"required"`
	AdditionalProperties bool        `json:"additionalProperties"`
	Collection           string      `json:"x-collection"`
}

type Collection struct {
	Name   string
	Schema CollectionSchema
}

// ValidateSchema checks that raw is a collection schema: an object of type
// "object" with a properties mapping, a string x-collection and, on every
// property, an optional boolean nullable.
func ValidateSchema(raw json.RawMessage) (*SchemaDefinition, error) {
	return validateSchema("schema", raw)
}

func validateSchema(field string, raw json.RawMessage) (*SchemaDefinition, error) {
	if err := collectionSchema.Validate(raw); err != nil {
		return nil, ValidationError{Field: field, Err: err}
	}
	var def SchemaDefinition
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, ValidationError{Field: field, Err: err}
	}
	if def.Properties == nil {
		def.Properties = orderedmap.New[string, *Schema]()
	}
	return &def, nil
}

// DeriveCollection builds the collection descriptor for def. A property is
// required only if its nullable flag is present and false.
func DeriveCollection(title string, def *SchemaDefinition) Collection {
	props := orderedmap.New[string, *Schema]()
	required := make([]string, 0)
	for pair := def.Properties.Oldest(); pair != nil; pair = pair.Next() {
		props.Set(pair.Key, pair.Value)
		if nullable := pair.Value.Nullable; nullable != nil && !*nullable {
			required = append(required, pair.Key)
		}
	}
	return Collection{
		Name: def.Collection,
		Schema: CollectionSchema{
			Title:                title,
			Type:                 def.Type,
			Properties:           props,
			Required:             required,
			AdditionalProperties: false,
			Collection:           def.Collection,
		},
	}
}

type document struct {
	Components struct {
		Schemas *orderedmap.OrderedMap[string, json.RawMessage] `json:"schemas"`
	} `json:"components"`
}

// ExtractCollections returns a descriptor for every collection schema in the
// OpenAPI document data, in document order.
func ExtractCollections(data []byte) ([]Collection, error) {
	if err := documentSchema.Validate(data); err != nil {
		return nil, ValidationError{Field: "document", Err: err}
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, ValidationError{Field: "document", Err: err}
	}

	collections := make([]Collection, 0)
	if doc.Components.Schemas == nil {
		return collections, nil
	}
	names := set.New[string](0)
	for pair := doc.Components.Schemas.Oldest(); pair != nil; pair = pair.Next() {
		title, ok := strings.CutPrefix(pair.Key, CollectionPrefix)
		if !ok {
			continue
		}
		field := "components.schemas." + pair.Key
		def, err := validateSchema(field, pair.Value)
		if err != nil {
			return nil, err
		}
		collection := DeriveCollection(title, def)
		if !names.Insert(collection.Name) {
			return nil, ValidationError{
				Field: field,
				Err:   fmt.Errorf("duplicate collection %q", collection.Name),
			}
		}
		collections = append(collections, collection)
	}
	return collections, nil
}
