// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package typegen

import (
	"bytes"
	_ "embed"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaLoader returns a JSON Schema compiled on first use.
type SchemaLoader func() (*jsonschema.Schema, error)

// CompileSchema returns a loader compiling source, registered under url, once.
func CompileSchema(url, source string) SchemaLoader {
	return sync.OnceValues(func() (*jsonschema.Schema, error) {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(source))
		if err != nil {
			return nil, err
		}
		compiler := jsonschema.NewCompiler()
		if err = compiler.AddResource(url, doc); err != nil {
			return nil, err
		}
		return compiler.Compile(url)
	})
}

// Validate parses data as JSON and validates it against the compiled schema.
func (l SchemaLoader) Validate(data []byte) error {
	sch, err := l()
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	return sch.Validate(inst)
}

//go:embed schemas/document.schema.json
var documentSchemaSource string

//go:embed schemas/collection.schema.json
var collectionSchemaSource string

var (
	documentSchema   = CompileSchema("memory:document.schema.json", documentSchemaSource)
	collectionSchema = CompileSchema("memory:collection.schema.json", collectionSchemaSource)
)
