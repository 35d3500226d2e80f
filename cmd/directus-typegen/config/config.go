// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"io"

	jsonc "github.com/DisposaBoy/JsonConfigReader"
	"github.com/alecthomas/kong"
	"github.com/antoniszymanski/directus-typegen-go/typegen"
)

// DefaultPath is loaded when present in the working directory.
const DefaultPath = "directus-typegen.jsonc"

// Config mirrors the flags of the generate command. Keys are the flag names.
type Config struct {
	Schema string `json:"$schema,omitzero"`
	// Base URL of the Directus instance.
	Host string `json:"host,omitzero" jsonschema:"format=uri"`
	// Email of the user used to fetch the specification.
	Email string `json:"email,omitzero"`
	// Password of the user used to fetch the specification.
	Password string `json:"password,omitzero"`
	// Local OpenAPI document (JSON or YAML) used instead of fetching.
	SpecFile string `json:"specFile,omitzero" jsonschema:"minLength=1"`
	// Where to save the fetched specification.
	SpecOutFile string `json:"specOutFile,omitzero" jsonschema:"minLength=1"`
	// Name of the type listing every collection.
	TypeName string `json:"typeName,omitzero" jsonschema:"default=Collections,pattern=^[A-Za-z_$][A-Za-z0-9_$]*$"`
	// Output file, "-" for standard output.
	OutFile string `json:"outFile,omitzero" jsonschema:"minLength=1"`
	// Format the generated TypeScript.
	Format bool `json:"format,omitzero"`
	// Maximum number of collections compiled at once, 0 for no limit.
	Concurrency int `json:"concurrency,omitzero" jsonschema:"minimum=0"`
	// Log level.
	LogLevel string `json:"logLevel,omitzero" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
}

func (c *Config) UnmarshalJSON(data []byte) error {
	if err := compiledSchema.Validate(data); err != nil {
		return typegen.ValidationError{Field: "config", Err: err}
	}
	type RawConfig Config
	return json.Unmarshal(data, (*RawConfig)(c))
}

// Parse reads a JSONC configuration.
func Parse(r io.Reader) (*Config, []byte, error) {
	data, err := io.ReadAll(jsonc.New(r))
	if err != nil {
		return nil, nil, err
	}
	var cfg Config
	if err = json.Unmarshal(data, &cfg); err != nil {
		return nil, nil, err
	}
	return &cfg, data, nil
}

// Loader is a [kong.ConfigurationLoader] for JSONC configuration files.
func Loader(r io.Reader) (kong.Resolver, error) {
	_, data, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return kong.JSON(bytes.NewReader(data))
}

var compiledSchema = typegen.CompileSchema("memory:config.schema.json", schema)

func Schema() string {
	return schema
}

//go:generate go run ../internal/schemagen

//go:embed schema.json
var schema string
