// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/antoniszymanski/directus-typegen-go/cmd/directus-typegen/config"
)

type cmdInit struct {
	Path       string `arg:"" default:"directus-typegen.jsonc" help:"Configuration file, \"-\" for standard output."`
	SchemaPath string `arg:"" default:"directus-typegen.schema.json" help:"JSON Schema file referenced by the configuration."`
	NoSchema   bool   `short:"S" help:"Neither write nor reference the JSON Schema."`
}

func (c *cmdInit) Run(kctx *kong.Context) error {
	var w io.Writer
	schemaRef := c.SchemaPath
	if c.Path != "-" {
		dir := filepath.Dir(c.Path)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return err
		}
		f, err := os.Create(c.Path)
		if err != nil {
			return err
		}
		defer f.Close() //nolint:errcheck
		w = f

		if relpath, err := filepath.Rel(dir, c.SchemaPath); err == nil {
			schemaRef = filepath.ToSlash(relpath)
		}
	} else {
		w = kctx.Stdout
	}

	cfg := config.Config{
		Host:     "http://localhost:8055",
		TypeName: "Collections",
		OutFile:  "directus.gen.ts",
	}
	if !c.NoSchema {
		cfg.Schema = schemaRef
		if err := writeFile(c.SchemaPath, []byte(config.Schema())); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(&cfg)
}
