// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"

	"github.com/alecthomas/kong"
	"github.com/antoniszymanski/directus-typegen-go/cmd/directus-typegen/config"
	"github.com/invopop/jsonschema"
)

type cmdSchema struct {
	Path string `arg:"" default:"-" help:"Output file, \"-\" for standard output."`
}

func (c *cmdSchema) Run(kctx *kong.Context) error {
	var w io.Writer
	if c.Path != "-" {
		if err := os.MkdirAll(filepath.Dir(c.Path), 0750); err != nil {
			return err
		}
		f, err := os.Create(c.Path)
		if err != nil {
			return err
		}
		defer f.Close() //nolint:errcheck
		w = f
	} else {
		w = kctx.Stdout
	}

	r := jsonschema.Reflector{
		Anonymous:                  true,
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	schema := r.ReflectFromType(reflect.TypeFor[config.Config]())

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "\t")
	return enc.Encode(schema)
}
