// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/antoniszymanski/directus-typegen-go/cmd/directus-typegen/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (stdout string) {
	t.Helper()
	var c cli
	var out, errOut bytes.Buffer
	parser, err := newParser(&c, kong.Writers(&out, &errOut))
	require.NoError(t, err)
	kctx, err := parser.Parse(args)
	require.NoError(t, err)
	require.NoError(t, kctx.Run())
	return out.String()
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf", "directus-typegen.jsonc")
	schemaPath := filepath.Join(dir, "directus-typegen.schema.json")
	runCLI(t, "init", path, schemaPath)

	f, err := os.Open(path) // #nosec G304
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck
	cfg, _, err := config.Parse(f)
	require.NoError(t, err)
	assert.Equal(t, "../directus-typegen.schema.json", cfg.Schema)
	assert.Equal(t, "http://localhost:8055", cfg.Host)
	assert.Equal(t, "Collections", cfg.TypeName)

	schema, err := os.ReadFile(schemaPath) // #nosec G304
	require.NoError(t, err)
	assert.Equal(t, config.Schema(), string(schema))
}

func TestInit_Stdout(t *testing.T) {
	out := runCLI(t, "init", "-", "--no-schema")
	cfg, _, err := config.Parse(bytes.NewReader([]byte(out)))
	require.NoError(t, err)
	assert.Empty(t, cfg.Schema)
	assert.Equal(t, "directus.gen.ts", cfg.OutFile)
}

func TestSchemaCommand(t *testing.T) {
	out := runCLI(t, "schema")
	assert.Contains(t, out, `"typeName"`)
	assert.Contains(t, out, `"additionalProperties": false`)
}
