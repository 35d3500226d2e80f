// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/antoniszymanski/directus-typegen-go/cmd/directus-typegen/internal"
	"github.com/antoniszymanski/directus-typegen-go/directus"
	"github.com/antoniszymanski/directus-typegen-go/typegen"
	"github.com/antoniszymanski/sanefmt-go"
	"github.com/rs/zerolog"
)

type cmdGenerate struct {
	Host        string `name:"host" env:"DIRECTUS_HOST" placeholder:"URL" help:"Base URL of the Directus instance."`
	Email       string `name:"email" env:"DIRECTUS_EMAIL" help:"Email of the user used to fetch the specification."`
	Password    string `name:"password" env:"DIRECTUS_PASSWORD" help:"Password of the user used to fetch the specification."`
	SpecFile    string `name:"specFile" type:"path" help:"Local OpenAPI document (JSON or YAML) used instead of fetching."`
	SpecOutFile string `name:"specOutFile" type:"path" help:"Where to save the fetched specification."`
	TypeName    string `name:"typeName" default:"Collections" help:"Name of the type listing every collection."`
	OutFile     string `name:"outFile" default:"-" help:"Output file, \"-\" for standard output."`
	Format      bool   `name:"format" help:"Format the generated TypeScript."`
	Concurrency int    `name:"concurrency" default:"0" help:"Maximum number of collections compiled at once, 0 for no limit."`
}

func (c *cmdGenerate) Run(ctx context.Context, kctx *kong.Context, log zerolog.Logger) error {
	return c.run(ctx, log, kctx.Stdout)
}

func (c *cmdGenerate) run(ctx context.Context, log zerolog.Logger, stdout io.Writer) error {
	if !typegen.IsIdentifier(c.TypeName) {
		return typegen.ValidationError{
			Field: "typeName",
			Err:   errors.New("must start with a letter, '_' or '$' followed by letters, digits, '_' or '$'"),
		}
	}
	if c.Concurrency < 0 {
		return typegen.ValidationError{Field: "concurrency", Err: errors.New("must not be negative")}
	}

	spec, source, err := c.readSpec(ctx, log)
	if err != nil {
		return err
	}

	if c.SpecOutFile != "" {
		data, err := internal.IndentJSON(spec, "  ")
		if err != nil {
			return err
		}
		if err = writeFile(c.SpecOutFile, data); err != nil {
			return err
		}
		log.Info().Str("path", c.SpecOutFile).Msg("wrote specification")
	}

	var formatter typegen.TsFormatter
	if c.Format {
		formatter = func(b []byte) ([]byte, error) {
			return sanefmt.Format(bytes.NewReader(b))
		}
	}
	out, err := typegen.Generate(spec, typegen.Options{
		TypeName:    c.TypeName,
		Source:      source,
		Concurrency: c.Concurrency,
		Formatter:   formatter,
	})
	if err != nil {
		return err
	}

	if c.OutFile == "" || c.OutFile == "-" {
		_, err = stdout.Write(out)
		return err
	}
	if err = writeFile(c.OutFile, out); err != nil {
		return err
	}
	log.Info().Str("path", c.OutFile).Int("bytes", len(out)).Msg("wrote types")
	return nil
}

func (c *cmdGenerate) readSpec(ctx context.Context, log zerolog.Logger) ([]byte, string, error) {
	if c.SpecFile != "" {
		data, err := os.ReadFile(c.SpecFile)
		if err != nil {
			return nil, "", err
		}
		switch strings.ToLower(filepath.Ext(c.SpecFile)) {
		case ".yaml", ".yml":
			data, err = internal.YAMLToJSON(data)
			if err != nil {
				return nil, "", typegen.ValidationError{Field: "specFile", Err: err}
			}
		}
		log.Debug().Str("path", c.SpecFile).Msg("read specification")
		return data, filepath.Base(c.SpecFile), nil
	}

	switch {
	case c.Host == "":
		return nil, "", typegen.ValidationError{
			Field: "host",
			Err:   errors.New("either --host or --specFile must be specified"),
		}
	case c.Email == "":
		return nil, "", typegen.ValidationError{Field: "email", Err: errors.New("must be specified")}
	case c.Password == "":
		return nil, "", typegen.ValidationError{Field: "password", Err: errors.New("must be specified")}
	}

	client, err := directus.NewClient(c.Host, directus.Logger(log))
	if err != nil {
		return nil, "", err
	}
	log.Info().Str("host", c.Host).Str("email", c.Email).Msg("logging in")
	token, err := client.Login(ctx, c.Email, c.Password)
	if err != nil {
		return nil, "", err
	}
	spec, err := client.FetchSpec(ctx, token)
	if err != nil {
		return nil, "", err
	}
	log.Info().Int("bytes", len(spec)).Msg("fetched specification")
	return spec, c.Host, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
