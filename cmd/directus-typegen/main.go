// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"os"

	"github.com/alecthomas/kong"
	"github.com/antoniszymanski/directus-typegen-go/cmd/directus-typegen/config"
	"github.com/antoniszymanski/directus-typegen-go/cmd/directus-typegen/internal"
)

type cli struct {
	Config   kong.ConfigFlag `short:"c" help:"Load flags from a JSONC configuration file."`
	LogLevel string          `name:"logLevel" enum:"trace,debug,info,warn,error" default:"info" help:"Log level."`

	Init     cmdInit     `cmd:"" help:"Write a starter configuration file and its JSON Schema."`
	Schema   cmdSchema   `cmd:"" help:"Write the JSON Schema of the configuration file."`
	Generate cmdGenerate `cmd:"" help:"Generate TypeScript types for the collections."`
	Version  cmdVersion  `cmd:"" help:"Print version information."`
}

func newParser(c *cli, opts ...kong.Option) (*kong.Kong, error) {
	return kong.New(c, append([]kong.Option{
		kong.Name("directus-typegen"),
		kong.Description("Generate TypeScript types for Directus collections"),
		kong.UsageOnError(),
		kong.Configuration(config.Loader, config.DefaultPath),
		kong.BindTo(context.Background(), (*context.Context)(nil)),
	}, opts...)...)
}

func main() {
	var c cli
	parser, err := newParser(&c)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	ctx.FatalIfErrorf(ctx.Run(internal.NewLogger(os.Stderr, c.LogLevel)))
}
