// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package typegen

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

type Options struct {
	// TypeName names the aggregate type listing every collection.
	TypeName string
	// Source is mentioned in the header comment when not empty.
	Source string
	// Concurrency bounds how many collections are compiled at once.
	// Zero means no limit.
	Concurrency int
	Formatter   TsFormatter
}

// Generate compiles the collections of the OpenAPI document data into
// TypeScript declarations followed by the aggregate type.
func Generate(data []byte, opts Options) ([]byte, error) {
	collections, err := ExtractCollections(data)
	if err != nil {
		return nil, err
	}
	aggregate, err := RenderAggregateType(opts.TypeName, collections)
	if err != nil {
		return nil, err
	}

	mod, err := Compile(collections, CompileOptions{
		Source: opts.Source,
		Limit:  opts.Concurrency,
	})
	if err != nil {
		return nil, err
	}
	if mod.Defs.Has(opts.TypeName) {
		return nil, ValidationError{
			Field: "typeName",
			Err:   fmt.Errorf("type name %q is already used by a collection", opts.TypeName),
		}
	}
	mod.Defs.Set(opts.TypeName, aggregate)

	return mod.Render(ModuleRenderOptions{Formatter: opts.Formatter})
}

type CompileOptions struct {
	Source string
	Limit  int
}

// Compile declares an interface for every collection. Collections are
// compiled concurrently; declarations keep the order of collections.
func Compile(collections []Collection, opts CompileOptions) (*TsModule, error) {
	t := newTranspiler(collections)
	defs := make([]string, len(collections))

	var g errgroup.Group
	if opts.Limit != 0 {
		g.SetLimit(opts.Limit)
	}
	for i, c := range collections {
		g.Go(func() error {
			def, err := t.transpileCollection(c)
			if err != nil {
				return err
			}
			defs[i] = def
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	mod := NewTsModule(opts.Source)
	for i, c := range collections {
		if !mod.Defs.Set(c.Schema.Title, defs[i]) {
			return nil, ValidationError{
				Field: "components.schemas." + CollectionPrefix + c.Schema.Title,
				Err:   fmt.Errorf("duplicate type name %q", c.Schema.Title),
			}
		}
	}
	return mod, nil
}
