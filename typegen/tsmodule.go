// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package typegen

import "github.com/elliotchance/orderedmap/v3"

type TsModule struct {
	Source string
	Defs   *orderedmap.OrderedMap[string, string] // Keyed by type name
}

func NewTsModule(source string) *TsModule {
	return &TsModule{
		Source: source,
		Defs:   orderedmap.NewOrderedMap[string, string](),
	}
}

type ModuleRenderOptions struct {
	Formatter TsFormatter
}

type TsFormatter func([]byte) ([]byte, error)

func (m *TsModule) Render(opts ModuleRenderOptions) ([]byte, error) {
	var b []byte
	if m.Source != "" {
		b = append(b, comment("Generated from " + m.Source)[1:]...)
		b = append(b, '\n')
	}
	for def := range m.Defs.Values() {
		if len(b) > 0 {
			b = append(b, '\n')
		}
		b = append(b, def...)
		if len(def) > 0 && def[len(def)-1] != '\n' {
			b = append(b, '\n')
		}
	}

	if opts.Formatter == nil {
		return b, nil
	}
	return opts.Formatter(b)
}
