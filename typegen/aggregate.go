// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package typegen

import "fmt"

// RenderAggregateType declares typeName as an object type mapping each
// collection name to its schema title. Members keep the order of collections.
func RenderAggregateType(typeName string, collections []Collection) (string, error) {
	if !IsIdentifier(typeName) {
		return "", ValidationError{
			Field: "typeName",
			Err:   fmt.Errorf("invalid type name %q", typeName),
		}
	}

	b := make([]byte, 0, 32*(len(collections)+2))
	b = append(b, "export type "...)
	b = append(b, typeName...)
	b = append(b, " = {\n"...)
	for _, c := range collections {
		b = appendIndent(b, 1)
		b = appendPropertyName(b, c.Name)
		b = append(b, ": "...)
		b = append(b, c.Schema.Title...)
		b = append(b, ";\n"...)
	}
	b = append(b, "};\n"...)
	return bytesToString(b), nil
}
