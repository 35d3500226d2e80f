// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package typegen

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-set/v3"
)

const schemaRefPrefix = "#/components/schemas/"

type transpiler struct {
	refs map[string]string // Keyed by component schema name
}

func newTranspiler(collections []Collection) *transpiler {
	t := &transpiler{refs: make(map[string]string, len(collections))}
	for _, c := range collections {
		t.refs[CollectionPrefix+c.Schema.Title] = c.Schema.Title
	}
	return t
}

func (t *transpiler) transpileCollection(c Collection) (string, error) {
	if !IsIdentifier(c.Schema.Title) {
		return "", ValidationError{
			Field: "components.schemas." + CollectionPrefix + c.Schema.Title,
			Err:   fmt.Errorf("invalid type name %q", c.Schema.Title),
		}
	}

	var b []byte
	b = append(b, "export interface "...)
	b = append(b, c.Schema.Title...)
	b = append(b, ' ')
	b = t.transpileProperties(b, c.Schema.Properties, c.Schema.Required, 0)
	b = append(b, '\n')
	return bytesToString(b), nil
}

func (t *transpiler) transpileProperties(dst []byte, props *Properties, required []string, depth int) []byte {
	if props == nil || props.Len() == 0 {
		return append(dst, "{}"...)
	}

	requiredSet := set.From(required)
	dst = append(dst, "{\n"...)
	for pair := props.Oldest(); pair != nil; pair = pair.Next() {
		if desc := pair.Value.Description; desc != "" {
			dst = appendIndent(dst, depth+1)
			dst = append(dst, "/**"...)
			dst = append(dst, comment(desc)[3:]...)
			dst = append(dst, '\n')
		}
		dst = appendIndent(dst, depth+1)
		dst = appendPropertyName(dst, pair.Key)
		if !requiredSet.Contains(pair.Key) {
			dst = append(dst, '?')
		}
		dst = append(dst, ": "...)
		dst = t.transpileType(dst, pair.Value, depth+1)
		dst = append(dst, ";\n"...)
	}
	dst = appendIndent(dst, depth)
	return append(dst, '}')
}

func (t *transpiler) transpileType(dst []byte, s *Schema, depth int) []byte {
	if s == nil {
		return append(dst, "unknown"...)
	}
	dst = t.transpileNonNullable(dst, s, depth)
	if s.IsNullable() {
		dst = append(dst, " | null"...)
	}
	return dst
}

func (t *transpiler) transpileNonNullable(dst []byte, s *Schema, depth int) []byte {
	switch {
	case s.Ref != "":
		return t.transpileRef(dst, s.Ref)
	case len(s.Enum) > 0:
		return transpileEnum(dst, s.Enum)
	case len(s.OneOf) > 0:
		return t.transpileComposite(dst, s.OneOf, " | ", depth)
	case len(s.AnyOf) > 0:
		return t.transpileComposite(dst, s.AnyOf, " | ", depth)
	case len(s.AllOf) > 0:
		return t.transpileComposite(dst, s.AllOf, " & ", depth)
	}

	switch len(s.Type) {
	case 0:
		switch {
		case s.Properties != nil:
			return t.transpileTypeName(dst, "object", s, depth)
		case s.Items != nil:
			return t.transpileTypeName(dst, "array", s, depth)
		default:
			return append(dst, "unknown"...)
		}
	case 1:
		return t.transpileTypeName(dst, s.Type[0], s, depth)
	}

	for i, typ := range s.Type {
		if i > 0 {
			dst = append(dst, " | "...)
		}
		dst = t.transpileTypeName(dst, typ, s, depth)
	}
	return dst
}

func (t *transpiler) transpileTypeName(dst []byte, typ string, s *Schema, depth int) []byte {
	switch typ {
	case "string":
		dst = append(dst, "string"...)
	case "integer", "number":
		dst = append(dst, "number"...)
	case "boolean":
		return append(dst, "boolean"...)
	case "null":
		return append(dst, "null"...)
	case "array":
		return t.transpileArray(dst, s.Items, depth)
	case "object":
		if s.Properties == nil || s.Properties.Len() == 0 {
			return append(dst, "{ [key: string]: unknown }"...)
		}
		return t.transpileProperties(dst, s.Properties, s.Required, depth)
	default:
		return append(dst, "unknown"...)
	}
	if s.Format != "" {
		dst = append(dst, comment(s.Format)...)
	}
	return dst
}

func (t *transpiler) transpileArray(dst []byte, items *Schema, depth int) []byte {
	elem := t.transpileType(nil, items, depth)
	if needsParens(elem) {
		dst = append(dst, '(')
		dst = append(dst, elem...)
		dst = append(dst, ')')
	} else {
		dst = append(dst, elem...)
	}
	return append(dst, "[]"...)
}

func (t *transpiler) transpileComposite(dst []byte, members []*Schema, sep string, depth int) []byte {
	seen := set.New[string](len(members))
	first := true
	for _, member := range members {
		typ := bytesToString(t.transpileType(nil, member, depth))
		if !seen.Insert(typ) {
			continue
		}
		if !first {
			dst = append(dst, sep...)
		}
		first = false
		if sep == " & " && needsParens([]byte(typ)) {
			typ = "(" + typ + ")"
		}
		dst = append(dst, typ...)
	}
	if first {
		return append(dst, "unknown"...)
	}
	return dst
}

func (t *transpiler) transpileRef(dst []byte, ref string) []byte {
	name, ok := strings.CutPrefix(ref, schemaRefPrefix)
	if !ok {
		return append(dst, ("unknown" + comment(ref))...)
	}
	if title, ok := t.refs[name]; ok {
		return append(dst, title...)
	}
	return append(dst, ("unknown" + comment(name))...)
}

func transpileEnum(dst []byte, values []any) []byte {
	for i, v := range values {
		if i > 0 {
			dst = append(dst, " | "...)
		}
		switch v := v.(type) {
		case nil:
			dst = append(dst, "null"...)
		case bool:
			dst = strconv.AppendBool(dst, v)
		case float64:
			dst = strconv.AppendFloat(dst, v, 'g', -1, 64)
		case string:
			dst = appendQuote(dst, v)
		default:
			dst = append(dst, "unknown"...)
		}
	}
	return dst
}

// needsParens reports whether typ has a top-level union or intersection.
// String literals and comments are skipped.
func needsParens(typ []byte) bool {
	depth := 0
	for i := 0; i < len(typ); i++ {
		switch typ[i] {
		case '"':
			i = skipString(typ, i)
		case '/':
			if i+1 < len(typ) && typ[i+1] == '*' {
				end := bytes.Index(typ[i+2:], []byte("*/"))
				if end < 0 {
					return false
				}
				i += end + 3
			}
		case '{', '(', '<', '[':
			depth++
		case '}', ')', '>', ']':
			depth--
		case '|', '&':
			if depth == 0 && i > 0 && typ[i-1] == ' ' {
				return true
			}
		}
	}
	return false
}

// skipString returns the index of the quote closing the string literal
// opened at typ[start].
func skipString(typ []byte, start int) int {
	for i := start + 1; i < len(typ); i++ {
		switch typ[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return len(typ)
}
