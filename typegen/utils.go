// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package typegen

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"unsafe"
)

func bytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

var validIdentifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// IsIdentifier reports whether s can be used as a TypeScript type name.
func IsIdentifier(s string) bool {
	return validIdentifier.MatchString(s)
}

func appendPropertyName(dst []byte, name string) []byte {
	if IsIdentifier(name) {
		return append(dst, name...)
	}
	return appendQuote(dst, name)
}

// appendQuote appends s as a JSON string, which is also a valid TypeScript
// string literal.
func appendQuote(dst []byte, s string) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s) // a string always encodes
	return append(dst, bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})...)
}

func appendIndent(dst []byte, depth int) []byte {
	for range depth {
		dst = append(dst, "  "...)
	}
	return dst
}

var commentReplacer = strings.NewReplacer("*/", `*\/`, "\r\n", " ", "\n", " ")

func comment(s string) string {
	return " /* " + commentReplacer.Replace(s) + " */"
}
