// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package typegen

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderAggregateType(t *testing.T) {
	collections, err := ExtractCollections([]byte(authorDocument))
	require.NoError(t, err)

	got, err := RenderAggregateType("Collections", collections)
	require.NoError(t, err)
	assert.Equal(t, "export type Collections = {\n  author: Author;\n};\n", got)
}

func TestRenderAggregateType_Empty(t *testing.T) {
	got, err := RenderAggregateType("Schema", nil)
	require.NoError(t, err)
	assert.Equal(t, "export type Schema = {\n};\n", got)
}

func TestRenderAggregateType_Order(t *testing.T) {
	var b strings.Builder
	b.WriteString(`{"components": {"schemas": {`)
	const n = 12
	for i := range n {
		if i > 0 {
			b.WriteString(",")
		}
		// reverse alphabetical so sorting would be noticed
		fmt.Fprintf(&b, `"ItemsC%02d": {"type": "object", "properties": {}, "x-collection": "c%02d"}`, n-i, n-i)
	}
	b.WriteString(`}}}`)

	collections, err := ExtractCollections([]byte(b.String()))
	require.NoError(t, err)
	got, err := RenderAggregateType("Collections", collections)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.Len(t, lines, n+2)
	for i, line := range lines[1 : n+1] {
		assert.Equal(t, fmt.Sprintf("  c%02d: C%02d;", n-i, n-i), line)
	}
}

func TestRenderAggregateType_QuotesNames(t *testing.T) {
	got, err := RenderAggregateType("Collections", []Collection{
		{Name: "blog-posts", Schema: CollectionSchema{Title: "BlogPosts"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "export type Collections = {\n  \"blog-posts\": BlogPosts;\n};\n", got)
}

func TestRenderAggregateType_TypeName(t *testing.T) {
	valid := []string{"Collections", "Schema", "_private", "$store", "a1", "A_b$9"}
	for _, name := range valid {
		_, err := RenderAggregateType(name, nil)
		assert.NoError(t, err, name)
	}

	invalid := []string{"", "1Collections", "my-collections", "my collections", "Coll.ections", "é"}
	for _, name := range invalid {
		_, err := RenderAggregateType(name, nil)
		var verr ValidationError
		assert.True(t, errors.As(err, &verr), name)
	}
}
