package render

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/docnode2md/core"
)

func TestJSONRenderer_Render(t *testing.T) {
	nodes := []core.DocNode{
		{Kind: core.KindModuleDoc, Name: "mymod", JsDoc: &core.JsDoc{Doc: "Mod doc."}},
		{Kind: core.KindFunction, Name: "foo", JsDoc: &core.JsDoc{
			Doc:  "Does foo.",
			Tags: []core.Tag{{Kind: "param", Name: core.StringPtr("x")}},
		}},
		{Kind: "reference", Name: "skipped"},
	}
	meta := core.DocMetadata{Source: "mod.ts", NodeCount: len(nodes)}

	r := NewJSONRenderer()
	data, err := r.Render(context.Background(), nodes, meta)
	require.NoError(t, err)
	assert.Equal(t, ".json", r.Extension())

	var page core.DocJSON
	require.NoError(t, json.Unmarshal(data, &page))

	assert.Equal(t, meta, page.Metadata)
	assert.Equal(t, Markdown(nodes), page.Content.Markdown)

	assert.Equal(t, []core.Heading{
		{Level: 1, Text: "Module: mymod"},
		{Level: 2, Text: "Function: foo"},
	}, page.Structure.Headings)

	require.Len(t, page.Content.Sections, 2)
	assert.Equal(t, core.Section{Heading: "Module: mymod", Level: 1, Text: "Mod doc."}, page.Content.Sections[0])
	assert.Equal(t, core.Section{Heading: "Function: foo", Level: 2, Text: "Does foo.\n\n@param x"}, page.Content.Sections[1])

	assert.Equal(t, map[core.Kind]int{
		core.KindModuleDoc: 1,
		core.KindFunction:  1,
		"reference":        1,
	}, page.Structure.Kinds)
	assert.Equal(t, map[string]int{"param": 1}, page.Structure.Tags)
}

func TestJSONRenderer_Empty(t *testing.T) {
	data, err := NewJSONRenderer().Render(context.Background(), nil, core.DocMetadata{})
	require.NoError(t, err)

	var page core.DocJSON
	require.NoError(t, json.Unmarshal(data, &page))
	assert.Empty(t, page.Content.Markdown)
	assert.Empty(t, page.Content.Sections)
	assert.Empty(t, page.Structure.Headings)
}
