package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/docnode2md/core"
)

func TestContainsHTML(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"plain text", false},
		{"", false},
		{"a < b and c > d", false},
		{"Returns Array<string> of names", false},
		{"Use <b>bold</b> here", true},
		{"See <a href=\"https://deno.land\">deno</a>", true},
		{"line<br>break", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsHTML(tt.in))
		})
	}
}

func TestHTMLNormalizer_Normalize(t *testing.T) {
	nodes := []core.DocNode{
		{Kind: core.KindFunction, Name: "f", JsDoc: &core.JsDoc{
			Doc: "Use <b>bold</b> text",
			Tags: []core.Tag{
				{Kind: "returns", Doc: "a <code>string</code>"},
				{Kind: "param", Name: core.StringPtr("x"), Doc: "Array<string> input"},
			},
		}},
		{Kind: core.KindClass, Name: "C"},
	}

	out, err := New().Normalize(nodes)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "Use **bold** text", out[0].JsDoc.Doc)
	assert.Contains(t, out[0].JsDoc.Tags[0].Doc, "`string`")
	assert.Equal(t, "Array<string> input", out[0].JsDoc.Tags[1].Doc)
	assert.Nil(t, out[1].JsDoc)

	// The input is left untouched.
	assert.Equal(t, "Use <b>bold</b> text", nodes[0].JsDoc.Doc)
	assert.Equal(t, "a <code>string</code>", nodes[0].JsDoc.Tags[0].Doc)
}

func TestHTMLNormalizer_KeepsTagPresence(t *testing.T) {
	nodes := []core.DocNode{{Kind: core.KindEnum, Name: "E", JsDoc: &core.JsDoc{Doc: "<i>x</i>"}}}

	out, err := New().Normalize(nodes)
	require.NoError(t, err)
	assert.Nil(t, out[0].JsDoc.Tags)
}
