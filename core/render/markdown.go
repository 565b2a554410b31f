// Package render provides output renderers for the docnode2md pipeline.
// This file implements the Markdown renderer, which every other renderer
// builds on.
package render

import (
	"context"
	"strings"

	"github.com/gaurav-prasanna/docnode2md/core"
)

// headings maps each recognized node kind to its heading prefix.
var headings = map[core.Kind]string{
	core.KindModuleDoc: "# Module: ",
	core.KindFunction:  "## Function: ",
	core.KindVariable:  "## Variable: ",
	core.KindEnum:      "## Enum: ",
	core.KindClass:     "## Class: ",
	core.KindTypeAlias: "## Type Alias: ",
	core.KindNamespace: "## Namespace: ",
	core.KindInterface: "## Interface: ",
	core.KindImport:    "## Import: ",
}

// MarkdownRenderer renders documentation nodes as a flat Markdown document.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the Markdown document as bytes.
func (r *MarkdownRenderer) Render(_ context.Context, nodes []core.DocNode, meta core.DocMetadata) ([]byte, error) {
	return []byte(Markdown(nodes)), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// Markdown converts a list of documentation nodes to Markdown. Every node
// contributes its fragment followed by a blank line, in input order.
func Markdown(nodes []core.DocNode) string {
	var b strings.Builder
	for _, node := range nodes {
		b.WriteString(Node(node))
		b.WriteString("\n\n")
	}
	return b.String()
}

// Node renders a single node. Nodes of an unrecognized kind render to the
// empty string.
func Node(node core.DocNode) string {
	heading, ok := headings[node.Kind]
	if !ok {
		return ""
	}
	return heading + node.Name + "\n\n" + FormatJsDoc(node.JsDoc)
}

// FormatJsDoc renders a comment block: the description, a blank line, then
// one line per tag. The result never has surrounding whitespace.
func FormatJsDoc(jsDoc *core.JsDoc) string {
	if jsDoc == nil {
		return ""
	}

	var b strings.Builder
	if jsDoc.Doc != "" {
		b.WriteString(strings.TrimSpace(jsDoc.Doc))
		b.WriteString("\n\n")
	}
	for _, tag := range jsDoc.Tags {
		b.WriteString(FormatTag(tag))
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}

// FormatTag renders one tag on a single line. Segments are appended in a
// fixed order for whichever optional fields the tag carries; the tag kind
// only contributes the leading @kind.
func FormatTag(tag core.Tag) string {
	var b strings.Builder
	b.WriteString("@")
	b.WriteString(tag.Kind)

	if tag.Name != nil {
		b.WriteString(" " + *tag.Name)
	}
	if tag.Value != nil {
		b.WriteString(" " + tag.Value.String())
	}
	if tag.Type != nil {
		b.WriteString(" {" + *tag.Type + "}")
	}
	if tag.Doc != "" {
		b.WriteString(" " + strings.TrimSpace(tag.Doc))
	}
	if tag.Params != nil {
		params := make([]string, len(tag.Params))
		for i, p := range tag.Params {
			params[i] = FormatParam(p)
		}
		b.WriteString(" " + strings.Join(params, ", "))
	}
	if tag.Tags != nil {
		b.WriteString(" " + strings.Join(tag.Tags, ", "))
	}

	return b.String()
}

// FormatParam renders a parameter definition, e.g. "[y {number} = 1]".
func FormatParam(param core.Param) string {
	var b strings.Builder
	if param.Optional {
		b.WriteString("[")
	}
	b.WriteString(param.Name)
	if param.Type != "" {
		b.WriteString(" {" + param.Type + "}")
	}
	if param.Default != "" {
		b.WriteString(" = " + param.Default)
	}
	if param.Optional {
		b.WriteString("]")
	}
	return b.String()
}
