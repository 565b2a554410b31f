// Package render — JSON renderer.
// Builds a structured JSON outline of the rendered Markdown. The document is
// parsed with goldmark so headings and sections come from a real Markdown
// AST rather than line matching.
package render

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/docnode2md/core"
	"github.com/gaurav-prasanna/docnode2md/core/outline"
)

// JSONRenderer produces a structured JSON outline of the documentation.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render converts the nodes to Markdown and wraps the result, its outline
// and per-kind counts in a JSON document.
func (r *JSONRenderer) Render(_ context.Context, nodes []core.DocNode, meta core.DocMetadata) ([]byte, error) {
	markdown := Markdown(nodes)
	spans := outline.Headings([]byte(markdown))

	headings := make([]core.Heading, 0, len(spans))
	for _, s := range spans {
		headings = append(headings, core.Heading{Level: s.Level, Text: s.Text})
	}

	page := core.DocJSON{
		Metadata: meta,
		Content: core.DocContent{
			Markdown: markdown,
			Sections: buildSections(markdown, spans),
		},
		Structure: core.DocStructure{
			Headings: headings,
			Kinds:    countKinds(nodes),
			Tags:     countTags(nodes),
		},
	}

	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// --- Markdown outline helpers ---

// buildSections splits the document at each heading; a section's text runs
// from the end of its heading to the start of the next one.
func buildSections(md string, spans []outline.Span) []core.Section {
	if len(spans) == 0 {
		return nil
	}

	sections := make([]core.Section, 0, len(spans))
	for i, s := range spans {
		stop := len(md)
		if i+1 < len(spans) {
			stop = spans[i+1].LineStart
		}
		start := s.End
		if start > stop {
			start = stop
		}
		sections = append(sections, core.Section{
			Heading: s.Text,
			Level:   s.Level,
			Text:    strings.TrimSpace(md[start:stop]),
		})
	}
	return sections
}

// countKinds counts nodes per kind, including unrecognized kinds.
func countKinds(nodes []core.DocNode) map[core.Kind]int {
	kinds := make(map[core.Kind]int)
	for _, n := range nodes {
		kinds[n.Kind]++
	}
	return kinds
}

// countTags counts comment tags per tag kind.
func countTags(nodes []core.DocNode) map[string]int {
	tags := make(map[string]int)
	for _, n := range nodes {
		if n.JsDoc == nil {
			continue
		}
		for _, t := range n.JsDoc.Tags {
			tags[t.Kind]++
		}
	}
	return tags
}
