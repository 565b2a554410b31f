// Package outline locates the headings of a Markdown document using the
// goldmark parser, so lines inside code fences or other blocks that merely
// start with '#' are not mistaken for headings.
package outline

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Span locates a heading in the source. LineStart is the offset of the
// heading's first line and End the offset just past its text.
type Span struct {
	Level     int
	Text      string
	LineStart int
	End       int
}

// Headings returns the document's headings in source order.
func Headings(src []byte) []Span {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var spans []Span
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		lines := h.Lines()
		if lines.Len() == 0 {
			return ast.WalkSkipChildren, nil
		}

		var buf bytes.Buffer
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
		first, last := lines.At(0), lines.At(lines.Len()-1)
		spans = append(spans, Span{
			Level:     h.Level,
			Text:      strings.TrimSpace(buf.String()),
			LineStart: bytes.LastIndexByte(src[:first.Start], '\n') + 1,
			End:       last.Stop,
		})
		return ast.WalkSkipChildren, nil
	})
	return spans
}

// Sections cuts src before every heading line. Text ahead of the first
// heading, if any, is its own section; each heading starts a new one.
func Sections(src string) []string {
	spans := Headings([]byte(src))

	var sections []string
	start := 0
	for _, s := range spans {
		if s.LineStart > start {
			sections = append(sections, src[start:s.LineStart])
		}
		start = s.LineStart
	}
	if start < len(src) {
		sections = append(sections, src[start:])
	}
	return sections
}
