// Package render — PDF renderer.
// Lays out the rendered Markdown as a PDF using gofpdf. Headings, as found by
// the Markdown parser, get sizes by level. Tag lines are set in a monospace
// font and everything else is body text.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/docnode2md/core"
	"github.com/gaurav-prasanna/docnode2md/core/outline"
	"github.com/jung-kurt/gofpdf"
)

// headingSizes are font sizes in points per Markdown heading level.
var headingSizes = map[int]float64{1: 18, 2: 14, 3: 12}

// PDFRenderer renders documentation as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the nodes into PDF bytes.
func (r *PDFRenderer) Render(_ context.Context, nodes []core.DocNode, meta core.DocMetadata) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(meta.Source, true)
	pdf.AddPage()

	if meta.Source != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, "Source: "+meta.Source, "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(4)
	}

	for _, l := range layoutLines(Markdown(nodes)) {
		switch l.style {
		case styleGap:
			pdf.Ln(3)
		case styleHeading:
			writeHeading(pdf, l.text, l.level)
		case styleTag:
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, l.text, "", "L", true)
		default:
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, l.text, "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

type lineStyle int

const (
	styleBody lineStyle = iota
	styleGap
	styleHeading
	styleTag
)

// pdfLine is one laid-out line of the document.
type pdfLine struct {
	style lineStyle
	text  string
	level int
}

// layoutLines assigns a style to each line of markdown. Headings come from
// the Markdown parser; runs of blank lines collapse to one gap.
func layoutLines(markdown string) []pdfLine {
	headings := make(map[int]outline.Span)
	for _, h := range outline.Headings([]byte(markdown)) {
		headings[h.LineStart] = h
	}

	var (
		lines     []pdfLine
		offset    int
		skipUntil int
		underline bool
	)
	for _, line := range strings.Split(markdown, "\n") {
		start := offset
		offset += len(line) + 1

		if start < skipUntil {
			continue
		}
		if strings.TrimSpace(line) == "" {
			if n := len(lines); n == 0 || lines[n-1].style != styleGap {
				lines = append(lines, pdfLine{style: styleGap})
			}
			continue
		}

		if h, ok := headings[start]; ok {
			lines = append(lines, pdfLine{style: styleHeading, text: h.Text, level: h.Level})
			skipUntil = h.End
			// A setext heading is followed by its underline.
			underline = !strings.HasPrefix(strings.TrimSpace(line), "#")
			continue
		}
		if underline {
			underline = false
			if strings.Trim(strings.TrimSpace(line), "=-") == "" {
				continue
			}
		}

		style := styleBody
		if strings.HasPrefix(line, "@") {
			style = styleTag
		}
		lines = append(lines, pdfLine{style: style, text: line})
	}
	return lines
}

// writeHeading sets the font size based on heading level and writes text.
func writeHeading(pdf *gofpdf.Fpdf, text string, level int) {
	size, ok := headingSizes[level]
	if !ok {
		size = 11
	}
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, text, "", "L", false)
	pdf.Ln(1)
}
