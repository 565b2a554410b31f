// Package normalize implements the Normalizer interface.
// Comment text written with inline HTML (<b>, <code>, <a href>, ...) is
// converted to Markdown so the generated document reads consistently.
// Comment text without HTML elements passes through untouched.
package normalize

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/docnode2md/core"
)

// htmlSelector matches the elements that mark comment text as HTML. Type
// syntax such as Array<string> parses as unknown elements and must not
// trigger conversion, so only real HTML elements are listed.
const htmlSelector = "a, b, i, em, strong, code, pre, br, p, ul, ol, li, " +
	"h1, h2, h3, h4, h5, h6, table, kbd, sup, sub, span, div, blockquote"

// HTMLNormalizer converts HTML comment text to Markdown using html-to-markdown.
type HTMLNormalizer struct{}

// New creates an HTMLNormalizer.
func New() *HTMLNormalizer {
	return &HTMLNormalizer{}
}

// Normalize returns a copy of nodes whose comment and tag descriptions have
// been converted from HTML to Markdown where they contain HTML elements.
// The input nodes are not modified.
func (n *HTMLNormalizer) Normalize(nodes []core.DocNode) ([]core.DocNode, error) {
	out := make([]core.DocNode, len(nodes))
	for i, node := range nodes {
		out[i] = node
		if node.JsDoc == nil {
			continue
		}

		jsDoc := *node.JsDoc
		doc, err := n.text(jsDoc.Doc)
		if err != nil {
			return nil, fmt.Errorf("normalizing %s %s: %w", node.Kind, node.Name, err)
		}
		jsDoc.Doc = doc

		if jsDoc.Tags != nil {
			tags := make([]core.Tag, len(jsDoc.Tags))
			for j, tag := range jsDoc.Tags {
				tagDoc, err := n.text(tag.Doc)
				if err != nil {
					return nil, fmt.Errorf("normalizing @%s of %s: %w", tag.Kind, node.Name, err)
				}
				tag.Doc = tagDoc
				tags[j] = tag
			}
			jsDoc.Tags = tags
		}
		out[i].JsDoc = &jsDoc
	}
	return out, nil
}

// text converts s when it contains HTML elements.
func (n *HTMLNormalizer) text(s string) (string, error) {
	if !ContainsHTML(s) {
		return s, nil
	}
	markdown, err := htmltomarkdown.ConvertString(s)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}

// ContainsHTML reports whether s contains at least one known HTML element.
func ContainsHTML(s string) bool {
	if !strings.Contains(s, "<") {
		return false
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return false
	}
	return doc.Find(htmlSelector).Length() > 0
}
