package render

import (
	"errors"
	"fmt"

	"github.com/gaurav-prasanna/docnode2md/core"
)

// ErrUnknownFormat is returned by New for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Output formats accepted by New.
const (
	FormatMarkdown   = "markdown"
	FormatJSON       = "json"
	FormatPDF        = "pdf"
	FormatEmbeddings = "embeddings"
)

// Formats lists the supported output formats.
var Formats = []string{FormatMarkdown, FormatJSON, FormatPDF, FormatEmbeddings}

// Options configures renderers that need more than the nodes.
type Options struct {
	Model     string
	ChunkSize int
	Embedder  core.Embedder
}

// New creates the Renderer for the named format.
func New(format string, opts Options) (core.Renderer, error) {
	switch format {
	case FormatMarkdown, "":
		return NewMarkdownRenderer(), nil
	case FormatJSON:
		return NewJSONRenderer(), nil
	case FormatPDF:
		return NewPDFRenderer(), nil
	case FormatEmbeddings:
		return NewEmbeddingsRenderer(opts.Embedder, opts.Model, opts.ChunkSize), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
