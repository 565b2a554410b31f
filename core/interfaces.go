// Package core defines the documentation model and the pipeline interfaces
// for docnode2md. Each stage of the pipeline is a clean, testable interface.
package core

import "context"

// DocMetadata describes where a rendered document came from.
type DocMetadata struct {
	Source      string   `json:"source"`
	Modules     []string `json:"modules,omitempty"`
	NodeCount   int      `json:"node_count"`
	GeneratedAt string   `json:"generated_at"` // ISO8601
}

// Section represents a heading-delimited section of the rendered document.
type Section struct {
	Heading string `json:"heading"`
	Level   int    `json:"level"`
	Text    string `json:"text"`
}

// Heading represents a single heading found in the rendered document.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// DocContent holds the rendered Markdown and its sections.
type DocContent struct {
	Markdown string    `json:"markdown"`
	Sections []Section `json:"sections"`
}

// DocStructure holds structural counts gathered from the nodes and the
// rendered document.
type DocStructure struct {
	Headings []Heading      `json:"headings"`
	Kinds    map[Kind]int   `json:"kinds"`
	Tags     map[string]int `json:"tags"`
}

// DocJSON is the complete JSON output for one rendered document.
type DocJSON struct {
	Metadata  DocMetadata  `json:"metadata"`
	Content   DocContent   `json:"content"`
	Structure DocStructure `json:"structure"`
}

// Extractor produces documentation nodes for a source module, typically by
// running an external documentation tool.
type Extractor interface {
	Extract(ctx context.Context, source string) ([]DocNode, error)
}

// Loader reads already-extracted documentation nodes from a file or URL.
type Loader interface {
	Load(ctx context.Context, location string) ([]DocNode, error)
}

// Normalizer rewrites comment text before rendering.
type Normalizer interface {
	Normalize(nodes []DocNode) ([]DocNode, error)
}

// Renderer converts documentation nodes (and metadata) into a final output format.
// The context bounds any network calls a renderer makes.
type Renderer interface {
	Render(ctx context.Context, nodes []DocNode, meta DocMetadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}

// Embedder generates a vector embedding for a text input.
type Embedder interface {
	Embed(ctx context.Context, text string, model string) ([]float64, error)
}
