// Package output handles templates and file writing for docnode2md.
// A template is a Markdown file holding the marker <!-- generate:docs -->;
// the rendered documentation replaces the first occurrence of the marker.
package output

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
)

// Marker is the placeholder replaced by the rendered documentation.
const Marker = "<!-- generate:docs -->"

// ErrOutOfDate is returned by Check when the file on disk differs from the
// freshly generated content.
var ErrOutOfDate = errors.New("output is out of date")

// TemplateMeta is the optional YAML front matter of a template.
type TemplateMeta struct {
	Output string `yaml:"output"`
	Source string `yaml:"source"`
}

// Template is a loaded template with its front matter stripped.
type Template struct {
	Path string
	Meta TemplateMeta
	Body string
}

// LoadTemplate reads the template at path. Front matter, if present, is
// parsed into Meta and removed from Body.
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}
	return ParseTemplate(path, data)
}

// ParseTemplate parses template bytes loaded from path.
func ParseTemplate(path string, data []byte) (*Template, error) {
	if !hasFrontMatter(data) {
		return &Template{Path: path, Body: string(data)}, nil
	}

	var meta TemplateMeta
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return nil, fmt.Errorf("parsing template front matter %s: %w", path, err)
	}
	return &Template{Path: path, Meta: meta, Body: string(body)}, nil
}

// hasFrontMatter reports whether data opens with a YAML, TOML or JSON front
// matter delimiter line.
func hasFrontMatter(data []byte) bool {
	first, _, _ := bytes.Cut(data, []byte("\n"))
	switch string(bytes.TrimSpace(first)) {
	case "---", "+++", ";;;":
		return true
	}
	return false
}

// HasMarker reports whether the template contains the docs marker.
func (t *Template) HasMarker() bool {
	return strings.Contains(t.Body, Marker)
}

// Apply substitutes docs for the first marker. A template without the
// marker is returned unchanged.
func (t *Template) Apply(docs string) string {
	return strings.Replace(t.Body, Marker, docs, 1)
}

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer resolving relative paths against outputDir.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}
	return &Writer{OutputDir: outputDir}, nil
}

// Path resolves name against the output directory.
func (w *Writer) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(w.OutputDir, name)
}

// Write writes data to name, creating parent directories, and returns the
// path written.
func (w *Writer) Write(name string, data []byte) (string, error) {
	path := w.Path(name)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// Check compares data with the file at name. It returns the diff and
// ErrOutOfDate when they differ; a missing file counts as empty.
func (w *Writer) Check(name string, data []byte) (string, error) {
	path := w.Path(name)
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if bytes.Equal(existing, data) {
		return "", nil
	}
	return Diff(string(existing), string(data)), fmt.Errorf("%w: %s", ErrOutOfDate, path)
}
