// Package chunk splits rendered Markdown into chunks for embedding.
// Chunks never cross a heading, so each one belongs to a single documented
// entity. Words approximate tokens.
package chunk

import (
	"strings"

	"github.com/gaurav-prasanna/docnode2md/core/outline"
)

const defaultChunkSize = 512

// Chunker splits text into heading-bounded chunks of at most ChunkSize words.
type Chunker struct {
	ChunkSize int // number of tokens (words) per chunk
}

// New creates a Chunker with the given chunk size.
// Defaults to 512 if chunkSize <= 0.
func New(chunkSize int) *Chunker {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	return &Chunker{ChunkSize: chunkSize}
}

// Chunk splits the document into sections at its Markdown headings, then splits
// each section into runs of at most ChunkSize words joined by spaces.
// The heading line is part of its section.
func (c *Chunker) Chunk(markdown string) []string {
	var chunks []string
	for _, section := range outline.Sections(markdown) {
		chunks = append(chunks, c.split(section)...)
	}
	return chunks
}

func (c *Chunker) split(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	for i := 0; i < len(words); i += c.ChunkSize {
		end := min(i+c.ChunkSize, len(words))
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}
