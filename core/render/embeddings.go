// Package render — Embeddings renderer.
// Generates embeddings from the rendered Markdown by chunking it per
// documented entity and calling an Ollama-compatible embedding API for each
// chunk. Output is a human-readable .embeddings.txt file.
package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gaurav-prasanna/docnode2md/core"
	"github.com/gaurav-prasanna/docnode2md/core/chunk"
)

const (
	// DefaultOllamaURL is the embeddings endpoint of a local Ollama server.
	DefaultOllamaURL = "http://localhost:11434/api/embeddings"
	embeddingTimeout = 60 * time.Second
)

// OllamaEmbedder calls an Ollama-compatible embeddings endpoint.
type OllamaEmbedder struct {
	URL    string
	client *http.Client
}

// NewOllamaEmbedder creates an OllamaEmbedder. An empty url selects
// DefaultOllamaURL.
func NewOllamaEmbedder(url string) *OllamaEmbedder {
	if url == "" {
		url = DefaultOllamaURL
	}
	return &OllamaEmbedder{
		URL:    url,
		client: &http.Client{Timeout: embeddingTimeout},
	}
}

// ollamaRequest is the request body for the Ollama embeddings API.
type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

// ollamaResponse is the response body from the Ollama embeddings API.
type ollamaResponse struct {
	Embedding []float64 `json:"embedding"`
}

// Embed returns the embedding vector for text.
func (e *OllamaEmbedder) Embed(ctx context.Context, text string, model string) ([]float64, error) {
	bodyBytes, err := json.Marshal(ollamaRequest{Model: model, Prompt: text})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.URL, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling embeddings API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("embeddings API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding embeddings response: %w", err)
	}
	return out.Embedding, nil
}

// EmbeddingsRenderer generates embeddings from rendered Markdown chunks.
type EmbeddingsRenderer struct {
	Model     string
	ChunkSize int
	embedder  core.Embedder
}

// NewEmbeddingsRenderer creates an EmbeddingsRenderer. A nil embedder
// selects an OllamaEmbedder on the default URL.
func NewEmbeddingsRenderer(embedder core.Embedder, model string, chunkSize int) *EmbeddingsRenderer {
	if embedder == nil {
		embedder = NewOllamaEmbedder("")
	}
	return &EmbeddingsRenderer{
		Model:     model,
		ChunkSize: chunkSize,
		embedder:  embedder,
	}
}

// Render chunks the Markdown, embeds each chunk, and produces
// the human-readable .embeddings.txt output.
func (r *EmbeddingsRenderer) Render(ctx context.Context, nodes []core.DocNode, meta core.DocMetadata) ([]byte, error) {
	chunks := chunk.New(r.ChunkSize).Chunk(Markdown(nodes))
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no content to embed")
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "# source: %s\n", meta.Source)
	fmt.Fprintf(&buf, "# model: %s\n", r.Model)
	fmt.Fprintf(&buf, "# chunk_size: %d\n\n", r.ChunkSize)

	for i, chunkText := range chunks {
		embedding, err := r.embedder.Embed(ctx, chunkText, r.Model)
		if err != nil {
			return nil, fmt.Errorf("embedding chunk %d: %w", i+1, err)
		}

		fmt.Fprintf(&buf, "--- chunk %d ---\n", i+1)
		fmt.Fprintf(&buf, "TEXT:\n%s\n\n", chunkText)

		vecStrs := make([]string, len(embedding))
		for j, v := range embedding {
			vecStrs[j] = fmt.Sprintf("%.4f", v)
		}
		fmt.Fprintf(&buf, "VECTOR:\n[%s]\n\n", strings.Join(vecStrs, ", "))
	}

	return []byte(buf.String()), nil
}

// Extension returns the file extension for embeddings output.
func (r *EmbeddingsRenderer) Extension() string {
	return ".embeddings.txt"
}
