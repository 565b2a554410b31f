package render

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/docnode2md/core"
)

// fakeEmbedder records the texts it was asked to embed.
type fakeEmbedder struct {
	texts []string
	err   error
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string, model string) ([]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.texts = append(f.texts, text)
	return []float64{0.5, float64(len(f.texts))}, nil
}

func TestEmbeddingsRenderer_Render(t *testing.T) {
	embedder := &fakeEmbedder{}
	r := NewEmbeddingsRenderer(embedder, "nomic-embed-text", 512)

	nodes := []core.DocNode{
		{Kind: core.KindFunction, Name: "foo", JsDoc: &core.JsDoc{Doc: "Does foo."}},
		{Kind: core.KindClass, Name: "Bar"},
	}
	data, err := r.Render(context.Background(), nodes, core.DocMetadata{Source: "mod.ts"})
	require.NoError(t, err)

	assert.Equal(t, []string{"## Function: foo Does foo.", "## Class: Bar"}, embedder.texts)

	out := string(data)
	assert.True(t, strings.HasPrefix(out, "# source: mod.ts\n# model: nomic-embed-text\n# chunk_size: 512\n\n"))
	assert.Contains(t, out, "--- chunk 2 ---\nTEXT:\n## Class: Bar\n\nVECTOR:\n[0.5000, 2.0000]\n")
	assert.Equal(t, ".embeddings.txt", r.Extension())
}

func TestEmbeddingsRenderer_NoContent(t *testing.T) {
	_, err := NewEmbeddingsRenderer(&fakeEmbedder{}, "m", 10).Render(context.Background(), nil, core.DocMetadata{})
	assert.Error(t, err)
}

func TestEmbeddingsRenderer_EmbedError(t *testing.T) {
	r := NewEmbeddingsRenderer(&fakeEmbedder{err: errors.New("boom")}, "m", 10)
	_, err := r.Render(context.Background(), []core.DocNode{{Kind: core.KindEnum, Name: "E"}}, core.DocMetadata{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedding chunk 1")
}

func TestEmbeddingsRenderer_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request sent despite canceled context")
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewEmbeddingsRenderer(NewOllamaEmbedder(server.URL), "m", 10)
	_, err := r.Render(ctx, []core.DocNode{{Kind: core.KindEnum, Name: "E"}}, core.DocMetadata{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOllamaEmbedder_Embed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req ollamaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "m", req.Model)
		assert.Equal(t, "hello", req.Prompt)

		_ = json.NewEncoder(w).Encode(ollamaResponse{Embedding: []float64{1, 2, 3}})
	}))
	defer server.Close()

	vec, err := NewOllamaEmbedder(server.URL).Embed(context.Background(), "hello", "m")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, vec)
}

func TestOllamaEmbedder_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewOllamaEmbedder(server.URL).Embed(context.Background(), "hello", "m")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "model not found")
}
