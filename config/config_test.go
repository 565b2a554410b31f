package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_DefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(DefaultFile, []byte("source: lib/mod.ts\nnormalize_html: true\n"), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "lib/mod.ts", cfg.Source)
	assert.True(t, cfg.NormalizeHTML)
	assert.Equal(t, DefaultTemplate, cfg.Template)
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
format: embeddings
model: nomic-embed-text
chunk_size: 128
output: docs/API.md
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "embeddings", cfg.Format)
	assert.Equal(t, "nomic-embed-text", cfg.Model)
	assert.Equal(t, 128, cfg.ChunkSize)
	assert.Equal(t, "docs/API.md", cfg.Output)
	assert.Equal(t, DefaultSource, cfg.Source)
	require.NoError(t, cfg.Validate())
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chunk_size: [oops"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"unknown format", func(c *Config) { c.Format = "html" }, "format"},
		{"embeddings without model", func(c *Config) { c.Format = "embeddings" }, "model"},
		{"embeddings with model", func(c *Config) { c.Format = "embeddings"; c.Model = "m" }, ""},
		{"zero chunk size", func(c *Config) { c.ChunkSize = 0 }, "chunk_size"},
		{"no source", func(c *Config) { c.Source = "" }, "source"},
		{"input instead of source", func(c *Config) { c.Source = ""; c.Input = "docs.json" }, ""},
		{"input with all", func(c *Config) { c.Input = "docs.json"; c.All = true }, "all"},
		{"no output", func(c *Config) { c.Output = "" }, "output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
