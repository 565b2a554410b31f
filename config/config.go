// Package config loads docnode2md settings from an optional YAML file.
// Command-line flags are applied on top by the cmd package.
package config

import (
	"errors"
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goccy/go-yaml"

	"github.com/gaurav-prasanna/docnode2md/core/render"
)

// DefaultFile is read from the working directory when no file is named.
const DefaultFile = ".docnode2md.yaml"

// Defaults mirror the layout of a Deno module with a README template.
const (
	DefaultSource    = "mod.ts"
	DefaultTemplate  = "README.md.tpl"
	DefaultOutput    = "README.md"
	DefaultChunkSize = 512
)

// Config holds every setting of a generate run. The json tags name fields
// in validation errors.
type Config struct {
	Source        string `yaml:"source" json:"source"`
	Input         string `yaml:"input" json:"input"`
	Template      string `yaml:"template" json:"template"`
	Output        string `yaml:"output" json:"output"`
	Format        string `yaml:"format" json:"format"`
	All           bool   `yaml:"all" json:"all"`
	NormalizeHTML bool   `yaml:"normalize_html" json:"normalize_html"`
	Deno          string `yaml:"deno" json:"deno"`
	Model         string `yaml:"model" json:"model"`
	ChunkSize     int    `yaml:"chunk_size" json:"chunk_size"`
	OllamaURL     string `yaml:"ollama_url" json:"ollama_url"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Source:    DefaultSource,
		Template:  DefaultTemplate,
		Output:    DefaultOutput,
		Format:    render.FormatMarkdown,
		ChunkSize: DefaultChunkSize,
	}
}

// Load reads the YAML file at path over the defaults. An empty path reads
// DefaultFile if it exists; an explicitly named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for a generate run.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Format, validation.In(formats()...)),
		validation.Field(&c.Source, validation.When(c.Input == "", validation.Required)),
		validation.Field(&c.Output, validation.Required),
		validation.Field(&c.ChunkSize, validation.Required, validation.Min(1)),
		validation.Field(&c.Model, validation.When(c.Format == render.FormatEmbeddings,
			validation.Required.Error("is required when format is embeddings"))),
		validation.Field(&c.All, validation.When(c.Input != "",
			validation.Empty.Error("cannot be combined with input"))),
	)
}

func formats() []interface{} {
	out := make([]interface{}, len(render.Formats))
	for i, f := range render.Formats {
		out[i] = f
	}
	return out
}
