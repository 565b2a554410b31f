// Package cmd — generate command.
// This is the main command that orchestrates the pipeline:
// extract (or load) → normalize → render → template → write.
//
// It handles flag/config merging, renderer selection, and the --all and
// --check modes.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gaurav-prasanna/docnode2md/config"
	"github.com/gaurav-prasanna/docnode2md/core"
	"github.com/gaurav-prasanna/docnode2md/core/extract"
	"github.com/gaurav-prasanna/docnode2md/core/fetch"
	"github.com/gaurav-prasanna/docnode2md/core/normalize"
	"github.com/gaurav-prasanna/docnode2md/core/output"
	"github.com/gaurav-prasanna/docnode2md/core/render"
	"github.com/gaurav-prasanna/docnode2md/crawl"
)

// generateFlags are the generate command's own flags. Values are only
// applied over the config file when the flag was set explicitly.
type generateFlags struct {
	cfg    config.Config
	check  bool
	stdout bool
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	flags := &generateFlags{}

	generateCmd := &cobra.Command{
		Use:   "generate [source]",
		Short: "Generate Markdown documentation for a module",
		Long: `Generate runs "deno doc --json" on a source module (or loads pre-extracted
JSON), renders the nodes to Markdown and replaces the first
<!-- generate:docs --> marker of the template with the result.

Examples:
  docnode2md generate
  docnode2md generate mod.ts --template README.md.tpl --output README.md
  docnode2md generate --input docs.json --stdout
  docnode2md generate mod.ts --all --check
  docnode2md generate mod.ts --format embeddings --model nomic-embed-text`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, root, flags)
		},
	}

	fs := generateCmd.Flags()
	fs.StringVar(&flags.cfg.Template, "template", config.DefaultTemplate, "Template containing the "+output.Marker+" marker (empty: no template)")
	fs.StringVar(&flags.cfg.Output, "output", config.DefaultOutput, "Output file")
	fs.StringVar(&flags.cfg.Input, "input", "", "Read pre-extracted documentation JSON from a file, URL or - for stdin")
	fs.StringVar(&flags.cfg.Format, "format", render.FormatMarkdown, "Output format: "+strings.Join(render.Formats, ", "))
	fs.BoolVar(&flags.cfg.All, "all", false, "Also document local modules imported by the source")
	fs.BoolVar(&flags.cfg.NormalizeHTML, "normalize-html", false, "Convert inline HTML in comments to Markdown")
	fs.StringVar(&flags.cfg.Deno, "deno", extract.DefaultBinary, "Path to the deno binary")
	fs.StringVar(&flags.cfg.Model, "model", "", "Embedding model (required with --format embeddings)")
	fs.IntVar(&flags.cfg.ChunkSize, "chunk_size", config.DefaultChunkSize, "Token chunk size for embeddings")
	fs.StringVar(&flags.cfg.OllamaURL, "ollama_url", render.DefaultOllamaURL, "Embeddings API endpoint")
	fs.BoolVar(&flags.check, "check", false, "Fail if the output file is not up to date instead of writing it")
	fs.BoolVar(&flags.stdout, "stdout", false, "Print the result instead of writing the output file")

	return generateCmd
}

func runGenerate(cmd *cobra.Command, args []string, root *rootOptions, flags *generateFlags) error {
	log := root.log
	ctx := cmd.Context()

	if flags.check && flags.stdout {
		return fmt.Errorf("--check and --stdout are mutually exclusive")
	}

	// --- Resolve configuration ---
	cfg, err := config.Load(root.configPath)
	if err != nil {
		return err
	}
	mergeFlags(&cfg, &flags.cfg, cmd.Flags())
	sourceSet := len(args) == 1 || cmd.Flags().Changed("input")
	if len(args) == 1 {
		cfg.Source = args[0]
	}

	var tpl *output.Template
	if cfg.Template != "" && (cfg.Format == render.FormatMarkdown || cfg.Format == "") {
		tpl, err = output.LoadTemplate(cfg.Template)
		if err != nil {
			return err
		}
		applyTemplateMeta(&cfg, tpl.Meta, sourceSet, cmd.Flags().Changed("output"))
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// --- Run the pipeline ---
	nodes, meta, err := collectNodes(ctx, cfg, log)
	if err != nil {
		return err
	}

	if cfg.NormalizeHTML {
		var normalizer core.Normalizer = normalize.New()
		nodes, err = normalizer.Normalize(nodes)
		if err != nil {
			return fmt.Errorf("normalize: %w", err)
		}
	}

	renderer, err := render.New(cfg.Format, render.Options{
		Model:     cfg.Model,
		ChunkSize: cfg.ChunkSize,
		Embedder:  render.NewOllamaEmbedder(cfg.OllamaURL),
	})
	if err != nil {
		return err
	}

	data, err := renderer.Render(ctx, nodes, meta)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if tpl != nil {
		if !tpl.HasMarker() {
			log.Warnf("Template %s has no %s marker; output is the template unchanged", tpl.Path, output.Marker)
		}
		data = []byte(tpl.Apply(string(data)))
	}

	// --- Emit ---
	if flags.stdout {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	writer, err := output.New("")
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	target := outputName(cfg.Output, renderer.Extension())

	if flags.check {
		diff, err := writer.Check(target, data)
		if errors.Is(err, output.ErrOutOfDate) {
			printDiff(cmd, diff)
		}
		if err != nil {
			return err
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Up to date: %s\n", writer.Path(target))
		return nil
	}

	path, err := writer.Write(target, data)
	if err != nil {
		return err
	}
	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
	return nil
}

// collectNodes loads or extracts the documentation nodes selected by cfg.
func collectNodes(ctx context.Context, cfg config.Config, log *logrus.Logger) ([]core.DocNode, core.DocMetadata, error) {
	meta := core.DocMetadata{GeneratedAt: time.Now().UTC().Format(time.RFC3339)}

	switch {
	case cfg.Input != "":
		var loader core.Loader = fetch.New()
		nodes, err := loader.Load(ctx, cfg.Input)
		if err != nil {
			return nil, meta, fmt.Errorf("load: %w", err)
		}
		meta.Source = cfg.Input
		meta.NodeCount = len(nodes)
		return nodes, meta, nil

	case cfg.All:
		log.Infof("Discovering modules from %s...", cfg.Source)
		modules, err := crawl.DiscoverModules(ctx, cfg.Source, extract.New(cfg.Deno, log), log)
		if err != nil {
			return nil, meta, fmt.Errorf("discovering modules: %w", err)
		}
		log.Infof("Found %d modules to document", len(modules))

		nodes := crawl.Flatten(modules)
		meta.Source = cfg.Source
		meta.NodeCount = len(nodes)
		for _, m := range modules {
			meta.Modules = append(meta.Modules, m.Path)
		}
		return nodes, meta, nil

	default:
		nodes, err := extract.New(cfg.Deno, log).Extract(ctx, cfg.Source)
		if err != nil {
			return nil, meta, fmt.Errorf("extract: %w", err)
		}
		meta.Source = cfg.Source
		meta.NodeCount = len(nodes)
		return nodes, meta, nil
	}
}

// mergeFlags copies explicitly set flags from set into cfg.
func mergeFlags(cfg *config.Config, set *config.Config, fs *pflag.FlagSet) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "template":
			cfg.Template = set.Template
		case "output":
			cfg.Output = set.Output
		case "input":
			cfg.Input = set.Input
		case "format":
			cfg.Format = set.Format
		case "all":
			cfg.All = set.All
		case "normalize-html":
			cfg.NormalizeHTML = set.NormalizeHTML
		case "deno":
			cfg.Deno = set.Deno
		case "model":
			cfg.Model = set.Model
		case "chunk_size":
			cfg.ChunkSize = set.ChunkSize
		case "ollama_url":
			cfg.OllamaURL = set.OllamaURL
		}
	})
}

// applyTemplateMeta lets template front matter choose the source and output
// unless they were given on the command line.
func applyTemplateMeta(cfg *config.Config, meta output.TemplateMeta, sourceSet, outputSet bool) {
	if meta.Source != "" && !sourceSet {
		cfg.Source = meta.Source
	}
	if meta.Output != "" && !outputSet {
		cfg.Output = meta.Output
	}
}

// outputName swaps the extension of name for ext when the renderer does not
// produce Markdown, e.g. README.md → README.json.
func outputName(name, ext string) string {
	if ext == ".md" {
		return name
	}
	return strings.TrimSuffix(name, filepath.Ext(name)) + ext
}

// printDiff writes a colored line diff to the command's stderr.
func printDiff(cmd *cobra.Command, diff string) {
	add := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	out := cmd.ErrOrStderr()
	for _, line := range strings.SplitAfter(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			add.Fprint(out, line)
		case strings.HasPrefix(line, "-"):
			del.Fprint(out, line)
		default:
			fmt.Fprint(out, line)
		}
	}
}
