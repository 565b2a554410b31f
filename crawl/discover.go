// Package crawl provides module discovery for --all mode.
// Starting from an entry module it follows local import nodes breadth-first,
// so a package's documentation covers every module it is built from.
package crawl

import (
	"context"
	"fmt"

	"github.com/gaurav-prasanna/docnode2md/core"
	"github.com/sirupsen/logrus"
)

// maxModules bounds discovery to avoid runaway walks.
const maxModules = 100

// Module is one documented module and its nodes.
type Module struct {
	Path  string
	Nodes []core.DocNode
}

// DiscoverModules extracts entry and every local module reachable through
// its import nodes, in BFS order. Failing to extract the entry is an error;
// failures on imported modules are logged and skipped.
func DiscoverModules(ctx context.Context, entry string, extractor core.Extractor, log *logrus.Logger) ([]Module, error) {
	if log == nil {
		log = logrus.New()
	}

	queue := NewQueue()
	queue.Add(NormalizePath(entry))

	var modules []Module
	for queue.HasNext() && queue.Processed() < maxModules {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		current := queue.Next()

		nodes, err := extractor.Extract(ctx, current)
		if err != nil {
			if len(modules) == 0 {
				return nil, fmt.Errorf("extracting entry module: %w", err)
			}
			log.Warnf("Skipping module %s: %v", current, err)
			continue
		}
		modules = append(modules, Module{Path: current, Nodes: nodes})

		for _, imported := range localImports(nodes, current) {
			if queue.Add(imported) {
				log.Debugf("Discovered module %s from %s", imported, current)
			}
		}
	}

	if queue.HasNext() {
		log.Warnf("Module limit of %d reached; %d modules not documented", maxModules, queue.Visited()-queue.Processed())
	}
	return modules, nil
}

// localImports returns the documentable local modules imported by nodes.
func localImports(nodes []core.DocNode, importer string) []string {
	var paths []string
	for _, n := range nodes {
		if n.Kind != core.KindImport || n.ImportDef == nil {
			continue
		}
		src := n.ImportDef.Src
		if !IsLocalModule(src) {
			continue
		}
		resolved := ResolveSpecifier(src, importer)
		if resolved == "" || !IsDocumentable(resolved) {
			continue
		}
		paths = append(paths, NormalizePath(resolved))
	}
	return paths
}

// Flatten concatenates module nodes in discovery order.
func Flatten(modules []Module) []core.DocNode {
	var nodes []core.DocNode
	for _, m := range modules {
		nodes = append(nodes, m.Nodes...)
	}
	return nodes
}
