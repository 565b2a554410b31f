// Package crawl — module specifier rules.
// Provides helpers to filter, normalize, and resolve import specifiers
// during module discovery.
package crawl

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// documentableExtensions are the source extensions the extractor understands.
var documentableExtensions = map[string]bool{
	".ts": true, ".tsx": true, ".mts": true, ".cts": true,
	".js": true, ".jsx": true, ".mjs": true, ".cjs": true,
}

// IsLocalModule reports whether an import specifier refers to a module on
// the local filesystem: a file:// URL or a relative path.
func IsLocalModule(specifier string) bool {
	if strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../") {
		return true
	}
	parsed, err := url.Parse(specifier)
	if err != nil {
		return false
	}
	return parsed.Scheme == "file"
}

// IsDocumentable reports whether a module path has a source extension.
func IsDocumentable(modulePath string) bool {
	ext := strings.ToLower(path.Ext(modulePath))
	return documentableExtensions[ext]
}

// ResolveSpecifier turns a local import specifier into a clean filesystem
// path. Relative specifiers are resolved against the importing module's
// directory. It returns "" for specifiers that are not local.
func ResolveSpecifier(specifier string, importer string) string {
	if strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../") {
		return filepath.Clean(filepath.Join(filepath.Dir(importer), filepath.FromSlash(specifier)))
	}

	parsed, err := url.Parse(specifier)
	if err != nil || parsed.Scheme != "file" {
		return ""
	}
	// Query and fragment are dropped; only the path identifies the module.
	return filepath.Clean(filepath.FromSlash(parsed.Path))
}

// NormalizePath makes a module path absolute and clean for deduplication.
func NormalizePath(modulePath string) string {
	abs, err := filepath.Abs(modulePath)
	if err != nil {
		return filepath.Clean(modulePath)
	}
	return abs
}
