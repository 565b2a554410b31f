// Package extract implements the Extractor interface.
// It runs `deno doc --json` on a source module and decodes the documentation
// nodes printed on stdout.
package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/gaurav-prasanna/docnode2md/core"
	"github.com/sirupsen/logrus"
)

// DefaultBinary is the documentation tool looked up on PATH.
const DefaultBinary = "deno"

// ErrExtractorFailed is returned when the documentation tool exits non-zero.
var ErrExtractorFailed = errors.New("documentation extractor failed")

// DenoExtractor extracts documentation nodes with `deno doc`.
type DenoExtractor struct {
	Binary string
	log    *logrus.Logger
}

// New creates a DenoExtractor. An empty binary selects DefaultBinary.
func New(binary string, log *logrus.Logger) *DenoExtractor {
	if binary == "" {
		binary = DefaultBinary
	}
	if log == nil {
		log = logrus.New()
	}
	return &DenoExtractor{Binary: binary, log: log}
}

// Extract runs the tool on source and returns its nodes. A non-zero exit
// status is an error carrying the tool's stderr.
func (e *DenoExtractor) Extract(ctx context.Context, source string) ([]core.DocNode, error) {
	args := []string{"doc", "--json", source}
	e.log.WithFields(logrus.Fields{"binary": e.Binary, "source": source}).Debug("Running documentation extractor")

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.Binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%w: %s doc %s: exit %d: %s",
				ErrExtractorFailed, e.Binary, source, exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("running %s: %w", e.Binary, err)
	}

	nodes, err := core.DecodeNodes(stdout.Bytes())
	if err != nil {
		return nil, fmt.Errorf("decoding %s doc output: %w", e.Binary, err)
	}
	e.log.WithField("nodes", len(nodes)).Debugf("Extracted documentation for %s", source)
	return nodes, nil
}
