// Package fetch implements the Loader interface.
// It reads documentation JSON that was extracted ahead of time, either from
// an http(s) URL or from a local file ("-" reads stdin).
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gaurav-prasanna/docnode2md/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "docnode2md/1.0 (https://github.com/gaurav-prasanna/docnode2md)"
)

// NodeLoader loads documentation nodes from URLs and files.
type NodeLoader struct {
	client *http.Client
	stdin  io.Reader
}

// New creates a NodeLoader with a sensible HTTP timeout.
func New() *NodeLoader {
	return &NodeLoader{
		client: &http.Client{Timeout: defaultTimeout},
		stdin:  os.Stdin,
	}
}

// Load reads and decodes the documentation JSON at location.
func (l *NodeLoader) Load(ctx context.Context, location string) ([]core.DocNode, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case location == "-":
		data, err = io.ReadAll(l.stdin)
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		data, err = l.fetch(ctx, location)
	default:
		data, err = os.ReadFile(location)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", location, err)
	}

	nodes, err := core.DecodeNodes(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", location, err)
	}
	return nodes, nil
}

// fetch retrieves the body of the given URL.
func (l *NodeLoader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}
