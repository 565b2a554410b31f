package extract

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/docnode2md/core"
)

// fakeDeno writes an executable script standing in for the deno binary.
func fakeDeno(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "deno")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755))
	return path
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestNew_Defaults(t *testing.T) {
	e := New("", nil)
	assert.Equal(t, DefaultBinary, e.Binary)
	assert.NotNil(t, e.log)
}

func TestDenoExtractor_Extract(t *testing.T) {
	// Echo the arguments back inside the doc text so they can be checked.
	bin := fakeDeno(t, `printf '[{"kind":"function","name":"foo","jsDoc":{"doc":"%s"}}]' "$*"`)

	nodes, err := New(bin, quietLogger()).Extract(context.Background(), "mod.ts")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, core.KindFunction, nodes[0].Kind)
	assert.Equal(t, "foo", nodes[0].Name)
	assert.Equal(t, "doc --json mod.ts", nodes[0].JsDoc.Doc)
}

func TestDenoExtractor_NonZeroExit(t *testing.T) {
	bin := fakeDeno(t, `echo "error: Module not found" >&2; exit 1`)

	_, err := New(bin, quietLogger()).Extract(context.Background(), "missing.ts")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtractorFailed)
	assert.Contains(t, err.Error(), "Module not found")
}

func TestDenoExtractor_InvalidOutput(t *testing.T) {
	bin := fakeDeno(t, `echo "not json"`)

	_, err := New(bin, quietLogger()).Extract(context.Background(), "mod.ts")
	assert.ErrorIs(t, err, core.ErrInvalidNodes)
}

func TestDenoExtractor_MissingBinary(t *testing.T) {
	bin := filepath.Join(t.TempDir(), "no-such-deno")

	_, err := New(bin, quietLogger()).Extract(context.Background(), "mod.ts")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrExtractorFailed)
}
