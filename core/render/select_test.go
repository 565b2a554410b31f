package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		format string
		ext    string
	}{
		{"", ".md"},
		{FormatMarkdown, ".md"},
		{FormatJSON, ".json"},
		{FormatPDF, ".pdf"},
		{FormatEmbeddings, ".embeddings.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			r, err := New(tt.format, Options{Model: "m", ChunkSize: 10})
			require.NoError(t, err)
			assert.Equal(t, tt.ext, r.Extension())
		})
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New("html", Options{})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
