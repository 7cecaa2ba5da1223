package util

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestValidateMimeTypeAcceptsByPrefix(t *testing.T) {
	mime, err := ValidateMimeType(bytes.NewReader(pngHeader), []string{"image/"})
	require.NoError(t, err)
	require.Equal(t, "image/png", mime)
}

func TestValidateMimeTypeAcceptsTextWithCharsetSuffix(t *testing.T) {
	mime, err := ValidateMimeType(strings.NewReader("plain text body"), []string{"text/plain"})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(mime, "text/plain"))
}

func TestValidateMimeTypeRejectsUnlistedType(t *testing.T) {
	_, err := ValidateMimeType(bytes.NewReader(pngHeader), []string{"application/pdf"})
	require.ErrorIs(t, err, ErrUnsupportedFileType)
}
