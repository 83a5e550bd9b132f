package qrcode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReturnsPNG(t *testing.T) {
	png, err := Generate("http://localhost:8080/")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")))
}

func TestTerminal(t *testing.T) {
	out, err := Terminal("http://localhost:8080/")
	require.NoError(t, err)
	assert.Greater(t, strings.Count(out, "\n"), 10)
}
