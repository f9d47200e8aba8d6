package render

import (
	"strings"
	"testing"

	huffman "github.com/chronos-tachyon/hufftree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoSyntax(t *testing.T) {
	t.Parallel()

	root, err := huffman.BuildString("ab")
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, GoSyntax(&buf, huffman.NewCodebook(root, huffman.Options{})))

	out := buf.String()
	assert.Contains(t, out, "huffman.CodebookEntry{")
	assert.Contains(t, out, "Weight:")
	assert.Contains(t, out, "Codeword:")
	assert.True(t, strings.HasSuffix(out, "}\n"), "output:\n%s", out)
}
