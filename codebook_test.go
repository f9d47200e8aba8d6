package huffman

import (
	"strings"
	"testing"

	"github.com/chronos-tachyon/hufftree/internal/log/logtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestCodebook_Dump(t *testing.T) {
	root, err := BuildString("abbcccddddeeeee")
	if err != nil {
		t.Fatalf("BuildString failed: %v", err)
	}
	cb := NewCodebook(root, Options{})

	expectDump := strings.Join([]string{
		"Codebook{\n",
		"\tMinSize() = 2\n",
		"\tMaxSize() = 3\n",
		"\tLookup('c') = \"00\" [weight 3]\n",
		"\tLookup('a') = \"010\" [weight 1]\n",
		"\tLookup('b') = \"011\" [weight 2]\n",
		"\tLookup('d') = \"10\" [weight 4]\n",
		"\tLookup('e') = \"11\" [weight 5]\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = cb.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestCodebook(t *testing.T) {
	t.Parallel()

	root, err := BuildString("abbcccddddeeeee")
	require.NoError(t, err)
	cb := NewCodebook(root, Options{Log: logtest.NewLogger(t)})

	assert.Equal(t, 5, cb.Len())
	assert.Equal(t, 2, cb.MinSize())
	assert.Equal(t, 3, cb.MaxSize())
	assert.Equal(t, uint64(33), cb.WeightedPathLength())
	assert.NoError(t, cb.Validate())

	cw, ok := cb.Lookup('b')
	assert.True(t, ok)
	assert.Equal(t, Codeword("011"), cw)

	_, ok = cb.Lookup('z')
	assert.False(t, ok)

	entries := cb.Entries()
	require.Len(t, entries, 5)
	assert.Equal(t, CodebookEntry{Symbol: 'c', Weight: 3, Codeword: "00"}, entries[0])
}

func TestCodebook_singleSymbol(t *testing.T) {
	t.Parallel()

	root, err := BuildString("aaaa")
	require.NoError(t, err)
	cb := NewCodebook(root, Options{Workers: 8})

	assert.Equal(t, []CodebookEntry{{Symbol: 'a', Weight: 4, Codeword: ""}}, cb.Entries())
	assert.Zero(t, cb.MinSize())
	assert.Zero(t, cb.MaxSize())
	assert.Zero(t, cb.WeightedPathLength())
	assert.NoError(t, cb.Validate())
}

func TestCodebook_parallel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		weights := rapid.SliceOfN(rapid.Uint64Range(1, 1000), 1, 200).Draw(t, "weights")
		workers := rapid.IntRange(2, 16).Draw(t, "workers")

		root, err := Build(entriesOf(weights))
		require.NoError(t, err)

		serial := NewCodebook(root, Options{Workers: 1})
		parallel := NewCodebook(root, Options{Workers: workers})
		assert.Equal(t, serial.Entries(), parallel.Entries())
		assert.Equal(t, WeightedPathLength(root), parallel.WeightedPathLength())
		assert.NoError(t, parallel.Validate())
	})
}
