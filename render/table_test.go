package render

import (
	"strings"
	"testing"

	huffman "github.com/chronos-tachyon/hufftree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
		want []string
	}{
		{
			desc: "five symbols",
			give: "abbcccddddeeeee",
			want: []string{
				"SYMBOL  WEIGHT  CODEWORD",
				"c            3  00",
				"a            1  010",
				"b            2  011",
				"d            4  10",
				"e            5  11",
			},
		},
		{
			desc: "wide and control symbols",
			give: "世世世\n\n ",
			want: []string{
				"SYMBOL  WEIGHT  CODEWORD",
				"世           3  0",
				`\x20         1  10`,
				`\n           2  11`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			root, err := huffman.BuildString(tt.give)
			require.NoError(t, err)

			var buf strings.Builder
			require.NoError(t, Table(&buf, huffman.NewCodebook(root, huffman.Options{})))
			assert.Equal(t, strings.Join(tt.want, "\n")+"\n", buf.String())
		})
	}
}

func TestDisplaySymbol(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a", displaySymbol('a'))
	assert.Equal(t, "世", displaySymbol('世'))
	assert.Equal(t, `\t`, displaySymbol('\t'))
	assert.Equal(t, `\x00`, displaySymbol(0))
	assert.Equal(t, `\x20`, displaySymbol(' '))
}
