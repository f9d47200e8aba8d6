package render

import (
	"io"

	huffman "github.com/chronos-tachyon/hufftree"
	"github.com/kr/pretty"
)

// GoSyntax writes the codebook entries as a Go composite literal.
func GoSyntax(w io.Writer, cb *huffman.Codebook) error {
	_, err := pretty.Fprintf(w, "%# v\n", cb.Entries())
	return err
}
