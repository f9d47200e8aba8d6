package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	huffman "github.com/chronos-tachyon/hufftree"
)

// DefaultItemFormat is the default LaTeXOptions.ItemFormat.
const DefaultItemFormat = "Code for '%s': %s"

// LaTeXOptions customize LaTeX.
type LaTeXOptions struct {
	// ItemFormat is the fmt format of each list item.  It receives the
	// escaped symbol and the codeword, in that order.
	ItemFormat string
}

// LaTeX writes the codebook of the tree at root as an itemize list, one item
// per leaf in left-to-right order, followed by the tree itself in qtree
// syntax:
//
//	\begin{itemize}
//	\item Code for 'a': 0
//	\item Code for 'b': 1
//	\end{itemize}
//	\Tree [.{2} [.{a (1)}  ] [.{b (1)}  ]]
func LaTeX(w io.Writer, root *huffman.Node, opts LaTeXOptions) error {
	format := opts.ItemFormat
	if format == "" {
		format = DefaultItemFormat
	}

	bw := bufio.NewWriter(w)
	bw.WriteString("\\begin{itemize}\n")
	for leaf := range huffman.Leaves(root) {
		bw.WriteString("\\item ")
		fmt.Fprintf(bw, format, escapeLaTeX(leaf.Symbol()), string(huffman.CodewordOf(leaf)))
		bw.WriteByte('\n')
	}
	bw.WriteString("\\end{itemize}\n")
	bw.WriteString("\\Tree ")
	writeQtree(bw, root)
	bw.WriteByte('\n')
	return bw.Flush()
}

func writeQtree(bw *bufio.Writer, n *huffman.Node) {
	bw.WriteString("[.{")
	if n.HasSymbol() {
		bw.WriteString(escapeLaTeX(n.Symbol()))
		bw.WriteString(" (")
	}
	bw.WriteString(strconv.FormatUint(n.Weight(), 10))
	if n.HasSymbol() {
		bw.WriteByte(')')
	}
	bw.WriteString("} ")
	if left := n.Left(); left != nil {
		writeQtree(bw, left)
	}
	bw.WriteByte(' ')
	if right := n.Right(); right != nil {
		writeQtree(bw, right)
	}
	bw.WriteByte(']')
}

var _latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`#`, `\#`,
	`$`, `\$`,
	`%`, `\%`,
	`&`, `\&`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
	` `, `\textvisiblespace{}`,
	"\n", `\textbackslash{}n`,
	"\t", `\textbackslash{}t`,
)

func escapeLaTeX(symbol huffman.Symbol) string {
	return _latexReplacer.Replace(symbol.String())
}
