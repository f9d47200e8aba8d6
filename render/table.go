package render

import (
	"bufio"
	"io"
	"strconv"
	"unicode"

	huffman "github.com/chronos-tachyon/hufftree"
	"github.com/mattn/go-runewidth"
)

var _tableHeader = [...]string{"SYMBOL", "WEIGHT", "CODEWORD"}

// Table writes the codebook as aligned columns of symbol, weight and
// codeword.  Column widths account for wide (e.g. CJK) symbols.
func Table(w io.Writer, cb *huffman.Codebook) error {
	entries := cb.Entries()

	symbols := make([]string, len(entries))
	weights := make([]string, len(entries))
	symbolWidth := runewidth.StringWidth(_tableHeader[0])
	weightWidth := runewidth.StringWidth(_tableHeader[1])
	for i, entry := range entries {
		symbols[i] = displaySymbol(entry.Symbol)
		weights[i] = strconv.FormatUint(entry.Weight, 10)
		symbolWidth = max(symbolWidth, runewidth.StringWidth(symbols[i]))
		weightWidth = max(weightWidth, len(weights[i]))
	}

	bw := bufio.NewWriter(w)
	writeRow := func(symbol, weight, codeword string) {
		bw.WriteString(runewidth.FillRight(symbol, symbolWidth))
		bw.WriteString("  ")
		bw.WriteString(runewidth.FillLeft(weight, weightWidth))
		bw.WriteString("  ")
		bw.WriteString(codeword)
		bw.WriteByte('\n')
	}

	writeRow(_tableHeader[0], _tableHeader[1], _tableHeader[2])
	for i, entry := range entries {
		writeRow(symbols[i], weights[i], string(entry.Codeword))
	}
	return bw.Flush()
}

// displaySymbol shows printable symbols as-is and everything else (space
// included) in Go escape syntax.
func displaySymbol(symbol huffman.Symbol) string {
	r := rune(symbol)
	switch {
	case r == ' ':
		return `\x20`
	case unicode.IsPrint(r):
		return string(r)
	}
	q := strconv.QuoteRune(r)
	return q[1 : len(q)-1]
}
