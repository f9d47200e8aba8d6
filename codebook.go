package huffman

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/chronos-tachyon/hufftree/internal/log"
)

// CodebookEntry is one row of a Codebook.
type CodebookEntry struct {
	Symbol   Symbol
	Weight   uint64
	Codeword Codeword
}

// Options tune how NewCodebook resolves codewords.
type Options struct {
	// Workers is the number of goroutines resolving codewords.  Values
	// below 2 resolve every leaf on the calling goroutine.
	Workers int

	// Log receives debug messages.  Defaults to log.Discard.
	Log *log.Logger
}

// Codebook holds the codeword of every leaf of a finished tree.
type Codebook struct {
	entries []CodebookEntry
	index   map[Symbol]int
	minSize int
	maxSize int
}

// NewCodebook resolves the codeword of every leaf under root.  Entries are
// kept in left-to-right leaf order.
//
// Each leaf's walk to the root only reads the tree, so with opts.Workers > 1
// the leaves are split between that many goroutines, each writing its own
// slots of the result; the goroutines are joined before NewCodebook returns.
func NewCodebook(root *Node, opts Options) *Codebook {
	logger := opts.Log
	if logger == nil {
		logger = log.Discard
	}

	var leaves []*Node
	for n := range Leaves(root) {
		leaves = append(leaves, n)
	}

	entries := make([]CodebookEntry, len(leaves))
	resolve := func(i int) {
		n := leaves[i]
		entries[i] = CodebookEntry{
			Symbol:   n.Symbol(),
			Weight:   n.Weight(),
			Codeword: CodewordOf(n),
		}
	}

	workers := opts.Workers
	if workers > len(leaves) {
		workers = len(leaves)
	}
	if workers < 2 {
		for i := range leaves {
			resolve(i)
		}
	} else {
		var wg sync.WaitGroup
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			go func(w int) {
				defer wg.Done()
				for i := w; i < len(leaves); i += workers {
					resolve(i)
				}
			}(w)
		}
		wg.Wait()
	}

	cb := &Codebook{
		entries: entries,
		index:   make(map[Symbol]int, len(entries)),
	}
	for i, entry := range entries {
		cb.index[entry.Symbol] = i
		size := entry.Codeword.Len()
		if i == 0 {
			cb.minSize, cb.maxSize = size, size
		} else if cb.minSize > size {
			cb.minSize = size
		} else if cb.maxSize < size {
			cb.maxSize = size
		}
	}

	logger.Debug("resolved codewords",
		slog.Int("symbols", len(entries)),
		slog.Int("workers", max(workers, 1)),
		slog.Int("minSize", cb.minSize),
		slog.Int("maxSize", cb.maxSize))
	return cb
}

// Lookup returns the Codeword for symbol.  The second result is false if the
// symbol is not in the code.
func (cb *Codebook) Lookup(symbol Symbol) (Codeword, bool) {
	i, found := cb.index[symbol]
	if !found {
		return "", false
	}
	return cb.entries[i].Codeword, true
}

// Entries returns a copy of the codebook in left-to-right leaf order.
func (cb *Codebook) Entries() []CodebookEntry {
	out := make([]CodebookEntry, len(cb.entries))
	copy(out, cb.entries)
	return out
}

// Len returns the number of symbols in the code.
func (cb *Codebook) Len() int {
	return len(cb.entries)
}

// MinSize is the bit length of the shortest codeword.
func (cb *Codebook) MinSize() int {
	return cb.minSize
}

// MaxSize is the bit length of the longest codeword.
func (cb *Codebook) MaxSize() int {
	return cb.maxSize
}

// WeightedPathLength returns the sum of weight times codeword length, i.e.
// the number of bits needed to encode the counted input.
func (cb *Codebook) WeightedPathLength() uint64 {
	var sum uint64
	for _, entry := range cb.entries {
		sum += entry.Weight * uint64(entry.Codeword.Len())
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the Codebook's current
// state to the given writer.
func (cb *Codebook) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Codebook{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", cb.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", cb.maxSize)
	for _, entry := range cb.entries {
		fmt.Fprintf(&buf, "\tLookup(%q) = %s [weight %d]\n", rune(entry.Symbol), entry.Codeword, entry.Weight)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
