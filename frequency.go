package huffman

import (
	"errors"
	"fmt"
	"io"
)

// FrequencyEntry pairs a Symbol with the number of times it occurred.
type FrequencyEntry struct {
	Symbol Symbol
	Count  uint64
}

// String returns a short human-readable form, e.g. "'a':3".
func (fe FrequencyEntry) String() string {
	return fmt.Sprintf("%q:%d", rune(fe.Symbol), fe.Count)
}

// FrequencyTable counts occurrences of each distinct Symbol.  Entries are
// kept in order of first occurrence, which is the order Build uses to break
// ties between equal weights.
//
// The zero value is an empty table ready to use.
type FrequencyTable struct {
	entries []FrequencyEntry
	index   map[Symbol]int
	total   uint64
}

// CountFrequencies tallies the given sequence.  An empty sequence yields an
// empty table.
func CountFrequencies(symbols []Symbol) *FrequencyTable {
	ft := new(FrequencyTable)
	for _, symbol := range symbols {
		ft.Add(symbol)
	}
	return ft
}

// CountString tallies s one rune at a time.
func CountString(s string) *FrequencyTable {
	ft := new(FrequencyTable)
	for _, r := range s {
		ft.Add(Symbol(r))
	}
	return ft
}

// CountReader tallies runes read from r until io.EOF.  Any other read error is
// returned along with the counts gathered so far.
func CountReader(r io.RuneReader) (*FrequencyTable, error) {
	ft := new(FrequencyTable)
	for {
		ch, _, err := r.ReadRune()
		if errors.Is(err, io.EOF) {
			return ft, nil
		}
		if err != nil {
			return ft, fmt.Errorf("read symbols: %w", err)
		}
		ft.Add(Symbol(ch))
	}
}

// Add records one more occurrence of symbol.
func (ft *FrequencyTable) Add(symbol Symbol) {
	if ft.index == nil {
		ft.index = make(map[Symbol]int)
	}
	if i, found := ft.index[symbol]; found {
		ft.entries[i].Count++
	} else {
		ft.index[symbol] = len(ft.entries)
		ft.entries = append(ft.entries, FrequencyEntry{Symbol: symbol, Count: 1})
	}
	ft.total++
}

// Len returns the number of distinct symbols.
func (ft *FrequencyTable) Len() int {
	return len(ft.entries)
}

// Total returns the number of symbols counted, i.e. the length of the input.
func (ft *FrequencyTable) Total() uint64 {
	return ft.total
}

// Count returns how many times symbol was seen.
func (ft *FrequencyTable) Count(symbol Symbol) uint64 {
	if i, found := ft.index[symbol]; found {
		return ft.entries[i].Count
	}
	return 0
}

// Entries returns a copy of the table in first-occurrence order.
func (ft *FrequencyTable) Entries() []FrequencyEntry {
	out := make([]FrequencyEntry, len(ft.entries))
	copy(out, ft.entries)
	return out
}

// Map returns the table as a plain map.
func (ft *FrequencyTable) Map() map[Symbol]uint64 {
	out := make(map[Symbol]uint64, len(ft.entries))
	for _, fe := range ft.entries {
		out[fe.Symbol] = fe.Count
	}
	return out
}

// Build constructs the Huffman tree for this table.  See Build.
func (ft *FrequencyTable) Build() (*Node, error) {
	return Build(ft.entries)
}
