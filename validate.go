package huffman

import (
	"fmt"
	"math/big"
	"sort"

	"go.uber.org/multierr"
)

// Validate checks that the codebook is a complete prefix-free code: no
// codeword is a prefix of another, no symbol appears twice, and the Kraft sum
// over all codewords is exactly 1.  A codebook with a single empty codeword
// is accepted, as there is no other way to code a single symbol.
//
// Every violation found is reported; the errors are combined with multierr.
func (cb *Codebook) Validate() error {
	var err error

	switch len(cb.entries) {
	case 0:
		return nil
	case 1:
		if size := cb.entries[0].Codeword.Len(); size != 0 {
			err = multierr.Append(err, fmt.Errorf("single symbol %q has codeword of %d bits, want 0", rune(cb.entries[0].Symbol), size))
		}
		return err
	}

	seen := make(map[Symbol]struct{}, len(cb.entries))
	for _, entry := range cb.entries {
		if _, found := seen[entry.Symbol]; found {
			err = multierr.Append(err, fmt.Errorf("symbol %q appears more than once", rune(entry.Symbol)))
		}
		seen[entry.Symbol] = struct{}{}
		if entry.Codeword.Len() == 0 {
			err = multierr.Append(err, fmt.Errorf("symbol %q has an empty codeword", rune(entry.Symbol)))
		}
	}

	// After sorting, a prefix sorts immediately before the first word it
	// is a prefix of, so checking neighbours is enough.
	sorted := make(byCodeword, len(cb.entries))
	copy(sorted, cb.entries)
	sorted.Sort()
	for i := 1; i < len(sorted); i++ {
		a, b := sorted[i-1], sorted[i]
		if b.Codeword.HasPrefix(a.Codeword) {
			err = multierr.Append(err, fmt.Errorf("codeword %s of %q is a prefix of %s of %q",
				a.Codeword, rune(a.Symbol), b.Codeword, rune(b.Symbol)))
		}
	}

	// Kraft: sum of 2^-len over all codewords equals 1 iff every internal
	// node of the code tree has two children.  Scale by 2^maxSize to stay
	// in integers.
	var kraft big.Int
	one := big.NewInt(1)
	for _, entry := range cb.entries {
		var term big.Int
		term.Lsh(one, uint(cb.maxSize-entry.Codeword.Len()))
		kraft.Add(&kraft, &term)
	}
	var want big.Int
	want.Lsh(one, uint(cb.maxSize))
	if kraft.Cmp(&want) != 0 {
		err = multierr.Append(err, fmt.Errorf("not a complete code: Kraft sum %s/%s, want 1", kraft.String(), want.String()))
	}

	return err
}

// type byCodeword {{{

type byCodeword []CodebookEntry

func (list byCodeword) Sort() {
	sort.Sort(list)
}

func (list byCodeword) Len() int {
	return len(list)
}

func (list byCodeword) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCodeword) Less(i, j int) bool {
	return list[i].Codeword < list[j].Codeword
}

var _ sort.Interface = byCodeword(nil)

// }}}
