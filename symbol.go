package huffman

import (
	"strconv"
	"unicode/utf8"
)

// Symbol represents one element of an input sequence, usually a character.
// Negative symbols are not valid.
type Symbol rune

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(utf8.MaxRune)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.  Internal tree nodes report it.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff this Symbol is in the range [0, MaxSymbol].
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= MaxSymbol
}

// String returns the symbol as text.  Invalid symbols are shown by number.
func (s Symbol) String() string {
	if !s.IsValid() {
		return "Symbol(" + strconv.Itoa(int(s)) + ")"
	}
	return string(rune(s))
}
