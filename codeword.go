package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// Codeword represents a sequence of bits, written as the characters '0' and
// '1'.  The first character is the edge leaving the root.
type Codeword string

// CodewordOf returns the codeword of n by walking from n up to the root,
// prepending '0' for every left edge and '1' for every right edge.  The root's
// codeword is empty.
//
// CodewordOf only reads the tree, so it may be called concurrently for
// different nodes of the same finished tree.
func CodewordOf(n *Node) Codeword {
	depth := n.Depth()
	if depth == 0 {
		return ""
	}

	bits := make([]byte, depth)
	for i := depth - 1; n.parent != nil; i-- {
		bits[i] = n.side.Bit()
		n = n.parent
	}
	return Codeword(bits)
}

// Len returns the number of bits.
func (cw Codeword) Len() int {
	return len(cw)
}

// Bit returns the i'th bit as 0 or 1.
func (cw Codeword) Bit(i int) uint8 {
	return cw[i] - '0'
}

// HasPrefix returns true iff prefix is a prefix of this Codeword.
func (cw Codeword) HasPrefix(prefix Codeword) bool {
	return strings.HasPrefix(string(cw), string(prefix))
}

// String returns the quoted string representation of this Codeword.
func (cw Codeword) String() string {
	return strconv.Quote(string(cw))
}

var _ fmt.Stringer = Codeword("")
