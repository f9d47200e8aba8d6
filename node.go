package huffman

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// Side records which child slot of its parent a Node occupies.
type Side byte

const (
	// NoSide marks a Node without a parent, i.e. a root.
	NoSide Side = iota

	// LeftSide marks a left child.  Its codeword bit is '0'.
	LeftSide

	// RightSide marks a right child.  Its codeword bit is '1'.
	RightSide
)

// Bit returns the codeword digit contributed by an edge on this side.
func (side Side) Bit() byte {
	switch side {
	case LeftSide:
		return '0'
	case RightSide:
		return '1'
	default:
		return 0
	}
}

// String returns "left", "right" or "none".
func (side Side) String() string {
	switch side {
	case LeftSide:
		return "left"
	case RightSide:
		return "right"
	default:
		return "none"
	}
}

// Node is a node of a Huffman code tree.
//
// A leaf holds a Symbol and the number of times it occurred.  An internal
// node holds no Symbol, always has exactly two children, and weighs as much as
// both children together.  Nodes are only created by Build, and are read-only
// once Build returns.
//
// Children are owned by their parent.  The parent pointer is a back-reference
// used to walk from a leaf up to the root; the root's parent is nil.
type Node struct {
	symbol Symbol
	weight uint64
	left   *Node
	right  *Node
	parent *Node
	side   Side
}

func newLeaf(symbol Symbol, weight uint64) *Node {
	return &Node{symbol: symbol, weight: weight}
}

// newInternal merges a and b under a fresh node, a on the left.
func newInternal(a, b *Node) *Node {
	sum := a.weight + b.weight
	assert.Assertf(sum >= a.weight, "weight overflow: %d + %d", a.weight, b.weight)

	n := &Node{symbol: InvalidSymbol, weight: sum}
	n.attach(a, LeftSide)
	n.attach(b, RightSide)
	return n
}

func (n *Node) attach(child *Node, side Side) {
	assert.Assertf(child.parent == nil, "node %v already has a parent", child)
	assert.Assertf(child != n, "node %v cannot be its own child", child)

	child.parent = n
	child.side = side
	switch side {
	case LeftSide:
		n.left = child
	case RightSide:
		n.right = child
	}
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// IsRoot returns true iff this node has no parent.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// HasSymbol returns true iff this node carries a Symbol, i.e. is a leaf.
func (n *Node) HasSymbol() bool {
	return n.IsLeaf()
}

// Symbol returns the leaf's Symbol, or InvalidSymbol for internal nodes.
func (n *Node) Symbol() Symbol {
	if !n.IsLeaf() {
		return InvalidSymbol
	}
	return n.symbol
}

// Weight returns the occurrence count of a leaf, or the total count of all
// leaves below an internal node.
func (n *Node) Weight() uint64 {
	return n.weight
}

// Left returns the left child, or nil.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child, or nil.
func (n *Node) Right() *Node {
	return n.right
}

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Side reports which child of its parent this node is.
func (n *Node) Side() Side {
	return n.side
}

// IsLeftChild returns true iff this node is its parent's left child.
func (n *Node) IsLeftChild() bool {
	return n.side == LeftSide
}

// IsRightChild returns true iff this node is its parent's right child.
func (n *Node) IsRightChild() bool {
	return n.side == RightSide
}

// Depth returns the number of edges between this node and the root.
func (n *Node) Depth() int {
	var depth int
	for p := n.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// Root follows parent links up to the root of this node's tree.
func (n *Node) Root() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// String returns a short description such as "'a'(3)" or "(15)".
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.IsLeaf() {
		return fmt.Sprintf("%q(%d)", rune(n.symbol), n.weight)
	}
	return fmt.Sprintf("(%d)", n.weight)
}

var _ fmt.Stringer = (*Node)(nil)
