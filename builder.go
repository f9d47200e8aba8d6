package huffman

import (
	"container/heap"
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by Build when there are no symbols to encode.
var ErrEmptyInput = errors.New("huffman: nothing to encode")

// ErrZeroWeight is returned by Build when an entry has a count of 0.
var ErrZeroWeight = errors.New("huffman: symbol weight must be positive")

// ErrDuplicateSymbol is returned by Build when a symbol is listed twice.
var ErrDuplicateSymbol = errors.New("huffman: duplicate symbol")

// Build constructs a Huffman code tree for the given entries and returns its
// root.
//
// Build repeatedly removes the two lightest nodes from a min-heap, makes them
// the left and right children of a new internal node, and pushes that node
// back, until one node remains.  With k entries that is exactly k-1 merges.
// A single entry is returned as a root leaf, whose codeword is empty.
//
// Ties between equal weights are broken by age: the leaves are numbered in
// entry order, each merged node gets the next number after that, and the
// lowest number wins.  This is the order a stable sort of an append-only
// worklist produces, so a given entry list always yields the same tree.
//
// Build returns ErrEmptyInput if entries is empty.
func Build(entries []FrequencyEntry) (*Node, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyInput
	}

	seen := make(map[Symbol]struct{}, len(entries))
	items := make([]heapItem, 0, len(entries))
	for index, fe := range entries {
		if fe.Count == 0 {
			return nil, fmt.Errorf("symbol %q: %w", rune(fe.Symbol), ErrZeroWeight)
		}
		if _, found := seen[fe.Symbol]; found {
			return nil, fmt.Errorf("symbol %q: %w", rune(fe.Symbol), ErrDuplicateSymbol)
		}
		seen[fe.Symbol] = struct{}{}
		items = append(items, heapItem{node: newLeaf(fe.Symbol, fe.Count), seq: uint64(index)})
	}

	h := nodeHeap{items}
	h.Init()

	nextSeq := uint64(len(items))
	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem)
		b := heap.Pop(&h).(heapItem)
		heap.Push(&h, heapItem{node: newInternal(a.node, b.node), seq: nextSeq})
		nextSeq++
	}

	root := heap.Pop(&h).(heapItem)
	return root.node, nil
}

// BuildString counts the runes of s and builds the tree for them.
func BuildString(s string) (*Node, error) {
	return CountString(s).Build()
}

// type heapItem + type nodeHeap {{{

type heapItem struct {
	node *Node
	seq  uint64
}

type nodeHeap struct {
	list []heapItem
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.weight != b.node.weight {
		return a.node.weight < b.node.weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(heapItem))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = heapItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
