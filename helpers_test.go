package huffman

import (
	"sort"
	"strings"

	"github.com/stretchr/testify/assert"
)

func entriesOf(weights []uint64) []FrequencyEntry {
	entries := make([]FrequencyEntry, len(weights))
	for i, w := range weights {
		entries[i] = FrequencyEntry{Symbol: Symbol('A' + i), Count: w}
	}
	return entries
}

// codesOf maps every leaf symbol to its codeword.
func codesOf(root *Node) map[Symbol]string {
	out := make(map[Symbol]string)
	for leaf := range Leaves(root) {
		out[leaf.Symbol()] = string(CodewordOf(leaf))
	}
	return out
}

// assertTreeInvariants checks the structural invariants of a finished tree
// built from numLeaves entries.
func assertTreeInvariants(t assert.TestingT, root *Node, numLeaves int) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	if !assert.NotNil(t, root) {
		return false
	}
	if !assert.Nil(t, root.Parent(), "root must not have a parent") ||
		!assert.Equal(t, NoSide, root.Side(), "root must not have a side") {
		return false
	}

	var nodes, leaves int
	for n := range Walk(root) {
		nodes++
		if n.IsLeaf() {
			leaves++
			if !assert.True(t, n.HasSymbol(), "leaf %v must have a symbol", n) ||
				!assert.True(t, n.Symbol().IsValid(), "leaf %v symbol", n) ||
				!assert.NotZero(t, n.Weight(), "leaf %v weight", n) {
				return false
			}
			continue
		}

		left, right := n.Left(), n.Right()
		if !assert.NotNil(t, left, "internal %v needs a left child", n) ||
			!assert.NotNil(t, right, "internal %v needs a right child", n) {
			return false
		}
		if !assert.False(t, n.HasSymbol(), "internal %v must not have a symbol", n) ||
			!assert.Equal(t, InvalidSymbol, n.Symbol()) ||
			!assert.Equal(t, left.Weight()+right.Weight(), n.Weight(), "weight of %v", n) {
			return false
		}
		if !assert.Same(t, n, left.Parent()) ||
			!assert.Same(t, n, right.Parent()) ||
			!assert.True(t, left.IsLeftChild()) ||
			!assert.True(t, right.IsRightChild()) {
			return false
		}
	}

	return assert.Equal(t, numLeaves, leaves, "leaf count") &&
		assert.Equal(t, 2*numLeaves-1, nodes, "node count")
}

// assertPrefixFree checks that no codeword is a prefix of another.
func assertPrefixFree(t assert.TestingT, codes map[Symbol]string) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	for a, left := range codes {
		for b, right := range codes {
			if a == b {
				continue
			}
			if !assert.False(t, strings.HasPrefix(right, left),
				"%q (%q) is a prefix of %q (%q)", left, rune(a), right, rune(b)) {
				return false
			}
		}
	}
	return true
}

// referenceBuild is the textbook worklist algorithm: stable-sort by weight,
// merge the first two, append the result, sort again.
func referenceBuild(entries []FrequencyEntry) *Node {
	list := make([]*Node, len(entries))
	for i, fe := range entries {
		list[i] = newLeaf(fe.Symbol, fe.Count)
	}
	byWeight := func() {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].weight < list[j].weight
		})
	}

	byWeight()
	for len(list) > 1 {
		a, b := list[0], list[1]
		list = append(list[2:], newInternal(a, b))
		byWeight()
	}
	return list[0]
}

// minPathLength returns the smallest weighted external path length over all
// full binary trees with the given leaf weights, by trying every merge order.
// A tree's weighted path length equals the sum of its internal node weights.
func minPathLength(weights []uint64) uint64 {
	if len(weights) < 2 {
		return 0
	}

	best := ^uint64(0)
	for i := 0; i < len(weights); i++ {
		for j := i + 1; j < len(weights); j++ {
			merged := weights[i] + weights[j]
			rest := make([]uint64, 0, len(weights)-1)
			for k, w := range weights {
				if k != i && k != j {
					rest = append(rest, w)
				}
			}
			rest = append(rest, merged)
			if cost := merged + minPathLength(rest); cost < best {
				best = cost
			}
		}
	}
	return best
}
