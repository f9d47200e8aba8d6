package huffman

import (
	"iter"
)

// Walk returns a depth-first, left-before-right (preorder) sequence over
// every node of the tree rooted at root.  The sequence is lazy and can be
// ranged over any number of times.
func Walk(root *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if root == nil {
			return
		}

		// The stack holds nodes still to visit, right child pushed before
		// left so that the left subtree comes out first.  Its depth is
		// bounded by the height of the tree plus one.
		stack := make([]*Node, 0, 16)
		stack = append(stack, root)
		for len(stack) != 0 {
			last := len(stack) - 1
			n := stack[last]
			stack[last] = nil
			stack = stack[:last]

			if !yield(n) {
				return
			}
			if n.right != nil {
				stack = append(stack, n.right)
			}
			if n.left != nil {
				stack = append(stack, n.left)
			}
		}
	}
}

// Leaves is Walk restricted to leaf nodes, i.e. symbols from left to right.
func Leaves(root *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for n := range Walk(root) {
			if n.IsLeaf() && !yield(n) {
				return
			}
		}
	}
}

// CountNodes returns the number of nodes in the tree rooted at root.
func CountNodes(root *Node) int {
	var count int
	for range Walk(root) {
		count++
	}
	return count
}

// WeightedPathLength returns the sum over all leaves of weight times depth,
// the quantity a Huffman tree minimizes.
func WeightedPathLength(root *Node) uint64 {
	var sum uint64
	for n := range Leaves(root) {
		sum += n.weight * uint64(n.Depth())
	}
	return sum
}
