// Package huffman builds binary Huffman code trees and derives the codeword of
// each symbol by walking from its leaf up to the root.
//
// The usual flow is CountString (or CountFrequencies) to tally symbols, Build
// to merge the two lightest subtrees until one root remains, and then
// CodewordOf or NewCodebook to read the codes back out of the tree.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding#Basic_technique>
package huffman
