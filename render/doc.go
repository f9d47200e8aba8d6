// Package render writes Huffman code trees and codebooks in human-readable
// formats.  It only uses the read-only accessors of huffman.Node and
// huffman.Codebook.
package render
