package render

import (
	"fmt"
	"io"

	huffman "github.com/chronos-tachyon/hufftree"
	"gopkg.in/yaml.v3"
)

type yamlCodebook struct {
	Symbols int         `yaml:"symbols"`
	MinSize int         `yaml:"minSize"`
	MaxSize int         `yaml:"maxSize"`
	Bits    uint64      `yaml:"bits"`
	Codes   []yamlEntry `yaml:"codes"`
}

type yamlEntry struct {
	Symbol   string `yaml:"symbol"`
	Weight   uint64 `yaml:"weight"`
	Codeword string `yaml:"codeword"`
}

// YAML writes the codebook as a YAML document.  Bits is the weighted path
// length, i.e. the encoded size of the counted input.
func YAML(w io.Writer, cb *huffman.Codebook) (err error) {
	doc := yamlCodebook{
		Symbols: cb.Len(),
		MinSize: cb.MinSize(),
		MaxSize: cb.MaxSize(),
		Bits:    cb.WeightedPathLength(),
	}
	for _, entry := range cb.Entries() {
		doc.Codes = append(doc.Codes, yamlEntry{
			Symbol:   entry.Symbol.String(),
			Weight:   entry.Weight,
			Codeword: string(entry.Codeword),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("encode codebook: %w", err)
	}
	return enc.Close()
}
