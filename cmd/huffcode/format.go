package main

import (
	"flag"
	"fmt"
	"strings"
)

type format string

// Supported output formats.
const (
	_formatLaTeX format = "latex"
	_formatTable format = "table"
	_formatYAML  format = "yaml"
	_formatGo    format = "go"
	_formatDump  format = "dump"

	_defaultFormat = _formatLaTeX
)

var _formats = []format{_formatLaTeX, _formatTable, _formatYAML, _formatGo, _formatDump}

var _ flag.Value = (*format)(nil)

func (f *format) String() string {
	return string(*f)
}

func (f *format) Set(name string) error {
	for _, known := range _formats {
		if string(known) == name {
			*f = known
			return nil
		}
	}

	names := make([]string, len(_formats))
	for i, known := range _formats {
		names[i] = string(known)
	}
	return fmt.Errorf("unknown format %q: must be one of %v", name, strings.Join(names, ", "))
}
