package main

import (
	"flag"
	"fmt"

	"github.com/mattn/go-shellwords"
)

// _envFlags names an environment variable holding default flags.
const _envFlags = "HUFFCODE_FLAGS"

type config struct {
	Input      string
	Format     format
	ItemFormat string
	Workers    int
	LogFile    string
	Verbose    bool
}

func (c *config) RegisterFlags(flag *flag.FlagSet) {
	// No help here because we put it all in _usage.
	c.Format = _defaultFormat
	flag.StringVar(&c.Input, "in", "", "")
	flag.Var(&c.Format, "format", "")
	flag.StringVar(&c.ItemFormat, "item", "", "")
	flag.IntVar(&c.Workers, "workers", 1, "")
	flag.StringVar(&c.LogFile, "log", "", "")
	flag.BoolVar(&c.Verbose, "verbose", false, "")
}

// parseEnvFlags parses default flags from the value of _envFlags.
// Flags given on the command line are parsed afterwards, so they win.
func parseEnvFlags(flag *flag.FlagSet, value string) error {
	args, err := shellwords.Parse(value)
	if err != nil {
		return fmt.Errorf("parse %v: %w", _envFlags, err)
	}
	if len(args) == 0 {
		return nil
	}
	if err := flag.Parse(args); err != nil {
		return fmt.Errorf("parse %v: %w", _envFlags, err)
	}
	if rest := flag.Args(); len(rest) > 0 {
		return fmt.Errorf("parse %v: unexpected arguments %q", _envFlags, rest)
	}
	return nil
}
