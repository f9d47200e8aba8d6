// huffcode builds a Huffman code for the characters of a text and prints the
// codebook.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/benbjohnson/clock"
	huffman "github.com/chronos-tachyon/hufftree"
	"github.com/chronos-tachyon/hufftree/internal/log"
	"github.com/chronos-tachyon/hufftree/render"
	"go.uber.org/multierr"
)

var _version = "dev"

var _main = mainCmd{
	Stdin:  os.Stdin,
	Stdout: os.Stdout,
	Stderr: os.Stderr,
	Getenv: os.Getenv,
	Clock:  clock.New(),
}

func main() {
	if err := run(&_main, os.Args[1:]); err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(_main.Stderr, err)
		os.Exit(1)
	}
}

const _name = "huffcode"

const _usage = `usage: %v [options] [TEXT]

Builds a Huffman code for the characters of TEXT and prints the codebook.
If TEXT is not given, the input is read from -in or from stdin.

The following flags are available:

	-in FILE
		read the input from FILE. Use - for stdin.
	-format FORMAT
		output format: latex, table, yaml, go, or dump.
		Defaults to latex.
	-item FORMAT
		format of each LaTeX list item. Receives the symbol and the
		codeword. Defaults to "Code for '%%s': %%s".
	-workers N
		resolve codewords on N goroutines.
	-log FILE
		file to write logs to.
		Uses stderr by default.
	-verbose
		log more output.
	-version
		display version information.

Default flags may be set in the HUFFCODE_FLAGS environment variable.
`

func run(cmd *mainCmd, args []string) error {
	var cfg config
	flag := flag.NewFlagSet(_name, flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		name := flag.Name()
		fmt.Fprintf(flag.Output(), _usage, name)
	}
	cfg.RegisterFlags(flag)
	version := flag.Bool("version", false, "")

	if err := parseEnvFlags(flag, cmd.Getenv(_envFlags)); err != nil {
		return err
	}
	if err := flag.Parse(args); err != nil {
		return err
	}

	if *version {
		fmt.Fprintf(cmd.Stdout, "huffcode version %v\n", _version)
		return nil
	}

	var text *string
	switch args := flag.Args(); len(args) {
	case 0:
	case 1:
		text = &args[0]
	default:
		return fmt.Errorf("unexpected arguments %q", args[1:])
	}
	if text != nil && len(cfg.Input) > 0 {
		return errors.New("cannot use both TEXT and -in")
	}

	return cmd.Run(&cfg, text)
}

type mainCmd struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Getenv func(string) string // == os.Getenv
	Clock  clock.Clock
}

func (cmd *mainCmd) Run(cfg *config, text *string) (err error) {
	logW := cmd.Stderr
	if file := cfg.LogFile; len(file) > 0 {
		var f *os.File
		f, err = os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log %q: %v", file, err)
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		logW = f
	}

	lvl := log.Info
	if cfg.Verbose {
		lvl = log.Debug
	}
	logger := log.New(logW, lvl)

	freqs, err := cmd.countInput(cfg, text)
	if err != nil {
		return err
	}
	logger.Debug("counted symbols",
		slog.Int("distinct", freqs.Len()),
		slog.Uint64("total", freqs.Total()))

	start := cmd.Clock.Now()
	root, err := freqs.Build()
	if err != nil {
		return fmt.Errorf("build code: %w", err)
	}
	logger.Debug("built tree",
		slog.Uint64("weight", root.Weight()),
		slog.Int("nodes", huffman.CountNodes(root)),
		slog.Duration("elapsed", cmd.Clock.Since(start)))

	start = cmd.Clock.Now()
	cb := huffman.NewCodebook(root, huffman.Options{
		Workers: cfg.Workers,
		Log:     logger.WithName("codebook"),
	})
	if err := cb.Validate(); err != nil {
		return fmt.Errorf("invalid code: %w", err)
	}
	logger.Debug("resolved codebook",
		slog.Uint64("bits", cb.WeightedPathLength()),
		slog.Duration("elapsed", cmd.Clock.Since(start)))

	return cmd.render(cfg, root, cb)
}

func (cmd *mainCmd) countInput(cfg *config, text *string) (_ *huffman.FrequencyTable, err error) {
	if text != nil {
		return huffman.CountString(*text), nil
	}

	r := cmd.Stdin
	if file := cfg.Input; len(file) > 0 && file != "-" {
		var f *os.File
		f, err = os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		r = f
	}

	freqs, err := huffman.CountReader(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}
	return freqs, nil
}

func (cmd *mainCmd) render(cfg *config, root *huffman.Node, cb *huffman.Codebook) error {
	switch cfg.Format {
	case _formatTable:
		return render.Table(cmd.Stdout, cb)
	case _formatYAML:
		return render.YAML(cmd.Stdout, cb)
	case _formatGo:
		return render.GoSyntax(cmd.Stdout, cb)
	case _formatDump:
		_, err := cb.Dump(cmd.Stdout)
		return err
	default:
		return render.LaTeX(cmd.Stdout, root, render.LaTeXOptions{
			ItemFormat: cfg.ItemFormat,
		})
	}
}
