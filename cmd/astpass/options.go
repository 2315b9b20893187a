package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/sirkon/astpass/internal/config"
	"github.com/sirkon/astpass/internal/report"
	"github.com/sirkon/astpass/internal/tree"
	"github.com/sirkon/astpass/internal/treeyaml"
)

// passFlags are flags shared by commands running the pipeline.
type passFlags struct {
	config  string
	passes  string
	noUsage bool
	output  string
	lines   bool
}

func (f *passFlags) register(fs *flag.FlagSet, pipeline bool) {
	fs.StringVar(&f.config, "config", "", "configuration `file`, defaults apply without it")
	if !pipeline {
		return
	}
	fs.StringVar(&f.passes, "passes", "", "comma separated `list` of passes overriding the configuration, none runs nothing")
	fs.BoolVar(&f.noUsage, "no-usage", false, "skip variable usage analysis")
	fs.StringVar(&f.output, "o", "pretty", "output `format` of the resulting tree: pretty, yaml or none")
	fs.BoolVar(&f.lines, "lines", false, "keep line keys in yaml output")
}

// load builds the configuration: defaults or the file, then the environment, then flags.
func (f *passFlags) load() (*config.Config, error) {
	cfg := config.Default()
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, errors.Wrap(err, "apply environment")
	}

	if f.passes != "" {
		passes, err := config.ParsePasses(f.passes)
		if err != nil {
			return nil, errors.Wrap(err, "parse -passes")
		}
		cfg.Passes = passes
	}
	if f.noUsage {
		cfg.Usage = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func (f *passFlags) validateOutput() error {
	switch f.output {
	case "pretty", "yaml", "none":
		return nil
	default:
		return errors.Errorf("unknown output format %q", f.output)
	}
}

func newFlagSet(name string, w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	return fs
}

// singleFile parses flags and demands exactly one positional argument.
func singleFile(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if fs.NArg() != 1 {
		return "", errors.Errorf("%s needs exactly one file, got %d arguments", fs.Name(), fs.NArg())
	}
	return fs.Arg(0), nil
}

func writeTree(w io.Writer, root tree.Node, format string, lines bool) error {
	switch format {
	case "none":
		return nil
	case "yaml":
		if root == nil {
			root = &tree.Module{}
		}
		var opts []treeyaml.Option
		if lines {
			opts = append(opts, treeyaml.WithLines())
		}
		return treeyaml.Encode(w, root, opts...)
	default:
		if _, err := io.WriteString(w, tree.Pretty(root)); err != nil {
			return errors.Wrap(err, "write tree")
		}
		return nil
	}
}

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// useColor tells whether reports written to w are colored.
func useColor(cfg *config.Config, w io.Writer) bool {
	terminal := false
	if f, ok := w.(fder); ok {
		terminal = report.IsTerminal(f.Fd())
	}
	return cfg.Color.Enabled(terminal)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
