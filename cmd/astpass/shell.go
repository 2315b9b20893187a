package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"

	"github.com/sirkon/astpass"
	"github.com/sirkon/astpass/internal/deadcode"
	"github.com/sirkon/astpass/internal/inline"
	"github.com/sirkon/astpass/internal/normalize"
	"github.com/sirkon/astpass/internal/tree"
	"github.com/sirkon/astpass/internal/treeyaml"
	"github.com/sirkon/astpass/internal/usage"
)

const (
	historyFile = ".astpass_history"
	prompt      = "astpass> "
)

const shellHelp = `:load file   load a YAML tree or a Go source
:prune       fold constant conditions
:inline      inline call-only functions
:normalize   split inlined call sequences into statements
:usage       report unused variables and uses before definition
:show        print the current tree
:yaml        print the current tree as YAML
:reset       return to the loaded tree
:help        show this help
:quit        leave the shell
Other lines are YAML statements appended to the current tree, e.g. "- call: f".
`

// session is the state of an interactive shell.
type session struct {
	out    io.Writer
	loaded *tree.Module
	cur    tree.Node
}

func newSession(out io.Writer) *session {
	return &session{
		out:    out,
		loaded: &tree.Module{},
		cur:    &tree.Module{},
	}
}

// exec runs a single line. Errors are not fatal to the session.
func (s *session) exec(line string) (quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}
	if !strings.HasPrefix(line, ":") {
		return false, s.appendYAML(line)
	}

	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":help":
		_, err = io.WriteString(s.out, shellHelp)
	case ":load":
		err = s.load(arg)
	case ":prune":
		found := len(deadcode.Find(s.cur))
		s.cur = deadcode.Prune(s.cur)
		fmt.Fprintf(s.out, "folded %s\n", plural(found, "condition"))
	case ":inline":
		recs := inline.Analyze(s.cur)
		in := inline.New(recs)
		s.cur = in.Inline(s.cur)
		fmt.Fprintf(s.out, "inlinable: %s, expanded %s\n", strings.Join(recs.Names(), ", "), plural(in.Expanded(), "call"))
		for _, v := range in.Violations() {
			fmt.Fprintf(s.out, "%d: %s [%s]\n", v.Pos.Line, v.Error(), v.Rule.Code())
		}
	case ":normalize":
		s.cur = normalize.Normalize(s.cur)
	case ":usage":
		diags := usage.Analyze(s.cur)
		for _, d := range diags {
			fmt.Fprintln(s.out, d)
		}
		fmt.Fprintf(s.out, "%s\n", plural(len(diags), "diagnostic"))
	case ":show":
		_, err = io.WriteString(s.out, tree.Pretty(s.cur))
	case ":yaml":
		err = treeyaml.Encode(s.out, s.current(), treeyaml.WithLines())
	case ":reset":
		s.cur = tree.Clone(s.loaded)
	default:
		err = errors.Errorf("unknown command %s, try :help", cmd)
	}
	return false, err
}

func (s *session) current() tree.Node {
	if s.cur == nil {
		return &tree.Module{}
	}
	return s.cur
}

func (s *session) load(path string) error {
	if path == "" {
		return errors.New(":load needs a file")
	}

	mod, err := astpass.Load(path)
	if err != nil {
		return err
	}
	s.loaded = mod
	s.cur = tree.Clone(mod)
	fmt.Fprintf(s.out, "loaded %s: %s\n", path, plural(len(mod.Body), "statement"))
	return nil
}

func (s *session) appendYAML(line string) error {
	mod, err := treeyaml.Unmarshal([]byte(line))
	if err != nil {
		return err
	}

	cur, ok := s.cur.(*tree.Module)
	if !ok {
		cur = &tree.Module{}
		if stmt, isStmt := s.cur.(tree.Stmt); isStmt {
			cur.Body = append(cur.Body, stmt)
		}
	}
	cur.Body = append(cur.Body, mod.Body...)
	s.cur = cur
	return nil
}

func (a *app) cmdShell(args []string) (int, error) {
	fs := newFlagSet("shell", a.stderr)
	if err := fs.Parse(args); err != nil {
		return exitError, err
	}

	s := newSession(a.stdout)
	if fs.NArg() > 0 {
		if err := s.load(fs.Arg(0)); err != nil {
			return exitError, err
		}
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(completeCommand)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(a.stdout)
			return exitOK, nil
		}
		if err != nil {
			return exitError, errors.Wrap(err, "read command")
		}

		quit, err := s.exec(line)
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if err != nil {
			fmt.Fprintf(a.stderr, "error: %s\n", err)
		}
		if quit {
			return exitOK, nil
		}
	}
}

var shellCommands = []string{":load", ":prune", ":inline", ":normalize", ":usage", ":show", ":yaml", ":reset", ":help", ":quit"}

func completeCommand(line string) []string {
	var res []string
	for _, c := range shellCommands {
		if strings.HasPrefix(c, line) {
			res = append(res, c)
		}
	}
	return res
}
