package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixture = "../../testdata/pipeline.yaml"

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = runCLI(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunCommand(t *testing.T) {
	code, stdout, stderr := run(t, "run", fixture)
	require.Equal(t, exitDiagnostics, code, stderr)
	require.Equal(t, `def f(x):
    g(x)
def two():
    "calls a and b"
    a()
    b()
g(5)
a()
b()
v = two()
r = 1
print(r, missing)
`, stdout)
	require.Contains(t, stderr, "warning: condition True is always true [AST030]\n  --> "+fixture+":17 (in global)\n")
	require.Contains(t, stderr, "error: variable missing is used in global before definition [AST010]")
	require.True(t, strings.HasSuffix(stderr, "4 reports (prune: 1, inline: 1, usage: 2)\n"), stderr)
}

func TestRunCommandFlags(t *testing.T) {
	code, stdout, stderr := run(t, "run", "-passes", "none", "-no-usage", "-o", "yaml", fixture)
	require.Equal(t, exitOK, code, stderr)
	require.Contains(t, stdout, "- call: two\n")
	require.Contains(t, stderr, "no reports")

	code, _, stderr = run(t, "run", "-o", "xml", fixture)
	require.Equal(t, exitError, code)
	require.Contains(t, stderr, `unknown output format "xml"`)

	code, _, stderr = run(t, "run", "-passes", "fold", fixture)
	require.Equal(t, exitError, code)
	require.Contains(t, stderr, "fold")

	code, _, _ = run(t, "run")
	require.Equal(t, exitError, code)
}

func TestRunCommandConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "astpass.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("passes: [prune]\nusage: false\ncolor: never\n"), 0o644))

	code, stdout, stderr := run(t, "run", "-config", cfgPath, fixture)
	require.Equal(t, exitOK, code, stderr)
	require.Contains(t, stdout, "f(5)\ntwo()\n")
	require.Contains(t, stderr, "1 report (prune: 1)")
}

func TestUsageCommand(t *testing.T) {
	code, stdout, stderr := run(t, "usage", fixture)
	require.Equal(t, exitDiagnostics, code, stderr)
	require.Equal(t, fixture+":21: variable missing is used in global before definition\n"+
		fixture+":15: variable v defined in global is never used\n", stdout)

	clean := filepath.Join(t.TempDir(), "clean.yaml")
	require.NoError(t, os.WriteFile(clean, []byte("- assign: a\n  value: {const: 1}\n- call: f\n  args: [{name: a}]\n"), 0o644))
	code, stdout, _ = run(t, "usage", clean)
	require.Equal(t, exitOK, code)
	require.Empty(t, stdout)
}

func TestMiscCommands(t *testing.T) {
	code, stdout, _ := run(t, "version")
	require.Equal(t, exitOK, code)
	require.True(t, strings.HasPrefix(stdout, "astpass "))

	code, stdout, _ = run(t, "help")
	require.Equal(t, exitOK, code)
	require.Contains(t, stdout, "Commands:")

	code, _, stderr := run(t, "frobnicate")
	require.Equal(t, exitError, code)
	require.Contains(t, stderr, `unknown command "frobnicate"`)
}

func TestShellSession(t *testing.T) {
	var out bytes.Buffer
	s := newSession(&out)

	steps := []struct {
		line string
		want string
	}{
		{line: ":load " + fixture, want: "loaded " + fixture + ": 7 statements\n"},
		{line: ":prune", want: "folded 1 condition\n"},
		{line: ":inline", want: "inlinable: f, two, expanded 2 calls\n16: two expands into 2 calls and cannot be inlined into Assign.Value [AST021]\n"},
		{line: ":show", want: "def f(x):\n    g(x)\ndef two():\n    \"calls a and b\"\n    a()\n    b()\ng(5)\n<a(), b()>\nv = two()\nr = 1\nprint(r, missing)\n"},
		{line: ":normalize", want: ""},
		{line: "- {assign: missing, value: {const: 0}}", want: ""},
		{line: ":usage", want: "21: variable missing is used in global before definition\n" +
			"15: variable v defined in global is never used\n" +
			"1: variable missing defined in global is never used\n" +
			"3 diagnostics\n"},
		{line: ":reset", want: ""},
		{line: ":prune", want: "folded 1 condition\n"},
	}

	for _, step := range steps {
		out.Reset()
		quit, err := s.exec(step.line)
		require.NoError(t, err, step.line)
		require.False(t, quit)
		require.Equal(t, step.want, out.String(), step.line)
	}

	_, err := s.exec(":bogus")
	require.Error(t, err)
	_, err = s.exec(":load")
	require.Error(t, err)

	quit, err := s.exec(":quit")
	require.NoError(t, err)
	require.True(t, quit)
}
