package gofront

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sirkon/astpass/internal/tree"
	"github.com/sirkon/astpass/internal/usage"
)

func translate(t *testing.T, cfg Config, name string) *tree.Module {
	t.Helper()
	src, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	mod, err := New(cfg).TranslateFile(name, src)
	require.NoError(t, err)
	return mod
}

func TestTranslateFile(t *testing.T) {
	tests := []struct {
		name string
		file string
		want string
	}{
		{
			name: "closures and outer assignments",
			file: "closure.go",
			want: `counter = 0
def helper(x):
    println(x)
def run(a, b):
    err = None
    total = +(a, 1)
    if False:
        println("debug")
    else:
        if >(total, 2):
            global counter
            counter = total
    def inc():
        nonlocal total
        total = +(total, 1)
    inc = func()
    call(inc)
    return err
def T.Get(t):
    return .n(t)
`,
		},
		{
			name: "loops and switches",
			file: "loops.go",
			want: `def loop(items):
    n = 0
    i = 0
    if for(<(i, 3)):
        +=(n, i)
        ++(i)
    if range(items):
        s = range.value()
        if >(len(s), 1):
            ++(n)
    switch(n)
    if case(1, 2):
        return 1
    if default():
        pass
    return n
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mod := translate(t, DefaultConfig(), tt.file)
			require.Equal(t, tt.want, tree.Pretty(mod))
		})
	}
}

func TestTranslatePositions(t *testing.T) {
	mod := translate(t, DefaultConfig(), "closure.go")

	idx := tree.NewIndex(mod)
	require.Equal(t, "run", idx.Enclosing(12).Name)
	require.Equal(t, "inc", idx.Enclosing(19).Name)
	require.Equal(t, "T.Get", idx.Enclosing(27).Name)

	assign, ok := idx.Lookup(12).(*tree.Assign)
	require.True(t, ok)
	require.Equal(t, "total", assign.Target)
	require.Equal(t, tree.Pos{Line: 12, Col: 2}, assign.Pos)
}

func TestTranslateUsage(t *testing.T) {
	mod := translate(t, DefaultConfig(), "closure.go")
	require.Equal(t, []usage.Diagnostic{
		{Kind: usage.Unused, Name: "b", Scope: "run", Line: 11},
		{Kind: usage.Unused, Name: "counter", Scope: usage.GlobalScope, Line: 3},
	}, usage.Analyze(mod))

	mod = translate(t, DefaultConfig(), "loops.go")
	require.Empty(t, usage.Analyze(mod))
}

func TestTranslateConfig(t *testing.T) {
	mod := translate(t, Config{}, "closure.go")
	last := mod.Body[len(mod.Body)-1].(*tree.FunctionDef)
	require.Equal(t, "Get", last.Name)
	require.Empty(t, last.Params)
}

func TestTranslateWithoutTypes(t *testing.T) {
	src := []byte("package p\n\nfunc f() {\n\tv := missing(1)\n\tg(v, undefined)\n}\n")
	mod, err := New(DefaultConfig()).TranslateFile("broken.go", src)
	require.NoError(t, err)
	require.Equal(t, "def f():\n    v = missing(1)\n    g(v, undefined)\n", tree.Pretty(mod))
	require.Equal(t, []usage.Diagnostic{
		{Kind: usage.UsedBeforeDefined, Name: "undefined", Scope: "f", Line: 5},
	}, usage.Analyze(mod))
}

func TestTranslateSyntaxError(t *testing.T) {
	_, err := New(DefaultConfig()).TranslateFile("bad.go", []byte("package p\nfunc {"))
	require.Error(t, err)
}
