package usage

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sirkon/astpass/internal/deadcode"
	"github.com/sirkon/astpass/internal/rules"
	"github.com/sirkon/astpass/internal/tree"
	"github.com/sirkon/astpass/internal/tree/treetest"
	"github.com/sirkon/astpass/internal/treeyaml"
)

func load(t *testing.T, name string) *tree.Module {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	mod, err := treeyaml.Unmarshal(data)
	require.NoError(t, err)
	return mod
}

func TestAnalyzeSample(t *testing.T) {
	root := load(t, "var_assignment.yaml")
	before := tree.Clone(root)

	got := Analyze(root)
	require.Equal(t, []Diagnostic{
		{Kind: Unused, Name: "a", Scope: "test_function2", Line: 10},
		{Kind: Unused, Name: "c", Scope: "test_function2", Line: 10},
		{Kind: UsedBeforeDefined, Name: "baz", Scope: "test_traversal", Line: 40},
		{Kind: Unused, Name: "baz", Scope: GlobalScope, Line: 42},
		{Kind: Unused, Name: "unused", Scope: GlobalScope, Line: 44},
	}, got)

	require.Equal(t, before, tree.Node(root), "analysis must not change the tree")
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name string
		root tree.Node
		want []Diagnostic
	}{
		{
			name: "unused parameters",
			// def f(a, b, c): g(b)
			root: tree.NewModule(
				treetest.At(3, tree.NewFunction("f", []string{"a", "b", "c"},
					treetest.At(4, tree.NewExprStmt(tree.NewCall("g", treetest.At(4, tree.NewName("b"))))),
				)),
			),
			want: []Diagnostic{
				{Kind: Unused, Name: "a", Scope: "f", Line: 3},
				{Kind: Unused, Name: "c", Scope: "f", Line: 3},
			},
		},
		{
			name: "nonlocal resolves to the outer frame",
			// def outer():
			//     x = 1
			//     def inner():
			//         nonlocal x
			//         print(x)
			root: tree.NewModule(
				treetest.At(1, tree.NewFunction("outer", nil,
					treetest.At(2, tree.NewAssign("x", tree.NewConst(1))),
					treetest.At(3, tree.NewFunction("inner", nil,
						treetest.At(4, &tree.NonlocalDecl{Names: []string{"x"}}),
						treetest.At(5, tree.NewExprStmt(tree.NewCall("print", treetest.At(5, tree.NewName("x"))))),
					)),
				)),
			),
			want: nil,
		},
		{
			name: "nonlocal assignment defines nothing",
			// def outer():
			//     x = 1
			//     def inner():
			//         nonlocal x
			//         x = 2
			root: tree.NewModule(
				treetest.At(1, tree.NewFunction("outer", nil,
					treetest.At(2, tree.NewAssign("x", tree.NewConst(1))),
					treetest.At(3, tree.NewFunction("inner", nil,
						treetest.At(4, &tree.NonlocalDecl{Names: []string{"x"}}),
						treetest.At(5, tree.NewAssign("x", tree.NewConst(2))),
					)),
				)),
			),
			want: []Diagnostic{
				{Kind: Unused, Name: "x", Scope: "outer", Line: 2},
			},
		},
		{
			name: "single use before definition",
			root: tree.NewModule(
				treetest.At(1, tree.NewFunction("f", nil,
					treetest.At(2, tree.NewExprStmt(tree.NewCall("print", treetest.At(2, tree.NewName("missing"))))),
				)),
			),
			want: []Diagnostic{
				{Kind: UsedBeforeDefined, Name: "missing", Scope: "f", Line: 2},
			},
		},
		{
			name: "global declaration defines in module scope",
			// def f():
			//     global g
			//     g = 1
			root: tree.NewModule(
				treetest.At(1, tree.NewFunction("f", nil,
					treetest.At(2, &tree.GlobalDecl{Names: []string{"g"}}),
					treetest.At(3, tree.NewAssign("g", tree.NewConst(1))),
				)),
			),
			want: []Diagnostic{
				{Kind: Unused, Name: "g", Scope: GlobalScope, Line: 3},
			},
		},
		{
			name: "module level definitions are visible in functions",
			// x = 1
			// def f(): print(x)
			root: tree.NewModule(
				treetest.At(1, tree.NewAssign("x", tree.NewConst(1))),
				treetest.At(2, tree.NewFunction("f", nil,
					treetest.At(3, tree.NewExprStmt(tree.NewCall("print", treetest.At(3, tree.NewName("x"))))),
				)),
			),
			want: nil,
		},
		{
			name: "global redirect of an existing local is ignored",
			// def f():
			//     y = 1
			//     global y
			root: tree.NewModule(
				treetest.At(1, tree.NewFunction("f", nil,
					treetest.At(2, tree.NewAssign("y", tree.NewConst(1))),
					treetest.At(3, &tree.GlobalDecl{Names: []string{"y", "y"}}),
				)),
			),
			want: []Diagnostic{
				{Kind: Unused, Name: "y", Scope: "f", Line: 2},
			},
		},
		{
			name: "first definition line is kept",
			root: tree.NewModule(
				treetest.At(1, tree.NewAssign("v", tree.NewConst(1))),
				treetest.At(2, tree.NewAssign("v", tree.NewConst(2))),
			),
			want: []Diagnostic{
				{Kind: Unused, Name: "v", Scope: GlobalScope, Line: 1},
			},
		},
		{
			name: "malformed assignment is skipped",
			root: tree.NewModule(
				treetest.At(1, tree.NewAssign("", treetest.At(1, tree.NewName("w")))),
			),
			want: []Diagnostic{
				{Kind: UsedBeforeDefined, Name: "w", Scope: GlobalScope, Line: 1},
			},
		},
		{
			name: "names in tests and returns are uses",
			root: tree.NewModule(
				treetest.At(1, tree.NewAssign("c", tree.NewConst(true))),
				treetest.At(2, tree.NewAssign("r", tree.NewConst(0))),
				treetest.At(3, tree.NewIf(treetest.At(3, tree.NewName("c")), nil, nil)),
				treetest.At(4, tree.NewReturn(treetest.At(4, tree.NewName("r")))),
			),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Analyze(tt.root))
		})
	}
}

func TestEndToEndScenario(t *testing.T) {
	// if True: a = 1 else: a = 2
	// return a
	root := tree.NewModule(
		treetest.At(1, tree.NewIf(tree.NewConst(true),
			[]tree.Stmt{treetest.At(2, tree.NewAssign("a", tree.NewConst(1)))},
			[]tree.Stmt{treetest.At(4, tree.NewAssign("a", tree.NewConst(2)))},
		)),
		treetest.At(5, tree.NewReturn(treetest.At(5, tree.NewName("a")))),
	)

	pruned := deadcode.Prune(root)
	require.Len(t, pruned.(*tree.Module).Body, 2)
	require.Empty(t, Analyze(pruned))
}

func TestDiagnosticRendering(t *testing.T) {
	d := Diagnostic{Kind: Unused, Name: "a", Scope: "f", Line: 3}
	require.Equal(t, "3: variable a defined in f is never used", d.String())
	require.Equal(t, rules.UnusedVariable(), d.Kind.Rule())

	d = Diagnostic{Kind: UsedBeforeDefined, Name: "b", Scope: "g", Line: 5}
	require.Equal(t, "variable b is used in g before definition", d.Message())
	require.Equal(t, rules.UsedBeforeDefinition(), d.Kind.Rule())
}
