package deadcode

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sirkon/astpass/internal/tree"
	"github.com/sirkon/astpass/internal/tree/treetest"
)

func assign(name string, v any) tree.Stmt {
	return tree.NewAssign(name, tree.NewConst(v))
}

func TestPrune(t *testing.T) {
	tests := []struct {
		name  string
		input *tree.Module
		want  *tree.Module
	}{
		{
			name: "true selects body",
			input: tree.NewModule(
				tree.NewIf(tree.NewConst(true), []tree.Stmt{assign("a", 1), assign("b", 2)}, []tree.Stmt{assign("a", 3)}),
			),
			want: tree.NewModule(assign("a", 1), assign("b", 2)),
		},
		{
			name: "false selects orelse",
			input: tree.NewModule(
				assign("x", 0),
				tree.NewIf(tree.NewConst(false), []tree.Stmt{assign("a", 1)}, []tree.Stmt{assign("a", 3)}),
				assign("y", 0),
			),
			want: tree.NewModule(assign("x", 0), assign("a", 3), assign("y", 0)),
		},
		{
			name: "empty selected branch removes the node",
			input: tree.NewModule(
				tree.NewIf(tree.NewConst(0), []tree.Stmt{assign("a", 1)}, nil),
				assign("z", 0),
			),
			want: tree.NewModule(assign("z", 0)),
		},
		{
			name: "string literal tests",
			input: tree.NewModule(
				tree.NewIf(tree.NewStr(""), []tree.Stmt{assign("a", 1)}, []tree.Stmt{assign("b", 1)}),
				tree.NewIf(tree.NewStr("yes"), []tree.Stmt{assign("c", 1)}, nil),
			),
			want: tree.NewModule(assign("b", 1), assign("c", 1)),
		},
		{
			name: "non constant test is kept",
			input: tree.NewModule(
				tree.NewIf(tree.NewName("cond"), []tree.Stmt{assign("a", 1)}, nil),
			),
			want: tree.NewModule(
				tree.NewIf(tree.NewName("cond"), []tree.Stmt{assign("a", 1)}, nil),
			),
		},
		{
			name: "nested in kept if and function",
			input: tree.NewModule(
				tree.NewFunction("f", nil,
					tree.NewIf(tree.NewName("cond"),
						[]tree.Stmt{tree.NewIf(tree.NewConst(nil), []tree.Stmt{assign("a", 1)}, []tree.Stmt{assign("b", 1)})},
						[]tree.Stmt{tree.NewIf(tree.NewConst(1.5), []tree.Stmt{assign("c", 1)}, nil)},
					),
				),
			),
			want: tree.NewModule(
				tree.NewFunction("f", nil,
					tree.NewIf(tree.NewName("cond"), []tree.Stmt{assign("b", 1)}, []tree.Stmt{assign("c", 1)}),
				),
			),
		},
		{
			name: "nested constant ifs collapse together",
			input: tree.NewModule(
				tree.NewIf(tree.NewConst(true),
					[]tree.Stmt{tree.NewIf(tree.NewConst(false), []tree.Stmt{assign("a", 1)}, nil)},
					[]tree.Stmt{assign("b", 1)},
				),
			),
			want: tree.NewModule(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Prune(tt.input)
			treetest.Equal(t, tt.want, got)
		})
	}
}

func TestPruneEndToEndScenario(t *testing.T) {
	// if True: a = 1 else: a = 2
	// return a
	input := tree.NewModule(
		tree.NewIf(tree.NewConst(true), []tree.Stmt{assign("a", 1)}, []tree.Stmt{assign("a", 2)}),
		tree.NewReturn(tree.NewName("a")),
	)

	got := Prune(input)
	treetest.Equal(t, tree.NewModule(assign("a", 1), tree.NewReturn(tree.NewName("a"))), got)
}

func TestPruneRootIf(t *testing.T) {
	got := Prune(tree.NewIf(tree.NewConst(true), []tree.Stmt{assign("a", 1)}, nil))
	treetest.Equal(t, tree.NewModule(assign("a", 1)), got)

	require.Nil(t, Prune(tree.NewIf(tree.NewConst(false), []tree.Stmt{assign("a", 1)}, nil)))
}

func TestPruneIdempotent(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		input := treetest.Random(seed, 4)

		once := Prune(tree.Clone(input))
		require.Empty(t, Find(once), "seed %d: constant conditions survive pruning", seed)

		twice := Prune(tree.Clone(once))
		treetest.Equal(t, once, twice)
	}
}

func TestFind(t *testing.T) {
	inner := tree.NewIf(tree.NewConst(1), nil, nil)
	outer := tree.NewIf(tree.NewStr("x"), []tree.Stmt{inner}, nil)
	kept := tree.NewIf(tree.NewName("c"), nil, nil)
	root := tree.NewModule(outer, kept)

	got := Find(root)
	require.Equal(t, []*tree.If{outer, inner}, got)
	require.Len(t, root.Body, 2, "Find must not change the tree")
}
