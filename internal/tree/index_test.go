package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndexLookup(t *testing.T) {
	mod := sampleModule()
	idx := NewIndex(mod)

	fn := mod.Body[0].(*FunctionDef)
	cond := mod.Body[1].(*If)

	tests := []struct {
		name string
		line int
		want Stmt
	}{
		{name: "function header", line: 1, want: fn},
		{name: "function body", line: 2, want: fn.Body[0]},
		{name: "gap", line: 3, want: nil},
		{name: "if header", line: 4, want: cond},
		{name: "then branch", line: 5, want: cond.Body[0]},
		{name: "between branches", line: 6, want: cond},
		{name: "else branch", line: 7, want: cond.Orelse[0]},
		{name: "return", line: 8, want: mod.Body[2]},
		{name: "past the end", line: 100, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := idx.Lookup(tt.line)
			if tt.want == nil {
				require.Nil(t, got)
				return
			}
			require.Same(t, tt.want, got)
		})
	}
}

func TestIndexEnclosing(t *testing.T) {
	inner := &FunctionDef{
		Pos:  Pos{Line: 11},
		Name: "inner",
		Body: []Stmt{
			&ExprStmt{Pos: Pos{Line: 12}, Value: &Call{Pos: Pos{Line: 12}, Callee: "g"}},
		},
	}
	outer := &FunctionDef{
		Pos:  Pos{Line: 10},
		Name: "outer",
		Body: []Stmt{
			inner,
			&ExprStmt{Pos: Pos{Line: 13}, Value: &Call{Pos: Pos{Line: 13}, Callee: "inner"}},
		},
	}
	idx := NewIndex(NewModule(
		&Assign{Pos: Pos{Line: 1}, Target: "a", Value: &Constant{Pos: Pos{Line: 1}, Value: int64(1)}},
		outer,
	))

	require.Nil(t, idx.Enclosing(1))
	require.Same(t, outer, idx.Enclosing(10))
	require.Same(t, inner, idx.Enclosing(12))
	require.Same(t, outer, idx.Enclosing(13))
	require.Nil(t, idx.Enclosing(14))
}

func TestIndexSameLineStatements(t *testing.T) {
	first := &ExprStmt{Pos: Pos{Line: 3}, Value: NewCall("a")}
	second := &ExprStmt{Pos: Pos{Line: 3}, Value: NewCall("b")}
	idx := NewIndex(NewModule(first, second))

	require.NotNil(t, idx.Lookup(3))
	require.Nil(t, idx.Lookup(2))
}
