package tree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleModule() *Module {
	return &Module{Body: []Stmt{
		&FunctionDef{
			Pos:    Pos{Line: 1},
			Name:   "f",
			Params: []string{"x"},
			Body: []Stmt{
				&ExprStmt{
					Pos:   Pos{Line: 2},
					Value: &Call{Pos: Pos{Line: 2}, Callee: "g", Args: []Expr{&Name{Pos: Pos{Line: 2}, ID: "x"}}},
				},
			},
		},
		&If{
			Pos:    Pos{Line: 4},
			Test:   &Constant{Pos: Pos{Line: 4}, Value: true},
			Body:   []Stmt{&Assign{Pos: Pos{Line: 5}, Target: "a", Value: &Constant{Pos: Pos{Line: 5}, Value: int64(1)}}},
			Orelse: []Stmt{&Assign{Pos: Pos{Line: 7}, Target: "a", Value: &Constant{Pos: Pos{Line: 7}, Value: int64(2)}}},
		},
		&Return{Pos: Pos{Line: 8}, Values: []Expr{&Name{Pos: Pos{Line: 8}, ID: "a"}}},
	}}
}

func TestInspectOrder(t *testing.T) {
	var got []string
	Inspect(sampleModule(), func(n Node) bool {
		if n != nil {
			got = append(got, fmt.Sprintf("%T", n))
		}
		return true
	})

	require.Equal(t, []string{
		"*tree.Module",
		"*tree.FunctionDef",
		"*tree.ExprStmt",
		"*tree.Call",
		"*tree.Name",
		"*tree.If",
		"*tree.Constant",
		"*tree.Assign",
		"*tree.Constant",
		"*tree.Assign",
		"*tree.Constant",
		"*tree.Return",
		"*tree.Name",
	}, got)
}

func TestInspectPrune(t *testing.T) {
	var names []string
	Inspect(sampleModule(), func(n Node) bool {
		switch n := n.(type) {
		case *FunctionDef:
			return false
		case *Name:
			names = append(names, n.ID)
		}
		return true
	})

	require.Equal(t, []string{"a"}, names)
}

type depthVisitor struct {
	depth int
	max   *int
}

func (v depthVisitor) Visit(n Node) Visitor {
	if n == nil {
		return nil
	}
	if v.depth > *v.max {
		*v.max = v.depth
	}
	return depthVisitor{depth: v.depth + 1, max: v.max}
}

func TestWalkDepth(t *testing.T) {
	var maxDepth int
	Walk(depthVisitor{max: &maxDepth}, sampleModule())
	// Module -> FunctionDef -> ExprStmt -> Call -> Name
	require.Equal(t, 4, maxDepth)
}

func TestChildrenSkipsEmptySlots(t *testing.T) {
	require.Empty(t, Children(&Assign{Target: "a"}))
	require.Empty(t, Children(&Name{ID: "a"}))
	require.Len(t, Children(&If{Test: NewConst(true), Body: []Stmt{NewExprStmt(NewName("a"))}}), 2)
	require.Panics(t, func() {
		Children(nil)
	})
}
