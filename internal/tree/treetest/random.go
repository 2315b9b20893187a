package treetest

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirkon/astpass/internal/tree"
)

// Random builds a pseudo-random module from a fixed seed. Generated trees
// use a small vocabulary of names and callees, so definitions, uses and
// constant conditions collide often.
func Random(seed uint64, depth int) *tree.Module {
	g := &generator{
		r:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		line: 1,
	}
	return &tree.Module{Body: g.stmts(depth, 1+g.r.IntN(6))}
}

type generator struct {
	r    *rand.Rand
	line int
}

var (
	names   = []string{"a", "b", "c", "x", "y"}
	callees = []string{"f", "g", "h", "print"}
)

func (g *generator) pos() tree.Pos {
	g.line++
	return tree.Pos{Line: g.line}
}

func (g *generator) stmts(depth, n int) []tree.Stmt {
	res := make([]tree.Stmt, 0, n)
	for i := 0; i < n; i++ {
		res = append(res, g.stmt(depth))
	}
	return res
}

func (g *generator) stmt(depth int) tree.Stmt {
	kind := g.r.IntN(8)
	if depth <= 0 {
		kind = g.r.IntN(3)
	}

	switch kind {
	case 0:
		return &tree.Assign{Pos: g.pos(), Target: g.name(), Value: g.expr(2)}
	case 1:
		return &tree.ExprStmt{Pos: g.pos(), Value: g.call(2)}
	case 2:
		return &tree.Return{Pos: g.pos(), Values: []tree.Expr{g.expr(1)}}
	case 3, 4:
		pos := g.pos()
		return &tree.If{
			Pos:    pos,
			Test:   g.test(),
			Body:   g.stmts(depth-1, g.r.IntN(3)),
			Orelse: g.stmts(depth-1, g.r.IntN(3)),
		}
	case 5:
		pos := g.pos()
		params := []string{}
		for i := g.r.IntN(3); i > 0; i-- {
			params = append(params, fmt.Sprintf("p%d", i))
		}
		return &tree.FunctionDef{
			Pos:    pos,
			Name:   callees[g.r.IntN(len(callees)-1)],
			Params: params,
			Body:   g.stmts(depth-1, g.r.IntN(4)),
		}
	case 6:
		return &tree.GlobalDecl{Pos: g.pos(), Names: []string{g.name()}}
	default:
		return &tree.NonlocalDecl{Pos: g.pos(), Names: []string{g.name()}}
	}
}

func (g *generator) test() tree.Expr {
	switch g.r.IntN(4) {
	case 0:
		return &tree.Constant{Value: g.r.IntN(2) == 1}
	case 1:
		return &tree.Constant{Value: int64(g.r.IntN(2))}
	case 2:
		return &tree.StringLiteral{Value: []string{"", "s"}[g.r.IntN(2)]}
	default:
		return g.expr(1)
	}
}

func (g *generator) name() string {
	return names[g.r.IntN(len(names))]
}

func (g *generator) expr(depth int) tree.Expr {
	if depth <= 0 || g.r.IntN(3) == 0 {
		if g.r.IntN(2) == 0 {
			return &tree.Name{ID: g.name()}
		}
		return &tree.Constant{Value: int64(g.r.IntN(10))}
	}
	return g.call(depth)
}

func (g *generator) call(depth int) *tree.Call {
	c := &tree.Call{Callee: callees[g.r.IntN(len(callees))]}
	for i := g.r.IntN(3); i > 0; i-- {
		c.Args = append(c.Args, g.expr(depth-1))
	}
	return c
}
