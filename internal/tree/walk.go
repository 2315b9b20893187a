package tree

import "fmt"

// Visitor is invoked by Walk for every node.
// Children of n are not visited if the returned visitor is nil, otherwise
// they are visited with w and then w.Visit(nil) is called.
type Visitor interface {
	Visit(n Node) (w Visitor)
}

// Walk traverses the tree rooted at n in depth-first order.
func Walk(v Visitor, n Node) {
	if n == nil {
		return
	}
	if v = v.Visit(n); v == nil {
		return
	}
	for _, c := range Children(n) {
		Walk(v, c)
	}
	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(n Node) Visitor {
	if f(n) {
		return f
	}
	return nil
}

// Inspect traverses the tree rooted at n calling f for every node.
// Descent into children stops when f returns false. f(nil) is called after
// the children of a node were visited.
func Inspect(n Node, f func(Node) bool) {
	Walk(inspector(f), n)
}

// Children returns direct children of n in field order. Empty expression slots are skipped.
func Children(n Node) []Node {
	var res []Node
	switch n := n.(type) {
	case *Module:
		res = appendStmts(res, n.Body)
	case *FunctionDef:
		res = appendStmts(res, n.Body)
	case *If:
		if n.Test != nil {
			res = append(res, n.Test)
		}
		res = appendStmts(res, n.Body)
		res = appendStmts(res, n.Orelse)
	case *Assign:
		if n.Value != nil {
			res = append(res, n.Value)
		}
	case *ExprStmt:
		if n.Value != nil {
			res = append(res, n.Value)
		}
	case *Return:
		res = appendExprs(res, n.Values)
	case *Call:
		res = appendExprs(res, n.Args)
	case *ExprList:
		res = appendExprs(res, n.Items)
	case *GlobalDecl, *NonlocalDecl, *Name, *Constant, *StringLiteral:
	default:
		panic(fmt.Sprintf("tree: unsupported node type %T", n))
	}
	return res
}

func appendStmts(dst []Node, list []Stmt) []Node {
	for _, s := range list {
		if s != nil {
			dst = append(dst, s)
		}
	}
	return dst
}

func appendExprs(dst []Node, list []Expr) []Node {
	for _, e := range list {
		if e != nil {
			dst = append(dst, e)
		}
	}
	return dst
}
