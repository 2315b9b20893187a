package tree

import "fmt"

type actionKind int

const (
	actionKeep actionKind = iota
	actionReplace
	actionSplice
	actionRemove
)

// Action tells Rewrite what to do with the node a cursor points to.
type Action struct {
	kind  actionKind
	nodes []Node
}

// Keep leaves the node in place.
func Keep() Action {
	return Action{kind: actionKeep}
}

// Replace puts n in place of the node. Replacing with nil removes the node.
func Replace(n Node) Action {
	if n == nil {
		return Remove()
	}
	return Action{kind: actionReplace, nodes: []Node{n}}
}

// Splice puts a sequence of nodes in place of the node.
//
// Within a statement or an argument list the nodes are inserted in place.
// A single expression slot gets an *ExprList holding them. At the root the
// nodes become the body of a new *Module.
func Splice(nodes ...Node) Action {
	return Action{kind: actionSplice, nodes: nodes}
}

// Remove deletes the node from its parent.
func Remove() Action {
	return Action{kind: actionRemove}
}

// Cursor describes a node during Rewrite.
type Cursor struct {
	node   Node
	parent Node
	field  string
	index  int
}

// Node returns the current node.
func (c *Cursor) Node() Node { return c.node }

// Parent returns the parent of the current node, nil for the root.
func (c *Cursor) Parent() Node { return c.parent }

// Field returns the name of the parent field holding the node, e.g. "Body" or "Args".
func (c *Cursor) Field() string { return c.field }

// Index returns the position of the node within a list field, or -1 for single slots.
func (c *Cursor) Index() int { return c.index }

// Rewrite traverses the tree rooted at root in post-order and applies post
// to every node once its children were rewritten. It returns the new root.
//
// Placing a statement into an expression slot or the other way around panics.
func Rewrite(root Node, post func(*Cursor) Action) Node {
	if root == nil {
		return nil
	}

	r := rewriter{post: post}
	act := r.visit(root, nil, "", -1)
	switch act.kind {
	case actionKeep:
		return root
	case actionReplace:
		return act.nodes[0]
	case actionSplice:
		mod := &Module{}
		for _, n := range act.nodes {
			mod.Body = append(mod.Body, mustStmt(n, mod, "Body"))
		}
		return mod
	default:
		return nil
	}
}

type rewriter struct {
	post func(*Cursor) Action
}

func (r *rewriter) visit(n Node, parent Node, field string, index int) Action {
	r.children(n)
	return r.post(&Cursor{
		node:   n,
		parent: parent,
		field:  field,
		index:  index,
	})
}

func (r *rewriter) children(n Node) {
	switch n := n.(type) {
	case *Module:
		n.Body = r.stmts(n, "Body", n.Body)
	case *FunctionDef:
		n.Body = r.stmts(n, "Body", n.Body)
	case *If:
		n.Test = r.expr(n, "Test", n.Test)
		n.Body = r.stmts(n, "Body", n.Body)
		n.Orelse = r.stmts(n, "Orelse", n.Orelse)
	case *Assign:
		n.Value = r.expr(n, "Value", n.Value)
	case *ExprStmt:
		n.Value = r.expr(n, "Value", n.Value)
	case *Return:
		n.Values = r.exprs(n, "Values", n.Values)
	case *Call:
		n.Args = r.exprs(n, "Args", n.Args)
	case *ExprList:
		n.Items = r.exprs(n, "Items", n.Items)
	case *GlobalDecl, *NonlocalDecl, *Name, *Constant, *StringLiteral:
	default:
		panic(fmt.Sprintf("tree: unsupported node type %T", n))
	}
}

// stmts rewrites a statement list. A new slice is only allocated once the
// first change is seen.
func (r *rewriter) stmts(parent Node, field string, list []Stmt) []Stmt {
	var res []Stmt
	changed := false
	for i, s := range list {
		if s == nil {
			continue
		}
		act := r.visit(s, parent, field, i)
		if act.kind == actionKeep || (act.kind == actionReplace && act.nodes[0] == Node(s)) {
			if changed {
				res = append(res, s)
			}
			continue
		}

		if !changed {
			res = make([]Stmt, 0, len(list))
			res = append(res, list[:i]...)
			changed = true
		}
		if act.kind == actionRemove {
			continue
		}
		for _, n := range act.nodes {
			res = append(res, mustStmt(n, parent, field))
		}
	}

	if !changed {
		return list
	}
	return res
}

func (r *rewriter) exprs(parent Node, field string, list []Expr) []Expr {
	var res []Expr
	changed := false
	for i, e := range list {
		if e == nil {
			continue
		}
		act := r.visit(e, parent, field, i)
		if act.kind == actionKeep || (act.kind == actionReplace && act.nodes[0] == Node(e)) {
			if changed {
				res = append(res, e)
			}
			continue
		}

		if !changed {
			res = make([]Expr, 0, len(list))
			res = append(res, list[:i]...)
			changed = true
		}
		if act.kind == actionRemove {
			continue
		}
		for _, n := range act.nodes {
			res = append(res, mustExpr(n, parent, field))
		}
	}

	if !changed {
		return list
	}
	return res
}

func (r *rewriter) expr(parent Node, field string, e Expr) Expr {
	if e == nil {
		return nil
	}

	act := r.visit(e, parent, field, -1)
	switch act.kind {
	case actionKeep:
		return e
	case actionReplace:
		return mustExpr(act.nodes[0], parent, field)
	case actionSplice:
		list := &ExprList{Pos: PosOf(e)}
		for _, n := range act.nodes {
			list.Items = append(list.Items, mustExpr(n, parent, field))
		}
		return list
	default:
		return nil
	}
}

func mustStmt(n Node, parent Node, field string) Stmt {
	s, ok := n.(Stmt)
	if !ok {
		panic(fmt.Sprintf("tree: %T is not a statement and cannot be placed into %T.%s", n, parent, field))
	}
	return s
}

func mustExpr(n Node, parent Node, field string) Expr {
	e, ok := n.(Expr)
	if !ok {
		panic(fmt.Sprintf("tree: %T is not an expression and cannot be placed into %T.%s", n, parent, field))
	}
	return e
}
