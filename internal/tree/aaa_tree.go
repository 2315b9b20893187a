package tree

import "fmt"

// Node is the base interface implemented by all tree node types.
type Node interface {
	isNode()
}

// Stmt marks nodes that can be placed into a statement list.
type Stmt interface {
	Node
	isStmt()
}

// Expr marks nodes that can be placed into an expression slot.
type Expr interface {
	Node
	isExpr()
}

// Pos is a position of a node in the source it was produced from.
// Zero Line means the position is missing.
type Pos struct {
	Line int
	Col  int
}

// IsValid reports whether the position is set.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

func (p Pos) String() string {
	if p.Col > 0 {
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	}
	return fmt.Sprintf("%d", p.Line)
}

// PosOf returns the position of n. Module has no position of its own.
func PosOf(n Node) Pos {
	if p := posRef(n); p != nil {
		return *p
	}
	return Pos{}
}

func posRef(n Node) *Pos {
	switch n := n.(type) {
	case *FunctionDef:
		return &n.Pos
	case *If:
		return &n.Pos
	case *Assign:
		return &n.Pos
	case *ExprStmt:
		return &n.Pos
	case *Return:
		return &n.Pos
	case *GlobalDecl:
		return &n.Pos
	case *NonlocalDecl:
		return &n.Pos
	case *Call:
		return &n.Pos
	case *Name:
		return &n.Pos
	case *Constant:
		return &n.Pos
	case *StringLiteral:
		return &n.Pos
	case *ExprList:
		return &n.Pos
	default:
		return nil
	}
}

// SetPos sets the position of n. It does nothing for Module.
func SetPos(n Node, p Pos) {
	if ref := posRef(n); ref != nil {
		*ref = p
	}
}
