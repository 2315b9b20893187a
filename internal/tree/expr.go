package tree

// Call represents a call of a named function.
//
//	g(x, 5) // Callee: "g", Args: [Name(x), Constant(5)]
type Call struct {
	Pos    Pos
	Callee string
	Args   []Expr
}

// NewCall creates a call expression.
func NewCall(callee string, args ...Expr) *Call {
	return &Call{Callee: callee, Args: args}
}

// Name is a variable reference.
type Name struct {
	Pos Pos
	ID  string
}

// NewName creates a variable reference.
func NewName(id string) *Name {
	return &Name{ID: id}
}

// StringLiteral is a string literal. Standing alone as a statement it marks a docstring.
type StringLiteral struct {
	Pos   Pos
	Value string
}

// NewStr creates a string literal.
func NewStr(value string) *StringLiteral {
	return &StringLiteral{Value: value}
}

// ExprList is a sequence of expressions placed where a single expression is
// expected. It only exists between inlining and normalization.
type ExprList struct {
	Pos   Pos
	Items []Expr
}

func (*Call) isNode()          {}
func (*Call) isExpr()          {}
func (*Name) isNode()          {}
func (*Name) isExpr()          {}
func (*StringLiteral) isNode() {}
func (*StringLiteral) isExpr() {}
func (*ExprList) isNode()      {}
func (*ExprList) isExpr()      {}
