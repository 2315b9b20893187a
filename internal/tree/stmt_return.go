package tree

// Return represents a return statement. Values is empty for a bare return.
type Return struct {
	Pos    Pos
	Values []Expr
}

// NewReturn creates a return statement.
func NewReturn(values ...Expr) *Return {
	return &Return{Values: values}
}

func (*Return) isNode() {}
func (*Return) isStmt() {}
