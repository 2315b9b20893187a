package tree

// If represents a conditional statement with optional else branch.
type If struct {
	Pos    Pos
	Test   Expr
	Body   []Stmt
	Orelse []Stmt
}

// NewIf creates a conditional statement.
func NewIf(test Expr, body []Stmt, orelse []Stmt) *If {
	return &If{Test: test, Body: body, Orelse: orelse}
}

func (*If) isNode() {}
func (*If) isStmt() {}
