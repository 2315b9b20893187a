package tree

// ExprStmt is an expression evaluated for its effect.
//
// Value is a single expression in a well-formed tree. Inlining may leave an
// *ExprList here, the normalizer splits such statements back.
type ExprStmt struct {
	Pos   Pos
	Value Expr
}

// NewExprStmt creates an expression statement.
func NewExprStmt(value Expr) *ExprStmt {
	return &ExprStmt{Value: value}
}

// IsDocstring reports whether s is a standalone string literal statement.
func IsDocstring(s Stmt) bool {
	es, ok := s.(*ExprStmt)
	if !ok {
		return false
	}
	switch v := es.Value.(type) {
	case *StringLiteral:
		return true
	case *Constant:
		_, isStr := v.Value.(string)
		return isStr
	default:
		return false
	}
}

func (*ExprStmt) isNode() {}
func (*ExprStmt) isStmt() {}
