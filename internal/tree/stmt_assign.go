package tree

// Assign represents an assignment to a single name.
//
//	a = f(b) // Target: "a", Value: Call(f, Name(b))
//
// An empty Target stands for an assignment whose target is not a plain name
// (attribute, subscript, tuple). Such assignments define nothing.
type Assign struct {
	Pos    Pos
	Target string
	Value  Expr
}

// NewAssign creates an assignment.
func NewAssign(target string, value Expr) *Assign {
	return &Assign{Target: target, Value: value}
}

func (*Assign) isNode() {}
func (*Assign) isStmt() {}
