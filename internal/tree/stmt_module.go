package tree

// Module is the root of a tree.
type Module struct {
	Body []Stmt
}

// NewModule creates a module with the given statements.
func NewModule(body ...Stmt) *Module {
	return &Module{Body: body}
}

func (*Module) isNode() {}
