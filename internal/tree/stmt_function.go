package tree

// FunctionDef represents a function definition. Params holds parameter
// names in declaration order, they are expected to be unique.
//
//	def f(a, b):
//	    g(a)        // Name: "f", Params: ["a", "b"], Body: [ExprStmt(Call g)]
type FunctionDef struct {
	Pos    Pos
	Name   string
	Params []string
	Body   []Stmt
}

// NewFunction creates a function definition.
func NewFunction(name string, params []string, body ...Stmt) *FunctionDef {
	return &FunctionDef{Name: name, Params: params, Body: body}
}

// HasUniqueParams reports whether no parameter name repeats.
func (f *FunctionDef) HasUniqueParams() bool {
	seen := make(map[string]struct{}, len(f.Params))
	for _, p := range f.Params {
		if _, ok := seen[p]; ok {
			return false
		}
		seen[p] = struct{}{}
	}
	return true
}

func (*FunctionDef) isNode() {}
func (*FunctionDef) isStmt() {}
