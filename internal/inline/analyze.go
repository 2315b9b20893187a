package inline

import (
	"fmt"

	"github.com/sirkon/astpass/internal/tree"
)

// Analyze collects inlinability verdicts for functions of the tree.
func Analyze(root tree.Node) *Records {
	recs := NewRecords()
	recs.Analyze(root)
	return recs
}

// Analyze adds verdicts for functions of the tree, overwriting earlier
// verdicts for the same names. Functions nested in other function bodies are
// not analyzed. The tree is not changed.
func (r *Records) Analyze(root tree.Node) {
	tree.Inspect(root, func(n tree.Node) bool {
		f, ok := n.(*tree.FunctionDef)
		if !ok {
			return true
		}

		r.analyzeFunction(f)
		return false
	})
}

func (r *Records) analyzeFunction(f *tree.FunctionDef) {
	if !f.HasUniqueParams() {
		r.reject(f.Name, "duplicate parameter names")
		return
	}

	body := f.Body
	if len(body) > 0 && tree.IsDocstring(body[0]) {
		body = body[1:]
	}

	calls := make([]*tree.Call, 0, len(body))
	for _, s := range body {
		call, ok := callOf(s)
		if !ok {
			r.reject(f.Name, fmt.Sprintf("%s at line %d is not a call", describe(s), tree.PosOf(s).Line))
			return
		}
		calls = append(calls, tree.CloneCall(call))
	}

	r.accept(&Record{
		Name:   f.Name,
		Pos:    f.Pos,
		Params: append([]string(nil), f.Params...),
		Calls:  calls,
	})
}

func callOf(s tree.Stmt) (*tree.Call, bool) {
	es, ok := s.(*tree.ExprStmt)
	if !ok {
		return nil, false
	}
	call, ok := es.Value.(*tree.Call)
	return call, ok
}

func describe(s tree.Stmt) string {
	switch x := s.(type) {
	case *tree.FunctionDef:
		return "function definition"
	case *tree.If:
		return "conditional"
	case *tree.Assign:
		return "assignment"
	case *tree.Return:
		return "return"
	case *tree.GlobalDecl:
		return "global declaration"
	case *tree.NonlocalDecl:
		return "nonlocal declaration"
	case *tree.ExprStmt:
		if tree.IsDocstring(x) {
			return "docstring"
		}
		return "expression"
	default:
		return fmt.Sprintf("%T", s)
	}
}
