package usage

import (
	"github.com/sirkon/astpass/internal/tree"
)

// Analyze returns diagnostics for the tree rooted at root in traversal order.
// The tree is not changed.
func Analyze(root tree.Node) []Diagnostic {
	a := &analyzer{}
	a.push(GlobalScope)
	tree.Walk(visitor{a: a}, root)
	a.pop()
	return a.diags
}

type analyzer struct {
	stack []*scope
	diags []Diagnostic
}

func (a *analyzer) top() *scope {
	return a.stack[len(a.stack)-1]
}

func (a *analyzer) push(name string) *scope {
	s := newScope(name)
	a.stack = append(a.stack, s)
	return s
}

// pop drops the innermost scope reporting its unused locals.
func (a *analyzer) pop() {
	s := a.top()
	for _, name := range s.unused() {
		a.diags = append(a.diags, Diagnostic{
			Kind:  Unused,
			Name:  name,
			Scope: s.name,
			Line:  s.locals[name],
		})
	}
	a.stack = a.stack[:len(a.stack)-1]
}

func (a *analyzer) define(name string, line int) {
	if name == "" {
		return
	}

	s := a.top()
	switch {
	case s.isNonlocal(name):
	case s.isGlobal(name):
		a.stack[0].define(name, line)
	default:
		s.define(name, line)
	}
}

func (a *analyzer) use(name string, line int) {
	cur := a.top()
	global := a.stack[0]
	if cur.isGlobal(name) || global.hasLocal(name) {
		global.markUsed(name)
		return
	}

	for i := len(a.stack) - 1; i >= 0; i-- {
		s := a.stack[i]
		if s.isNonlocal(name) {
			continue
		}
		if s.hasLocal(name) {
			s.markUsed(name)
			return
		}
	}

	a.diags = append(a.diags, Diagnostic{
		Kind:  UsedBeforeDefined,
		Name:  name,
		Scope: cur.name,
		Line:  line,
	})
}

// visitor walks the tree keeping the scope stack in sync: the visitor
// returned for a function pops its scope once the body is visited.
type visitor struct {
	a     *analyzer
	scope bool
}

func (v visitor) Visit(n tree.Node) tree.Visitor {
	switch x := n.(type) {
	case nil:
		if v.scope {
			v.a.pop()
		}
		return nil

	case *tree.FunctionDef:
		s := v.a.push(x.Name)
		for _, p := range x.Params {
			s.define(p, x.Pos.Line)
		}
		return visitor{a: v.a, scope: true}

	case *tree.GlobalDecl:
		s := v.a.top()
		for _, name := range x.Names {
			s.declare(s.globals, name)
		}
		return nil

	case *tree.NonlocalDecl:
		s := v.a.top()
		for _, name := range x.Names {
			s.declare(s.nonlocals, name)
		}
		return nil

	case *tree.Assign:
		v.a.define(x.Target, x.Pos.Line)
		return visitor{a: v.a}

	case *tree.Name:
		v.a.use(x.ID, x.Pos.Line)
		return nil

	default:
		return visitor{a: v.a}
	}
}
