package gofront

import (
	"go/ast"
)

// frame tracks names defined by a function being translated.
type frame struct {
	name     string
	defs     map[string]bool
	declared map[string]bool
	results  []*ast.Ident
}

func (t *Translator) push(name string) *frame {
	f := &frame{
		name:     name,
		defs:     map[string]bool{},
		declared: map[string]bool{},
	}
	t.frames = append(t.frames, f)
	return f
}

func (t *Translator) pop() {
	t.frames = t.frames[:len(t.frames)-1]
}

func (t *Translator) top() *frame {
	if len(t.frames) == 0 {
		return nil
	}
	return t.frames[len(t.frames)-1]
}

// define registers a name in the innermost function, or at package level outside of functions.
func (t *Translator) define(name string) {
	if f := t.top(); f != nil {
		f.defs[name] = true
		return
	}
	t.globals[name] = true
}

// known reports whether the name is defined by any enclosing function or the package.
func (t *Translator) known(name string) bool {
	for _, f := range t.frames {
		if f.defs[name] {
			return true
		}
	}
	return t.globals[name]
}

type binding int

const (
	bindLocal binding = iota
	bindNonlocal
	bindGlobal
)

// bindingOf tells where an assignment to an existing name lands.
func (t *Translator) bindingOf(name string) binding {
	cur := t.top()
	if cur == nil || cur.defs[name] {
		return bindLocal
	}
	for i := len(t.frames) - 2; i >= 0; i-- {
		if t.frames[i].defs[name] {
			return bindNonlocal
		}
	}
	if t.globals[name] {
		return bindGlobal
	}
	return bindLocal
}
