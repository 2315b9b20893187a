package gofront

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/types"

	"github.com/sirkon/astpass/internal/tree"
)

func (t *Translator) call(at ast.Node, callee string, args ...tree.Expr) *tree.Call {
	return &tree.Call{
		Pos:    t.pos(at),
		Callee: callee,
		Args:   args,
	}
}

// expr lowers an expression. Constant expressions fold into constants, the
// rest turns into calls of operator named callees over lowered operands.
func (t *Translator) expr(e ast.Expr) tree.Expr {
	if tv, ok := t.info.Types[e]; ok {
		switch {
		case tv.Value != nil:
			return &tree.Constant{Pos: t.pos(e), Value: constValue(tv.Value)}
		case tv.IsType():
			return t.typeExpr(e)
		case tv.IsNil():
			return &tree.Constant{Pos: t.pos(e)}
		}
	}

	switch x := e.(type) {
	case *ast.Ident:
		return t.ident(x)
	case *ast.BasicLit:
		return &tree.Constant{
			Pos:   t.pos(x),
			Value: constValue(constant.MakeFromLiteral(x.Value, x.Kind, 0)),
		}
	case *ast.ParenExpr:
		return t.expr(x.X)
	case *ast.CallExpr:
		return t.onCall(x)
	case *ast.SelectorExpr:
		if t.isPackage(x.X) {
			return t.call(x, types.ExprString(x))
		}
		return t.call(x, "."+x.Sel.Name, t.expr(x.X))
	case *ast.BinaryExpr:
		return t.call(x, x.Op.String(), t.expr(x.X), t.expr(x.Y))
	case *ast.UnaryExpr:
		return t.call(x, x.Op.String(), t.expr(x.X))
	case *ast.StarExpr:
		return t.call(x, "*", t.expr(x.X))
	case *ast.IndexExpr:
		return t.call(x, "[]", t.expr(x.X), t.expr(x.Index))
	case *ast.IndexListExpr:
		return t.expr(x.X)
	case *ast.SliceExpr:
		args := []tree.Expr{t.expr(x.X)}
		for _, b := range []ast.Expr{x.Low, x.High, x.Max} {
			if b != nil {
				args = append(args, t.expr(b))
			}
		}
		return t.call(x, "[:]", args...)
	case *ast.TypeAssertExpr:
		if x.Type == nil {
			return t.call(x, ".(type)", t.expr(x.X))
		}
		return t.call(x, ".("+types.ExprString(x.Type)+")", t.expr(x.X))
	case *ast.CompositeLit:
		callee := "{}"
		if x.Type != nil {
			callee = types.ExprString(x.Type) + "{}"
		}
		var args []tree.Expr
		for _, elt := range x.Elts {
			args = append(args, t.expr(elt))
		}
		return t.call(x, callee, args...)
	case *ast.KeyValueExpr:
		return t.call(x, ":", t.expr(x.Key), t.expr(x.Value))
	case *ast.FuncLit:
		name := fmt.Sprintf("func@%d", t.pos(x).Line)
		t.pending = append(t.pending, t.funcLit(name, x))
		return t.call(x, name)
	case *ast.Ellipsis:
		if x.Elt != nil {
			return t.typeExpr(x.Elt)
		}
		return &tree.Constant{Pos: t.pos(x)}
	default:
		return t.typeExpr(e)
	}
}

func (t *Translator) ident(id *ast.Ident) tree.Expr {
	if id.Name == "_" {
		return &tree.Constant{Pos: t.pos(id)}
	}

	obj := t.info.Uses[id]
	if obj == nil {
		obj = t.info.Defs[id]
	}
	switch o := obj.(type) {
	case nil:
		// No type information, keep it as a variable use.
		return &tree.Name{Pos: t.pos(id), ID: id.Name}
	case *types.Var:
		if o.IsField() {
			return &tree.Constant{Pos: t.pos(id), Value: id.Name}
		}
		return &tree.Name{Pos: t.pos(id), ID: id.Name}
	case *types.Const:
		return &tree.Constant{Pos: t.pos(id), Value: constValue(o.Val())}
	case *types.Nil:
		return &tree.Constant{Pos: t.pos(id)}
	default:
		// Functions, types, builtins and packages are not variables.
		return &tree.Constant{Pos: t.pos(id), Value: id.Name}
	}
}

func (t *Translator) onCall(x *ast.CallExpr) tree.Expr {
	var args []tree.Expr
	for _, a := range x.Args {
		args = append(args, t.expr(a))
	}

	if tv, ok := t.info.Types[x.Fun]; ok && tv.IsType() {
		return t.call(x, types.ExprString(x.Fun), args...)
	}

	fun := ast.Unparen(x.Fun)
	switch f := fun.(type) {
	case *ast.IndexExpr:
		fun = f.X
	case *ast.IndexListExpr:
		fun = f.X
	}

	switch f := fun.(type) {
	case *ast.Ident:
		if t.isVar(f) {
			// Calling a function value uses the variable holding it.
			return t.call(x, "call", append([]tree.Expr{t.ident(f)}, args...)...)
		}
		return t.call(x, f.Name, args...)
	case *ast.SelectorExpr:
		if t.isPackage(f.X) {
			return t.call(x, types.ExprString(f), args...)
		}
		return t.call(x, "."+f.Sel.Name, append([]tree.Expr{t.expr(f.X)}, args...)...)
	default:
		return t.call(x, "call", append([]tree.Expr{t.expr(fun)}, args...)...)
	}
}

func (t *Translator) isVar(id *ast.Ident) bool {
	switch o := t.info.Uses[id].(type) {
	case *types.Var:
		return !o.IsField()
	case nil:
		return t.known(id.Name)
	default:
		return false
	}
}

func (t *Translator) isPackage(e ast.Expr) bool {
	id, ok := e.(*ast.Ident)
	if !ok {
		return false
	}

	switch t.info.Uses[id].(type) {
	case *types.PkgName:
		return true
	case nil:
		return !t.known(id.Name)
	default:
		return false
	}
}

func constValue(v constant.Value) any {
	switch v.Kind() {
	case constant.Bool:
		return constant.BoolVal(v)
	case constant.Int:
		if i, ok := constant.Int64Val(v); ok {
			return i
		}
		f, _ := constant.Float64Val(v)
		return f
	case constant.Float:
		f, _ := constant.Float64Val(v)
		return f
	case constant.String:
		return constant.StringVal(v)
	case constant.Unknown:
		return nil
	default:
		return v.ExactString()
	}
}
