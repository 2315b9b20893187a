package gofront

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/sirkon/astpass/internal/tree"
)

func (t *Translator) block(list []ast.Stmt) []tree.Stmt {
	var res []tree.Stmt
	for _, s := range list {
		res = append(res, t.stmt(s)...)
	}
	return res
}

func (t *Translator) stmt(s ast.Stmt) []tree.Stmt {
	return t.withPending(func() []tree.Stmt {
		return t.walkStmt(s)
	})
}

func (t *Translator) walkStmt(s ast.Stmt) []tree.Stmt {
	switch v := s.(type) {
	case *ast.AssignStmt:
		return t.onAssign(v)
	case *ast.DeclStmt:
		if gd, ok := v.Decl.(*ast.GenDecl); ok && gd.Tok == token.VAR {
			return t.varDecl(gd)
		}
		return nil
	case *ast.ExprStmt:
		return []tree.Stmt{t.exprStmt(v.X)}
	case *ast.IncDecStmt:
		return []tree.Stmt{&tree.ExprStmt{
			Pos:   t.pos(v),
			Value: t.call(v, v.Tok.String(), t.expr(v.X)),
		}}
	case *ast.SendStmt:
		return []tree.Stmt{&tree.ExprStmt{
			Pos:   t.pos(v),
			Value: t.call(v, "<-", t.expr(v.Chan), t.expr(v.Value)),
		}}
	case *ast.GoStmt:
		return []tree.Stmt{t.exprStmt(v.Call)}
	case *ast.DeferStmt:
		return []tree.Stmt{t.exprStmt(v.Call)}
	case *ast.ReturnStmt:
		return []tree.Stmt{t.onReturn(v)}
	case *ast.IfStmt:
		return t.onIf(v)
	case *ast.BlockStmt:
		return t.block(v.List)
	case *ast.ForStmt:
		return t.onFor(v)
	case *ast.RangeStmt:
		return t.onRange(v)
	case *ast.SwitchStmt:
		return t.onSwitch(v)
	case *ast.TypeSwitchStmt:
		return t.onTypeSwitch(v)
	case *ast.SelectStmt:
		return t.onSelect(v)
	case *ast.LabeledStmt:
		return t.walkStmt(v.Stmt)
	default:
		// Branches and empty statements carry no names.
		return nil
	}
}

func (t *Translator) exprStmt(e ast.Expr) tree.Stmt {
	return &tree.ExprStmt{
		Pos:   t.pos(e),
		Value: t.expr(e),
	}
}

func (t *Translator) varDecl(gd *ast.GenDecl) []tree.Stmt {
	var res []tree.Stmt
	for _, spec := range gd.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}

		for i, id := range vs.Names {
			if lit, ok := singleFuncLit(vs.Values, len(vs.Names), i); ok && id.Name != "_" {
				res = append(res, t.namedFuncLit(id, lit)...)
				continue
			}

			var value tree.Expr
			switch {
			case i < len(vs.Values) && len(vs.Values) == len(vs.Names):
				value = t.expr(vs.Values[i])
			case i == 0 && len(vs.Values) == 1:
				value = t.expr(vs.Values[0])
			case id.Name == "_":
				continue
			default:
				// Zero values and the rest of a multi value call.
				value = &tree.Constant{Pos: t.pos(id)}
			}

			if id.Name == "_" {
				res = append(res, &tree.ExprStmt{Pos: t.pos(id), Value: value})
				continue
			}

			t.define(id.Name)
			res = append(res, &tree.Assign{
				Pos:    t.pos(id),
				Target: id.Name,
				Value:  value,
			})
		}
	}

	return res
}

func singleFuncLit(values []ast.Expr, names, i int) (*ast.FuncLit, bool) {
	if len(values) != names {
		return nil, false
	}
	lit, ok := ast.Unparen(values[i]).(*ast.FuncLit)
	return lit, ok
}

// namedFuncLit turns x := func(...) {...} into a nested function definition
// named x followed by an assignment defining x.
func (t *Translator) namedFuncLit(id *ast.Ident, lit *ast.FuncLit) []tree.Stmt {
	t.define(id.Name)
	return []tree.Stmt{
		t.funcLit(id.Name, lit),
		&tree.Assign{
			Pos:    t.pos(id),
			Target: id.Name,
			Value:  t.call(lit, "func"),
		},
	}
}

func (t *Translator) onAssign(s *ast.AssignStmt) []tree.Stmt {
	if s.Tok != token.DEFINE && s.Tok != token.ASSIGN {
		// x op= y both uses and redefines x.
		return []tree.Stmt{&tree.ExprStmt{
			Pos:   t.pos(s),
			Value: t.call(s, s.Tok.String(), t.expr(s.Lhs[0]), t.expr(s.Rhs[0])),
		}}
	}

	var res []tree.Stmt
	for i, lhs := range s.Lhs {
		id, isIdent := ast.Unparen(lhs).(*ast.Ident)
		if lit, ok := singleFuncLit(s.Rhs, len(s.Lhs), i); ok && isIdent && id.Name != "_" && t.isNewVar(s, id) {
			res = append(res, t.namedFuncLit(id, lit)...)
			continue
		}

		var value tree.Expr
		fromSource := true
		switch {
		case len(s.Rhs) == len(s.Lhs):
			value = t.expr(s.Rhs[i])
		case i == 0:
			value = t.expr(s.Rhs[0])
		default:
			// The rest of a multi value call.
			value = &tree.Constant{Pos: t.pos(lhs)}
			fromSource = false
		}

		if !isIdent {
			res = append(res, &tree.ExprStmt{
				Pos:   t.pos(lhs),
				Value: t.call(lhs, "=", t.expr(lhs), value),
			})
			continue
		}

		if id.Name == "_" {
			if fromSource {
				res = append(res, &tree.ExprStmt{Pos: t.pos(id), Value: value})
			}
			continue
		}

		if t.isNewVar(s, id) {
			t.define(id.Name)
			res = append(res, &tree.Assign{
				Pos:    t.pos(id),
				Target: id.Name,
				Value:  value,
			})
			continue
		}

		res = append(res, t.assignTo(id, value)...)
	}

	return res
}

// isNewVar reports whether an identifier on the left side of an assignment
// introduces a variable.
func (t *Translator) isNewVar(s *ast.AssignStmt, id *ast.Ident) bool {
	if s.Tok != token.DEFINE {
		return false
	}
	if obj, ok := t.info.Defs[id]; ok {
		return obj != nil
	}
	if _, ok := t.info.Uses[id]; ok {
		return false
	}

	f := t.top()
	return f == nil || !f.defs[id.Name]
}

// assignTo assigns to an existing variable, declaring it nonlocal or global
// when it lives outside the current function.
func (t *Translator) assignTo(id *ast.Ident, value tree.Expr) []tree.Stmt {
	pos := t.pos(id)
	assign := &tree.Assign{
		Pos:    pos,
		Target: id.Name,
		Value:  value,
	}

	f := t.top()
	switch t.bindingOf(id.Name) {
	case bindNonlocal:
		if f.declared[id.Name] {
			break
		}
		f.declared[id.Name] = true
		return []tree.Stmt{&tree.NonlocalDecl{Pos: pos, Names: []string{id.Name}}, assign}
	case bindGlobal:
		if f.declared[id.Name] {
			break
		}
		f.declared[id.Name] = true
		return []tree.Stmt{&tree.GlobalDecl{Pos: pos, Names: []string{id.Name}}, assign}
	}

	return []tree.Stmt{assign}
}

func (t *Translator) onReturn(s *ast.ReturnStmt) tree.Stmt {
	ret := &tree.Return{Pos: t.pos(s)}
	if len(s.Results) == 0 {
		if f := t.top(); f != nil {
			for _, id := range f.results {
				ret.Values = append(ret.Values, &tree.Name{Pos: t.pos(s), ID: id.Name})
			}
		}
		return ret
	}

	for _, r := range s.Results {
		ret.Values = append(ret.Values, t.expr(r))
	}
	return ret
}

func (t *Translator) onIf(s *ast.IfStmt) []tree.Stmt {
	var res []tree.Stmt
	if s.Init != nil {
		res = append(res, t.walkStmt(s.Init)...)
	}

	node := &tree.If{
		Pos:  t.pos(s),
		Test: t.expr(s.Cond),
		Body: t.block(s.Body.List),
	}
	switch e := s.Else.(type) {
	case *ast.BlockStmt:
		node.Orelse = t.block(e.List)
	case *ast.IfStmt:
		node.Orelse = t.stmt(e)
	}

	return append(res, node)
}

// onFor lowers a loop into its init statements followed by a conditional
// holding the body and the post statement.
func (t *Translator) onFor(s *ast.ForStmt) []tree.Stmt {
	var res []tree.Stmt
	if s.Init != nil {
		res = append(res, t.walkStmt(s.Init)...)
	}

	var args []tree.Expr
	if s.Cond != nil {
		args = append(args, t.expr(s.Cond))
	}
	node := &tree.If{
		Pos:  t.pos(s),
		Test: t.call(s, "for", args...),
		Body: t.block(s.Body.List),
	}
	if s.Post != nil {
		node.Body = append(node.Body, t.stmt(s.Post)...)
	}

	return append(res, node)
}

func (t *Translator) onRange(s *ast.RangeStmt) []tree.Stmt {
	node := &tree.If{
		Pos:  t.pos(s),
		Test: t.call(s, "range", t.expr(s.X)),
	}

	for _, item := range []struct {
		expr   ast.Expr
		callee string
	}{
		{s.Key, "range.key"},
		{s.Value, "range.value"},
	} {
		if item.expr == nil {
			continue
		}

		value := t.call(item.expr, item.callee)
		id, ok := ast.Unparen(item.expr).(*ast.Ident)
		switch {
		case !ok:
			node.Body = append(node.Body, &tree.ExprStmt{
				Pos:   t.pos(item.expr),
				Value: t.call(item.expr, "=", t.expr(item.expr), value),
			})
		case id.Name == "_":
		case s.Tok == token.DEFINE:
			t.define(id.Name)
			node.Body = append(node.Body, &tree.Assign{
				Pos:    t.pos(id),
				Target: id.Name,
				Value:  value,
			})
		default:
			node.Body = append(node.Body, t.assignTo(id, value)...)
		}
	}

	node.Body = append(node.Body, t.block(s.Body.List)...)
	return []tree.Stmt{node}
}

func (t *Translator) onSwitch(s *ast.SwitchStmt) []tree.Stmt {
	var res []tree.Stmt
	if s.Init != nil {
		res = append(res, t.walkStmt(s.Init)...)
	}
	if s.Tag != nil {
		res = append(res, &tree.ExprStmt{
			Pos:   t.pos(s.Tag),
			Value: t.call(s.Tag, "switch", t.expr(s.Tag)),
		})
	}

	return append(res, t.clauses(s.Body, func(cc *ast.CaseClause) []tree.Expr {
		var args []tree.Expr
		for _, e := range cc.List {
			args = append(args, t.expr(e))
		}
		return args
	})...)
}

func (t *Translator) onTypeSwitch(s *ast.TypeSwitchStmt) []tree.Stmt {
	var res []tree.Stmt
	if s.Init != nil {
		res = append(res, t.walkStmt(s.Init)...)
	}

	switch a := s.Assign.(type) {
	case *ast.AssignStmt:
		if ta, ok := a.Rhs[0].(*ast.TypeAssertExpr); ok {
			id := a.Lhs[0].(*ast.Ident)
			t.define(id.Name)
			res = append(res, &tree.Assign{
				Pos:    t.pos(id),
				Target: id.Name,
				Value:  t.call(ta, ".(type)", t.expr(ta.X)),
			})
		}
	case *ast.ExprStmt:
		if ta, ok := a.X.(*ast.TypeAssertExpr); ok {
			res = append(res, &tree.ExprStmt{
				Pos:   t.pos(ta),
				Value: t.call(ta, ".(type)", t.expr(ta.X)),
			})
		}
	}

	return append(res, t.clauses(s.Body, func(cc *ast.CaseClause) []tree.Expr {
		var args []tree.Expr
		for _, e := range cc.List {
			args = append(args, t.typeExpr(e))
		}
		return args
	})...)
}

func (t *Translator) clauses(body *ast.BlockStmt, args func(cc *ast.CaseClause) []tree.Expr) []tree.Stmt {
	var res []tree.Stmt
	for _, s := range body.List {
		cc, ok := s.(*ast.CaseClause)
		if !ok {
			continue
		}

		callee := "case"
		if cc.List == nil {
			callee = "default"
		}
		res = append(res, t.withPending(func() []tree.Stmt {
			return []tree.Stmt{&tree.If{
				Pos:  t.pos(cc),
				Test: t.call(cc, callee, args(cc)...),
				Body: t.block(cc.Body),
			}}
		})...)
	}
	return res
}

func (t *Translator) onSelect(s *ast.SelectStmt) []tree.Stmt {
	var res []tree.Stmt
	for _, c := range s.Body.List {
		cc, ok := c.(*ast.CommClause)
		if !ok {
			continue
		}

		callee := "select"
		if cc.Comm == nil {
			callee = "default"
		}
		node := &tree.If{
			Pos:  t.pos(cc),
			Test: t.call(cc, callee),
		}
		if cc.Comm != nil {
			node.Body = t.stmt(cc.Comm)
		}
		node.Body = append(node.Body, t.block(cc.Body)...)
		res = append(res, node)
	}
	return res
}

// typeExpr renders a type as a string constant.
func (t *Translator) typeExpr(e ast.Expr) tree.Expr {
	return &tree.Constant{
		Pos:   t.pos(e),
		Value: types.ExprString(e),
	}
}
