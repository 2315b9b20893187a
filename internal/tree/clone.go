package tree

// Clone returns a deep copy of n. No node of the copy is shared with n.
func Clone(n Node) Node {
	return clone(n, false)
}

// CloneExpr is Clone for expressions.
func CloneExpr(e Expr) Expr {
	if e == nil {
		return nil
	}
	return clone(e, false).(Expr)
}

// CloneCall is Clone for calls.
func CloneCall(c *Call) *Call {
	if c == nil {
		return nil
	}
	return clone(c, false).(*Call)
}

// StripPos returns a deep copy of n with all positions zeroed and empty
// lists set to nil. This is useful for equality testing.
func StripPos(n Node) Node {
	return clone(n, true)
}

func clone(n Node, strip bool) Node {
	switch x := n.(type) {
	case nil:
		return nil
	case *Module:
		return &Module{Body: cloneStmts(x.Body, strip)}
	case *FunctionDef:
		return &FunctionDef{
			Pos:    keepPos(x.Pos, strip),
			Name:   x.Name,
			Params: cloneStrings(x.Params, strip),
			Body:   cloneStmts(x.Body, strip),
		}
	case *If:
		return &If{
			Pos:    keepPos(x.Pos, strip),
			Test:   cloneExpr(x.Test, strip),
			Body:   cloneStmts(x.Body, strip),
			Orelse: cloneStmts(x.Orelse, strip),
		}
	case *Assign:
		return &Assign{
			Pos:    keepPos(x.Pos, strip),
			Target: x.Target,
			Value:  cloneExpr(x.Value, strip),
		}
	case *ExprStmt:
		return &ExprStmt{
			Pos:   keepPos(x.Pos, strip),
			Value: cloneExpr(x.Value, strip),
		}
	case *Return:
		return &Return{
			Pos:    keepPos(x.Pos, strip),
			Values: cloneExprs(x.Values, strip),
		}
	case *GlobalDecl:
		return &GlobalDecl{
			Pos:   keepPos(x.Pos, strip),
			Names: cloneStrings(x.Names, strip),
		}
	case *NonlocalDecl:
		return &NonlocalDecl{
			Pos:   keepPos(x.Pos, strip),
			Names: cloneStrings(x.Names, strip),
		}
	case *Call:
		return &Call{
			Pos:    keepPos(x.Pos, strip),
			Callee: x.Callee,
			Args:   cloneExprs(x.Args, strip),
		}
	case *Name:
		return &Name{Pos: keepPos(x.Pos, strip), ID: x.ID}
	case *Constant:
		return &Constant{Pos: keepPos(x.Pos, strip), Value: x.Value}
	case *StringLiteral:
		return &StringLiteral{Pos: keepPos(x.Pos, strip), Value: x.Value}
	case *ExprList:
		return &ExprList{
			Pos:   keepPos(x.Pos, strip),
			Items: cloneExprs(x.Items, strip),
		}
	default:
		return n
	}
}

func keepPos(p Pos, strip bool) Pos {
	if strip {
		return Pos{}
	}
	return p
}

func cloneExpr(e Expr, strip bool) Expr {
	if e == nil {
		return nil
	}
	return clone(e, strip).(Expr)
}

func cloneStmts(list []Stmt, strip bool) []Stmt {
	if list == nil || (strip && len(list) == 0) {
		return nil
	}
	res := make([]Stmt, 0, len(list))
	for _, s := range list {
		if s == nil {
			continue
		}
		res = append(res, clone(s, strip).(Stmt))
	}
	return res
}

func cloneExprs(list []Expr, strip bool) []Expr {
	if list == nil || (strip && len(list) == 0) {
		return nil
	}
	res := make([]Expr, 0, len(list))
	for _, e := range list {
		if e == nil {
			continue
		}
		res = append(res, clone(e, strip).(Expr))
	}
	return res
}

func cloneStrings(list []string, strip bool) []string {
	if list == nil || (strip && len(list) == 0) {
		return nil
	}
	return append([]string(nil), list...)
}

// CloneStmts deep copies a statement list.
func CloneStmts(list []Stmt) []Stmt {
	return cloneStmts(list, false)
}
