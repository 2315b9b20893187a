package tree

// GlobalDecl redirects resolution of Names to the module scope.
//
//	global x, y
type GlobalDecl struct {
	Pos   Pos
	Names []string
}

// NonlocalDecl redirects resolution of Names to enclosing function scopes.
//
//	nonlocal x
type NonlocalDecl struct {
	Pos   Pos
	Names []string
}

func (*GlobalDecl) isNode()   {}
func (*GlobalDecl) isStmt()   {}
func (*NonlocalDecl) isNode() {}
func (*NonlocalDecl) isStmt() {}
