package tree

import (
	"fmt"
	"strings"
)

// Pretty renders the tree rooted at n as source text with four space indented blocks.
func Pretty(n Node) string {
	var b strings.Builder
	switch x := n.(type) {
	case nil:
	case Stmt:
		renderStmt(&b, x, 0)
	case Expr:
		b.WriteString(RenderExpr(x))
		b.WriteByte('\n')
	case *Module:
		for _, s := range x.Body {
			renderStmt(&b, s, 0)
		}
	}
	return b.String()
}

func renderStmt(b *strings.Builder, s Stmt, indent int) {
	ind := strings.Repeat("    ", indent)
	switch x := s.(type) {
	case *FunctionDef:
		fmt.Fprintf(b, "%sdef %s(%s):\n", ind, x.Name, strings.Join(x.Params, ", "))
		renderBlock(b, x.Body, indent+1)
	case *If:
		fmt.Fprintf(b, "%sif %s:\n", ind, RenderExpr(x.Test))
		renderBlock(b, x.Body, indent+1)
		if len(x.Orelse) > 0 {
			fmt.Fprintf(b, "%selse:\n", ind)
			renderBlock(b, x.Orelse, indent+1)
		}
	case *Assign:
		target := x.Target
		if target == "" {
			target = "<?>"
		}
		fmt.Fprintf(b, "%s%s = %s\n", ind, target, RenderExpr(x.Value))
	case *ExprStmt:
		fmt.Fprintf(b, "%s%s\n", ind, RenderExpr(x.Value))
	case *Return:
		if len(x.Values) == 0 {
			fmt.Fprintf(b, "%sreturn\n", ind)
			return
		}
		fmt.Fprintf(b, "%sreturn %s\n", ind, renderExprs(x.Values))
	case *GlobalDecl:
		fmt.Fprintf(b, "%sglobal %s\n", ind, strings.Join(x.Names, ", "))
	case *NonlocalDecl:
		fmt.Fprintf(b, "%snonlocal %s\n", ind, strings.Join(x.Names, ", "))
	}
}

func renderBlock(b *strings.Builder, list []Stmt, indent int) {
	if len(list) == 0 {
		fmt.Fprintf(b, "%spass\n", strings.Repeat("    ", indent))
		return
	}
	for _, s := range list {
		renderStmt(b, s, indent)
	}
}

// RenderExpr renders a single expression.
func RenderExpr(e Expr) string {
	switch x := e.(type) {
	case nil:
		return "<nil>"
	case *Call:
		return x.Callee + "(" + renderExprs(x.Args) + ")"
	case *Name:
		return x.ID
	case *Constant:
		return x.Literal()
	case *StringLiteral:
		return fmt.Sprintf("%q", x.Value)
	case *ExprList:
		return "<" + renderExprs(x.Items) + ">"
	default:
		return fmt.Sprintf("<%T>", e)
	}
}

func renderExprs(list []Expr) string {
	parts := make([]string, len(list))
	for i, e := range list {
		parts[i] = RenderExpr(e)
	}
	return strings.Join(parts, ", ")
}
