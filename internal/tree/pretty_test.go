package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPretty(t *testing.T) {
	mod := sampleModule()
	mod.Body = append(mod.Body,
		&GlobalDecl{Names: []string{"a", "b"}},
		NewFunction("empty", nil),
		NewExprStmt(&ExprList{Items: []Expr{NewCall("h", NewConst(1.0)), NewCall("k", NewConst(nil), NewStr("s"))}}),
	)

	const want = `def f(x):
    g(x)
if True:
    a = 1
else:
    a = 2
return a
global a, b
def empty():
    pass
<h(1.0), k(None, "s")>
`
	require.Equal(t, want, Pretty(mod))
}
