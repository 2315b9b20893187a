package treeyaml

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/sirkon/astpass/internal/tree"
	"github.com/sirkon/astpass/internal/tree/treetest"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return data
}

func TestDecodeSample(t *testing.T) {
	got, err := Decode(bytes.NewReader(readFixture(t, "sample.yaml")))
	require.NoError(t, err)

	want := tree.NewModule(
		tree.NewFunction("f", []string{"x"},
			tree.NewExprStmt(tree.NewStr("docstring")),
			tree.NewExprStmt(tree.NewCall("g", tree.NewName("x"), tree.NewConst(5))),
		),
		tree.NewIf(tree.NewConst(true),
			[]tree.Stmt{tree.NewAssign("a", tree.NewConst(1))},
			[]tree.Stmt{tree.NewAssign("a", tree.NewConst(2))},
		),
		tree.NewReturn(tree.NewName("a")),
		&tree.GlobalDecl{Names: []string{"x"}},
		&tree.NonlocalDecl{Names: []string{"y"}},
		tree.NewExprStmt(tree.NewName("a")),
		tree.NewAssign("", tree.NewConst(1.5)),
		tree.NewExprStmt(tree.NewCall("h",
			tree.NewConst(nil),
			tree.NewConst("true"),
			&tree.ExprList{Items: []tree.Expr{tree.NewCall("k"), tree.NewCall("m")}},
		)),
	)
	treetest.Equal(t, want, got)

	require.Equal(t, 2, tree.PosOf(got.Body[0]).Line)
	require.Equal(t, 6, tree.PosOf(got.Body[0].(*tree.FunctionDef).Body[1]).Line)
	require.Equal(t, 8, tree.PosOf(got.Body[1]).Line)
	require.Equal(t, 40, tree.PosOf(got.Body[7]).Line)
	require.Equal(t, 40, got.Body[7].(*tree.ExprStmt).Value.(*tree.Call).Pos.Line)
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"sample.yaml", "var_assignment.yaml"} {
		t.Run(name, func(t *testing.T) {
			orig, err := Unmarshal(readFixture(t, name))
			require.NoError(t, err)

			data, err := Marshal(orig)
			require.NoError(t, err)
			again, err := Unmarshal(data)
			require.NoError(t, err)
			treetest.Equal(t, orig, again)

			data, err = Marshal(orig, WithLines())
			require.NoError(t, err)
			again, err = Unmarshal(data)
			require.NoError(t, err)
			require.Equal(t, orig, again)
		})
	}
}

func TestEncodeForms(t *testing.T) {
	data, err := Marshal(tree.NewModule(
		tree.NewExprStmt(tree.NewCall("g", tree.NewName("x"))),
		tree.NewAssign("a", tree.NewConst(1.0)),
	))
	require.NoError(t, err)

	text := string(data)
	require.True(t, strings.HasPrefix(text, "module:\n"), text)
	require.Contains(t, text, "call: g")
	require.Contains(t, text, "{name: x}")
	require.Contains(t, text, "1.0")

	got, err := Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, 1.0, got.Body[1].(*tree.Assign).Value.(*tree.Constant).Value)
}

func TestDecodeEmpty(t *testing.T) {
	for _, input := range []string{"", "module:", "[]", "module: []"} {
		got, err := Unmarshal([]byte(input))
		require.NoError(t, err, input)
		require.Empty(t, got.Body, input)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{
			name:  "scalar root",
			input: "hello",
			line:  1,
		},
		{
			name:  "unknown statement",
			input: "- while: {const: true}\n",
			line:  1,
		},
		{
			name:  "foreign key",
			input: "- def: f\n  body: []\n  value: {const: 1}\n",
			line:  3,
		},
		{
			name:  "assign without value",
			input: "- call: f\n- assign: a\n",
			line:  2,
		},
		{
			name:  "bad body",
			input: "- def: f\n  body: {call: g}\n",
			line:  2,
		},
		{
			name:  "mapping const",
			input: "- expr: {const: {a: 1}}\n",
			line:  1,
		},
		{
			name:  "bad line",
			input: "- call: f\n  line: -4\n",
			line:  2,
		},
		{
			name:  "duplicate key",
			input: "- call: f\n  call: g\n",
			line:  2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.input))
			require.Error(t, err)

			var yerr *Error
			require.True(t, errors.As(err, &yerr), "unexpected error type %T: %v", err, err)
			require.Equal(t, tt.line, yerr.Line, err.Error())
		})
	}
}
