// Package treetest provides helpers for tests comparing trees.
package treetest

import (
	"reflect"
	"testing"

	"github.com/sirkon/deepequal"

	"github.com/sirkon/astpass/internal/tree"
)

// Equal fails the test if want and got differ structurally. Positions and the
// difference between nil and empty lists are ignored.
func Equal(t testing.TB, want, got tree.Node) {
	t.Helper()

	w := tree.StripPos(want)
	g := tree.StripPos(got)
	if reflect.DeepEqual(w, g) {
		return
	}

	deepequal.SideBySide(t, "tree", w, g)
	t.Fatalf("trees differ:\nwant:\n%s\ngot:\n%s", tree.Pretty(want), tree.Pretty(got))
}

// At sets the line of a statement or expression and returns it.
func At[T tree.Node](line int, n T) T {
	tree.SetPos(n, tree.Pos{Line: line})
	return n
}
