// Package normalize restores the single expression per statement invariant
// after inlining.
package normalize

import (
	"github.com/pkg/errors"

	"github.com/sirkon/astpass/internal/rules"
	"github.com/sirkon/astpass/internal/tree"
)

// Normalize replaces every expression statement holding an *tree.ExprList
// with one expression statement per item, keeping order and position.
// Statements holding an empty list are removed.
func Normalize(root tree.Node) tree.Node {
	return tree.Rewrite(root, func(c *tree.Cursor) tree.Action {
		n, ok := c.Node().(*tree.ExprStmt)
		if !ok {
			return tree.Keep()
		}
		list, ok := n.Value.(*tree.ExprList)
		if !ok {
			return tree.Keep()
		}

		items := flatten(list, nil)
		if len(items) == 0 {
			return tree.Remove()
		}

		nodes := make([]tree.Node, len(items))
		for i, item := range items {
			nodes[i] = &tree.ExprStmt{Pos: n.Pos, Value: item}
		}
		return tree.Splice(nodes...)
	})
}

// flatten expands nested sequences in place.
func flatten(list *tree.ExprList, dst []tree.Expr) []tree.Expr {
	for _, item := range list.Items {
		if nested, ok := item.(*tree.ExprList); ok {
			dst = flatten(nested, dst)
			continue
		}
		dst = append(dst, item)
	}
	return dst
}

// ErrNotNormalized is matched by errors returned from Check.
var ErrNotNormalized = errors.New(rules.ExprListNotNormalized().String())

// Check returns an error describing the first expression statement that still holds a sequence.
func Check(root tree.Node) error {
	var bad *tree.ExprStmt
	tree.Inspect(root, func(n tree.Node) bool {
		if bad != nil {
			return false
		}
		if s, ok := n.(*tree.ExprStmt); ok {
			if _, isList := s.Value.(*tree.ExprList); isList {
				bad = s
				return false
			}
		}
		return true
	})

	if bad == nil {
		return nil
	}
	return errors.Wrapf(ErrNotNormalized, "expression statement at line %d holds %s", bad.Pos.Line, tree.RenderExpr(bad.Value))
}
