// Package deadcode removes conditional branches that can never run.
package deadcode

import (
	"github.com/sirkon/astpass/internal/tree"
)

// Prune replaces every conditional whose test is a literal with the
// statements of the branch the literal selects. A conditional whose selected
// branch is empty is removed. Inner conditionals are folded before the outer
// ones, so a single call reaches a fixed point.
func Prune(root tree.Node) tree.Node {
	return tree.Rewrite(root, func(c *tree.Cursor) tree.Action {
		n, ok := c.Node().(*tree.If)
		if !ok {
			return tree.Keep()
		}

		truth, ok := ConstTruth(n.Test)
		if !ok {
			return tree.Keep()
		}

		branch := n.Orelse
		if truth {
			branch = n.Body
		}
		if len(branch) == 0 {
			return tree.Remove()
		}

		nodes := make([]tree.Node, len(branch))
		for i, s := range branch {
			nodes[i] = s
		}
		return tree.Splice(nodes...)
	})
}

// Find returns conditionals with literal tests in traversal order without
// changing the tree.
func Find(root tree.Node) []*tree.If {
	var res []*tree.If
	tree.Inspect(root, func(n tree.Node) bool {
		if x, ok := n.(*tree.If); ok {
			if _, isConst := ConstTruth(x.Test); isConst {
				res = append(res, x)
			}
		}
		return true
	})
	return res
}

// ConstTruth returns the truth value of a literal expression. ok is false
// for expressions whose value is not known statically.
func ConstTruth(e tree.Expr) (truth bool, ok bool) {
	switch x := e.(type) {
	case *tree.Constant:
		return x.Truthy(), true
	case *tree.StringLiteral:
		return x.Value != "", true
	default:
		return false, false
	}
}
