package inline

import (
	"fmt"
	"strings"

	"github.com/sirkon/astpass/internal/rules"
	"github.com/sirkon/astpass/internal/tree"
)

// Inliner expands calls of inlinable functions.
type Inliner struct {
	recs       *Records
	violations []*Violation
	expanded   int
}

// New creates an inliner over analysis results.
func New(recs *Records) *Inliner {
	return &Inliner{recs: recs}
}

// Inline expands calls of functions from recs in the tree rooted at root.
// Violations are dropped, use an Inliner to get them.
func Inline(root tree.Node, recs *Records) tree.Node {
	return New(recs).Inline(root)
}

// Inline expands calls in the tree rooted at root and returns the new root.
// Arguments of a call are processed before the call itself. Call sites that
// cannot be expanded are kept and recorded as violations.
func (in *Inliner) Inline(root tree.Node) tree.Node {
	return tree.Rewrite(root, func(c *tree.Cursor) tree.Action {
		call, ok := c.Node().(*tree.Call)
		if !ok {
			return tree.Keep()
		}

		rec, ok := in.recs.Lookup(call.Callee)
		if !ok {
			return tree.Keep()
		}

		if len(call.Args) != len(rec.Params) {
			in.violations = append(in.violations, &Violation{
				Rule:   rules.InlineArityMismatch(),
				Callee: call.Callee,
				Pos:    call.Pos,
				Params: len(rec.Params),
				Args:   len(call.Args),
			})
			return tree.Keep()
		}

		if len(rec.Calls) == 1 {
			in.expanded++
			return tree.Replace(expand(rec, call)[0])
		}

		if _, isStmt := c.Parent().(*tree.ExprStmt); !isStmt {
			in.violations = append(in.violations, &Violation{
				Rule:      rules.InlineOutsideStatement(),
				Callee:    call.Callee,
				Pos:       call.Pos,
				Expansion: len(rec.Calls),
				Slot:      slotName(c),
			})
			return tree.Keep()
		}

		calls := expand(rec, call)
		nodes := make([]tree.Node, len(calls))
		for i, x := range calls {
			nodes[i] = x
		}
		in.expanded++
		return tree.Splice(nodes...)
	})
}

// Violations returns call sites left unexpanded so far.
func (in *Inliner) Violations() []*Violation {
	return append([]*Violation(nil), in.violations...)
}

// Expanded returns the number of expanded call sites.
func (in *Inliner) Expanded() int {
	return in.expanded
}

// expand builds independent copies of the cached calls with parameter names
// replaced by copies of the call arguments. Copies get the call site position.
func expand(rec *Record, call *tree.Call) []*tree.Call {
	subst := make(map[string]tree.Expr, len(rec.Params))
	for i, p := range rec.Params {
		subst[p] = call.Args[i]
	}

	res := make([]*tree.Call, 0, len(rec.Calls))
	for _, cached := range rec.Calls {
		cp := tree.StripPos(cached).(*tree.Call)
		for i, arg := range cp.Args {
			name, ok := arg.(*tree.Name)
			if !ok {
				continue
			}
			if repl, ok := subst[name.ID]; ok {
				cp.Args[i] = tree.CloneExpr(repl)
			}
		}
		if call.Pos.IsValid() {
			cp.Pos = call.Pos
			tree.FixLocations(cp)
		}
		res = append(res, cp)
	}
	return res
}

func slotName(c *tree.Cursor) string {
	if c.Parent() == nil {
		return "the root"
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", c.Parent()), "*tree.") + "." + c.Field()
}
