package inline

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/sirkon/astpass/internal/rules"
	"github.com/sirkon/astpass/internal/tree"
)

// ErrStructuralViolation is matched by every inlining violation.
var ErrStructuralViolation = errors.New("structural violation")

// Violation describes a call site that was left as is.
type Violation struct {
	Rule   rules.Rule
	Callee string
	Pos    tree.Pos

	// Params and Args are the declared and passed argument counts.
	Params int
	Args   int
	// Expansion is the number of calls the callee expands into.
	Expansion int
	// Slot is the parent field the call sits in, e.g. "Assign.Value".
	Slot string
}

func (v *Violation) Error() string {
	switch v.Rule {
	case rules.AST020InlineArityMismatch:
		return fmt.Sprintf("%s takes %d %s, got %d", v.Callee, v.Params, plural(v.Params, "argument"), v.Args)
	case rules.AST021InlineOutsideStatement:
		return fmt.Sprintf("%s expands into %d %s and cannot be inlined into %s", v.Callee, v.Expansion, plural(v.Expansion, "call"), v.Slot)
	default:
		return fmt.Sprintf("%s cannot be inlined", v.Callee)
	}
}

// Unwrap makes errors.Is(v, ErrStructuralViolation) hold.
func (v *Violation) Unwrap() error {
	return ErrStructuralViolation
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
