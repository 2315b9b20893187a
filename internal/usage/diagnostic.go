package usage

import (
	"fmt"

	"github.com/sirkon/astpass/internal/rules"
)

// Kind is a diagnostic kind.
type Kind int

const (
	_ Kind = iota
	// Unused marks a name defined in a scope and never used there.
	Unused
	// UsedBeforeDefined marks a use no visible definition matches.
	UsedBeforeDefined
)

func (k Kind) String() string {
	switch k {
	case Unused:
		return "unused"
	case UsedBeforeDefined:
		return "used-before-defined"
	default:
		return fmt.Sprintf("kind-invalid(%d)", int(k))
	}
}

// Rule returns the rule diagnostics of this kind are reported under.
func (k Kind) Rule() rules.Rule {
	switch k {
	case Unused:
		return rules.UnusedVariable()
	case UsedBeforeDefined:
		return rules.UsedBeforeDefinition()
	default:
		return 0
	}
}

// Diagnostic is a single finding. Line is the definition line for Unused and the use line otherwise.
type Diagnostic struct {
	Kind  Kind
	Name  string
	Scope string
	Line  int
}

// Message renders the diagnostic without its position.
func (d Diagnostic) Message() string {
	switch d.Kind {
	case Unused:
		return fmt.Sprintf("variable %s defined in %s is never used", d.Name, d.Scope)
	case UsedBeforeDefined:
		return fmt.Sprintf("variable %s is used in %s before definition", d.Name, d.Scope)
	default:
		return d.Name
	}
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d: %s", d.Line, d.Message())
}
