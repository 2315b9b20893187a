package treeyaml

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Error describes an invalid tree document.
type Error struct {
	Line int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func errorf(n *yaml.Node, format string, a ...any) error {
	return &Error{Line: n.Line, Msg: fmt.Sprintf(format, a...)}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "nothing"
	}
}
