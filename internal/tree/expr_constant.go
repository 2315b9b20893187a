package tree

import (
	"fmt"
	"strconv"
)

// Constant is a literal value. Value is one of nil, bool, int64, float64 or string.
type Constant struct {
	Pos   Pos
	Value any
}

// NewConst creates a constant, integer and float kinds are widened to int64 and float64.
func NewConst(v any) *Constant {
	return &Constant{Value: NormalizeLiteral(v)}
}

// NormalizeLiteral widens numeric values to int64 or float64. Values of
// other unsupported types are rendered into strings.
func NormalizeLiteral(v any) any {
	switch x := v.(type) {
	case nil, bool, int64, float64, string:
		return x
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	case float32:
		return float64(x)
	default:
		return fmt.Sprint(x)
	}
}

// Truthy reports the truth value of the constant: nil, false, zero numbers
// and the empty string are false.
func (c *Constant) Truthy() bool {
	switch v := c.Value.(type) {
	case nil:
		return false
	case bool:
		return v
	case int64:
		return v != 0
	case float64:
		return v != 0
	case string:
		return v != ""
	default:
		return true
	}
}

// Literal renders the value the way the source language spells it.
func (c *Constant) Literal() string {
	switch v := c.Value.(type) {
	case nil:
		return "None"
	case bool:
		if v {
			return "True"
		}
		return "False"
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		s := strconv.FormatFloat(v, 'g', -1, 64)
		for _, r := range s {
			if r == '.' || r == 'e' || r == 'n' || r == 'I' {
				return s
			}
		}
		return s + ".0"
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprint(v)
	}
}

func (*Constant) isNode() {}
func (*Constant) isExpr() {}
