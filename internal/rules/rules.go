package rules

import "fmt"

// Rule represents an astpass rule code (AST-series).
type Rule int

const (
	ruleInvalid Rule = iota

	AST000UnusedVariable
	AST010UsedBeforeDefinition
	AST020InlineArityMismatch
	AST021InlineOutsideStatement
	AST030ConstantCondition
	AST040ExprListNotNormalized
)

// All returns every known rule in code order.
func All() []Rule {
	return []Rule{
		AST000UnusedVariable,
		AST010UsedBeforeDefinition,
		AST020InlineArityMismatch,
		AST021InlineOutsideStatement,
		AST030ConstantCondition,
		AST040ExprListNotNormalized,
	}
}

// String returns the canonical code and short name of the rule.
// Example: "AST000: UnusedVariable"
func (r Rule) String() string {
	switch r {
	case AST000UnusedVariable:
		return "AST000: UnusedVariable"
	case AST010UsedBeforeDefinition:
		return "AST010: UsedBeforeDefinition"
	case AST020InlineArityMismatch:
		return "AST020: InlineArityMismatch"
	case AST021InlineOutsideStatement:
		return "AST021: InlineOutsideStatement"
	case AST030ConstantCondition:
		return "AST030: ConstantCondition"
	case AST040ExprListNotNormalized:
		return "AST040: ExprListNotNormalized"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Code returns just the code part, e.g. "AST000".
func (r Rule) Code() string {
	s := r.String()
	if len(s) > 6 && s[6] == ':' {
		return s[:6]
	}
	return s
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case AST000UnusedVariable:
		return "Variable is defined but never used in its scope."
	case AST010UsedBeforeDefinition:
		return "Name is used before any definition of it is visible."
	case AST020InlineArityMismatch:
		return "Call of an inlinable function passes a different number of arguments than it declares."
	case AST021InlineOutsideStatement:
		return "Function expanding into several calls can only be inlined as a standalone statement."
	case AST030ConstantCondition:
		return "Condition is a constant, one of the branches is dead code."
	case AST040ExprListNotNormalized:
		return "Expression statement holds an expression sequence."
	default:
		return fmt.Sprintf("unknown-rule(%d)", r)
	}
}

// Canonical constructors for readability and stable call sites.

func UnusedVariable() Rule         { return AST000UnusedVariable }
func UsedBeforeDefinition() Rule   { return AST010UsedBeforeDefinition }
func InlineArityMismatch() Rule    { return AST020InlineArityMismatch }
func InlineOutsideStatement() Rule { return AST021InlineOutsideStatement }
func ConstantCondition() Rule      { return AST030ConstantCondition }
func ExprListNotNormalized() Rule  { return AST040ExprListNotNormalized }
