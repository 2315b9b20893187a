// Package rules defines the canonical rule codes (AST-series) reported by astpass.
//
// Every finding produced by a pass carries a rule, so reports can be filtered
// and counted consistently across the CLI, the vet analyzer and logs.
//
// Rule numbering scheme:
//
//	000–019  Variable definition and use
//	020–029  Inlining
//	030–039  Dead code
//	040–049  Tree shape
package rules
