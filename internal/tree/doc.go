// Package tree defines the syntax tree the middle-end passes operate on.
//
// The node set is closed: statements (Module bodies, function bodies, if
// branches) and expressions (calls, names, constants). Every node type
// implements Node, statements also implement Stmt and expressions Expr.
//
// Two traversal facilities are provided:
//
//   - Walk and Inspect are read-only and recurse into every child in field order.
//   - Rewrite applies a post-order function to every node and lets it keep,
//     replace, splice or remove the node in its parent.
//
// Rewrites do not maintain positions on their own; FixLocations repairs nodes
// left without a line after a rewrite.
package tree
