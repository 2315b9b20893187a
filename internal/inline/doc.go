// Package inline replaces calls of straight-line functions with the calls
// those functions consist of.
//
// A function is inlinable when its body holds nothing but an optional leading
// docstring followed by call statements and its parameter names are unique.
// Analyze collects such functions into Records, an Inliner then rewrites call
// sites substituting caller arguments for parameter names.
//
//	def f(x):          f(5)  ->  g(5)
//	    g(x)
//
// Inlining is a single pass: calls produced by an expansion are not expanded
// again. A function expanding into several calls can only replace a call
// standing alone as a statement, the statement then holds an *tree.ExprList
// until the tree is normalized.
package inline
