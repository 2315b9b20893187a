// Package gofront translates Go source files into trees.
//
// The translation keeps what matters for definition and use analysis,
// constant branch folding and call inlining, and nothing else:
//
//   - package level variables become module level assignments placed before
//     functions, constants are folded into their uses;
//   - functions and methods become function definitions, a method is named
//     after its receiver type ("T.M") and takes the receiver as the first
//     parameter;
//   - := and var declarations are assignments, = to a variable of an
//     enclosing function or of the package is preceded by a nonlocal or
//     global declaration;
//   - function literals become nested function definitions;
//   - loops, switches and selects are lowered into conditionals with
//     non-constant tests;
//   - operators, selectors, indexing and the like are lowered into calls
//     named after the operator, so every variable use survives.
package gofront
