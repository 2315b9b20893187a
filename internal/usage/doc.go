// Package usage finds variables that are defined but never used and names
// used before any definition is visible.
//
// Scopes are the module (named "global") and function bodies. Assignments and
// parameters define names in the current scope unless the name was declared
// global or nonlocal there. A name use resolves to the global scope when the
// name is declared global in the current scope or defined at module level,
// otherwise to the innermost scope defining it, skipping scopes where it is
// declared nonlocal.
//
// Resolution follows traversal order: a use is only matched against
// definitions seen before it.
package usage
