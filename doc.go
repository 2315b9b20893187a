// Package astpass runs the tree passes: constant branch pruning, inlining of
// call-only functions, normalization of inlined sequences and variable usage
// analysis. Trees come from YAML files or Go sources, the latter also being
// available as a go vet analyzer.
package astpass
