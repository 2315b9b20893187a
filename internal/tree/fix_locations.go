package tree

// FixLocations assigns every node without a line the position of its parent.
// Top level nodes without a line get line 1.
func FixLocations(root Node) {
	fixLocations(root, Pos{Line: 1})
}

func fixLocations(n Node, parent Pos) {
	if n == nil {
		return
	}
	if p := posRef(n); p != nil {
		if p.Line == 0 {
			*p = parent
		}
		parent = *p
	}
	for _, c := range Children(n) {
		fixLocations(c, parent)
	}
}
