package tree

import (
	"github.com/sirkon/rbtree"
)

// Index maps source lines to statements covering them.
type Index struct {
	spans *rbtree.Tree[*lineSpan]
}

// lineSpan stores a [start,end] line span of a statement together with a
// nested tree of spans of statements contained in it.
type lineSpan struct {
	start int
	end   int

	stmt     Stmt
	children *rbtree.Tree[*lineSpan]
}

// Cmp orders disjoint spans, any overlap compares equal.
func (s *lineSpan) Cmp(other *lineSpan) int {
	if s.end < other.start {
		return -1
	}
	if s.start > other.end {
		return 1
	}
	return 0
}

func (s *lineSpan) contains(other *lineSpan) bool {
	return s.start <= other.start && s.end >= other.end
}

// NewIndex builds an index over statements of the tree rooted at root.
// Statements without a line are not indexed, their descendants still are.
func NewIndex(root Node) *Index {
	idx := &Index{spans: rbtree.New[*lineSpan]()}
	var add func(n Node)
	add = func(n Node) {
		if s, ok := n.(Stmt); ok {
			if start := PosOf(s).Line; start > 0 {
				idx.insert(idx.spans, &lineSpan{
					start: start,
					end:   lastLine(s, start),
					stmt:  s,
				})
			}
		}
		for _, c := range Children(n) {
			if _, ok := c.(Stmt); ok {
				add(c)
			}
		}
	}
	add(root)
	return idx
}

// Lookup returns the innermost statement covering the line.
func (x *Index) Lookup(line int) Stmt {
	path := x.path(line)
	if len(path) == 0 {
		return nil
	}
	return path[len(path)-1].stmt
}

// Enclosing returns the innermost function definition covering the line.
func (x *Index) Enclosing(line int) *FunctionDef {
	path := x.path(line)
	for i := len(path) - 1; i >= 0; i-- {
		if f, ok := path[i].stmt.(*FunctionDef); ok {
			return f
		}
	}
	return nil
}

func (x *Index) path(line int) []*lineSpan {
	var res []*lineSpan
	probe := &lineSpan{start: line, end: line}
	t := x.spans
	for t != nil {
		s := t.Search(probe)
		if s == nil {
			break
		}
		res = append(res, s)
		t = s.children
	}
	return res
}

// insert attaches s into t following containment: statements are added in
// pre-order, so an overlapping span found in t either contains s or is
// equal to it. Partially overlapping spans are not indexed.
func (x *Index) insert(t *rbtree.Tree[*lineSpan], s *lineSpan) {
	r := t.InsertReturn(s)
	if r == s {
		return
	}

	switch {
	case r.contains(s):
		if r.children == nil {
			r.children = rbtree.New[*lineSpan]()
		}
		x.insert(r.children, s)
	case s.contains(r):
		old := *r
		*r = *s
		r.children = rbtree.New[*lineSpan]()
		x.insert(r.children, &old)
	}
}

func lastLine(n Node, line int) int {
	Inspect(n, func(c Node) bool {
		if c == nil {
			return false
		}
		if l := PosOf(c).Line; l > line {
			line = l
		}
		return true
	})
	return line
}
