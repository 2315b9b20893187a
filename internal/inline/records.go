package inline

import (
	"github.com/sirkon/astpass/internal/tree"
)

// Record is the cached body of an inlinable function.
type Record struct {
	Name   string
	Pos    tree.Pos
	Params []string
	Calls  []*tree.Call
}

type status int

const (
	_ status = iota
	statusInlinable
	statusRejected
)

type entry struct {
	status status
	record *Record
	reason string
}

// Records holds inlinability verdicts for analyzed functions.
// A name missing in Records is not analyzed, which is never the same as inlinable.
type Records struct {
	entries map[string]*entry
	order   []string
}

// NewRecords creates an empty set of records.
func NewRecords() *Records {
	return &Records{entries: map[string]*entry{}}
}

// Lookup returns the record of an inlinable function.
func (r *Records) Lookup(name string) (*Record, bool) {
	e, ok := r.entries[name]
	if !ok || e.status != statusInlinable {
		return nil, false
	}
	return e.record, true
}

// CanInline reports whether the function was analyzed and found inlinable.
func (r *Records) CanInline(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Analyzed reports whether the function was seen by the analysis.
func (r *Records) Analyzed(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Reason returns why an analyzed function is not inlinable.
func (r *Records) Reason(name string) string {
	if e, ok := r.entries[name]; ok {
		return e.reason
	}
	return ""
}

// Names returns names of inlinable functions in the order they were first analyzed.
func (r *Records) Names() []string {
	var res []string
	for _, name := range r.order {
		if r.entries[name].status == statusInlinable {
			res = append(res, name)
		}
	}
	return res
}

// Len returns the number of inlinable functions.
func (r *Records) Len() int {
	return len(r.Names())
}

func (r *Records) put(name string, e *entry) {
	if _, ok := r.entries[name]; !ok {
		r.order = append(r.order, name)
	}
	r.entries[name] = e
}

func (r *Records) accept(rec *Record) {
	r.put(rec.Name, &entry{status: statusInlinable, record: rec})
}

func (r *Records) reject(name, reason string) {
	r.put(name, &entry{status: statusRejected, reason: reason})
}
