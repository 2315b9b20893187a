package report

import (
	"fmt"
	"sync"

	"github.com/sirkon/astpass/internal/rules"
)

// Reporter collects diagnostics produced by passes. It is safe for concurrent use.
type Reporter struct {
	mu      sync.Mutex
	reports []Report
	limit   int
	dropped int
}

// Report represents a single diagnostic entry.
type Report struct {
	Phase   Phase
	Rule    rules.Rule
	File    string
	Line    int
	Scope   string
	Name    string
	Message string
}

// Phase marks the pipeline stage where a report was generated.
type Phase int

const (
	phaseInvalid Phase = iota
	PhasePrune         // constant branch elimination
	PhaseInline        // function inlining
	PhaseNormalize     // expression sequence cleanup
	PhaseUsage         // variable definition and use analysis
)

func (p Phase) String() string {
	switch p {
	case PhasePrune:
		return "prune"
	case PhaseInline:
		return "inline"
	case PhaseNormalize:
		return "normalize"
	case PhaseUsage:
		return "usage"
	default:
		return fmt.Sprintf("unknown-phase(%d)", p)
	}
}

// New creates a reporter keeping at most limit reports. Zero limit means no limit.
func New(limit int) *Reporter {
	return &Reporter{limit: limit}
}

// ReporterPhase binds a Reporter to a fixed phase.
type ReporterPhase struct {
	parent *Reporter
	phase  Phase
	file   string
}

// Phase returns a phase-bound reporter that sets the given phase for all
// reports produced through it.
func (r *Reporter) Phase(p Phase) *ReporterPhase {
	return &ReporterPhase{parent: r, phase: p}
}

// File returns a copy of rp bound to the given file name.
func (rp *ReporterPhase) File(name string) *ReporterPhase {
	return &ReporterPhase{parent: rp.parent, phase: rp.phase, file: name}
}

// Report adds a new record to the reporter. Records over the limit are counted and dropped.
func (r *Reporter) Report(rep Report) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.limit > 0 && len(r.reports) >= r.limit {
		r.dropped++
		return
	}
	r.reports = append(r.reports, rep)
}

// Report records a new rule violation under the bound phase. An empty
// message is replaced with the rule description.
func (rp *ReporterPhase) Report(rule rules.Rule, line int, scope, name, message string) {
	if message == "" {
		message = rule.Description()
	}
	rp.parent.Report(Report{
		Phase:   rp.phase,
		Rule:    rule,
		File:    rp.file,
		Line:    line,
		Scope:   scope,
		Name:    name,
		Message: message,
	})
}

// Reports returns a snapshot of all collected records.
func (r *Reporter) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out
}

// Len returns the number of collected records.
func (r *Reporter) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reports)
}

// Dropped returns the number of records discarded because of the limit.
func (r *Reporter) Dropped() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}

// Reset drops all collected records.
func (r *Reporter) Reset() {
	r.mu.Lock()
	r.reports = nil
	r.dropped = 0
	r.mu.Unlock()
}
