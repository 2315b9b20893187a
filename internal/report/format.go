package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/sirkon/astpass/internal/rules"
)

const (
	colorReset = "\033[0m"
	colorError = "\033[1;31m"
	colorWarn  = "\033[1;33m"
	colorLoc   = "\033[1;34m"
	colorNote  = "\033[1;36m"
)

// Level is the severity of a report.
type Level int

const (
	LevelWarning Level = iota
	LevelError
)

func (l Level) String() string {
	if l == LevelError {
		return "error"
	}
	return "warning"
}

// LevelOf returns the severity of reports of the rule.
func LevelOf(rule rules.Rule) Level {
	switch rule {
	case rules.AST010UsedBeforeDefinition, rules.AST040ExprListNotNormalized:
		return LevelError
	default:
		return LevelWarning
	}
}

// FormatReport renders a single report as a compiler diagnostic:
//
//	warning: variable "a" is never used [AST000]
//	  --> sample.yaml:4 (in f)
func FormatReport(rep Report, useColor bool) string {
	var sb strings.Builder

	level := LevelOf(rep.Rule)
	if useColor {
		if level == LevelError {
			sb.WriteString(colorError)
		} else {
			sb.WriteString(colorWarn)
		}
	}
	sb.WriteString(level.String())
	sb.WriteString(": ")
	if useColor {
		sb.WriteString(colorReset)
	}
	sb.WriteString(rep.Message)
	sb.WriteString(" [")
	sb.WriteString(rep.Rule.Code())
	sb.WriteString("]\n")

	if useColor {
		sb.WriteString(colorLoc)
	}
	sb.WriteString("  --> ")
	if rep.File != "" {
		sb.WriteString(rep.File)
		sb.WriteByte(':')
	}
	fmt.Fprintf(&sb, "%d", rep.Line)
	if useColor {
		sb.WriteString(colorReset)
	}
	if rep.Scope != "" {
		fmt.Fprintf(&sb, " (in %s)", rep.Scope)
	}
	sb.WriteString("\n")

	return sb.String()
}

// Summary returns a one-line count of reports per phase.
//
//	3 reports (inline: 1, usage: 2)
func Summary(reps []Report) string {
	if len(reps) == 0 {
		return "no reports"
	}

	counts := map[Phase]int{}
	for _, rep := range reps {
		counts[rep.Phase]++
	}
	phases := make([]Phase, 0, len(counts))
	for p := range counts {
		phases = append(phases, p)
	}
	sort.Slice(phases, func(i, j int) bool { return phases[i] < phases[j] })

	parts := make([]string, len(phases))
	for i, p := range phases {
		parts[i] = fmt.Sprintf("%s: %d", p, counts[p])
	}
	noun := "reports"
	if len(reps) == 1 {
		noun = "report"
	}
	return fmt.Sprintf("%d %s (%s)", len(reps), noun, strings.Join(parts, ", "))
}

// Format writes all reports of r followed by a summary line.
func (r *Reporter) Format(w io.Writer, useColor bool) error {
	return Write(w, r.Reports(), r.Dropped(), useColor)
}

// Write writes reports followed by a summary line mentioning dropped reports.
func Write(w io.Writer, reps []Report, dropped int, useColor bool) error {
	for _, rep := range reps {
		if _, err := io.WriteString(w, FormatReport(rep, useColor)); err != nil {
			return errors.Wrap(err, "write report")
		}
	}

	summary := Summary(reps)
	if dropped > 0 {
		summary += fmt.Sprintf(", %d more dropped", dropped)
	}
	if useColor {
		summary = colorNote + summary + colorReset
	}
	if _, err := fmt.Fprintln(w, summary); err != nil {
		return errors.Wrap(err, "write summary")
	}
	return nil
}
