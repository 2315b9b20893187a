package report

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sirkon/astpass/internal/rules"
)

func TestReporter_ReportPhases(t *testing.T) {
	tests := []struct {
		name    string
		phase   Phase
		rule    rules.Rule
		scope   string
		varName string
		message string
		line    int
	}{
		{
			name:    "usage unused",
			phase:   PhaseUsage,
			rule:    rules.UnusedVariable(),
			scope:   "test_function2",
			varName: "a",
			message: `variable "a" is never used`,
			line:    3,
		},
		{
			name:    "inline arity",
			phase:   PhaseInline,
			rule:    rules.InlineArityMismatch(),
			scope:   "global",
			varName: "f",
			message: "f takes 1 argument, got 2",
			line:    10,
		},
		{
			name:    "prune default message",
			phase:   PhasePrune,
			rule:    rules.ConstantCondition(),
			scope:   "global",
			message: "",
			line:    12,
		},
	}

	r := New(0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r.Phase(tt.phase).File("sample.yaml").Report(tt.rule, tt.line, tt.scope, tt.varName, tt.message)
		})
	}

	reps := r.Reports()
	require.Len(t, reps, len(tests))
	for i, rep := range reps {
		want := tests[i]
		require.Equal(t, want.phase, rep.Phase, want.name)
		require.Equal(t, want.rule, rep.Rule, want.name)
		require.Equal(t, want.line, rep.Line, want.name)
		require.Equal(t, want.scope, rep.Scope, want.name)
		require.Equal(t, want.varName, rep.Name, want.name)
		require.Equal(t, "sample.yaml", rep.File, want.name)
		if want.message == "" {
			require.Equal(t, want.rule.Description(), rep.Message, want.name)
		} else {
			require.Equal(t, want.message, rep.Message, want.name)
		}
	}
}

func TestReporter_ConcurrencySafety(t *testing.T) {
	const n = 500
	var (
		r  Reporter
		wg sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Report(Report{
				Phase:   PhaseUsage,
				Rule:    rules.UnusedVariable(),
				Message: "parallel add",
				Line:    i,
			})
		}(i)
	}
	wg.Wait()

	reps := r.Reports()
	require.Len(t, reps, n)
	reps[0].Message = "changed"
	require.NotEqual(t, "changed", r.Reports()[0].Message, "Reports() returned shared slice, expected copy")
}

func TestReporter_Limit(t *testing.T) {
	r := New(2)
	p := r.Phase(PhaseUsage)
	for i := 1; i <= 5; i++ {
		p.Report(rules.UnusedVariable(), i, "global", "x", "")
	}

	require.Equal(t, 2, r.Len())
	require.Equal(t, 3, r.Dropped())

	r.Reset()
	require.Zero(t, r.Len())
	require.Zero(t, r.Dropped())
}

func TestFormat(t *testing.T) {
	r := New(0)
	r.Phase(PhaseUsage).Report(rules.UnusedVariable(), 4, "f", "a", `variable "a" is never used`)
	r.Phase(PhaseUsage).File("x.yaml").Report(rules.UsedBeforeDefinition(), 9, "g", "baz", `"baz" is used before definition`)
	r.Phase(PhaseInline).Report(rules.InlineArityMismatch(), 12, "", "f", "f takes 1 argument, got 2")

	var buf bytes.Buffer
	require.NoError(t, r.Format(&buf, false))

	const want = `warning: variable "a" is never used [AST000]
  --> 4 (in f)
error: "baz" is used before definition [AST010]
  --> x.yaml:9 (in g)
warning: f takes 1 argument, got 2 [AST020]
  --> 12
3 reports (inline: 1, usage: 2)
`
	require.Equal(t, want, buf.String())

	buf.Reset()
	require.NoError(t, r.Format(&buf, true))
	require.True(t, strings.Contains(buf.String(), colorError+"error: "+colorReset))
}

func TestSummary(t *testing.T) {
	require.Equal(t, "no reports", Summary(nil))
	require.Equal(t, "1 report (prune: 1)", Summary([]Report{{Phase: PhasePrune}}))
}

func TestIsTerminalOnRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "tty")
	require.NoError(t, err)
	defer f.Close()

	require.False(t, IsTerminal(f.Fd()))
}

func TestWriteDropped(t *testing.T) {
	r := New(1)
	p := r.Phase(PhasePrune)
	p.Report(rules.ConstantCondition(), 3, "", "", "condition True is always true")
	p.Report(rules.ConstantCondition(), 7, "", "", "condition False is always false")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r.Reports(), r.Dropped(), false))
	require.True(t, strings.HasSuffix(buf.String(), "1 report (prune: 1), 1 more dropped\n"))
}
