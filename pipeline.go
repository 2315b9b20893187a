package astpass

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sirkon/astpass/internal/config"
	"github.com/sirkon/astpass/internal/deadcode"
	"github.com/sirkon/astpass/internal/inline"
	"github.com/sirkon/astpass/internal/normalize"
	"github.com/sirkon/astpass/internal/report"
	"github.com/sirkon/astpass/internal/rules"
	"github.com/sirkon/astpass/internal/tree"
	"github.com/sirkon/astpass/internal/usage"
)

// Pipeline runs configured passes over trees.
type Pipeline struct {
	cfg    *config.Config
	logger *zap.Logger
}

// Option tunes a pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger for pass boundaries.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a pipeline. A nil config means config.Default().
func New(cfg *config.Config, opts ...Option) *Pipeline {
	if cfg == nil {
		cfg = config.Default()
	}

	p := &Pipeline{
		cfg:    cfg,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result of a pipeline run.
type Result struct {
	// Tree is the transformed tree, nil when pruning removed everything.
	Tree tree.Node
	// Records are inlinability verdicts, nil when inlining is off.
	Records *inline.Records
	// Diagnostics of the usage analysis over the final tree.
	Diagnostics []usage.Diagnostic
	// Reports of every pass in pass order.
	Reports []report.Report
	// Dropped counts reports over the configured limit.
	Dropped int
}

// Run runs the passes over the tree. The given tree is not changed.
func (p *Pipeline) Run(root tree.Node) (*Result, error) {
	return p.run("", root)
}

// RunFile loads the file at path and runs the passes over it.
func (p *Pipeline) RunFile(path string) (*Result, error) {
	root, err := Load(path)
	if err != nil {
		return nil, err
	}

	return p.run(path, root)
}

func (p *Pipeline) run(file string, root tree.Node) (*Result, error) {
	if root == nil {
		return nil, errors.New("nil tree")
	}

	rep := report.New(p.cfg.MaxReports)
	res := &Result{}
	cur := tree.Clone(root)
	p.logPass("load", cur, nil, rep)

	if p.cfg.Has(config.PassPrune) {
		cur = p.prune(rep.Phase(report.PhasePrune).File(file), cur)
		p.logPass(config.PassPrune.String(), cur, nil, rep)
	}

	if p.cfg.Has(config.PassInline) && cur != nil {
		res.Records = inline.Analyze(cur)
		cur = p.inline(rep.Phase(report.PhaseInline).File(file), cur, res.Records)
		p.logPass(config.PassInline.String(), cur, res.Records, rep)
	}

	if (p.cfg.Has(config.PassNormalize) || p.cfg.Has(config.PassInline)) && cur != nil {
		cur = normalize.Normalize(cur)
		p.logPass(config.PassNormalize.String(), cur, res.Records, rep)
	}
	if cur != nil {
		if err := normalize.Check(cur); err != nil {
			line := firstExprList(cur)
			rep.Phase(report.PhaseNormalize).File(file).Report(
				rules.ExprListNotNormalized(),
				line,
				scopeOf(tree.NewIndex(cur), line),
				"",
				err.Error(),
			)
		}
	}

	if p.cfg.Usage && cur != nil {
		res.Diagnostics = usage.Analyze(cur)
		rp := rep.Phase(report.PhaseUsage).File(file)
		for _, d := range res.Diagnostics {
			rp.Report(d.Kind.Rule(), d.Line, d.Scope, d.Name, d.Message())
		}
		p.logPass("usage", cur, res.Records, rep)
	}

	res.Tree = cur
	res.Reports = rep.Reports()
	res.Dropped = rep.Dropped()
	return res, nil
}

func (p *Pipeline) prune(rp *report.ReporterPhase, root tree.Node) tree.Node {
	idx := tree.NewIndex(root)
	for _, node := range deadcode.Find(root) {
		truth, _ := deadcode.ConstTruth(node.Test)
		rp.Report(
			rules.ConstantCondition(),
			node.Pos.Line,
			scopeOf(idx, node.Pos.Line),
			"",
			fmt.Sprintf("condition %s is always %t", tree.RenderExpr(node.Test), truth),
		)
	}

	return deadcode.Prune(root)
}

func (p *Pipeline) inline(rp *report.ReporterPhase, root tree.Node, recs *inline.Records) tree.Node {
	in := inline.New(recs)
	out := in.Inline(root)

	idx := tree.NewIndex(root)
	for _, v := range in.Violations() {
		rp.Report(v.Rule, v.Pos.Line, scopeOf(idx, v.Pos.Line), v.Callee, v.Error())
	}
	return out
}

func (p *Pipeline) logPass(pass string, root tree.Node, recs *inline.Records, rep *report.Reporter) {
	if ce := p.logger.Check(zap.DebugLevel, "pass done"); ce != nil {
		inlinable := 0
		if recs != nil {
			inlinable = len(recs.Names())
		}
		ce.Write(
			zap.String("pass", pass),
			zap.Int("statements", countStatements(root)),
			zap.Int("inlinable", inlinable),
			zap.Int("reports", rep.Len()),
		)
	}
}

// scopeOf names the innermost function covering the line, or the global scope.
func scopeOf(idx *tree.Index, line int) string {
	if line <= 0 {
		return usage.GlobalScope
	}

	if fn := idx.Enclosing(line); fn != nil {
		return fn.Name
	}
	return usage.GlobalScope
}

func countStatements(root tree.Node) int {
	var n int
	tree.Inspect(root, func(node tree.Node) bool {
		if _, ok := node.(tree.Stmt); ok {
			n++
		}
		return true
	})
	return n
}

func firstExprList(root tree.Node) int {
	line := 0
	tree.Inspect(root, func(n tree.Node) bool {
		if line != 0 {
			return false
		}
		if s, ok := n.(*tree.ExprStmt); ok {
			if _, isList := s.Value.(*tree.ExprList); isList {
				line = s.Pos.Line
				return false
			}
		}
		return true
	})
	return line
}
