package astpass

import (
	"fmt"
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/astpass/internal/deadcode"
	"github.com/sirkon/astpass/internal/gofront"
	"github.com/sirkon/astpass/internal/rules"
	"github.com/sirkon/astpass/internal/tree"
	"github.com/sirkon/astpass/internal/usage"
)

const doc = `astpass reports unused variables, variables used before definition and constant conditions

Every file is translated into a scope tree where closures assigning outer
variables declare them nonlocal and functions assigning package variables
declare them global. Generated files are skipped.`

// Analyzer is the go vet entry point.
var Analyzer = &analysis.Analyzer{
	Name:     "astpass",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.File)(nil),
	}

	tr := gofront.New(gofront.DefaultConfig())
	pector.Preorder(nodeFilter, func(node ast.Node) {
		file := node.(*ast.File)
		if ast.IsGenerated(file) {
			return
		}

		checkFile(pass, tr, file)
	})

	return nil, nil
}

func checkFile(pass *analysis.Pass, tr *gofront.Translator, file *ast.File) {
	tf := pass.Fset.File(file.Pos())
	if tf == nil {
		return
	}
	mod := tr.Translate(pass.Fset, file, pass.TypesInfo)

	for _, node := range deadcode.Find(mod) {
		truth, _ := deadcode.ConstTruth(node.Test)
		reportLine(pass, tf, node.Pos.Line, rules.ConstantCondition(),
			fmt.Sprintf("condition %s is always %t", tree.RenderExpr(node.Test), truth))
	}

	for _, d := range usage.Analyze(mod) {
		reportLine(pass, tf, d.Line, d.Kind.Rule(), d.Message())
	}
}

// reportLine puts a diagnostic at the start of the line, tree nodes only keep lines.
func reportLine(pass *analysis.Pass, tf *token.File, line int, rule rules.Rule, msg string) {
	if line < 1 || line > tf.LineCount() {
		return
	}

	pass.Report(analysis.Diagnostic{
		Pos:      tf.LineStart(line),
		Category: rule.Code(),
		Message:  rule.Code() + ": " + msg,
	})
}
