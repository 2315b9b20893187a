package gofront

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"

	"github.com/pkg/errors"

	"github.com/sirkon/astpass/internal/tree"
)

// Config tunes translation.
type Config struct {
	// Importer resolves imports while type checking source files.
	Importer types.Importer
	// ReceiverParam makes a method receiver the first parameter of the method.
	ReceiverParam bool
	// QualifyMethods names methods after their receiver type, e.g. "T.M".
	QualifyMethods bool
}

// DefaultConfig returns the configuration used by the CLI and the vet analyzer.
func DefaultConfig() Config {
	return Config{
		Importer:       importer.Default(),
		ReceiverParam:  true,
		QualifyMethods: true,
	}
}

// Translator turns Go files into trees. It is not safe for concurrent use.
type Translator struct {
	cfg  Config
	fset *token.FileSet
	info *types.Info

	globals map[string]bool
	frames  []*frame
	pending []tree.Stmt
}

// New creates a translator.
func New(cfg Config) *Translator {
	if cfg.Importer == nil {
		cfg.Importer = importer.Default()
	}
	return &Translator{cfg: cfg}
}

// NewInfo returns type information maps filled by type checking and used by Translate.
func NewInfo() *types.Info {
	return &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
	}
}

// TranslateFile parses and type checks a single file and translates it.
// Type errors do not stop translation, unresolved identifiers are treated
// as variables.
func (t *Translator) TranslateFile(filename string, src []byte) (*tree.Module, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, errors.Wrap(err, "parse go source")
	}

	info := NewInfo()
	conf := types.Config{
		Importer: t.cfg.Importer,
		Error:    func(error) {},
	}
	_, _ = conf.Check(file.Name.Name, fset, []*ast.File{file}, info)

	return t.Translate(fset, file, info), nil
}

// Translate translates a parsed file using type information collected for it.
func (t *Translator) Translate(fset *token.FileSet, file *ast.File, info *types.Info) *tree.Module {
	if info == nil {
		info = NewInfo()
	}
	t.fset = fset
	t.info = info
	t.globals = map[string]bool{}
	t.frames = nil
	t.pending = nil

	mod := &tree.Module{}
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.VAR {
			continue
		}
		mod.Body = append(mod.Body, t.withPending(func() []tree.Stmt {
			return t.varDecl(gd)
		})...)
	}

	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Body == nil {
			continue
		}
		mod.Body = append(mod.Body, t.funcDecl(fd))
	}

	return mod
}

func (t *Translator) pos(n ast.Node) tree.Pos {
	p := t.fset.Position(n.Pos())
	return tree.Pos{Line: p.Line, Col: p.Column}
}

// withPending runs f and puts function definitions hoisted out of its
// expressions in front of the statements f produced.
func (t *Translator) withPending(f func() []tree.Stmt) []tree.Stmt {
	saved := t.pending
	t.pending = nil
	out := f()
	res := append(t.pending, out...)
	t.pending = saved
	return res
}

func (t *Translator) funcDecl(fd *ast.FuncDecl) *tree.FunctionDef {
	name := fd.Name.Name
	var params []string
	if fd.Recv != nil && len(fd.Recv.List) > 0 {
		if t.cfg.QualifyMethods {
			if recv := receiverTypeName(fd.Recv.List[0].Type); recv != "" {
				name = recv + "." + name
			}
		}
		if t.cfg.ReceiverParam {
			params = append(params, fieldNames(fd.Recv)...)
		}
	}
	params = append(params, fieldNames(fd.Type.Params)...)

	return t.function(name, t.pos(fd), params, fd.Type, fd.Body)
}

func (t *Translator) funcLit(name string, lit *ast.FuncLit) *tree.FunctionDef {
	return t.function(name, t.pos(lit), fieldNames(lit.Type.Params), lit.Type, lit.Body)
}

func (t *Translator) function(name string, pos tree.Pos, params []string, ft *ast.FuncType, body *ast.BlockStmt) *tree.FunctionDef {
	fn := &tree.FunctionDef{
		Pos:    pos,
		Name:   name,
		Params: params,
	}

	f := t.push(name)
	defer t.pop()
	for _, p := range params {
		f.defs[p] = true
	}

	if ft.Results != nil {
		for _, field := range ft.Results.List {
			for _, id := range field.Names {
				if id.Name == "_" {
					continue
				}
				f.defs[id.Name] = true
				f.results = append(f.results, id)
				fn.Body = append(fn.Body, &tree.Assign{
					Pos:    t.pos(id),
					Target: id.Name,
					Value:  &tree.Constant{Pos: t.pos(id)},
				})
			}
		}
	}

	fn.Body = append(fn.Body, t.block(body.List)...)
	return fn
}

func receiverTypeName(e ast.Expr) string {
	switch x := e.(type) {
	case *ast.StarExpr:
		return receiverTypeName(x.X)
	case *ast.ParenExpr:
		return receiverTypeName(x.X)
	case *ast.IndexExpr:
		return receiverTypeName(x.X)
	case *ast.IndexListExpr:
		return receiverTypeName(x.X)
	case *ast.Ident:
		return x.Name
	default:
		return ""
	}
}

func fieldNames(fl *ast.FieldList) []string {
	if fl == nil {
		return nil
	}

	var res []string
	for _, field := range fl.List {
		for _, id := range field.Names {
			if id.Name == "_" {
				continue
			}
			res = append(res, id.Name)
		}
	}
	return res
}
