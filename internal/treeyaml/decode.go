package treeyaml

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sirkon/astpass/internal/tree"
)

// Unmarshal decodes a tree document.
func Unmarshal(data []byte) (*tree.Module, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parse yaml")
	}

	return decodeDocument(&doc)
}

// Decode reads a tree document from r.
func Decode(r io.Reader) (*tree.Module, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return &tree.Module{}, nil
		}
		return nil, errors.Wrap(err, "parse yaml")
	}

	return decodeDocument(&doc)
}

func decodeDocument(doc *yaml.Node) (*tree.Module, error) {
	if doc.Kind == 0 {
		return &tree.Module{}, nil
	}

	root := doc
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return &tree.Module{}, nil
		}
		root = resolve(doc.Content[0])
	}

	switch root.Kind {
	case yaml.SequenceNode:
		body, err := decodeStmts(root)
		if err != nil {
			return nil, err
		}
		return &tree.Module{Body: body}, nil
	case yaml.MappingNode:
		f, err := fieldsOf(root, "module")
		if err != nil {
			return nil, err
		}
		body, err := f.stmts("module")
		if err != nil {
			return nil, err
		}
		return &tree.Module{Body: body}, nil
	case yaml.ScalarNode:
		if root.Tag == "!!null" {
			return &tree.Module{}, nil
		}
	}

	return nil, errorf(root, "module expected, got %s", kindName(root.Kind))
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// fields is a decoded mapping node with its keys checked against the allowed set.
type fields struct {
	node *yaml.Node
	keys map[string]*yaml.Node
}

func fieldsOf(n *yaml.Node, allowed ...string) (*fields, error) {
	n = resolve(n)
	if n.Kind != yaml.MappingNode {
		return nil, errorf(n, "mapping expected, got %s", kindName(n.Kind))
	}

	f := &fields{
		node: n,
		keys: make(map[string]*yaml.Node, len(n.Content)/2),
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		if _, ok := f.keys[k.Value]; ok {
			return nil, errorf(k, "duplicate key %q", k.Value)
		}
		f.keys[k.Value] = resolve(n.Content[i+1])
	}

	if allowed != nil {
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if !contains(allowed, k.Value) {
				return nil, errorf(k, "unexpected key %q", k.Value)
			}
		}
	}

	return f, nil
}

func (f *fields) has(key string) bool {
	_, ok := f.keys[key]
	return ok
}

// restrict rechecks the keys once the node kind is known.
func (f *fields) restrict(allowed ...string) error {
	for i := 0; i+1 < len(f.node.Content); i += 2 {
		k := f.node.Content[i]
		if k.Value == "line" {
			continue
		}
		if !contains(allowed, k.Value) {
			return errorf(k, "unexpected key %q", k.Value)
		}
	}
	return nil
}

func (f *fields) pos() (tree.Pos, error) {
	n, ok := f.keys["line"]
	if !ok {
		return tree.Pos{Line: f.node.Line}, nil
	}

	var line int
	if err := n.Decode(&line); err != nil || line <= 0 {
		return tree.Pos{}, errorf(n, "line must be a positive integer")
	}
	return tree.Pos{Line: line}, nil
}

func (f *fields) str(key string, nullable bool) (string, error) {
	n, ok := f.keys[key]
	if !ok {
		return "", errorf(f.node, "%s is missing", key)
	}
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" && nullable {
		return "", nil
	}
	if n.Kind != yaml.ScalarNode || n.Tag == "!!null" {
		return "", errorf(n, "%s must be a string", key)
	}
	return n.Value, nil
}

func (f *fields) names(key string) ([]string, error) {
	n, ok := f.keys[key]
	if !ok {
		return nil, nil
	}

	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		return []string{n.Value}, nil
	case yaml.SequenceNode:
		res := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			item = resolve(item)
			if item.Kind != yaml.ScalarNode {
				return nil, errorf(item, "%s must hold names", key)
			}
			res = append(res, item.Value)
		}
		return res, nil
	default:
		return nil, errorf(n, "%s must be a name or a list of names", key)
	}
}

func (f *fields) stmts(key string) ([]tree.Stmt, error) {
	n, ok := f.keys[key]
	if !ok || (n.Kind == yaml.ScalarNode && n.Tag == "!!null") {
		return nil, nil
	}
	return decodeStmts(n)
}

func (f *fields) expr(key string) (tree.Expr, error) {
	n, ok := f.keys[key]
	if !ok {
		return nil, errorf(f.node, "%s is missing", key)
	}
	return decodeExpr(n)
}

func (f *fields) exprs(key string) ([]tree.Expr, error) {
	n, ok := f.keys[key]
	if !ok || (n.Kind == yaml.ScalarNode && n.Tag == "!!null") {
		return nil, nil
	}
	if n.Kind == yaml.MappingNode {
		e, err := decodeExpr(n)
		if err != nil {
			return nil, err
		}
		return []tree.Expr{e}, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, errorf(n, "%s must be a list of expressions", key)
	}

	res := make([]tree.Expr, 0, len(n.Content))
	for _, item := range n.Content {
		e, err := decodeExpr(item)
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, nil
}

func decodeStmts(n *yaml.Node) ([]tree.Stmt, error) {
	n = resolve(n)
	if n.Kind != yaml.SequenceNode {
		return nil, errorf(n, "list of statements expected, got %s", kindName(n.Kind))
	}

	res := make([]tree.Stmt, 0, len(n.Content))
	for _, item := range n.Content {
		s, err := decodeStmt(item)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, nil
}

func decodeStmt(n *yaml.Node) (tree.Stmt, error) {
	f, err := fieldsOf(n)
	if err != nil {
		return nil, err
	}
	pos, err := f.pos()
	if err != nil {
		return nil, err
	}

	switch {
	case f.has("def"):
		if err := f.restrict("def", "params", "body"); err != nil {
			return nil, err
		}
		name, err := f.str("def", false)
		if err != nil {
			return nil, err
		}
		params, err := f.names("params")
		if err != nil {
			return nil, err
		}
		body, err := f.stmts("body")
		if err != nil {
			return nil, err
		}
		return &tree.FunctionDef{Pos: pos, Name: name, Params: params, Body: body}, nil

	case f.has("if"):
		if err := f.restrict("if", "then", "else"); err != nil {
			return nil, err
		}
		test, err := f.expr("if")
		if err != nil {
			return nil, err
		}
		body, err := f.stmts("then")
		if err != nil {
			return nil, err
		}
		orelse, err := f.stmts("else")
		if err != nil {
			return nil, err
		}
		return &tree.If{Pos: pos, Test: test, Body: body, Orelse: orelse}, nil

	case f.has("assign"):
		if err := f.restrict("assign", "value"); err != nil {
			return nil, err
		}
		target, err := f.str("assign", true)
		if err != nil {
			return nil, err
		}
		value, err := f.expr("value")
		if err != nil {
			return nil, err
		}
		return &tree.Assign{Pos: pos, Target: target, Value: value}, nil

	case f.has("return"):
		if err := f.restrict("return"); err != nil {
			return nil, err
		}
		values, err := f.exprs("return")
		if err != nil {
			return nil, err
		}
		return &tree.Return{Pos: pos, Values: values}, nil

	case f.has("global"):
		if err := f.restrict("global"); err != nil {
			return nil, err
		}
		names, err := f.names("global")
		if err != nil {
			return nil, err
		}
		return &tree.GlobalDecl{Pos: pos, Names: names}, nil

	case f.has("nonlocal"):
		if err := f.restrict("nonlocal"); err != nil {
			return nil, err
		}
		names, err := f.names("nonlocal")
		if err != nil {
			return nil, err
		}
		return &tree.NonlocalDecl{Pos: pos, Names: names}, nil

	case f.has("expr"):
		if err := f.restrict("expr"); err != nil {
			return nil, err
		}
		value, err := f.expr("expr")
		if err != nil {
			return nil, err
		}
		return &tree.ExprStmt{Pos: pos, Value: value}, nil
	}

	value, err := decodeExprFields(f)
	if err != nil {
		return nil, err
	}
	return &tree.ExprStmt{Pos: pos, Value: value}, nil
}

func decodeExpr(n *yaml.Node) (tree.Expr, error) {
	f, err := fieldsOf(n)
	if err != nil {
		return nil, err
	}
	return decodeExprFields(f)
}

func decodeExprFields(f *fields) (tree.Expr, error) {
	pos, err := f.pos()
	if err != nil {
		return nil, err
	}

	switch {
	case f.has("call"):
		if err := f.restrict("call", "args"); err != nil {
			return nil, err
		}
		callee, err := f.str("call", false)
		if err != nil {
			return nil, err
		}
		args, err := f.exprs("args")
		if err != nil {
			return nil, err
		}
		return &tree.Call{Pos: pos, Callee: callee, Args: args}, nil

	case f.has("name"):
		if err := f.restrict("name"); err != nil {
			return nil, err
		}
		id, err := f.str("name", false)
		if err != nil {
			return nil, err
		}
		return &tree.Name{Pos: pos, ID: id}, nil

	case f.has("str"):
		if err := f.restrict("str"); err != nil {
			return nil, err
		}
		n := f.keys["str"]
		if n.Kind != yaml.ScalarNode {
			return nil, errorf(n, "str must be a scalar")
		}
		return &tree.StringLiteral{Pos: pos, Value: n.Value}, nil

	case f.has("const"):
		if err := f.restrict("const"); err != nil {
			return nil, err
		}
		n := f.keys["const"]
		if n.Kind != yaml.ScalarNode {
			return nil, errorf(n, "const must be a scalar")
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, errorf(n, "decode constant: %s", err)
		}
		return &tree.Constant{Pos: pos, Value: tree.NormalizeLiteral(v)}, nil

	case f.has("seq"):
		if err := f.restrict("seq"); err != nil {
			return nil, err
		}
		items, err := f.exprs("seq")
		if err != nil {
			return nil, err
		}
		return &tree.ExprList{Pos: pos, Items: items}, nil
	}

	return nil, errorf(f.node, "unknown node: one of def, if, assign, return, global, nonlocal, expr, call, name, const, str or seq expected")
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
