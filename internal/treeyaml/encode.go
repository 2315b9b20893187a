package treeyaml

import (
	"bytes"
	"io"
	"math"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sirkon/astpass/internal/tree"
)

// Option tunes encoding.
type Option func(*encoder)

// WithLines makes the encoder emit line keys for nodes with a valid position.
func WithLines() Option {
	return func(e *encoder) {
		e.lines = true
	}
}

// Marshal encodes the tree rooted at n.
func Marshal(n tree.Node, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, n, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes the tree rooted at n into w. Statements and expressions are
// written as a single statement module.
func Encode(w io.Writer, n tree.Node, opts ...Option) error {
	var e encoder
	for _, opt := range opts {
		opt(&e)
	}

	var body []tree.Stmt
	switch x := n.(type) {
	case *tree.Module:
		body = x.Body
	case tree.Stmt:
		body = []tree.Stmt{x}
	case tree.Expr:
		body = []tree.Stmt{&tree.ExprStmt{Pos: tree.PosOf(x), Value: x}}
	case nil:
	default:
		return errors.Errorf("unsupported node %T", n)
	}

	stmts, err := e.stmts(body)
	if err != nil {
		return err
	}
	doc := mapNode(yaml.Style(0), scalar("module"), stmts)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encode yaml")
	}
	return errors.Wrap(enc.Close(), "flush yaml")
}

type encoder struct {
	lines bool
}

func (e *encoder) stmts(list []tree.Stmt) (*yaml.Node, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, s := range list {
		n, err := e.stmt(s)
		if err != nil {
			return nil, err
		}
		seq.Content = append(seq.Content, n)
	}
	return seq, nil
}

func (e *encoder) stmt(s tree.Stmt) (*yaml.Node, error) {
	var content []*yaml.Node
	switch x := s.(type) {
	case *tree.FunctionDef:
		body, err := e.stmts(x.Body)
		if err != nil {
			return nil, err
		}
		content = append(content, scalar("def"), scalar(x.Name))
		if len(x.Params) > 0 {
			content = append(content, scalar("params"), names(x.Params))
		}
		content = append(content, scalar("body"), body)

	case *tree.If:
		test, err := e.expr(x.Test)
		if err != nil {
			return nil, err
		}
		content = append(content, scalar("if"), test)
		then, err := e.stmts(x.Body)
		if err != nil {
			return nil, err
		}
		content = append(content, scalar("then"), then)
		if len(x.Orelse) > 0 {
			orelse, err := e.stmts(x.Orelse)
			if err != nil {
				return nil, err
			}
			content = append(content, scalar("else"), orelse)
		}

	case *tree.Assign:
		target := scalar(x.Target)
		if x.Target == "" {
			target = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		}
		value, err := e.expr(x.Value)
		if err != nil {
			return nil, err
		}
		content = append(content, scalar("assign"), target, scalar("value"), value)

	case *tree.Return:
		values, err := e.exprs(x.Values)
		if err != nil {
			return nil, err
		}
		content = append(content, scalar("return"), values)

	case *tree.GlobalDecl:
		content = append(content, scalar("global"), names(x.Names))

	case *tree.NonlocalDecl:
		content = append(content, scalar("nonlocal"), names(x.Names))

	case *tree.ExprStmt:
		if x.Value == nil {
			return nil, errors.Errorf("expression statement at line %d has no value", x.Pos.Line)
		}
		value, err := e.expr(x.Value)
		if err != nil {
			return nil, err
		}
		if e.lines && x.Pos.IsValid() && tree.PosOf(x.Value).Line != x.Pos.Line {
			content = append(content, scalar("expr"), value)
			break
		}
		value.Style = 0
		return value, nil

	default:
		return nil, errors.Errorf("unsupported statement %T", s)
	}

	content = e.appendLine(content, tree.PosOf(s))
	return &yaml.Node{Kind: yaml.MappingNode, Content: content}, nil
}

func (e *encoder) exprs(list []tree.Expr) (*yaml.Node, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, x := range list {
		n, err := e.expr(x)
		if err != nil {
			return nil, err
		}
		seq.Content = append(seq.Content, n)
	}
	return seq, nil
}

func (e *encoder) expr(x tree.Expr) (*yaml.Node, error) {
	var content []*yaml.Node
	switch x := x.(type) {
	case *tree.Call:
		content = append(content, scalar("call"), scalar(x.Callee))
		if len(x.Args) > 0 {
			args, err := e.exprs(x.Args)
			if err != nil {
				return nil, err
			}
			content = append(content, scalar("args"), args)
		}
	case *tree.Name:
		content = append(content, scalar("name"), scalar(x.ID))
	case *tree.StringLiteral:
		content = append(content, scalar("str"), scalar(x.Value))
	case *tree.Constant:
		v, err := constant(x.Value)
		if err != nil {
			return nil, err
		}
		content = append(content, scalar("const"), v)
	case *tree.ExprList:
		items, err := e.exprs(x.Items)
		if err != nil {
			return nil, err
		}
		content = append(content, scalar("seq"), items)
	case nil:
		return nil, errors.New("missing expression")
	default:
		return nil, errors.Errorf("unsupported expression %T", x)
	}

	content = e.appendLine(content, tree.PosOf(x))
	return &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle, Content: content}, nil
}

func (e *encoder) appendLine(content []*yaml.Node, pos tree.Pos) []*yaml.Node {
	if !e.lines || !pos.IsValid() {
		return content
	}
	return append(content, scalar("line"), &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!int",
		Value: strconv.Itoa(pos.Line),
	})
}

func constant(v any) (*yaml.Node, error) {
	if f, ok := v.(float64); ok && !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f) && math.Abs(f) < 1e15 {
		// Integral floats must stay floats once decoded.
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(f, 'f', 1, 64)}, nil
	}

	var n yaml.Node
	if err := n.Encode(v); err != nil {
		return nil, errors.Wrapf(err, "encode constant %v", v)
	}
	return &n, nil
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func names(list []string) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, name := range list {
		seq.Content = append(seq.Content, scalar(name))
	}
	return seq
}

func mapNode(style yaml.Style, kv ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Style: style, Content: kv}
}
