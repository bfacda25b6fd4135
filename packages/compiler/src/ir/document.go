package ir

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"vapor-go/packages/compiler/src/util"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "https://vapor-go.dev/schema/ir.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// DocumentError reports an IR document that could not be turned into a root
// node. Path is a JSON pointer into the document when known.
type DocumentError struct {
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid IR document: %v", e.Err)
	}
	return fmt.Sprintf("invalid IR document at %s: %v", e.Path, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

func documentSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			schemaErr = err
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// DecodeDocument parses an IR document. YAML and JSON are both accepted; the
// document is validated against the embedded schema before any typed node
// is built.
func DecodeDocument(data []byte) (*RootIRNode, error) {
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, &DocumentError{Err: err}
	}
	if generic == nil {
		return nil, &DocumentError{Err: errors.New("empty document")}
	}
	normalized, err := json.Marshal(generic)
	if err != nil {
		return nil, &DocumentError{Err: err}
	}

	sch, err := documentSchema()
	if err != nil {
		return nil, fmt.Errorf("compiling IR schema: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(normalized))
	if err != nil {
		return nil, &DocumentError{Err: err}
	}
	if err := sch.Validate(inst); err != nil {
		return nil, &DocumentError{Err: err}
	}

	var doc documentRoot
	if err := json.Unmarshal(normalized, &doc); err != nil {
		return nil, &DocumentError{Err: err}
	}
	return doc.toIR()
}

type documentPosition struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

type documentLoc struct {
	Start  documentPosition `json:"start"`
	End    documentPosition `json:"end"`
	Source string           `json:"source"`
}

func (l *documentLoc) toIR() *util.SourceLocation {
	if l == nil {
		return nil
	}
	return &util.SourceLocation{
		Start:  util.Position(l.Start),
		End:    util.Position(l.End),
		Source: l.Source,
	}
}

type documentTemplate struct {
	Type     string `json:"type"`
	Template string `json:"template"`
}

type documentIdentifier struct {
	Name   string `json:"name"`
	Offset int    `json:"offset"`
}

type documentExpression struct {
	Content     string               `json:"content"`
	IsStatic    bool                 `json:"isStatic"`
	Loc         *documentLoc         `json:"loc"`
	Identifiers []documentIdentifier `json:"identifiers"`
}

type documentDynamic struct {
	ID       int                `json:"id"`
	Flags    []string           `json:"flags"`
	Anchor   int                `json:"anchor"`
	Children []*documentDynamic `json:"children"`
}

type documentEffect struct {
	Expressions []json.RawMessage `json:"expressions"`
	Operations  []json.RawMessage `json:"operations"`
}

type documentBlock struct {
	TemplateIndex int               `json:"templateIndex"`
	Dynamic       *documentDynamic  `json:"dynamic"`
	Operation     []json.RawMessage `json:"operation"`
	Effect        []documentEffect  `json:"effect"`
	Loc           *documentLoc      `json:"loc"`
}

type documentRoot struct {
	documentBlock
	Source   string             `json:"source"`
	Template []documentTemplate `json:"template"`
}

type documentDirective struct {
	Name      string          `json:"name"`
	Exp       json.RawMessage `json:"exp"`
	Arg       json.RawMessage `json:"arg"`
	Modifiers []string        `json:"modifiers"`
}

type documentEventModifiers struct {
	Options []string `json:"options"`
	Keys    []string `json:"keys"`
	NonKeys []string `json:"nonKeys"`
}

// documentOperation is the union of every operation's fields; Type selects
// which ones are meaningful.
type documentOperation struct {
	Type            string                 `json:"type"`
	Element         int                    `json:"element"`
	ID              int                    `json:"id"`
	Key             json.RawMessage        `json:"key"`
	Value           json.RawMessage        `json:"value"`
	Modifier        string                 `json:"modifier"`
	RuntimeCamelize bool                   `json:"runtimeCamelize"`
	IsComponent     bool                   `json:"isComponent"`
	Modifiers       documentEventModifiers `json:"modifiers"`
	Elements        []int                  `json:"elements"`
	Parent          int                    `json:"parent"`
	Anchor          int                    `json:"anchor"`
	Condition       json.RawMessage        `json:"condition"`
	Positive        *documentBlock         `json:"positive"`
	Negative        json.RawMessage        `json:"negative"`
	Dir             *documentDirective     `json:"dir"`
	Builtin         string                 `json:"builtin"`
	Loc             *documentLoc           `json:"loc"`
}

var dynamicFlagNames = map[string]DynamicFlag{
	"referenced":   DynamicReferenced,
	"non_template": DynamicNonTemplate,
	"insert":       DynamicInsert,
}

func (d *documentRoot) toIR() (*RootIRNode, error) {
	templates := make([]TemplateFactory, 0, len(d.Template))
	for _, t := range d.Template {
		switch t.Type {
		case "fragment":
			templates = append(templates, &FragmentFactoryIRNode{})
		default:
			templates = append(templates, &TemplateFactoryIRNode{Template: t.Template})
		}
	}
	block, err := d.documentBlock.toIR("")
	if err != nil {
		return nil, err
	}
	if block.TemplateIndex >= len(templates) && len(templates) > 0 {
		return nil, &DocumentError{
			Path: "/templateIndex",
			Err:  fmt.Errorf("index %d out of range for %d templates", block.TemplateIndex, len(templates)),
		}
	}
	return NewRootIRNode(d.Source, templates, *block), nil
}

func (b *documentBlock) toIR(path string) (*BlockFunctionIRNode, error) {
	ops, err := decodeOperations(b.Operation, path+"/operation")
	if err != nil {
		return nil, err
	}
	effects := make([]*IREffect, 0, len(b.Effect))
	for i, e := range b.Effect {
		effectPath := fmt.Sprintf("%s/effect/%d", path, i)
		exprs := make([]Expression, 0, len(e.Expressions))
		for j, raw := range e.Expressions {
			expr, err := decodeExpression(raw)
			if err != nil {
				return nil, &DocumentError{Path: fmt.Sprintf("%s/expressions/%d", effectPath, j), Err: err}
			}
			exprs = append(exprs, expr)
		}
		effectOps, err := decodeOperations(e.Operations, effectPath+"/operations")
		if err != nil {
			return nil, err
		}
		effects = append(effects, &IREffect{Expressions: exprs, Operations: effectOps})
	}
	return &BlockFunctionIRNode{
		Dynamic:       b.Dynamic.toIR(),
		Operation:     ops,
		Effect:        effects,
		TemplateIndex: b.TemplateIndex,
		Loc:           b.Loc.toIR(),
	}, nil
}

func (d *documentDynamic) toIR() *IRDynamicInfo {
	if d == nil {
		return &IRDynamicInfo{}
	}
	info := &IRDynamicInfo{ID: d.ID, Anchor: d.Anchor}
	for _, f := range d.Flags {
		info.DynamicFlags |= dynamicFlagNames[f]
	}
	for _, c := range d.Children {
		info.Children = append(info.Children, c.toIR())
	}
	return info
}

func decodeOperations(raws []json.RawMessage, path string) ([]OperationNode, error) {
	ops := make([]OperationNode, 0, len(raws))
	for i, raw := range raws {
		op, err := decodeOperation(raw, fmt.Sprintf("%s/%d", path, i))
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func decodeOperation(raw json.RawMessage, path string) (OperationNode, error) {
	var o documentOperation
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, &DocumentError{Path: path, Err: err}
	}
	base := OpBase{Loc: o.Loc.toIR()}
	expr := func(field string, raw json.RawMessage) (Expression, error) {
		e, err := decodeExpression(raw)
		if err != nil {
			return nil, &DocumentError{Path: path + "/" + field, Err: err}
		}
		return e, nil
	}

	switch o.Type {
	case "set_prop":
		key, err := expr("key", o.Key)
		if err != nil {
			return nil, err
		}
		value, err := expr("value", o.Value)
		if err != nil {
			return nil, err
		}
		return &SetPropIRNode{OpBase: base, Element: o.Element, Key: key, Value: value, Modifier: o.Modifier, RuntimeCamelize: o.RuntimeCamelize}, nil
	case "set_text":
		value, err := expr("value", o.Value)
		if err != nil {
			return nil, err
		}
		return &SetTextIRNode{OpBase: base, Element: o.Element, Value: value}, nil
	case "set_event":
		key, err := expr("key", o.Key)
		if err != nil {
			return nil, err
		}
		value, err := decodeSimpleExpression(o.Value)
		if err != nil {
			return nil, &DocumentError{Path: path + "/value", Err: err}
		}
		return &SetEventIRNode{
			OpBase:  base,
			Element: o.Element,
			Key:     key,
			Value:   value,
			Modifiers: EventModifiers{
				Options: o.Modifiers.Options,
				Keys:    o.Modifiers.Keys,
				NonKeys: o.Modifiers.NonKeys,
			},
		}, nil
	case "set_html":
		value, err := expr("value", o.Value)
		if err != nil {
			return nil, err
		}
		return &SetHTMLIRNode{OpBase: base, Element: o.Element, Value: value}, nil
	case "set_ref":
		value, err := expr("value", o.Value)
		if err != nil {
			return nil, err
		}
		return &SetRefIRNode{OpBase: base, Element: o.Element, Value: value}, nil
	case "set_model_value":
		key, err := expr("key", o.Key)
		if err != nil {
			return nil, err
		}
		value, err := expr("value", o.Value)
		if err != nil {
			return nil, err
		}
		return &SetModelValueIRNode{OpBase: base, Element: o.Element, Key: key, Value: value, IsComponent: o.IsComponent}, nil
	case "create_text_node":
		value, err := expr("value", o.Value)
		if err != nil {
			return nil, err
		}
		return &CreateTextNodeIRNode{OpBase: base, ID: o.ID, Value: value}, nil
	case "insert_node":
		return &InsertNodeIRNode{OpBase: base, Elements: o.Elements, Parent: o.Parent, Anchor: o.Anchor}, nil
	case "prepend_node":
		return &PrependNodeIRNode{OpBase: base, Elements: o.Elements, Parent: o.Parent}, nil
	case "append_node":
		return &AppendNodeIRNode{OpBase: base, Elements: o.Elements, Parent: o.Parent}, nil
	case "if":
		return decodeIf(&o, base, path)
	case "with_directive":
		if o.Dir == nil {
			return nil, &DocumentError{Path: path + "/dir", Err: errors.New("missing directive")}
		}
		exp, err := decodeSimpleExpression(o.Dir.Exp)
		if err != nil {
			return nil, &DocumentError{Path: path + "/dir/exp", Err: err}
		}
		arg, err := decodeSimpleExpression(o.Dir.Arg)
		if err != nil {
			return nil, &DocumentError{Path: path + "/dir/arg", Err: err}
		}
		return &WithDirectiveIRNode{
			OpBase:  base,
			Element: o.Element,
			Dir:     DirectiveNode{Name: o.Dir.Name, Exp: exp, Arg: arg, Modifiers: o.Dir.Modifiers},
			Builtin: o.Builtin,
		}, nil
	}
	return nil, &DocumentError{Path: path + "/type", Err: fmt.Errorf("unknown operation type %q", o.Type)}
}

func decodeIf(o *documentOperation, base OpBase, path string) (*IfIRNode, error) {
	cond, err := decodeExpression(o.Condition)
	if err != nil {
		return nil, &DocumentError{Path: path + "/condition", Err: err}
	}
	if o.Positive == nil {
		return nil, &DocumentError{Path: path + "/positive", Err: errors.New("missing positive branch")}
	}
	positive, err := o.Positive.toIR(path + "/positive")
	if err != nil {
		return nil, err
	}
	node := &IfIRNode{OpBase: base, ID: o.ID, Condition: cond, Positive: positive}
	if isNull(o.Negative) {
		return node, nil
	}

	var kind struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(o.Negative, &kind); err != nil {
		return nil, &DocumentError{Path: path + "/negative", Err: err}
	}
	if kind.Type == "" {
		var block documentBlock
		if err := json.Unmarshal(o.Negative, &block); err != nil {
			return nil, &DocumentError{Path: path + "/negative", Err: err}
		}
		negative, err := block.toIR(path + "/negative")
		if err != nil {
			return nil, err
		}
		node.Negative = negative
		return node, nil
	}
	nested, err := decodeOperation(o.Negative, path+"/negative")
	if err != nil {
		return nil, err
	}
	elseIf, ok := nested.(*IfIRNode)
	if !ok {
		return nil, &DocumentError{Path: path + "/negative", Err: fmt.Errorf("negative branch must be a block or an if, got %s", nested.GetKind())}
	}
	node.Negative = elseIf
	return node, nil
}

// decodeExpression turns a bare string into a RawExpression and an object
// into a SimpleExpression. A missing value decodes to nil.
func decodeExpression(raw json.RawMessage) (Expression, error) {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return nil, nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return RawExpression(s), nil
	}
	return decodeSimpleExpression(raw)
}

// decodeSimpleExpression is used where only template expressions are
// allowed; a bare string becomes a dynamic expression with no identifiers.
func decodeSimpleExpression(raw json.RawMessage) (*SimpleExpression, error) {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return nil, nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return NewSimpleExpression(s, false, nil), nil
	}
	var e documentExpression
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, err
	}
	var ids []IdentifierRef
	for _, id := range e.Identifiers {
		if id.Offset+len(id.Name) > len(e.Content) {
			return nil, fmt.Errorf("identifier %q at offset %d is outside %q", id.Name, id.Offset, e.Content)
		}
		ids = append(ids, IdentifierRef(id))
	}
	return NewSimpleExpression(e.Content, e.IsStatic, e.Loc.toIR(), ids...), nil
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
