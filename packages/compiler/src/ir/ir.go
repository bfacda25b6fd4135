package ir

import (
	"vapor-go/packages/compiler/src/util"
)

// RootIRNode is the root of a compilation unit. It is itself a block: the
// one instantiated from the component's own template.
type RootIRNode struct {
	BlockFunctionIRNode
	// Source is the original template text, registered with the source map
	Source   string
	Template []TemplateFactory
}

// NewRootIRNode creates a new RootIRNode
func NewRootIRNode(source string, templates []TemplateFactory, block BlockFunctionIRNode) *RootIRNode {
	return &RootIRNode{
		BlockFunctionIRNode: block,
		Source:              source,
		Template:            templates,
	}
}

// GetKind returns the node type
func (r *RootIRNode) GetKind() IRNodeType {
	return IRNodeTypeRoot
}

// BlockFunctionIRNode is a block of nodes rendered from one template
// descriptor: the root, or a branch of a conditional.
type BlockFunctionIRNode struct {
	Dynamic       *IRDynamicInfo
	Operation     []OperationNode
	Effect        []*IREffect
	TemplateIndex int
	Loc           *util.SourceLocation
}

// GetKind returns the node type
func (b *BlockFunctionIRNode) GetKind() IRNodeType {
	return IRNodeTypeBlockFunction
}

func (*BlockFunctionIRNode) ifNegative() {}

// IRDynamicInfo describes one template position that may need a generated
// variable. ID is used as the variable suffix (`n<ID>`).
type IRDynamicInfo struct {
	ID           int
	DynamicFlags DynamicFlag
	Anchor       int
	Children     []*IRDynamicInfo
}

// IREffect is a group of operations re-run together whenever any of their
// reactive dependencies change.
type IREffect struct {
	Expressions []Expression
	Operations  []OperationNode
}

// TemplateFactory is a template descriptor: either literal markup or an
// empty fragment.
type TemplateFactory interface {
	GetKind() IRNodeType
	templateFactory()
}

// TemplateFactoryIRNode materializes a literal markup string once
type TemplateFactoryIRNode struct {
	Template string
}

// GetKind returns the node type
func (t *TemplateFactoryIRNode) GetKind() IRNodeType {
	return IRNodeTypeTemplateFactory
}

func (*TemplateFactoryIRNode) templateFactory() {}

// FragmentFactoryIRNode builds an empty fragment
type FragmentFactoryIRNode struct{}

// GetKind returns the node type
func (f *FragmentFactoryIRNode) GetKind() IRNodeType {
	return IRNodeTypeFragmentFactory
}

func (*FragmentFactoryIRNode) templateFactory() {}

// Expression is either a RawExpression emitted verbatim or a
// *SimpleExpression resolved from the template.
type Expression interface {
	expressionNode()
}

// RawExpression is generated text with no source location
type RawExpression string

func (RawExpression) expressionNode() {}

// SimpleExpression is a template expression. Identifiers lists the free
// identifiers in Content (byte offsets) that must be resolved against the
// render scope; everything else is emitted as written.
type SimpleExpression struct {
	Content     string
	IsStatic    bool
	Loc         *util.SourceLocation
	Identifiers []IdentifierRef
}

func (*SimpleExpression) expressionNode() {}

// IdentifierRef is a free identifier inside a SimpleExpression
type IdentifierRef struct {
	Name   string
	Offset int
}

// NewSimpleExpression creates a new SimpleExpression
func NewSimpleExpression(content string, isStatic bool, loc *util.SourceLocation, identifiers ...IdentifierRef) *SimpleExpression {
	return &SimpleExpression{
		Content:     content,
		IsStatic:    isStatic,
		Loc:         loc,
		Identifiers: identifiers,
	}
}

// ExpressionContent returns the source text of an expression
func ExpressionContent(e Expression) string {
	switch e := e.(type) {
	case RawExpression:
		return string(e)
	case *SimpleExpression:
		if e == nil {
			return ""
		}
		return e.Content
	}
	return ""
}

// IsStaticExpression reports whether e is a static SimpleExpression
func IsStaticExpression(e Expression) bool {
	se, ok := e.(*SimpleExpression)
	return ok && se != nil && se.IsStatic
}
