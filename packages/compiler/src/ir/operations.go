package ir

import (
	"vapor-go/packages/compiler/src/util"
)

// OperationNode is one of the closed set of operation kinds. Adding a kind
// means adding a method to OperationVisitor, which breaks the build of every
// dispatcher until it handles the new kind.
type OperationNode interface {
	GetKind() IRNodeType
	GetLoc() *util.SourceLocation
	Accept(v OperationVisitor)
}

// OperationVisitor has one method per operation kind
type OperationVisitor interface {
	VisitSetProp(op *SetPropIRNode)
	VisitSetText(op *SetTextIRNode)
	VisitSetEvent(op *SetEventIRNode)
	VisitSetHTML(op *SetHTMLIRNode)
	VisitSetRef(op *SetRefIRNode)
	VisitSetModelValue(op *SetModelValueIRNode)
	VisitCreateTextNode(op *CreateTextNodeIRNode)
	VisitInsertNode(op *InsertNodeIRNode)
	VisitPrependNode(op *PrependNodeIRNode)
	VisitAppendNode(op *AppendNodeIRNode)
	VisitIf(op *IfIRNode)
	VisitWithDirective(op *WithDirectiveIRNode)
}

// OpBase carries what every operation has in common
type OpBase struct {
	Loc *util.SourceLocation
}

// GetLoc returns the template location the operation was created from
func (o *OpBase) GetLoc() *util.SourceLocation {
	return o.Loc
}

// SetPropIRNode binds an expression to an attribute or property of an element.
// Modifier is "" (let the runtime decide), "." (force DOM property) or "^"
// (force attribute).
type SetPropIRNode struct {
	OpBase
	Element         int
	Key             Expression
	Value           Expression
	Modifier        string
	RuntimeCamelize bool
}

func (o *SetPropIRNode) GetKind() IRNodeType       { return IRNodeTypeSetProp }
func (o *SetPropIRNode) Accept(v OperationVisitor) { v.VisitSetProp(o) }

// SetTextIRNode sets the text content of a node
type SetTextIRNode struct {
	OpBase
	Element int
	Value   Expression
}

func (o *SetTextIRNode) GetKind() IRNodeType       { return IRNodeTypeSetText }
func (o *SetTextIRNode) Accept(v OperationVisitor) { v.VisitSetText(o) }

// EventModifiers are the modifiers of an event binding, already split by
// how the runtime applies them
type EventModifiers struct {
	// Options become addEventListener options (`once`, `capture`, `passive`)
	Options []string
	// Keys guard keyboard events (`enter`, `esc`, ...)
	Keys []string
	// NonKeys are everything else (`stop`, `prevent`, `self`, ...)
	NonKeys []string
}

// SetEventIRNode attaches an event listener. Value is nil for a bare `@click`.
type SetEventIRNode struct {
	OpBase
	Element   int
	Key       Expression
	Value     *SimpleExpression
	Modifiers EventModifiers
}

func (o *SetEventIRNode) GetKind() IRNodeType       { return IRNodeTypeSetEvent }
func (o *SetEventIRNode) Accept(v OperationVisitor) { v.VisitSetEvent(o) }

// SetHTMLIRNode sets the inner HTML of an element
type SetHTMLIRNode struct {
	OpBase
	Element int
	Value   Expression
}

func (o *SetHTMLIRNode) GetKind() IRNodeType       { return IRNodeTypeSetHTML }
func (o *SetHTMLIRNode) Accept(v OperationVisitor) { v.VisitSetHTML(o) }

// SetRefIRNode registers an element as a template ref
type SetRefIRNode struct {
	OpBase
	Element int
	Value   Expression
}

func (o *SetRefIRNode) GetKind() IRNodeType       { return IRNodeTypeSetRef }
func (o *SetRefIRNode) Accept(v OperationVisitor) { v.VisitSetRef(o) }

// SetModelValueIRNode is the update side of a two-way binding
type SetModelValueIRNode struct {
	OpBase
	Element     int
	Key         Expression
	Value       Expression
	IsComponent bool
}

func (o *SetModelValueIRNode) GetKind() IRNodeType       { return IRNodeTypeSetModelValue }
func (o *SetModelValueIRNode) Accept(v OperationVisitor) { v.VisitSetModelValue(o) }

// CreateTextNodeIRNode creates a text node that has no slot in the template
type CreateTextNodeIRNode struct {
	OpBase
	ID    int
	Value Expression
}

func (o *CreateTextNodeIRNode) GetKind() IRNodeType       { return IRNodeTypeCreateTextNode }
func (o *CreateTextNodeIRNode) Accept(v OperationVisitor) { v.VisitCreateTextNode(o) }

// InsertNodeIRNode inserts Elements into Parent before Anchor
type InsertNodeIRNode struct {
	OpBase
	Elements []int
	Parent   int
	Anchor   int
}

func (o *InsertNodeIRNode) GetKind() IRNodeType       { return IRNodeTypeInsertNode }
func (o *InsertNodeIRNode) Accept(v OperationVisitor) { v.VisitInsertNode(o) }

// PrependNodeIRNode prepends Elements to Parent
type PrependNodeIRNode struct {
	OpBase
	Elements []int
	Parent   int
}

func (o *PrependNodeIRNode) GetKind() IRNodeType       { return IRNodeTypePrependNode }
func (o *PrependNodeIRNode) Accept(v OperationVisitor) { v.VisitPrependNode(o) }

// AppendNodeIRNode appends Elements to Parent
type AppendNodeIRNode struct {
	OpBase
	Elements []int
	Parent   int
}

func (o *AppendNodeIRNode) GetKind() IRNodeType       { return IRNodeTypeAppendNode }
func (o *AppendNodeIRNode) Accept(v OperationVisitor) { v.VisitAppendNode(o) }

// IfNegative is the else side of a conditional: a block, or another
// conditional for `v-else-if`.
type IfNegative interface {
	ifNegative()
}

// IfIRNode renders Positive while Condition holds and Negative otherwise
type IfIRNode struct {
	OpBase
	ID        int
	Condition Expression
	Positive  *BlockFunctionIRNode
	Negative  IfNegative
}

func (o *IfIRNode) GetKind() IRNodeType       { return IRNodeTypeIf }
func (o *IfIRNode) Accept(v OperationVisitor) { v.VisitIf(o) }
func (*IfIRNode) ifNegative()                 {}

// DirectiveNode is a custom directive as written in the template
type DirectiveNode struct {
	Name      string
	Exp       *SimpleExpression
	Arg       *SimpleExpression
	Modifiers []string
}

// WithDirectiveIRNode attaches a directive to an element. Builtin names a
// runtime-provided directive (e.g. `vShow`) used instead of resolving Dir.Name.
type WithDirectiveIRNode struct {
	OpBase
	Element int
	Dir     DirectiveNode
	Builtin string
}

func (o *WithDirectiveIRNode) GetKind() IRNodeType       { return IRNodeTypeWithDirective }
func (o *WithDirectiveIRNode) Accept(v OperationVisitor) { v.VisitWithDirective(o) }
