package generate

import (
	"vapor-go/packages/compiler/src/ir"
)

// operationGenerator dispatches each operation kind to its sub-generator.
// It must implement every ir.OperationVisitor method, so an operation kind
// without a handler does not compile.
type operationGenerator struct {
	ctx *CodegenContext
}

var _ ir.OperationVisitor = (*operationGenerator)(nil)

func genOperation(oper ir.OperationNode, ctx *CodegenContext) {
	oper.Accept(&operationGenerator{ctx: ctx})
}

// statement starts the line of one operation and maps it to where the
// operation came from in the template.
func (g *operationGenerator) statement(op ir.OperationNode) {
	g.ctx.Newline("")
	if loc := op.GetLoc(); loc != nil {
		g.ctx.addMapping(loc.Start, "")
	}
}

func (g *operationGenerator) VisitSetProp(op *ir.SetPropIRNode) {
	g.statement(op)
	genSetProp(op, g.ctx)
}

func (g *operationGenerator) VisitSetText(op *ir.SetTextIRNode) {
	g.statement(op)
	genSetText(op, g.ctx)
}

func (g *operationGenerator) VisitSetEvent(op *ir.SetEventIRNode) {
	g.statement(op)
	genSetEvent(op, g.ctx)
}

func (g *operationGenerator) VisitSetHTML(op *ir.SetHTMLIRNode) {
	g.statement(op)
	genSetHTML(op, g.ctx)
}

func (g *operationGenerator) VisitSetRef(op *ir.SetRefIRNode) {
	g.statement(op)
	genSetRef(op, g.ctx)
}

func (g *operationGenerator) VisitSetModelValue(op *ir.SetModelValueIRNode) {
	g.statement(op)
	genSetModelValue(op, g.ctx)
}

func (g *operationGenerator) VisitCreateTextNode(op *ir.CreateTextNodeIRNode) {
	g.statement(op)
	genCreateTextNode(op, g.ctx)
}

func (g *operationGenerator) VisitInsertNode(op *ir.InsertNodeIRNode) {
	g.statement(op)
	genInsertNode(op, g.ctx)
}

func (g *operationGenerator) VisitPrependNode(op *ir.PrependNodeIRNode) {
	g.statement(op)
	genPrependNode(op, g.ctx)
}

func (g *operationGenerator) VisitAppendNode(op *ir.AppendNodeIRNode) {
	g.statement(op)
	genAppendNode(op, g.ctx)
}

func (g *operationGenerator) VisitIf(op *ir.IfIRNode) {
	g.statement(op)
	genIf(op, g.ctx, false)
}

// VisitWithDirective emits nothing: directives are emitted up front, grouped
// per element, by genBlockFunctionContent.
func (g *operationGenerator) VisitWithDirective(op *ir.WithDirectiveIRNode) {}
