package generate

import (
	"fmt"

	"vapor-go/packages/compiler/src/ir"
)

func genSetText(oper *ir.SetTextIRNode, ctx *CodegenContext) {
	ctx.PushCall(
		ctx.VaporHelper(ir.HelperSetText),
		fmt.Sprintf("n%d", oper.Element),
		"undefined",
		func() { genExpression(oper.Value, ctx) },
	)
}

func genCreateTextNode(oper *ir.CreateTextNodeIRNode, ctx *CodegenContext) {
	ctx.Push(fmt.Sprintf("const n%d = ", oper.ID))
	ctx.PushCall(
		ctx.VaporHelper(ir.HelperCreateTextNode),
		func() { genExpression(oper.Value, ctx) },
	)
}
