package generate

import (
	"fmt"

	"vapor-go/packages/compiler/src/ir"
)

func genSetRef(oper *ir.SetRefIRNode, ctx *CodegenContext) {
	ctx.PushCall(
		ctx.VaporHelper(ir.HelperSetRef),
		fmt.Sprintf("n%d", oper.Element),
		func() { genExpression(oper.Value, ctx) },
	)
}
