package generate

import (
	"fmt"

	"vapor-go/packages/compiler/src/ir"
)

func genSetHTML(oper *ir.SetHTMLIRNode, ctx *CodegenContext) {
	ctx.PushCall(
		ctx.VaporHelper(ir.HelperSetHTML),
		fmt.Sprintf("n%d", oper.Element),
		"undefined",
		func() { genExpression(oper.Value, ctx) },
	)
}
