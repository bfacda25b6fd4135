package generate

import (
	"fmt"

	"vapor-go/packages/compiler/src/ir"
	"vapor-go/packages/compiler/src/util"
)

func genSetModelValue(oper *ir.SetModelValueIRNode, ctx *CodegenContext) {
	name := func() {
		if keyName, ok := staticKeyName(oper.Key); ok {
			ctx.Push(util.JSONStringify("update:" + util.DashCaseToCamelCase(keyName)))
			return
		}
		ctx.PushMulti("`update:${", "}`", "", func() { genExpression(oper.Key, ctx) })
	}
	handler := func() {
		ctx.Push("() => $event => (")
		genExpressionAs(oper.Value, ctx, true)
		ctx.Push(" = $event)")
	}

	ctx.PushCall(ctx.VaporHelper(ir.HelperOn), fmt.Sprintf("n%d", oper.Element), name, handler)
}
