package generate

import (
	"fmt"

	"vapor-go/packages/compiler/src/ir"
)

// genIf emits `const n<id> = createIf(cond, positive, negative)`. A nested
// call renders a `v-else-if` branch as the negative of its parent and
// skips the declaration.
func genIf(oper *ir.IfIRNode, ctx *CodegenContext, isNested bool) {
	condition := func() {
		ctx.Push("() => (")
		genExpression(oper.Condition, ctx)
		ctx.Push(")")
	}
	positive := func() { genBlockFunction(oper.Positive, ctx) }

	var negative any
	switch n := oper.Negative.(type) {
	case *ir.BlockFunctionIRNode:
		if n != nil {
			negative = func() { genBlockFunction(n, ctx) }
		}
	case *ir.IfIRNode:
		if n != nil {
			negative = func() {
				ctx.Push("() => ")
				genIf(n, ctx, true)
			}
		}
	}

	if !isNested {
		ctx.Push(fmt.Sprintf("const n%d = ", oper.ID))
	}
	ctx.PushCall(ctx.VaporHelper(ir.HelperCreateIf), condition, positive, negative)
}

func genBlockFunction(block *ir.BlockFunctionIRNode, ctx *CodegenContext) {
	ctx.Push("() => {")
	ctx.WithIndent(func() {
		genBlockFunctionContent(block, ctx)
	})
	ctx.Newline("}")
}
