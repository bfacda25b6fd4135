package generate

import (
	"fmt"
	"strings"

	"vapor-go/packages/compiler/src/ir"
)

func genInsertNode(oper *ir.InsertNodeIRNode, ctx *CodegenContext) {
	element := nodeList(oper.Elements)
	if len(oper.Elements) > 1 {
		element = "[" + element + "]"
	}
	ctx.PushCall(
		ctx.VaporHelper(ir.HelperInsert),
		element,
		fmt.Sprintf("n%d", oper.Parent),
		fmt.Sprintf("n%d", oper.Anchor),
	)
}

func genPrependNode(oper *ir.PrependNodeIRNode, ctx *CodegenContext) {
	ctx.PushCall(ctx.VaporHelper(ir.HelperPrepend), fmt.Sprintf("n%d", oper.Parent), nodeList(oper.Elements))
}

func genAppendNode(oper *ir.AppendNodeIRNode, ctx *CodegenContext) {
	ctx.PushCall(ctx.VaporHelper(ir.HelperAppend), fmt.Sprintf("n%d", oper.Parent), nodeList(oper.Elements))
}

func nodeList(ids []int) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = fmt.Sprintf("n%d", id)
	}
	return strings.Join(names, ", ")
}
