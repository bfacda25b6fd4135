package generate

import (
	"fmt"

	"vapor-go/packages/compiler/src/ir"
	"vapor-go/packages/compiler/src/util"
)

func genSetProp(oper *ir.SetPropIRNode, ctx *CodegenContext) {
	element := fmt.Sprintf("n%d", oper.Element)
	value := func() { genExpression(oper.Value, ctx) }

	// fast path for static keys
	if keyName, ok := staticKeyName(oper.Key); ok {
		var helperName ir.VaporHelper
		omitKey := false
		switch {
		case keyName == "class":
			helperName, omitKey = ir.HelperSetClass, true
		case keyName == "style":
			helperName, omitKey = ir.HelperSetStyle, true
		case oper.Modifier == ".":
			helperName = ir.HelperSetDOMProp
		case oper.Modifier == "^":
			helperName = ir.HelperSetAttr
		}
		if helperName != "" {
			ctx.PushCall(
				ctx.VaporHelper(helperName),
				element,
				When(!omitKey, func() { genKey(oper.Key, ctx) }),
				"undefined",
				value,
			)
			return
		}
	}

	ctx.PushCall(
		ctx.VaporHelper(ir.HelperSetDynamicProp),
		element,
		func() {
			switch {
			case oper.RuntimeCamelize:
				ctx.PushCall(ctx.Helper(ir.HelperCamelize), func() { genKey(oper.Key, ctx) })
			case oper.Modifier != "":
				ctx.PushMulti("`"+oper.Modifier+"${", "}`", "", func() { genKey(oper.Key, ctx) })
			default:
				genKey(oper.Key, ctx)
			}
		},
		"undefined",
		value,
	)
}

// staticKeyName returns the key of a binding when it is known at compile time.
// A raw key is a literal name.
func staticKeyName(key ir.Expression) (string, bool) {
	if _, raw := key.(ir.RawExpression); raw || ir.IsStaticExpression(key) {
		return ir.ExpressionContent(key), true
	}
	return "", false
}

// genKey emits a binding key, quoting raw keys like static ones
func genKey(key ir.Expression, ctx *CodegenContext) {
	if raw, ok := key.(ir.RawExpression); ok {
		ctx.Push(util.JSONStringify(string(raw)))
		return
	}
	genExpression(key, ctx)
}
