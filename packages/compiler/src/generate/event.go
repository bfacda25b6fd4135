package generate

import (
	"fmt"
	"strings"

	"vapor-go/packages/compiler/src/ir"
	"vapor-go/packages/compiler/src/util"
)

func genSetEvent(oper *ir.SetEventIRNode, ctx *CodegenContext) {
	modifiers := oper.Modifiers

	name := func() { genKey(oper.Key, ctx) }

	handler := func() { genEventHandler(oper.Value, ctx) }
	if len(modifiers.NonKeys) > 0 {
		inner := handler
		handler = func() {
			ctx.PushCall(ctx.VaporHelper(ir.HelperWithModifiers), inner, stringArray(modifiers.NonKeys))
		}
	}
	if len(modifiers.Keys) > 0 {
		inner := handler
		handler = func() {
			ctx.PushCall(ctx.VaporHelper(ir.HelperWithKeys), inner, stringArray(modifiers.Keys))
		}
	}

	var options any
	if len(modifiers.Options) > 0 {
		options = func() {
			ctx.PushMulti("{ ", " }", ", ", flagObject(modifiers.Options)...)
		}
	}

	ctx.PushCall(ctx.VaporHelper(ir.HelperOn), fmt.Sprintf("n%d", oper.Element), name, handler, options)
}

// genEventHandler emits a listener. Member expressions and function
// expressions are passed as they are; anything else is an inline statement
// and gets wrapped in an arrow taking $event.
func genEventHandler(value *ir.SimpleExpression, ctx *CodegenContext) {
	if value == nil || strings.TrimSpace(value.Content) == "" {
		ctx.Push("() => {}")
		return
	}
	isMemberExp := util.IsMemberExpression(value.Content)
	isInlineStatement := !(isMemberExp || util.IsFunctionExpression(value.Content))
	if isInlineStatement {
		ctx.Push("$event => (")
		genExpression(value, ctx)
		ctx.Push(")")
		return
	}
	genExpression(value, ctx)
}

// flagObject returns the `name: true` entries of an options object
func flagObject(names []string) []any {
	parts := make([]any, len(names))
	for i, name := range names {
		parts[i] = name + ": true"
	}
	return parts
}

func stringArray(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = util.JSONStringify(v)
	}
	return "[" + strings.Join(quoted, ",") + "]"
}
