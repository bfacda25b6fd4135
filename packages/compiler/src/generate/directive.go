package generate

import (
	"fmt"

	"vapor-go/packages/compiler/src/ir"
	"vapor-go/packages/compiler/src/util"
)

// groupDirectives partitions directive operations by target element. Groups
// come out in order of first appearance and keep their operations in IR
// order, so every element gets exactly one withDirectives call.
func groupDirectives(ops []*ir.WithDirectiveIRNode) [][]*ir.WithDirectiveIRNode {
	var groups [][]*ir.WithDirectiveIRNode
	index := make(map[int]int)
	for _, op := range ops {
		i, ok := index[op.Element]
		if !ok {
			i = len(groups)
			index[op.Element] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], op)
	}
	return groups
}

func genWithDirective(opers []*ir.WithDirectiveIRNode, ctx *CodegenContext) {
	if len(opers) == 0 {
		return
	}
	directives := make([]any, len(opers))
	for i, oper := range opers {
		directives[i] = func() { genDirective(oper, ctx) }
	}

	ctx.Newline("")
	ctx.PushCall(
		ctx.VaporHelper(ir.HelperWithDirectives),
		fmt.Sprintf("n%d", opers[0].Element),
		func() { ctx.PushMulti("[", "]", ", ", directives...) },
	)
}

// genDirective emits one `[dir, value, arg, modifiers]` tuple, filling holes
// with `void 0` only when a later slot is present.
func genDirective(oper *ir.WithDirectiveIRNode, ctx *CodegenContext) {
	dir := oper.Dir
	hasModifiers := len(dir.Modifiers) > 0

	var value any
	switch {
	case dir.Exp != nil:
		value = func() {
			ctx.Push("() => ")
			genExpression(dir.Exp, ctx)
		}
	case dir.Arg != nil || hasModifiers:
		value = "void 0"
	}

	var arg any
	switch {
	case dir.Arg != nil:
		arg = func() { genExpression(dir.Arg, ctx) }
	case hasModifiers:
		arg = "void 0"
	}

	var modifiers any
	if hasModifiers {
		modifiers = func() {
			ctx.PushMulti("{ ", " }", ", ", flagObject(dir.Modifiers)...)
		}
	}

	ctx.PushMulti("[", "]", ", ",
		func() { genDirectiveReference(oper, ctx) },
		value,
		arg,
		modifiers,
	)
}

func genDirectiveReference(oper *ir.WithDirectiveIRNode, ctx *CodegenContext) {
	if oper.Builtin != "" {
		ctx.Push(ctx.VaporHelper(oper.Builtin))
		return
	}
	name := oper.Dir.Name
	setupName := util.DashCaseToCamelCase("v-" + name)
	if _, ok := ctx.Options.BindingMetadata[setupName]; ok {
		ctx.Push(setupName)
		return
	}
	ctx.PushCall(ctx.Helper(ir.HelperResolveDirective), util.JSONStringify(name))
}
