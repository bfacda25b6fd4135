package generate

import (
	"fmt"
	"sort"

	"vapor-go/packages/compiler/src/config"
	"vapor-go/packages/compiler/src/ir"
	"vapor-go/packages/compiler/src/util"
)

func genExpression(expr ir.Expression, ctx *CodegenContext) {
	genExpressionAs(expr, ctx, false)
}

// genExpressionAs emits expr. When assign is set the expression is the
// target of an assignment and bindings are rewritten to something writable.
func genExpressionAs(expr ir.Expression, ctx *CodegenContext, assign bool) {
	switch e := expr.(type) {
	case nil:
		ctx.Push("undefined")
	case ir.RawExpression:
		ctx.PushMapped(string(e), NewlineUnknown, nil, "")
	case *ir.SimpleExpression:
		genSimpleExpression(e, ctx, assign)
	}
}

func genSimpleExpression(node *ir.SimpleExpression, ctx *CodegenContext, assign bool) {
	if node == nil {
		ctx.Push("undefined")
		return
	}
	if node.IsStatic {
		ctx.PushMapped(util.JSONStringify(node.Content), NewlineNone, node.Loc, "")
		return
	}
	if len(node.Identifiers) == 0 {
		ctx.PushMapped(node.Content, NewlineUnknown, node.Loc, "")
		return
	}

	rawExpr := node.Content
	ids := append([]ir.IdentifierRef{}, node.Identifiers...)
	sort.SliceStable(ids, func(i, j int) bool { return ids[i].Offset < ids[j].Offset })

	last := 0
	for _, id := range ids {
		start := id.Offset
		end := id.Offset + len(id.Name)
		if start < last || end > len(rawExpr) || rawExpr[start:end] != id.Name {
			panic(&util.InvariantError{
				Op:  "genExpression",
				Msg: fmt.Sprintf("identifier %q at offset %d does not occur in %q", id.Name, id.Offset, rawExpr),
			})
		}
		if leading := rawExpr[last:start]; leading != "" {
			ctx.PushMapped(leading, NewlineUnknown, nil, "")
		}

		var loc *util.SourceLocation
		if node.Loc != nil {
			loc = &util.SourceLocation{
				Start:  util.AdvancePositionWithClone(node.Loc.Start, rawExpr, start),
				End:    util.AdvancePositionWithClone(node.Loc.Start, rawExpr, end),
				Source: id.Name,
			}
		}
		ctx.PushMapped(resolveIdentifier(id.Name, ctx, assign), NewlineNone, loc, id.Name)
		last = end
	}
	if trailing := rawExpr[last:]; trailing != "" {
		ctx.PushMapped(trailing, NewlineUnknown, nil, "")
	}
}

// resolveIdentifier rewrites a free identifier for the render scope. The
// function form reads everything through the component proxy; the inlined
// form sits inside setup and can reach bindings directly.
func resolveIdentifier(name string, ctx *CodegenContext, assign bool) string {
	if ctx.Options.Mode != config.ModeInline {
		return "_ctx." + name
	}
	switch ctx.Options.BindingMetadata[name] {
	case ir.BindingSetupRef:
		return name + ".value"
	case ir.BindingSetupMaybeRef:
		if assign {
			return name + ".value"
		}
		return ctx.Helper(ir.HelperUnref) + "(" + name + ")"
	case ir.BindingSetupLet:
		if assign {
			return name
		}
		return ctx.Helper(ir.HelperUnref) + "(" + name + ")"
	case ir.BindingSetupConst, ir.BindingSetupReactiveConst, ir.BindingLiteralConst:
		return name
	case ir.BindingProps, ir.BindingPropsAliased:
		return "__props." + name
	default:
		return "_ctx." + name
	}
}
