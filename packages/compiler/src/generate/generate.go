// Package generate lowers a vapor IR tree into JavaScript render code.
//
// Generation is synchronous and allocates all of its state in a fresh
// CodegenContext, so independent templates can be generated concurrently.
package generate

import (
	"strings"

	"vapor-go/packages/compiler/src/config"
	"vapor-go/packages/compiler/src/ir"
	"vapor-go/packages/compiler/src/output"
	"vapor-go/packages/compiler/src/util"
)

const renderFunctionName = "render"

// CodegenResult is the output of one generation call
type CodegenResult struct {
	// Code is the generated program. In function mode it starts with Preamble.
	Code     string
	Preamble string
	AST      *ir.RootIRNode
	Map      *output.RawSourceMap
	// Helpers are imported from the core runtime module, VaporHelpers from
	// the vapor runtime module. Both are in first-use order.
	Helpers      []string
	VaporHelpers []string
}

// Generate lowers root to render code
func Generate(root *ir.RootIRNode, opts ...config.CodegenOption) *CodegenResult {
	options := config.NewCodegenOptions(opts...)
	ctx := NewCodegenContext(root, options)
	isSetupInlined := options.Mode == config.ModeInline

	if isSetupInlined {
		ctx.Push("(() => {")
		ctx.WithIndent(func() {
			genTemplates(root.Template, ctx)
			genBlockFunctionContent(&root.BlockFunctionIRNode, ctx)
		})
		ctx.Newline("})()")
	} else {
		// line 1 is left for the preamble
		genTemplates(root.Template, ctx)
		ctx.Newline("")
		ctx.Newlinef("export function %s(_ctx) {", renderFunctionName)
		ctx.WithIndent(func() {
			genBlockFunctionContent(&root.BlockFunctionIRNode, ctx)
		})
		ctx.Newline("}")
	}

	preamble := genPreamble(ctx)
	code := ctx.Code()
	if !isSetupInlined {
		code = preamble + code
		if sm := ctx.SourceMap(); sm != nil {
			sm.ShiftLines(strings.Count(preamble, "\n"))
		}
	}

	var sourceMap *output.RawSourceMap
	if sm := ctx.SourceMap(); sm != nil {
		sourceMap = sm.ToJSON()
	}

	return &CodegenResult{
		Code:         code,
		Preamble:     preamble,
		AST:          root,
		Map:          sourceMap,
		Helpers:      ctx.Helpers().Names(),
		VaporHelpers: ctx.VaporHelpers().Names(),
	}
}

func genTemplates(templates []ir.TemplateFactory, ctx *CodegenContext) {
	for i, template := range templates {
		switch t := template.(type) {
		case *ir.TemplateFactoryIRNode:
			ctx.Newlinef("const t%d = %s(%s)", i, ctx.VaporHelper(ir.HelperTemplate), util.JSONStringify(t.Template))
		case *ir.FragmentFactoryIRNode:
			ctx.Newlinef("const t%d = %s()", i, ctx.VaporHelper(ir.HelperFragment))
		}
	}
}

// genBlockFunctionContent emits the body of a block: instantiate the
// template, index the referenced children, attach directives, run the
// one-off operations, register the effects and return the root node.
func genBlockFunctionContent(block *ir.BlockFunctionIRNode, ctx *CodegenContext) {
	ctx.Newlinef("const n%d = t%d()", block.Dynamic.ID, block.TemplateIndex)

	if children := genChildren(block.Dynamic.Children); children != "" {
		ctx.Newlinef("const %s = %s(n%d)", children, ctx.VaporHelper(ir.HelperChildren), block.Dynamic.ID)
	}

	var directiveOps []*ir.WithDirectiveIRNode
	for _, oper := range block.Operation {
		if d, ok := oper.(*ir.WithDirectiveIRNode); ok {
			directiveOps = append(directiveOps, d)
		}
	}
	for _, directives := range groupDirectives(directiveOps) {
		genWithDirective(directives, ctx)
	}

	for _, oper := range block.Operation {
		genOperation(oper, ctx)
	}

	for _, effect := range block.Effect {
		ctx.Newlinef("%s(() => {", ctx.VaporHelper(ir.HelperRenderEffect))
		ctx.WithIndent(func() {
			for _, oper := range effect.Operations {
				genOperation(oper, ctx)
			}
		})
		ctx.Newline("})")
	}

	ctx.Newlinef("return n%d", block.Dynamic.ID)
}
