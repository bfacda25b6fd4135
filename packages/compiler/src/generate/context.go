package generate

import (
	"fmt"
	"strings"

	"vapor-go/packages/compiler/src/config"
	"vapor-go/packages/compiler/src/ir"
	"vapor-go/packages/compiler/src/output"
	"vapor-go/packages/compiler/src/util"
)

const indentWith = "  "

// NewlineType declares where the line breaks in pushed text are. Any
// non-negative value is the byte index of the only line break.
type NewlineType int

const (
	// NewlineStart - exactly one line break, at index 0
	NewlineStart NewlineType = 0
	// NewlineEnd - exactly one line break, as the last character
	NewlineEnd NewlineType = -1
	// NewlineNone - no line break at all
	NewlineNone NewlineType = -2
	// NewlineUnknown - scan the text
	NewlineUnknown NewlineType = -3
)

// CodegenContext holds all mutable state of one generation call: the output
// buffer, the current position, the indent level, the two helper sets and
// the optional source map. It must not be reused across calls.
type CodegenContext struct {
	Options *config.CodegenOptions
	Source  string

	code        strings.Builder
	pos         util.Position
	indentLevel int

	helpers      *HelperSet
	vaporHelpers *HelperSet

	sourceMap *output.SourceMapGenerator
}

// NewCodegenContext creates the context for generating root
func NewCodegenContext(root *ir.RootIRNode, options *config.CodegenOptions) *CodegenContext {
	if options == nil {
		options = config.NewCodegenOptions()
	}
	ctx := &CodegenContext{
		Options:      options,
		Source:       root.Source,
		pos:          util.NewPosition(),
		helpers:      NewHelperSet(),
		vaporHelpers: NewHelperSet(),
	}
	if options.SourceMap {
		ctx.sourceMap = output.NewSourceMapGenerator(nil)
		ctx.sourceMap.SetSourceContent(options.Filename, root.Source)
	}
	return ctx
}

// Code returns the text emitted so far
func (ctx *CodegenContext) Code() string {
	return ctx.code.String()
}

// Position returns the position right after the emitted text
func (ctx *CodegenContext) Position() util.Position {
	return ctx.pos
}

// IndentLevel returns the current indent level
func (ctx *CodegenContext) IndentLevel() int {
	return ctx.indentLevel
}

// Helpers returns the core runtime helpers referenced so far
func (ctx *CodegenContext) Helpers() *HelperSet {
	return ctx.helpers
}

// VaporHelpers returns the vapor runtime helpers referenced so far
func (ctx *CodegenContext) VaporHelpers() *HelperSet {
	return ctx.vaporHelpers
}

// SourceMap returns the source map builder, nil when disabled
func (ctx *CodegenContext) SourceMap() *output.SourceMapGenerator {
	return ctx.sourceMap
}

// Helper registers a core runtime helper and returns its local alias
func (ctx *CodegenContext) Helper(name string) string {
	ctx.helpers.Add(name)
	return "_" + name
}

// VaporHelper registers a vapor runtime helper and returns its local alias
func (ctx *CodegenContext) VaporHelper(name ir.VaporHelper) string {
	ctx.vaporHelpers.Add(name)
	return "_" + name
}

// Push appends code that contains no line break.
func (ctx *CodegenContext) Push(code string) {
	ctx.PushMapped(code, NewlineNone, nil, "")
}

// PushMapped appends code and advances the position according to the
// newline hint. When loc is set the pre-append position is mapped to
// loc.Start (with name as the symbol), and unless loc is LocStub the
// post-append position is mapped to loc.End.
func (ctx *CodegenContext) PushMapped(code string, newline NewlineType, loc *util.SourceLocation, name string) {
	ctx.code.WriteString(code)
	if loc != nil {
		ctx.addMapping(loc.Start, name)
	}

	switch {
	case newline == NewlineUnknown:
		util.AdvancePositionWithMutation(&ctx.pos, code, -1)
	case newline == NewlineNone:
		util.Invariant(!strings.Contains(code, "\n"), "CodegenContext.Push",
			"called with newline: none, but contains newlines: %s", util.EscapeNewlines(code))
		ctx.pos.Offset += len(code)
		ctx.pos.Column += util.UTF16Len(code)
	default:
		index := int(newline)
		if newline == NewlineEnd {
			index = len(code) - 1
		}
		util.Invariant(index >= 0 && index < len(code) && code[index] == '\n' &&
			!strings.Contains(code[:index], "\n") && !strings.Contains(code[index+1:], "\n"),
			"CodegenContext.Push", "called with newline index %d but does not conform: %s",
			index, util.EscapeNewlines(code))
		if index < 0 || index >= len(code) {
			// Release builds trust the hint, but must not slice out of range.
			util.AdvancePositionWithMutation(&ctx.pos, code, -1)
			break
		}
		ctx.pos.Offset += len(code)
		ctx.pos.Line++
		ctx.pos.Column = util.UTF16Len(code[index:])
	}

	if loc != nil && loc != util.LocStub {
		ctx.addMapping(loc.End, "")
	}
}

func (ctx *CodegenContext) addMapping(original util.Position, name string) {
	if ctx.sourceMap == nil {
		return
	}
	err := ctx.sourceMap.AddMapping(output.Mapping{
		GeneratedLine:   ctx.pos.Line,
		GeneratedColumn: ctx.pos.Column - 1,
		Source:          ctx.Options.Filename,
		OriginalLine:    original.Line,
		OriginalColumn:  original.Column - 1,
		Name:            name,
	})
	util.Invariant(err == nil, "CodegenContext.addMapping", "%v", err)
}

// Newline starts a new line at the current indent, then pushes code if it
// is not empty.
func (ctx *CodegenContext) Newline(code string) {
	ctx.PushMapped("\n"+strings.Repeat(indentWith, ctx.indentLevel), NewlineStart, nil, "")
	if code != "" {
		ctx.Push(code)
	}
}

// Newlinef is Newline with fmt.Sprintf formatting
func (ctx *CodegenContext) Newlinef(format string, args ...any) {
	ctx.Newline(fmt.Sprintf(format, args...))
}

// PushMulti pushes left, then every part separated by sep, then right.
// A part is a string or a func() that emits itself; "", nil and false parts
// are dropped before separators are placed.
func (ctx *CodegenContext) PushMulti(left, right, sep string, parts ...any) {
	kept := parts[:0:0]
	for _, part := range parts {
		if !isFalsy(part) {
			kept = append(kept, part)
		}
	}

	ctx.Push(left)
	for i, part := range kept {
		switch p := part.(type) {
		case string:
			ctx.Push(p)
		case func():
			p()
		default:
			panic(&util.InvariantError{Op: "CodegenContext.PushMulti", Msg: fmt.Sprintf("unsupported part %T", part)})
		}
		if sep != "" && i < len(kept)-1 {
			ctx.Push(sep)
		}
	}
	ctx.Push(right)
}

// PushCall emits a call expression `name(arg, ...)`. Arguments follow the
// PushMulti rules.
func (ctx *CodegenContext) PushCall(name string, args ...any) {
	ctx.Push(name)
	ctx.PushMulti("(", ")", ", ", args...)
}

// WithIndent runs fn one indent level deeper. The level is restored even if
// fn panics.
func (ctx *CodegenContext) WithIndent(fn func()) {
	ctx.indentLevel++
	defer func() {
		ctx.indentLevel--
	}()
	fn()
}

// When returns part if cond holds and nil otherwise, for optional
// PushMulti/PushCall arguments.
func When(cond bool, part any) any {
	if !cond {
		return nil
	}
	return part
}

func isFalsy(part any) bool {
	switch p := part.(type) {
	case nil:
		return true
	case string:
		return p == ""
	case bool:
		return !p
	case func():
		return p == nil
	}
	return false
}
