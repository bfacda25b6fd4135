package ir

// IRNodeType distinguishes the kinds of IR nodes
type IRNodeType int

const (
	// IRNodeTypeRoot - The root of a compilation unit
	IRNodeTypeRoot IRNodeType = iota
	// IRNodeTypeBlockFunction - A block of nodes instantiated from one template (root or nested)
	IRNodeTypeBlockFunction
	// IRNodeTypeTemplateFactory - A literal markup string materialized once
	IRNodeTypeTemplateFactory
	// IRNodeTypeFragmentFactory - An empty fragment
	IRNodeTypeFragmentFactory

	// IRNodeTypeSetProp - Bind an expression to an attribute or DOM property
	IRNodeTypeSetProp
	// IRNodeTypeSetText - Set the text content of a node
	IRNodeTypeSetText
	// IRNodeTypeSetEvent - Attach an event listener
	IRNodeTypeSetEvent
	// IRNodeTypeSetHTML - Set the inner HTML of an element
	IRNodeTypeSetHTML
	// IRNodeTypeSetRef - Register a template ref
	IRNodeTypeSetRef
	// IRNodeTypeSetModelValue - The update side of a two-way binding
	IRNodeTypeSetModelValue
	// IRNodeTypeCreateTextNode - Create a standalone text node
	IRNodeTypeCreateTextNode
	// IRNodeTypeInsertNode - Insert nodes before an anchor
	IRNodeTypeInsertNode
	// IRNodeTypePrependNode - Prepend nodes to a parent
	IRNodeTypePrependNode
	// IRNodeTypeAppendNode - Append nodes to a parent
	IRNodeTypeAppendNode
	// IRNodeTypeIf - A conditional branch
	IRNodeTypeIf
	// IRNodeTypeWithDirective - Attach a custom directive to an element
	IRNodeTypeWithDirective
)

var irNodeTypeNames = map[IRNodeType]string{
	IRNodeTypeRoot:            "root",
	IRNodeTypeBlockFunction:   "block_function",
	IRNodeTypeTemplateFactory: "template",
	IRNodeTypeFragmentFactory: "fragment",
	IRNodeTypeSetProp:         "set_prop",
	IRNodeTypeSetText:         "set_text",
	IRNodeTypeSetEvent:        "set_event",
	IRNodeTypeSetHTML:         "set_html",
	IRNodeTypeSetRef:          "set_ref",
	IRNodeTypeSetModelValue:   "set_model_value",
	IRNodeTypeCreateTextNode:  "create_text_node",
	IRNodeTypeInsertNode:      "insert_node",
	IRNodeTypePrependNode:     "prepend_node",
	IRNodeTypeAppendNode:      "append_node",
	IRNodeTypeIf:              "if",
	IRNodeTypeWithDirective:   "with_directive",
}

// String returns the name used for the node type in IR documents
func (t IRNodeType) String() string {
	if name, ok := irNodeTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// OperationKinds lists every operation kind, in declaration order.
func OperationKinds() []IRNodeType {
	kinds := []IRNodeType{}
	for t := IRNodeTypeSetProp; t <= IRNodeTypeWithDirective; t++ {
		kinds = append(kinds, t)
	}
	return kinds
}

// DynamicFlag is a bitset describing how a template position is used by
// generated code
type DynamicFlag int

const (
	// DynamicNone - A static position
	DynamicNone DynamicFlag = 0
	// DynamicReferenced - Generated code needs a variable for this node
	DynamicReferenced DynamicFlag = 1 << 0
	// DynamicNonTemplate - The node is created at runtime and has no slot in the static template
	DynamicNonTemplate DynamicFlag = 1 << 1
	// DynamicInsert - The node is inserted before an anchor, which is what gets referenced
	DynamicInsert DynamicFlag = 1 << 2
)

// Has reports whether all bits of flag are set
func (f DynamicFlag) Has(flag DynamicFlag) bool {
	return f&flag == flag
}

// BindingType describes how a setup binding must be accessed from an
// inlined render function
type BindingType string

const (
	BindingData               BindingType = "data"
	BindingProps              BindingType = "props"
	BindingPropsAliased       BindingType = "props-aliased"
	BindingSetupLet           BindingType = "setup-let"
	BindingSetupConst         BindingType = "setup-const"
	BindingSetupReactiveConst BindingType = "setup-reactive-const"
	BindingSetupMaybeRef      BindingType = "setup-maybe-ref"
	BindingSetupRef           BindingType = "setup-ref"
	BindingOptions            BindingType = "options"
	BindingLiteralConst       BindingType = "literal-const"
)

// VaporHelper is a capability exported by the vapor runtime module
type VaporHelper = string

// Vapor runtime helpers referenced by generated code
const (
	HelperTemplate       VaporHelper = "template"
	HelperFragment       VaporHelper = "fragment"
	HelperChildren       VaporHelper = "children"
	HelperRenderEffect   VaporHelper = "renderEffect"
	HelperSetAttr        VaporHelper = "setAttr"
	HelperSetDOMProp     VaporHelper = "setDOMProp"
	HelperSetClass       VaporHelper = "setClass"
	HelperSetStyle       VaporHelper = "setStyle"
	HelperSetDynamicProp VaporHelper = "setDynamicProp"
	HelperSetText        VaporHelper = "setText"
	HelperSetHTML        VaporHelper = "setHtml"
	HelperSetRef         VaporHelper = "setRef"
	HelperOn             VaporHelper = "on"
	HelperWithModifiers  VaporHelper = "withModifiers"
	HelperWithKeys       VaporHelper = "withKeys"
	HelperCreateTextNode VaporHelper = "createTextNode"
	HelperInsert         VaporHelper = "insert"
	HelperPrepend        VaporHelper = "prepend"
	HelperAppend         VaporHelper = "append"
	HelperCreateIf       VaporHelper = "createIf"
	HelperWithDirectives VaporHelper = "withDirectives"
)

// Core runtime helpers referenced by generated code
const (
	HelperCamelize         = "camelize"
	HelperUnref            = "unref"
	HelperResolveDirective = "resolveDirective"
)
