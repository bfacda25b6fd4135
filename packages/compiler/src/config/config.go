package config

import (
	"vapor-go/packages/compiler/src/ir"
)

// Mode selects the shape of the generated render code
type Mode string

const (
	// ModeFunction emits a top-level `export function render(_ctx)` declaration
	ModeFunction Mode = "function"
	// ModeInline emits an immediately invoked closure, for inlining into setup
	ModeInline Mode = "inline"
)

const (
	DefaultFilename               = "template.vue.html"
	DefaultRuntimeModuleName      = "vue"
	DefaultVaporRuntimeModuleName = "vue/vapor"
)

// CodegenOptions configures a single generation call
type CodegenOptions struct {
	Mode      Mode
	SourceMap bool
	Filename  string
	// SSR only tells callers which helper set to expect; generation is the same.
	SSR bool
	// ExpressionPlugins are passed through to the upstream expression parser.
	ExpressionPlugins      []string
	BindingMetadata        map[string]ir.BindingType
	RuntimeModuleName      string
	VaporRuntimeModuleName string
}

// NewCodegenOptions creates CodegenOptions with defaults, then applies opts
func NewCodegenOptions(opts ...CodegenOption) *CodegenOptions {
	options := &CodegenOptions{
		Mode:                   ModeFunction,
		SourceMap:              false,
		Filename:               DefaultFilename,
		SSR:                    false,
		ExpressionPlugins:      []string{},
		BindingMetadata:        map[string]ir.BindingType{},
		RuntimeModuleName:      DefaultRuntimeModuleName,
		VaporRuntimeModuleName: DefaultVaporRuntimeModuleName,
	}

	for _, opt := range opts {
		opt(options)
	}

	return options
}

// CodegenOption is a function that modifies CodegenOptions
type CodegenOption func(*CodegenOptions)

// WithMode sets the emission mode
func WithMode(mode Mode) CodegenOption {
	return func(o *CodegenOptions) {
		o.Mode = mode
	}
}

// WithInline is WithMode(ModeInline) when inline is true
func WithInline(inline bool) CodegenOption {
	return func(o *CodegenOptions) {
		if inline {
			o.Mode = ModeInline
		} else {
			o.Mode = ModeFunction
		}
	}
}

// WithSourceMap sets whether to produce a source map
func WithSourceMap(sourceMap bool) CodegenOption {
	return func(o *CodegenOptions) {
		o.SourceMap = sourceMap
	}
}

// WithFilename sets the file name mappings are attributed to
func WithFilename(filename string) CodegenOption {
	return func(o *CodegenOptions) {
		if filename != "" {
			o.Filename = filename
		}
	}
}

// WithSSR marks the compilation as server-side rendering
func WithSSR(ssr bool) CodegenOption {
	return func(o *CodegenOptions) {
		o.SSR = ssr
	}
}

// WithExpressionPlugins sets the expression-syntax extension list
func WithExpressionPlugins(plugins ...string) CodegenOption {
	return func(o *CodegenOptions) {
		o.ExpressionPlugins = append([]string{}, plugins...)
	}
}

// WithBindingMetadata sets how setup bindings are accessed in inline mode
func WithBindingMetadata(bindings map[string]ir.BindingType) CodegenOption {
	return func(o *CodegenOptions) {
		o.BindingMetadata = make(map[string]ir.BindingType, len(bindings))
		for k, v := range bindings {
			o.BindingMetadata[k] = v
		}
	}
}

// WithRuntimeModuleName sets the module core helpers are imported from
func WithRuntimeModuleName(name string) CodegenOption {
	return func(o *CodegenOptions) {
		if name != "" {
			o.RuntimeModuleName = name
		}
	}
}

// WithVaporRuntimeModuleName sets the module vapor helpers are imported from
func WithVaporRuntimeModuleName(name string) CodegenOption {
	return func(o *CodegenOptions) {
		if name != "" {
			o.VaporRuntimeModuleName = name
		}
	}
}
