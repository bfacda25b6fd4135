// Package compiler is the code generation stage of the vapor template
// compiler. It turns the intermediate representation produced by the
// template parser and transforms into JavaScript render code that drives a
// fine-grained reactive runtime.
//
// <div class="callout is-critical">
//   <header>Unstable APIs</header>
//   <p>
//     All compiler apis are currently considered experimental and private!
//   </p>
// </div>
//
// Main sub-packages:
//
//   - src/ir: IR node types and the IR document decoder
//   - src/generate: the generator (CodegenContext, sub-generators, Generate)
//   - src/output: source map generation
//   - src/config: codegen options and the project configuration file
//   - src/util: positions, identifier helpers and invariant checks
//   - src/telemetry: spans and metrics for file compilation
//
// The facade in src (package compiler) discovers IR documents in a project,
// generates them concurrently and writes the render modules and their source
// maps.
//
// Generation entry point (from src/generate):
//
//   - Generate(root, opts...) -> CodegenResult{Code, Preamble, Map, Helpers, VaporHelpers}
//
// Options (from src/config):
//
//   - WithMode, WithInline, WithSourceMap, WithFilename, WithSSR
//   - WithExpressionPlugins, WithBindingMetadata
//   - WithRuntimeModuleName, WithVaporRuntimeModuleName
//
// This file only documents the main exports. For detailed API documentation, see the individual
// package documentation.
package compiler
