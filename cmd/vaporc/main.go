package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"goa.design/clue/log"

	compiler "vapor-go/packages/compiler/src"
	"vapor-go/packages/compiler/src/config"
)

func usage(w io.Writer) {
	fmt.Fprintln(w, `vaporc - vapor render code generator
Usage: vaporc <command> [args]

Commands:
  compile [-p vapor.config.yaml] [-debug] [-json]   Compile every IR document of a project
  gen [-p vapor.config.yaml] <file>                  Generate one IR document to stdout
  help                                               Show help`)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 1
	}
	switch args[0] {
	case "help", "-h", "--help":
		usage(stdout)
		return 0
	case "compile":
		return runCompile(args[1:], stderr)
	case "gen":
		return runGen(args[1:], stdout, stderr)
	default:
		usage(stderr)
		return 1
	}
}

func runCompile(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	fs.SetOutput(stderr)
	project := fs.String("p", config.DefaultProjectConfigName, "Path to the project configuration file")
	debug := fs.Bool("debug", false, "Enable debug logs")
	jsonLogs := fs.Bool("json", false, "Log in JSON instead of the terminal format")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	ctx := logContext(stderr, *debug, *jsonLogs)
	comp, err := compiler.NewCompiler(*project)
	if err != nil {
		log.Error(ctx, err, log.KV{K: "msg", V: "failed to create compiler"})
		return 1
	}
	outputs, err := comp.Compile(ctx)
	if err != nil {
		log.Error(ctx, err, log.KV{K: "msg", V: "compilation failed"}, log.KV{K: "compiled", V: len(outputs)})
		return 1
	}
	return 0
}

func runGen(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	project := fs.String("p", "", "Path to the project configuration file")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		usage(stderr)
		return 1
	}

	ctx := logContext(stderr, false, false)
	var cfg *config.ProjectConfig
	if *project != "" {
		parsed, err := config.ParseProjectConfig(*project)
		if err != nil {
			log.Error(ctx, err, log.KV{K: "msg", V: "failed to read project config"})
			return 1
		}
		cfg = parsed
	} else {
		defaults, err := config.DecodeProjectConfig([]byte("{}"))
		if err != nil {
			log.Error(ctx, err)
			return 1
		}
		cfg = defaults
	}

	comp := compiler.NewCompilerFromConfig(cfg, cfg.GetProjectRoot())
	result, err := comp.GenerateFile(fs.Arg(0))
	if err != nil {
		log.Error(ctx, err, log.KV{K: "msg", V: "generation failed"})
		return 1
	}
	if result.Preamble != "" && cfg.Mode == config.ModeInline {
		fmt.Fprintln(stdout, result.Preamble)
	}
	fmt.Fprintln(stdout, result.Code)
	return 0
}

func logContext(w io.Writer, debug, jsonLogs bool) context.Context {
	format := log.FormatJSON
	if log.IsTerminal() && !jsonLogs {
		format = log.FormatTerminal
	}
	ctx := log.Context(context.Background(), log.WithFormat(format), log.WithOutput(w))
	if debug {
		ctx = log.Context(ctx, log.WithDebug())
		log.Debugf(ctx, "debug logs enabled")
	}
	return ctx
}
