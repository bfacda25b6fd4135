package compiler

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"goa.design/clue/log"
	"golang.org/x/sync/errgroup"

	"vapor-go/packages/compiler/src/config"
	"vapor-go/packages/compiler/src/generate"
	"vapor-go/packages/compiler/src/ir"
	"vapor-go/packages/compiler/src/telemetry"
)

// irSuffixes are the file name endings of IR documents, longest first
var irSuffixes = []string{".ir.yaml", ".ir.json", ".ir.yml"}

// skippedDirs are never walked when discovering IR documents
var skippedDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
}

// Compiler turns the IR documents of a project into render modules
type Compiler struct {
	config      *config.ProjectConfig
	projectRoot string
	recorder    *telemetry.Recorder
}

// Output is what CompileFile produced for one document
type Output struct {
	Source  string
	JSPath  string
	MapPath string
	Result  *generate.CodegenResult
}

// NewCompiler creates a compiler for the project described by configPath
func NewCompiler(configPath string) (*Compiler, error) {
	cfg, err := config.ParseProjectConfig(configPath)
	if err != nil {
		return nil, err
	}
	return NewCompilerFromConfig(cfg, cfg.GetProjectRoot()), nil
}

// NewCompilerFromConfig creates a compiler rooted at projectRoot
func NewCompilerFromConfig(cfg *config.ProjectConfig, projectRoot string) *Compiler {
	return &Compiler{
		config:      cfg,
		projectRoot: projectRoot,
		recorder:    telemetry.NewRecorder(),
	}
}

// ProjectRoot returns the directory files are discovered under
func (c *Compiler) ProjectRoot() string {
	return c.projectRoot
}

// OutDir returns the absolute output directory
func (c *Compiler) OutDir() string {
	if filepath.IsAbs(c.config.OutDir) {
		return c.config.OutDir
	}
	return filepath.Join(c.projectRoot, c.config.OutDir)
}

// Compile compiles every discovered document. Failures do not stop the other
// files; all of them are returned joined.
func (c *Compiler) Compile(ctx context.Context) ([]*Output, error) {
	log.Info(ctx, telemetry.KV("msg", "starting compilation", "root", c.projectRoot)...)

	files, err := c.DiscoverFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to discover files: %w", err)
	}
	log.Info(ctx, telemetry.KV("msg", "discovered IR documents", "count", len(files))...)

	outputs := make([]*Output, len(files))
	errs := make([]error, len(files))

	limit := c.config.Concurrency
	if limit == 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	var g errgroup.Group
	g.SetLimit(limit)
	for i, file := range files {
		g.Go(func() error {
			out, err := c.CompileFile(ctx, file)
			if err != nil {
				log.Error(ctx, err, telemetry.KV("msg", "compilation failed", "file", file)...)
				errs[i] = err
				return nil
			}
			outputs[i] = out
			return nil
		})
	}
	_ = g.Wait()

	compiled := make([]*Output, 0, len(files))
	for _, out := range outputs {
		if out != nil {
			compiled = append(compiled, out)
		}
	}
	log.Info(ctx, telemetry.KV("msg", "compilation complete", "compiled", len(compiled), "total", len(files))...)
	return compiled, errors.Join(errs...)
}

// DiscoverFiles returns the IR documents under the project root matching the
// include patterns and none of the exclude patterns, sorted by path
func (c *Compiler) DiscoverFiles() ([]string, error) {
	outDir := c.OutDir()
	var files []string
	err := filepath.WalkDir(c.projectRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != c.projectRoot && (skippedDirs[d.Name()] || path == outDir) {
				return filepath.SkipDir
			}
			return nil
		}
		if irSuffix(path) == "" {
			return nil
		}
		rel, err := filepath.Rel(c.projectRoot, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if matchAny(c.config.Include, rel) && !matchAny(c.config.Exclude, rel) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CompileFile decodes one IR document, generates its render module and
// writes it below the output directory. A generator panic is returned as an
// error naming the file.
func (c *Compiler) CompileFile(ctx context.Context, path string) (out *Output, err error) {
	ctx, span := c.recorder.StartFile(ctx, path)
	defer func() {
		if err != nil {
			c.recorder.Failed(ctx, span, err)
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	root, err := ir.DecodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	rel, err := filepath.Rel(c.projectRoot, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	stem := strings.TrimSuffix(filepath.ToSlash(rel), irSuffix(rel))
	result, err := c.generate(root, stem+".vue")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	jsPath := filepath.Join(c.OutDir(), filepath.FromSlash(stem)+".js")
	if err := os.MkdirAll(filepath.Dir(jsPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	code := result.Code
	out = &Output{Source: path, JSPath: jsPath, Result: result}
	switch {
	case result.Map != nil && c.config.InlineSourceMap:
		comment, err := result.Map.ToJsComment()
		if err != nil {
			return nil, fmt.Errorf("%s: failed to encode source map: %w", path, err)
		}
		if comment != "" {
			code += "\n" + comment
		}
	case result.Map != nil:
		mapPath := jsPath + ".map"
		mapJSON, err := result.Map.Encode()
		if err != nil {
			return nil, fmt.Errorf("%s: failed to encode source map: %w", path, err)
		}
		if err := os.WriteFile(mapPath, mapJSON, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", mapPath, err)
		}
		code += "\n//# sourceMappingURL=" + filepath.Base(mapPath)
		out.MapPath = mapPath
	}
	if err := os.WriteFile(jsPath, []byte(code+"\n"), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", jsPath, err)
	}

	c.recorder.Succeeded(ctx, span, len(code), len(result.Helpers), len(result.VaporHelpers))
	log.Debug(ctx, telemetry.KV("msg", "compiled", "file", rel, "out", jsPath)...)
	return out, nil
}

// GenerateFile decodes and generates one document without writing anything
func (c *Compiler) GenerateFile(path string) (*generate.CodegenResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	root, err := ir.DecodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), irSuffix(path)) + ".vue"
	result, err := c.generate(root, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}

func (c *Compiler) generate(root *ir.RootIRNode, filename string) (result *generate.CodegenResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("code generation failed: %w", e)
				return
			}
			err = fmt.Errorf("code generation failed: %v", r)
		}
	}()
	return generate.Generate(root, c.config.CodegenOptions(filename)...), nil
}

func irSuffix(path string) string {
	for _, s := range irSuffixes {
		if strings.HasSuffix(path, s) {
			return s
		}
	}
	return ""
}

// matchAny reports whether rel matches one of the patterns. A leading `**/`
// matches any number of directories.
func matchAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if matchPattern(p, rel) {
			return true
		}
	}
	return false
}

func matchPattern(pattern, rel string) bool {
	pattern = filepath.ToSlash(pattern)
	if rest, ok := strings.CutPrefix(pattern, "**/"); ok {
		if matchPattern(rest, rel) {
			return true
		}
		parts := strings.Split(rel, "/")
		for i := 1; i < len(parts); i++ {
			if matchPattern(rest, strings.Join(parts[i:], "/")) {
				return true
			}
		}
		return false
	}
	ok, err := filepath.Match(pattern, rel)
	return err == nil && ok
}
