package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"vapor-go/packages/compiler/src/ir"
)

// DefaultProjectConfigName is looked up in the working directory when no
// config path is given
const DefaultProjectConfigName = "vapor.config.yaml"

// ProjectConfig is the on-disk project configuration. It is read with a YAML
// decoder, so JSON files work too.
type ProjectConfig struct {
	Include                []string                  `yaml:"include"`
	Exclude                []string                  `yaml:"exclude"`
	OutDir                 string                    `yaml:"outDir"`
	Mode                   Mode                      `yaml:"mode"`
	SourceMap              bool                      `yaml:"sourceMap"`
	InlineSourceMap        bool                      `yaml:"inlineSourceMap"`
	SSR                    bool                      `yaml:"ssr"`
	RuntimeModuleName      string                    `yaml:"runtimeModuleName"`
	VaporRuntimeModuleName string                    `yaml:"vaporRuntimeModuleName"`
	ExpressionPlugins      []string                  `yaml:"expressionPlugins"`
	BindingMetadata        map[string]ir.BindingType `yaml:"bindingMetadata"`
	Concurrency            int                       `yaml:"concurrency"`

	path string
}

// ParseProjectConfig reads and parses a project config file
func ParseProjectConfig(path string) (*ProjectConfig, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read project config: %w", err)
	}

	cfg, err := DecodeProjectConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse project config %s: %w", absPath, err)
	}
	cfg.path = absPath
	return cfg, nil
}

// DecodeProjectConfig parses config file contents and fills in defaults
func DecodeProjectConfig(data []byte) (*ProjectConfig, error) {
	cfg := &ProjectConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	switch cfg.Mode {
	case "":
		cfg.Mode = ModeFunction
	case ModeFunction, ModeInline:
	default:
		return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
	}
	if len(cfg.Include) == 0 {
		cfg.Include = []string{"**/*.ir.json", "**/*.ir.yaml", "**/*.ir.yml"}
	}
	if cfg.OutDir == "" {
		cfg.OutDir = filepath.Join("dist", "vapor")
	}
	if cfg.Concurrency < 0 {
		return nil, fmt.Errorf("concurrency must not be negative, got %d", cfg.Concurrency)
	}
	return cfg, nil
}

// GetProjectRoot returns the directory containing the config file
func (c *ProjectConfig) GetProjectRoot() string {
	if c.path == "" {
		wd, _ := os.Getwd()
		return wd
	}
	return filepath.Dir(c.path)
}

// CodegenOptions converts the project settings into per-file options.
func (c *ProjectConfig) CodegenOptions(filename string) []CodegenOption {
	return []CodegenOption{
		WithMode(c.Mode),
		WithSourceMap(c.SourceMap || c.InlineSourceMap),
		WithFilename(filename),
		WithSSR(c.SSR),
		WithExpressionPlugins(c.ExpressionPlugins...),
		WithBindingMetadata(c.BindingMetadata),
		WithRuntimeModuleName(c.RuntimeModuleName),
		WithVaporRuntimeModuleName(c.VaporRuntimeModuleName),
	}
}
