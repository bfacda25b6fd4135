package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"vapor-go/packages/compiler/src/config"
	"vapor-go/packages/compiler/src/ir"
)

func TestCodegenOptions(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		want := &config.CodegenOptions{
			Mode:                   config.ModeFunction,
			Filename:               config.DefaultFilename,
			ExpressionPlugins:      []string{},
			BindingMetadata:        map[string]ir.BindingType{},
			RuntimeModuleName:      "vue",
			VaporRuntimeModuleName: "vue/vapor",
		}
		if diff := cmp.Diff(want, config.NewCodegenOptions()); diff != "" {
			t.Errorf("options mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should apply options in order", func(t *testing.T) {
		bindings := map[string]ir.BindingType{"count": ir.BindingSetupRef}
		opts := config.NewCodegenOptions(
			config.WithInline(true),
			config.WithSourceMap(true),
			config.WithFilename("App.vue"),
			config.WithBindingMetadata(bindings),
			config.WithRuntimeModuleName("@vue/runtime-dom"),
			config.WithVaporRuntimeModuleName(""),
		)
		require.Equal(t, config.ModeInline, opts.Mode)
		require.True(t, opts.SourceMap)
		require.Equal(t, "App.vue", opts.Filename)
		require.Equal(t, "@vue/runtime-dom", opts.RuntimeModuleName)
		// empty names keep the default
		require.Equal(t, config.DefaultVaporRuntimeModuleName, opts.VaporRuntimeModuleName)

		bindings["other"] = ir.BindingProps
		require.NotContains(t, opts.BindingMetadata, "other", "binding metadata must be copied")
	})

	t.Run("should switch back to function mode", func(t *testing.T) {
		opts := config.NewCodegenOptions(config.WithInline(true), config.WithMode(config.ModeFunction))
		require.Equal(t, config.ModeFunction, opts.Mode)
	})
}

func TestProjectConfig(t *testing.T) {
	t.Run("should fill in defaults", func(t *testing.T) {
		cfg, err := config.DecodeProjectConfig([]byte("{}"))
		require.NoError(t, err)
		require.Equal(t, config.ModeFunction, cfg.Mode)
		require.Equal(t, []string{"**/*.ir.json", "**/*.ir.yaml", "**/*.ir.yml"}, cfg.Include)
		require.Equal(t, filepath.Join("dist", "vapor"), cfg.OutDir)
	})

	t.Run("should decode YAML", func(t *testing.T) {
		data := []byte(`
include: ["src/**/*.ir.yaml"]
exclude: ["src/legacy/*"]
outDir: out
mode: inline
sourceMap: true
runtimeModuleName: "@vue/runtime-dom"
bindingMetadata:
  count: setup-ref
  msg: props
concurrency: 2
`)
		cfg, err := config.DecodeProjectConfig(data)
		require.NoError(t, err)
		require.Equal(t, config.ModeInline, cfg.Mode)
		require.Equal(t, "out", cfg.OutDir)
		require.Equal(t, 2, cfg.Concurrency)
		require.Equal(t, map[string]ir.BindingType{"count": ir.BindingSetupRef, "msg": ir.BindingProps}, cfg.BindingMetadata)

		opts := config.NewCodegenOptions(cfg.CodegenOptions("App.vue")...)
		require.Equal(t, config.ModeInline, opts.Mode)
		require.True(t, opts.SourceMap)
		require.Equal(t, "App.vue", opts.Filename)
		require.Equal(t, "@vue/runtime-dom", opts.RuntimeModuleName)
		require.Equal(t, config.DefaultVaporRuntimeModuleName, opts.VaporRuntimeModuleName)
	})

	t.Run("should produce a source map when it is inlined", func(t *testing.T) {
		cfg, err := config.DecodeProjectConfig([]byte("inlineSourceMap: true"))
		require.NoError(t, err)
		require.False(t, cfg.SourceMap)
		require.True(t, config.NewCodegenOptions(cfg.CodegenOptions("App.vue")...).SourceMap)
	})

	t.Run("should decode JSON", func(t *testing.T) {
		cfg, err := config.DecodeProjectConfig([]byte(`{"mode": "function", "outDir": "build"}`))
		require.NoError(t, err)
		require.Equal(t, "build", cfg.OutDir)
	})

	t.Run("should reject an unknown mode", func(t *testing.T) {
		_, err := config.DecodeProjectConfig([]byte("mode: module"))
		require.ErrorContains(t, err, `unknown mode "module"`)
	})

	t.Run("should reject a negative concurrency", func(t *testing.T) {
		_, err := config.DecodeProjectConfig([]byte("concurrency: -1"))
		require.Error(t, err)
	})

	t.Run("should resolve the project root from the file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, config.DefaultProjectConfigName)
		require.NoError(t, os.WriteFile(path, []byte("sourceMap: true\n"), 0o644))

		cfg, err := config.ParseProjectConfig(path)
		require.NoError(t, err)
		require.True(t, cfg.SourceMap)
		require.Equal(t, dir, cfg.GetProjectRoot())
	})

	t.Run("should wrap read errors", func(t *testing.T) {
		_, err := config.ParseProjectConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
