package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const document = `
template:
  - type: template
    template: "<div></div>"
dynamic: { id: 0 }
operation:
  - type: set_text
    element: 0
    value: hello
`

func TestRun(t *testing.T) {
	t.Run("should print usage", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.Equal(t, 0, run([]string{"help"}, &stdout, &stderr))
		require.Contains(t, stdout.String(), "Usage: vaporc")
		require.Empty(t, stderr.String())
	})

	t.Run("should reject a missing or unknown command", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.Equal(t, 1, run(nil, &stdout, &stderr))
		require.Equal(t, 1, run([]string{"build"}, &stdout, &stderr))
		require.Empty(t, stdout.String())
		require.Contains(t, stderr.String(), "Usage: vaporc")
	})

	t.Run("should generate one document to stdout", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "App.ir.yaml")
		require.NoError(t, os.WriteFile(path, []byte(document), 0o644))

		var stdout, stderr bytes.Buffer
		require.Equal(t, 0, run([]string{"gen", path}, &stdout, &stderr))
		require.True(t, strings.HasPrefix(stdout.String(), "import { template as _template, setText as _setText } from 'vue/vapor';\n"))
		require.Contains(t, stdout.String(), "  _setText(n0, undefined, hello)\n")
	})

	t.Run("should print the preamble before inline code", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "App.ir.yaml")
		require.NoError(t, os.WriteFile(path, []byte(document), 0o644))
		project := filepath.Join(dir, "vapor.config.yaml")
		require.NoError(t, os.WriteFile(project, []byte("mode: inline\n"), 0o644))

		var stdout, stderr bytes.Buffer
		require.Equal(t, 0, run([]string{"gen", "-p", project, path}, &stdout, &stderr))
		want := "import { template as _template, setText as _setText } from 'vue/vapor';\n" +
			"(() => {\n" +
			"  const t0 = _template(\"<div></div>\")\n" +
			"  const n0 = t0()\n" +
			"  _setText(n0, undefined, hello)\n" +
			"  return n0\n" +
			"})()\n"
		require.Equal(t, want, stdout.String())
	})

	t.Run("should fail gen without exactly one file", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.Equal(t, 1, run([]string{"gen"}, &stdout, &stderr))
		require.Equal(t, 1, run([]string{"gen", "a", "b"}, &stdout, &stderr))
	})

	t.Run("should compile a project", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "App.ir.yaml"), []byte(document), 0o644))
		project := filepath.Join(dir, "vapor.config.yaml")
		require.NoError(t, os.WriteFile(project, []byte("outDir: out\n"), 0o644))

		var stderr bytes.Buffer
		require.Equal(t, 0, run([]string{"compile", "-p", project, "-json"}, &bytes.Buffer{}, &stderr))
		_, err := os.Stat(filepath.Join(dir, "out", "App.js"))
		require.NoError(t, err)
	})

	t.Run("should fail compile on a missing project", func(t *testing.T) {
		var stderr bytes.Buffer
		code := run([]string{"compile", "-p", filepath.Join(t.TempDir(), "missing.yaml")}, &bytes.Buffer{}, &stderr)
		require.Equal(t, 1, code)
		require.NotEmpty(t, stderr.String())
	})
}
