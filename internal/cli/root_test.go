package cmd_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	cmd "github.com/htmlshape/htmlshape/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withStdin(t *testing.T, content string, fn func()) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	original := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = original }()

	go func() {
		_, _ = w.WriteString(content)
		_ = w.Close()
	}()
	fn()
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	original := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = original }()

	fn()
	_ = w.Close()
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	os.Stdout = original
	return buf.String()
}

func TestCleanCommand_ReadsStdinWritesStdout(t *testing.T) {
	cmd.ResetFlags()
	args := []string{"clean"}

	out := captureStdout(t, func() {
		withStdin(t, `<div class="x"><script>evil()</script><p>hi</p></div>`, func() {
			err := cmd.ExecuteArgsForTest(args)
			require.NoError(t, err)
		})
	})

	assert.Contains(t, out, "hi")
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "class=")
}

func TestCleanCommand_WritesToOutputDir(t *testing.T) {
	cmd.ResetFlags()
	dir := t.TempDir()
	args := []string{"clean", "--output-dir", dir}

	withStdin(t, `<p>hello</p>`, func() {
		err := cmd.ExecuteArgsForTest(args)
		require.NoError(t, err)
	})

	data, err := os.ReadFile(filepath.Join(dir, "clean.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestMainCommand_ReadsInputFile(t *testing.T) {
	cmd.ResetFlags()
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(inputPath, []byte(`<html><body><main><p>content</p></main></body></html>`), 0644))

	args := []string{"main", "--input", inputPath}
	out := captureStdout(t, func() {
		err := cmd.ExecuteArgsForTest(args)
		require.NoError(t, err)
	})
	assert.Contains(t, out, "content")
}

func TestChildrenCommand_EmptyInputProducesEmptyOutput(t *testing.T) {
	cmd.ResetFlags()
	args := []string{"children"}

	out := captureStdout(t, func() {
		withStdin(t, "", func() {
			err := cmd.ExecuteArgsForTest(args)
			require.NoError(t, err)
		})
	})
	assert.Equal(t, "\n", out)
}
