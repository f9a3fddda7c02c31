package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/scrub/pkg/scrub"
)

func batchTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeInput(t, dir, "src/a.rs", "let a = 1; // a\n")
	writeInput(t, dir, "src/nested/b.rs", "/* b */\nlet b = 2;\n")
	writeInput(t, dir, "src/vendor/c.rs", "// vendored\n")
	return dir
}

func TestBatchCmd_ArgsValidation(t *testing.T) {
	err := batchCmd.Args(batchCmd, []string{})
	require.Error(t, err)
	assert.Equal(t, scrub.ExitUsageError, scrub.ExitCodeForError(err))
	assert.NoError(t, batchCmd.Args(batchCmd, []string{"a", "b"}))
}

func TestBatchCmd_OutDir(t *testing.T) {
	dir := batchTree(t)
	out := filepath.Join(dir, "clean")

	stdout, _, err := executeCommand(t, "batch", filepath.Join(dir, "src", "**", "*.rs"), "--out-dir", out, "--exclude", "vendor/**")
	require.NoError(t, err)

	assert.Equal(t, "let a = 1; \n", readFile(t, filepath.Join(out, "a.rs")))
	assert.Equal(t, "\nlet b = 2;\n", readFile(t, filepath.Join(out, "nested", "b.rs")))
	_, statErr := os.Stat(filepath.Join(out, "vendor", "c.rs"))
	assert.True(t, os.IsNotExist(statErr), "excluded file scrubbed")

	assert.Contains(t, stdout, "written")
	assert.Contains(t, stdout, "2 file(s)")
}

func TestBatchCmd_InPlaceKeepsCleanFilesUntouched(t *testing.T) {
	dir := batchTree(t)
	pattern := filepath.Join(dir, "src", "**", "*.rs")

	_, _, err := executeCommand(t, "batch", pattern, "--in-place", "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t, "let a = 1; \n", readFile(t, filepath.Join(dir, "src", "a.rs")))

	target := filepath.Join(dir, "src", "a.rs")
	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(target, old, old))

	stdout, _, err := executeCommand(t, "batch", pattern, "--in-place")
	require.NoError(t, err)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(old), "clean file rewritten")
	assert.Contains(t, stdout, "clean")
}

func TestBatchCmd_DryRun(t *testing.T) {
	dir := batchTree(t)
	out := filepath.Join(dir, "clean")

	stdout, _, err := executeCommand(t, "batch", filepath.Join(dir, "src", "**", "*.rs"), "--out-dir", out, "-d", "--report", "summary")
	require.NoError(t, err)

	assert.Contains(t, stdout, "dry run, nothing written")
	assert.Contains(t, stdout, "3 file(s)")
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestBatchCmd_NeedsDestination(t *testing.T) {
	dir := batchTree(t)

	_, _, err := executeCommand(t, "batch", filepath.Join(dir, "src", "*.rs"))
	require.Error(t, err)
	assert.Equal(t, scrub.ExitConfigError, scrub.ExitCodeForError(err))
}

func TestBatchCmd_FailureKeepsOtherOutputs(t *testing.T) {
	dir := batchTree(t)
	writeInput(t, dir, "src/bad.rs", "/* open\n")
	out := filepath.Join(dir, "clean")

	stdout, _, err := executeCommand(t, "batch", filepath.Join(dir, "src", "*.rs"), "--out-dir", out)
	require.Error(t, err)
	assert.Equal(t, scrub.ExitUnterminated, scrub.ExitCodeForError(err))

	assert.Equal(t, "let a = 1; \n", readFile(t, filepath.Join(out, "a.rs")))
	_, statErr := os.Stat(filepath.Join(out, "bad.rs"))
	assert.True(t, os.IsNotExist(statErr))
	assert.Contains(t, stdout, "failed")
}

func TestBatchCmd_NoMatches(t *testing.T) {
	_, _, err := executeCommand(t, "batch", filepath.Join(t.TempDir(), "*.rs"), "--in-place")
	require.Error(t, err)
	assert.Equal(t, scrub.ExitInputNotFound, scrub.ExitCodeForError(err))
}
