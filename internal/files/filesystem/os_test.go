package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystem_ReadFile(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "main.rs")
	expected := "fn main() {} // entry\n"
	require.NoError(t, os.WriteFile(filePath, []byte(expected), 0644))

	fsys := NewOSFileSystem()

	data, err := fsys.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, expected, string(data))
}

func TestOSFileSystem_ReadFile_Nonexistent(t *testing.T) {
	fsys := NewOSFileSystem()

	_, err := fsys.ReadFile(filepath.Join(t.TempDir(), "nope.rs"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestOSFileSystem_Stat(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "lib.rs")
	require.NoError(t, os.WriteFile(filePath, []byte("x"), 0644))

	fsys := NewOSFileSystem()

	info, err := fsys.Stat(filePath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, "lib.rs", info.Name())

	info, err = fsys.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = fsys.Stat(filepath.Join(dir, "nope"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestOSFileSystem_WriteFile_CreatesAndReplaces(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "nested", "out", "main.rs")
	fsys := NewOSFileSystem()

	require.NoError(t, fsys.WriteFile(target, []byte("first"), 0600))
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	require.NoError(t, fsys.WriteFile(target, []byte("second"), 0644))
	data, err = os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestOSFileSystem_WriteFile_LeavesNoTemporaryFiles(t *testing.T) {
	dir := t.TempDir()
	fsys := NewOSFileSystem()

	require.NoError(t, fsys.WriteFile(filepath.Join(dir, "a.rs"), []byte("a"), 0644))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.rs", entries[0].Name())
}

func TestOSFileSystem_WriteFile_FailureKeepsOriginal(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	// A directory at the destination makes the final rename fail.
	require.NoError(t, os.Mkdir(target, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), []byte("k"), 0644))

	fsys := NewOSFileSystem()
	err := fsys.WriteFile(target, []byte("data"), 0644)
	require.Error(t, err)

	info, statErr := os.Stat(target)
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "temporary file %s left behind", e.Name())
	}
}

func TestOSFileSystem_Glob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "util"), 0755))
	for _, name := range []string{"src/main.rs", "src/util/io.rs", "src/util/notes.txt", "README.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, filepath.FromSlash(name)), []byte("x"), 0644))
	}

	fsys := NewOSFileSystem()

	matches, err := fsys.Glob(filepath.Join(dir, "src", "**", "*.rs"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "src", "main.rs"),
		filepath.Join(dir, "src", "util", "io.rs"),
	}, matches)

	matches, err = fsys.Glob(filepath.Join(dir, "src", "**"))
	require.NoError(t, err)
	assert.Len(t, matches, 3, "directories are not returned")
}

func TestOSFileSystem_Glob_BadPattern(t *testing.T) {
	fsys := NewOSFileSystem()

	_, err := fsys.Glob("src/[")
	assert.Error(t, err)
}
