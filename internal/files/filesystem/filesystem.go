package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// FileMode is an alias for fs.FileMode from the standard library.
type FileMode = fs.FileMode

// DefaultFileMode is used for outputs that have no existing file to inherit a mode from.
const DefaultFileMode FileMode = 0644

// FileSystemProvider abstracts the filesystem operations of a scrub run.
type FileSystemProvider interface {
	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)

	// WriteFile replaces the file at path with data. The write is atomic: on
	// failure the previous content (or absence) of path is left untouched.
	// Missing parent directories are created.
	WriteFile(path string, data []byte, perm FileMode) error

	// Glob returns the regular files matching a doublestar pattern
	// (supports ** for any number of directories), sorted by path.
	Glob(pattern string) ([]string, error)
}
