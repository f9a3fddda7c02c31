// Package files groups file-related functionality into sub-packages.
//
//   - filesystem: Filesystem abstraction (OS and in-memory) with atomic writes
//     and doublestar glob expansion
//
// # Usage
//
//	import "github.com/vvka-141/scrub/internal/files/filesystem"
//
//	fsys := filesystem.NewOSFileSystem()
//	matches, err := fsys.Glob("src/**/*.rs")
package files
