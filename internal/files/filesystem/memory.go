package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrInjectedWriteFailure is returned by MemoryFileSystem.WriteFile for paths
// registered with FailWritesTo.
var ErrInjectedWriteFailure = errors.New("injected write failure")

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryFile struct {
	absPath string
	relPath string
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Safe for concurrent use by multiple goroutines.
type MemoryFileSystem struct {
	mu         sync.RWMutex
	files      map[string]*memoryFile // map of absolute path -> file
	root       string                 // root directory path
	writes     int
	failWrites map[string]bool
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files:      make(map[string]*memoryFile),
		root:       root,
		failWrites: make(map[string]bool),
	}

	mfs.files[root] = &memoryFile{
		absPath: root,
		relPath: ".",
		info: &memoryFileInfo{
			name:    path.Base(root),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}

	return mfs
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(path string, content string) {
	mfs.AddFileWithTime(path, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.put(filePath, []byte(content), DefaultFileMode, modTime)
}

// FailWritesTo makes every later WriteFile to filePath fail with ErrInjectedWriteFailure.
func (mfs *MemoryFileSystem) FailWritesTo(filePath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.failWrites[mfs.resolve(filePath)] = true
}

// Writes returns the number of successful WriteFile calls.
func (mfs *MemoryFileSystem) Writes() int {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	return mfs.writes
}

// Exists reports whether filePath holds a file or directory.
func (mfs *MemoryFileSystem) Exists(filePath string) bool {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	_, ok := mfs.files[mfs.resolve(filePath)]
	return ok
}

// resolve maps filePath to its absolute virtual path.
func (mfs *MemoryFileSystem) resolve(filePath string) string {
	filePath = filepath.ToSlash(filePath)
	if filePath == "" || filePath == "." {
		return mfs.root
	}
	if path.IsAbs(filePath) {
		return path.Clean(filePath)
	}
	return path.Join(mfs.root, filePath)
}

func (mfs *MemoryFileSystem) put(filePath string, content []byte, mode fs.FileMode, modTime time.Time) {
	absPath := mfs.resolve(filePath)

	relPath, err := filepath.Rel(mfs.root, absPath)
	if err != nil {
		relPath = filePath
	}

	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		relPath: filepath.ToSlash(relPath),
		content: content,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    mode,
			modTime: modTime,
		},
	}

	mfs.ensureDirectoriesExist(absPath)
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}
	if _, exists := mfs.files[dir]; exists {
		return
	}

	mfs.files[dir] = &memoryFile{
		absPath: dir,
		relPath: strings.TrimPrefix(dir, mfs.root+"/"),
		info: &memoryFileInfo{
			name:    path.Base(dir),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}

	mfs.ensureDirectoriesExist(dir)
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	file, exists := mfs.files[mfs.resolve(filePath)]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	if file.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	out := make([]byte, len(file.content))
	copy(out, file.content)
	return out, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	file, exists := mfs.files[mfs.resolve(statPath)]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: fs.ErrNotExist}
	}
	info := *file.info
	return &info, nil
}

// WriteFile implements FileSystemProvider.WriteFile
func (mfs *MemoryFileSystem) WriteFile(filePath string, data []byte, perm FileMode) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(filePath)
	if mfs.failWrites[absPath] {
		return &fs.PathError{Op: "write", Path: filePath, Err: ErrInjectedWriteFailure}
	}
	if existing, ok := mfs.files[absPath]; ok && existing.info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	content := make([]byte, len(data))
	copy(content, data)
	mfs.put(filePath, content, perm, time.Now())
	mfs.writes++
	return nil
}

// Glob implements FileSystemProvider.Glob. Relative patterns match paths
// relative to the root and return relative paths.
func (mfs *MemoryFileSystem) Glob(pattern string) ([]string, error) {
	pattern = filepath.ToSlash(pattern)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	absolute := path.IsAbs(pattern)

	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	var matches []string
	for _, file := range mfs.files {
		if file.info.IsDir() {
			continue
		}
		candidate := file.relPath
		if absolute {
			candidate = file.absPath
		}
		ok, err := doublestar.Match(pattern, candidate)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		if ok {
			matches = append(matches, candidate)
		}
	}

	sort.Strings(matches)
	return matches, nil
}

var (
	_ FileSystemProvider = (*MemoryFileSystem)(nil)
	_ FileSystemProvider = (*OSFileSystem)(nil)
)
