// Package filesystem provides the filesystem abstraction used by the scrub pipeline.
//
// The interface covers exactly what scrubbing needs: reading an input, checking
// that a path exists, writing an output atomically, and expanding batch glob
// patterns. Keeping it this narrow lets services run against an in-memory
// implementation in tests.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
//
// Missing paths are reported with errors that satisfy errors.Is(err, fs.ErrNotExist)
// in both implementations.
package filesystem
