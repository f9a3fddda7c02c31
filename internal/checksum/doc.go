// Package checksum provides content hashing for scrub inputs and outputs.
//
// Checksums serve two purposes:
//
//   - Verbose runs report the input and output digests so a user can tell
//     whether a file actually changed.
//   - File writes are skipped when the destination already holds the exact
//     bytes being written, which keeps in-place runs on clean files from
//     touching their modification time.
//
// # Example Usage
//
//	calculator := checksum.New()
//	sum := calculator.CalculateRaw(fileContent)
//	if calculator.Matches(existing, sum) { ... }
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
