package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Calculator is an interface for computing content checksums.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// Matches reports whether content hashes to sum.
	Matches(content []byte, sum string) bool
}

// SHA256 implements checksum calculation using SHA-256.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
// Returns by value to avoid heap allocation (SHA256 is a zero-size type).
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content as lowercase hex.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// Matches reports whether content hashes to sum.
func (c SHA256) Matches(content []byte, sum string) bool {
	return sum != "" && c.CalculateRaw(content) == sum
}

// Short returns the first 12 hex digits of sum, for log lines.
func Short(sum string) string {
	if len(sum) <= 12 {
		return sum
	}
	return sum[:12]
}

var _ Calculator = SHA256{}
