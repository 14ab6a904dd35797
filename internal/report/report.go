// Package report formats hash results for display and tooling.
package report

import (
	"time"
)

// Algorithm is the only digest algorithm the tool computes.
const Algorithm = "SHA-256"

// Result is a completed hash computation.
type Result struct {
	Path      string        `json:"path"`
	Algorithm string        `json:"algorithm"`
	Digest    string        `json:"digest"`
	SizeBytes int64         `json:"size_bytes"`
	Elapsed   time.Duration `json:"elapsed_ns"`
}

// New builds a Result for a finished computation.
func New(path, digest string, sizeBytes int64, elapsed time.Duration) Result {
	return Result{
		Path:      path,
		Algorithm: Algorithm,
		Digest:    digest,
		SizeBytes: sizeBytes,
		Elapsed:   elapsed,
	}
}

// Line renders the result line. The exact prefix and bare digest are a
// compatibility contract for tooling that parses the output; nothing
// else may appear on this line.
func (r Result) Line() string {
	return "SHA-256 Hash: " + r.Digest
}

// StatusLine renders the line printed before hashing starts.
func StatusLine(path string) string {
	return "Calculating hash for: " + path
}
