// Package hash implements the streaming SHA-256 digest computation.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// ChunkSize is how many bytes are read from the file per iteration.
// The file is never loaded fully into memory, so arbitrarily large
// inputs hash in constant space.
const ChunkSize = 1024

// FileSHA256 computes the SHA-256 digest of the file at path and
// returns it as a 64-character lowercase hex string. Any open or read
// failure aborts the computation and is returned with the underlying
// OS error preserved.
func FileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	return sumReader(f, ChunkSize)
}

// sumReader streams r through a SHA-256 accumulator in chunks of
// chunkSize bytes. Only the bytes actually read are fed to the
// accumulator, never stale buffer content from a previous read. The
// resulting digest is independent of the chunk size used.
func sumReader(r io.Reader, chunkSize int) (string, error) {
	h := sha256.New()
	buf := make([]byte, chunkSize)

	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read: %w", err)
		}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
