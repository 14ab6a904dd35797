// Package fsutil provides filesystem checks for hash inputs.
package fsutil

import (
	"fmt"
	"os"
)

// CheckInput verifies that path names a readable regular file and
// returns its file info. Directories and special files are rejected
// before any hashing starts; a missing path surfaces the OS not-found
// error unchanged.
func CheckInput(path string) (os.FileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat: %w", err)
	}
	if st.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", path)
	}
	if !st.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", path)
	}
	return st, nil
}
