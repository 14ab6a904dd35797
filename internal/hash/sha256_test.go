package hash

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTemp creates a file with the given content and returns its path.
func writeTemp(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestFileSHA256KnownVectors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "empty file",
			content: "",
			want:    "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:    "abc",
			content: "abc",
			want:    "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
		{
			name:    "test_content",
			content: "test_content",
			want:    "594a1b494545be568120d28c43b3319e41d7b8e51a8112ebbece7b3275591a9a",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FileSHA256(writeTemp(t, []byte(tt.content)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileSHA256MatchesReference(t *testing.T) {
	// Content larger than ChunkSize and deliberately not a multiple of
	// it, so the final read returns a short count.
	content := bytes.Repeat([]byte("0123456789abcdef"), 700) // 11200 bytes
	content = append(content, 'x')

	want := sha256.Sum256(content)

	got, err := FileSHA256(writeTemp(t, content))
	require.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(want[:]), got)
}

func TestFileSHA256Deterministic(t *testing.T) {
	path := writeTemp(t, []byte("same bytes, same digest"))

	first, err := FileSHA256(path)
	require.NoError(t, err)
	second, err := FileSHA256(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFileSHA256MissingFile(t *testing.T) {
	_, err := FileSHA256(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestSumReaderChunkSizeIndependence(t *testing.T) {
	content := bytes.Repeat([]byte("re-chunking must not change the digest "), 40)

	reference, err := sumReader(bytes.NewReader(content), ChunkSize)
	require.NoError(t, err)

	for _, size := range []int{1, 7, 1024, 1 << 20} {
		got, err := sumReader(bytes.NewReader(content), size)
		require.NoError(t, err)
		assert.Equal(t, reference, got, "chunk size %d", size)
	}
}

// failingReader returns some data and then an error, simulating a read
// failure partway through a file.
type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestSumReaderMidStreamFailure(t *testing.T) {
	readErr := errors.New("device gone")
	_, err := sumReader(&failingReader{data: []byte("partial"), err: readErr}, 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, readErr))
}
