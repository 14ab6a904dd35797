package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunSuccess(t *testing.T) {
	path := writeInput(t, "test_content")
	var stdout, stderr bytes.Buffer

	code := Run(Config{File: path}, &stdout, &stderr, testLogger)
	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	assert.Empty(t, stderr.String())

	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Calculating hash for: "+path, lines[0])
	assert.Equal(t,
		"SHA-256 Hash: 594a1b494545be568120d28c43b3319e41d7b8e51a8112ebbece7b3275591a9a",
		lines[1])
}

func TestRunResultLineFormat(t *testing.T) {
	path := writeInput(t, "")
	var stdout, stderr bytes.Buffer

	code := Run(Config{File: path}, &stdout, &stderr, testLogger)
	require.Equal(t, 0, code)

	pattern := regexp.MustCompile(`(?m)^SHA-256 Hash: [0-9a-f]{64}$`)
	assert.True(t, pattern.MatchString(stdout.String()), "stdout %q", stdout.String())
	// The empty file hashes to the well-known empty-string digest.
	assert.Contains(t, stdout.String(),
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855")
}

func TestRunMissingFileFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := Run(Config{CLI: true}, &stdout, &stderr, testLogger)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "--file")
	assert.Empty(t, stdout.String())
}

func TestRunNonexistentPath(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := Run(Config{File: filepath.Join(t.TempDir(), "missing")}, &stdout, &stderr, testLogger)
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, stderr.String())
	assert.NotContains(t, stdout.String(), "SHA-256 Hash:")
}

func TestRunJSONOutput(t *testing.T) {
	path := writeInput(t, "test_content")
	var stdout, stderr bytes.Buffer

	code := Run(Config{File: path, JSON: true}, &stdout, &stderr, testLogger)
	require.Equal(t, 0, code, "stderr: %s", stderr.String())

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &decoded))
	assert.Equal(t, "SHA-256", decoded["algorithm"])
	assert.Equal(t,
		"594a1b494545be568120d28c43b3319e41d7b8e51a8112ebbece7b3275591a9a",
		decoded["digest"])
	assert.NotContains(t, stdout.String(), "Calculating hash for:")
}
