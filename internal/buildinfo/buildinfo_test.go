package buildinfo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDefaults(t *testing.T) {
	prevVersion, prevCommit, prevDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = prevVersion, prevCommit, prevDate })
	Version, Commit, Date = "", "", ""

	info := Get()
	assert.Equal(t, "dev", info.Version)
	assert.Equal(t, "unknown", info.Commit)
	assert.Equal(t, "unknown", info.Date)
	assert.NotEmpty(t, info.Go)
}

func TestStringContainsInjectedValues(t *testing.T) {
	prevVersion, prevCommit, prevDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = prevVersion, prevCommit, prevDate })
	Version, Commit, Date = "v1.2.3", "deadbeef", "2026-08-01"

	out := Get().String()
	assert.True(t, strings.HasPrefix(out, "HashSafe v1.2.3"), "output %q", out)
	assert.Contains(t, out, "deadbeef")
}
