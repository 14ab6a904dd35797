// Package buildinfo provides build metadata for the hashsafe binary.
package buildinfo

import (
	"fmt"
	"runtime"
)

var (
	// Version is injected at build time via -ldflags.
	Version string
	// Commit is the source control revision, injected at build time.
	Commit string
	// Date is the build timestamp, injected at build time.
	Date string
)

// Info contains normalized build metadata.
type Info struct {
	Version string
	Commit  string
	Date    string
	Go      string
	OS      string
	Arch    string
}

// Get returns build metadata with defaults when build flags were not set.
func Get() Info {
	version := Version
	if version == "" {
		version = "dev"
	}
	commit := Commit
	if commit == "" {
		commit = "unknown"
	}
	date := Date
	if date == "" {
		date = "unknown"
	}
	return Info{
		Version: version,
		Commit:  commit,
		Date:    date,
		Go:      runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
}

// String formats build metadata for --version output.
func (i Info) String() string {
	return fmt.Sprintf("HashSafe %s (commit %s, built %s, %s %s/%s)",
		i.Version, i.Commit, i.Date, i.Go, i.OS, i.Arch)
}
