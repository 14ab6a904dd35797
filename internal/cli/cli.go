// Package cli implements command-line parsing and non-interactive mode.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// Config holds the parsed command-line flags.
type Config struct {
	// File is the path to hash. Non-empty forces non-interactive mode.
	File string

	// CLI forces non-interactive mode even without --file (which is
	// then an invocation error).
	CLI bool

	// JSON prints the result as a single JSON object instead of the
	// two-line text output.
	JSON bool

	// Theme overrides the panel theme (dark, light or auto).
	Theme string

	// Verbose enables debug logging.
	Verbose bool

	// Version prints build metadata and exits.
	Version bool

	// Help prints usage and exits.
	Help bool
}

// ParseFlags parses args into a Config. Unknown flags and malformed
// values are returned as errors; --help is not an error.
func ParseFlags(args []string) (Config, error) {
	fs := pflag.NewFlagSet("hashsafe", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var cfg Config
	fs.StringVarP(&cfg.File, "file", "f", "", "path to the file to hash")
	fs.BoolVarP(&cfg.CLI, "cli", "c", false, "force command-line mode")
	fs.BoolVar(&cfg.JSON, "json", false, "print the result as a JSON object")
	fs.StringVar(&cfg.Theme, "theme", "", "panel theme: dark, light or auto")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging")
	fs.BoolVar(&cfg.Version, "version", false, "print version information and exit")
	fs.BoolVarP(&cfg.Help, "help", "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if remaining := fs.Args(); len(remaining) > 0 {
		return Config{}, fmt.Errorf("unexpected argument: %s", remaining[0])
	}

	return cfg, nil
}

// PrintUsage writes the usage text to w.
func PrintUsage(w io.Writer) {
	fmt.Fprint(w, `HashSafe calculates and displays the SHA-256 hash of a file.

Without flags it opens an interactive panel for picking a file. With
--file (or --cli) it hashes the file and prints the result directly.

Usage:
  hashsafe [flags]

Flags:
  -f, --file <path>   path to the file to hash (forces command-line mode)
  -c, --cli           force command-line mode
      --json          print the result as a JSON object
      --theme <name>  panel theme: dark, light or auto (default auto)
      --verbose       enable debug logging
      --version       print version information and exit
  -h, --help          show this help
`)
}
