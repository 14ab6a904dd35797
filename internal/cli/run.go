package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/guillerpsanchez/HashSafe/internal/fsutil"
	"github.com/guillerpsanchez/HashSafe/internal/hash"
	"github.com/guillerpsanchez/HashSafe/internal/report"
)

// Run executes non-interactive mode and returns the process exit code.
// On success it prints the status line and the result line (or a JSON
// object with --json) to stdout. All failures go to stderr and exit 1.
func Run(cfg Config, stdout, stderr io.Writer, logger *slog.Logger) int {
	if cfg.File == "" {
		fmt.Fprintln(stderr, "error: command-line mode requires a file, use --file <path>")
		return 1
	}

	info, err := fsutil.CheckInput(cfg.File)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	if !cfg.JSON {
		fmt.Fprintln(stdout, report.StatusLine(cfg.File))
	}

	logger.Debug("hashing file", "path", cfg.File, "size_bytes", info.Size())
	start := time.Now()
	digest, err := hash.FileSHA256(cfg.File)
	if err != nil {
		fmt.Fprintln(stderr, "error: calculating hash:", err)
		return 1
	}
	result := report.New(cfg.File, digest, info.Size(), time.Since(start))
	logger.Debug("hash complete", "digest", digest, "elapsed", result.Elapsed)

	if cfg.JSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintln(stderr, "error: writing json:", err)
			return 1
		}
		return 0
	}

	fmt.Fprintln(stdout, result.Line())
	return 0
}
