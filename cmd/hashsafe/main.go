// hashsafe calculates and displays the SHA-256 hash of a file, either
// directly on the command line or through an interactive terminal
// panel.
package main

import (
	"fmt"
	"os"

	"github.com/guillerpsanchez/HashSafe/internal/buildinfo"
	"github.com/guillerpsanchez/HashSafe/internal/cli"
	"github.com/guillerpsanchez/HashSafe/internal/config"
	"github.com/guillerpsanchez/HashSafe/internal/logging"
	"github.com/guillerpsanchez/HashSafe/internal/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 1) Load .env (if present), then read env config.
	config.LoadEnv()
	envCfg := config.FromEnv()

	// 2) Parse CLI flags.
	flags, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		fmt.Fprintln(os.Stderr, "run 'hashsafe --help' for usage")
		return 1
	}

	if flags.Help {
		cli.PrintUsage(os.Stdout)
		return 0
	}
	if flags.Version {
		fmt.Println(buildinfo.Get().String())
		return 0
	}

	// 3) Merge: flags override env.
	theme := firstNonEmpty(flags.Theme, envCfg.Theme)
	verbose := flags.Verbose || envCfg.Verbose
	logger := logging.New(os.Stderr, logging.Level(verbose))

	// --file or --cli means non-interactive mode; otherwise the panel.
	if flags.CLI || flags.File != "" {
		return cli.Run(flags, os.Stdout, os.Stderr, logger)
	}

	if err := tui.Run(tui.Config{
		Theme:    theme,
		StartDir: envCfg.StartDir,
		Logger:   logger,
	}); err != nil {
		fmt.Fprintln(os.Stderr, "error: starting panel:", err)
		return 1
	}
	return 0
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
