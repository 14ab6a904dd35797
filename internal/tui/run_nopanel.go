//go:build nopanel

package tui

import "errors"

// Run reports that this build has no interactive panel. Binaries built
// with the nopanel tag only support command-line mode.
func Run(cfg Config) error {
	return errors.New("this build has no interactive panel; use --file to hash a file in command-line mode")
}
