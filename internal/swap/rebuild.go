package swap

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Rebuild runs the configured build command in dir so the next
// measurement phase picks up the swapped sources. A failure is
// returned for the caller to surface as a warning; a stale artifact
// still produces a runnable phase-2 measurement.
func Rebuild(dir string, argv []string) error {
	if len(argv) == 0 {
		return nil
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("rebuild %q: %s: %w", strings.Join(argv, " "), bytes.TrimSpace(out), err)
	}
	return nil
}
