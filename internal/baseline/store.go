package baseline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jspall/gsbench/internal/stats"
)

// Save writes run statistics as pretty-printed JSON for use as a
// future comparison baseline.
func Save(path string, rs *stats.RunStats) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating baseline dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(rs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling stats: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads a previously saved baseline. A missing or malformed file
// is an error; comparison against a silently empty baseline would be
// meaningless.
func Load(path string) (*stats.RunStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading baseline %s: %w", path, err)
	}
	var rs stats.RunStats
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parsing baseline %s: %w", path, err)
	}
	if rs.Data == nil {
		return nil, fmt.Errorf("baseline %s: missing data field", path)
	}
	return &rs, nil
}

// CreateRunDir makes a timestamped directory for this run's artifacts
// and points a "latest" symlink at it.
func CreateRunDir(baseDir string) (string, error) {
	runsDir := filepath.Join(baseDir, "runs")
	stamp := time.Now().UTC().Format("2006-01-02T15-04-05")
	runDir := filepath.Join(runsDir, stamp)
	runDir, err := filepath.Abs(runDir)
	if err != nil {
		return "", fmt.Errorf("resolving run dir: %w", err)
	}
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", fmt.Errorf("creating run dir: %w", err)
	}
	latest := filepath.Join(baseDir, "latest")
	os.Remove(latest)
	if err := os.Symlink(runDir, latest); err != nil {
		return "", fmt.Errorf("creating latest symlink: %w", err)
	}
	return runDir, nil
}
