package report_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jspall/gsbench/internal/report"
)

func TestWritePlots(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plots")
	if err := report.WritePlots(dir, currentStats(), baselineStats()); err != nil {
		t.Fatalf("WritePlots: %v", err)
	}

	for _, name := range []string{"rosenbrock_benchmark.html", "ackley_benchmark.html"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("missing plot file %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("plot file %s is empty", name)
		}
	}
}

func TestWritePlotsWithoutBaseline(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plots")
	if err := report.WritePlots(dir, currentStats(), nil); err != nil {
		t.Fatalf("WritePlots: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "ackley_benchmark.html")); err != nil {
		t.Errorf("missing plot file: %v", err)
	}
}
