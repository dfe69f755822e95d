package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jspall/gsbench/internal/stats"
)

// Row is one (problem, dimension) line of the comparison summary.
// Baseline fields are nil when no baseline was loaded or the baseline
// has no point at the same index.
type Row struct {
	Problem             string   `json:"problem"`
	Dim                 int      `json:"dim"`
	SuccessRate         float64  `json:"success_rate"`
	AvgRuntimeSec       float64  `json:"avg_runtime_sec"`
	AvgBestObj          float64  `json:"avg_best_obj"`
	BaselineSuccessRate *float64 `json:"baseline_success_rate,omitempty"`
	BaselineRuntimeSec  *float64 `json:"baseline_runtime_sec,omitempty"`
	RuntimeDeltaPct     *float64 `json:"runtime_delta_pct,omitempty"`
}

// Summarize flattens current stats (and an optional baseline) into
// rows, problems sorted by name, dimensions in test order. Baseline
// points are matched by index within each problem.
func Summarize(cur, base *stats.RunStats) []Row {
	var rows []Row
	for _, name := range cur.Problems() {
		points := cur.Data[name]
		var basePoints []stats.StatPoint
		if base != nil {
			basePoints = base.Data[name]
		}
		for i, pt := range points {
			row := Row{
				Problem:       name,
				Dim:           pt.Dim,
				SuccessRate:   pt.SuccessRate,
				AvgRuntimeSec: pt.AvgRuntimeSec,
				AvgBestObj:    pt.AvgBestObj,
			}
			if i < len(basePoints) {
				bp := basePoints[i]
				sr := bp.SuccessRate
				rt := bp.AvgRuntimeSec
				row.BaselineSuccessRate = &sr
				row.BaselineRuntimeSec = &rt
				if rt > 0 {
					delta := (pt.AvgRuntimeSec - rt) / rt * 100
					row.RuntimeDeltaPct = &delta
				}
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// Write renders rows in the requested format: table (default),
// markdown, or json.
func Write(rows []Row, format string, w io.Writer) error {
	switch format {
	case "markdown":
		return writeMarkdown(rows, w)
	case "json":
		return writeJSON(rows, w)
	default:
		return writeTable(rows, w)
	}
}

func writeTable(rows []Row, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PROBLEM\tDIM\tSR\tAVG RT\tAVG OBJ\tBASE SR\tBASE RT\tRT Δ")
	fmt.Fprintln(tw, strings.Repeat("-", 80))
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.4fs\t%.4g\t%s\t%s\t%s\n",
			r.Problem, r.Dim, r.SuccessRate, r.AvgRuntimeSec, r.AvgBestObj,
			fmtRate(r.BaselineSuccessRate), fmtSeconds(r.BaselineRuntimeSec), fmtDelta(r.RuntimeDeltaPct))
	}
	return tw.Flush()
}

func writeMarkdown(rows []Row, w io.Writer) error {
	fmt.Fprintln(w, "| Problem | Dim | SR | Avg RT | Avg Obj | Base SR | Base RT | RT Δ |")
	fmt.Fprintln(w, "|---|---|---|---|---|---|---|---|")
	for _, r := range rows {
		fmt.Fprintf(w, "| %s | %d | %.2f | %.4fs | %.4g | %s | %s | %s |\n",
			r.Problem, r.Dim, r.SuccessRate, r.AvgRuntimeSec, r.AvgBestObj,
			fmtRate(r.BaselineSuccessRate), fmtSeconds(r.BaselineRuntimeSec), fmtDelta(r.RuntimeDeltaPct))
	}
	return nil
}

func writeJSON(rows []Row, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func fmtRate(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}

func fmtSeconds(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.4fs", *v)
}

func fmtDelta(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%+.1f%%", *v)
}
