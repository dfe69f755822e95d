package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/jspall/gsbench/internal/stats"
)

// WritePlots renders one HTML page per problem with success-rate,
// runtime, and solution-set-size charts. Baseline series are overlaid
// when a baseline is present.
func WritePlots(dir string, cur, base *stats.RunStats) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating plots dir: %w", err)
	}

	for _, name := range cur.Problems() {
		points := cur.Data[name]
		if len(points) == 0 {
			continue
		}
		var basePoints []stats.StatPoint
		if base != nil {
			basePoints = base.Data[name]
		}

		page := components.NewPage()
		page.AddCharts(
			successChart(name, points, basePoints),
			runtimeChart(name, points, basePoints),
			sizeChart(name, points, basePoints),
		)

		path := filepath.Join(dir, strings.ToLower(name)+"_benchmark.html")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating plot file: %w", err)
		}
		if err := page.Render(f); err != nil {
			f.Close()
			return fmt.Errorf("rendering plots for %s: %w", name, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing plot file: %w", err)
		}
	}
	return nil
}

func successChart(name string, cur, base []stats.StatPoint) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: name + " Success Rate"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Dimension"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Success Rate"}),
	)
	line.SetXAxis(dims(cur)).
		AddSeries("Current SR", series(cur, func(p stats.StatPoint) float64 { return p.SuccessRate }))
	if len(base) > 0 {
		line.AddSeries("Baseline SR", series(base, func(p stats.StatPoint) float64 { return p.SuccessRate }))
	}
	return line
}

func runtimeChart(name string, cur, base []stats.StatPoint) *charts.Line {
	line := charts.NewLine()
	// Stage breakdown series start hidden, matching the total-runtime
	// focus of the original charts.
	selected := map[string]bool{
		"Current Stage 1 RT": false,
		"Current Stage 2 RT": false,
		"Current RT StdDev":  false,
	}
	line.SetXAxis(dims(cur)).
		AddSeries("Current Total RT", series(cur, func(p stats.StatPoint) float64 { return p.AvgRuntimeSec })).
		AddSeries("Current Stage 1 RT", series(cur, func(p stats.StatPoint) float64 { return p.AvgStage1Sec })).
		AddSeries("Current Stage 2 RT", series(cur, func(p stats.StatPoint) float64 { return p.AvgStage2Sec })).
		AddSeries("Current RT StdDev", series(cur, func(p stats.StatPoint) float64 { return p.StdRuntimeSec }))
	if len(base) > 0 {
		selected["Baseline Stage 1 RT"] = false
		selected["Baseline Stage 2 RT"] = false
		selected["Baseline RT StdDev"] = false
		line.AddSeries("Baseline Total RT", series(base, func(p stats.StatPoint) float64 { return p.AvgRuntimeSec })).
			AddSeries("Baseline Stage 1 RT", series(base, func(p stats.StatPoint) float64 { return p.AvgStage1Sec })).
			AddSeries("Baseline Stage 2 RT", series(base, func(p stats.StatPoint) float64 { return p.AvgStage2Sec })).
			AddSeries("Baseline RT StdDev", series(base, func(p stats.StatPoint) float64 { return p.StdRuntimeSec }))
	}
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: name + " Runtime"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Dimension"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Time (s)"}),
		charts.WithLegendOpts(opts.Legend{Selected: selected}),
	)
	return line
}

func sizeChart(name string, cur, base []stats.StatPoint) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: name + " Solution Set Size"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Dimension"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Solution Set Size"}),
	)
	line.SetXAxis(dims(cur)).
		AddSeries("Current SolSize", series(cur, func(p stats.StatPoint) float64 { return p.AvgSolutionSetSize }))
	if len(base) > 0 {
		line.AddSeries("Baseline SolSize", series(base, func(p stats.StatPoint) float64 { return p.AvgSolutionSetSize }))
	}
	return line
}

func dims(points []stats.StatPoint) []int {
	xs := make([]int, len(points))
	for i, p := range points {
		xs[i] = p.Dim
	}
	return xs
}

func series(points []stats.StatPoint, pick func(stats.StatPoint) float64) []opts.LineData {
	data := make([]opts.LineData, len(points))
	for i, p := range points {
		data[i] = opts.LineData{Value: pick(p)}
	}
	return data
}
