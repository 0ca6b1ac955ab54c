package report

import (
	"fmt"
	"strings"

	"github.com/appnet-org/wirebench/pkg/bench"
)

// ChartConfig controls the parts of the chart layout that vary between
// report variants.
type ChartConfig struct {
	MarginBottom     int     // px reserved under the plot for run labels
	FontSizeBarLabel float64 // pt size of the value label above each bar
}

const (
	chartMarginTop   = 50
	chartMarginLeft  = 70
	chartMarginRight = 30
	chartPlotHeight  = 300
	chartBarWidth    = 60
	chartBarGap      = 30
)

var barPalette = []string{"#4c78a8", "#f58518", "#54a24b", "#e45756", "#b279a2", "#72b7b2"}

// BarChart renders s as a standalone SVG document: one bar per run scaled
// by its mean time, a value label above each bar, and run names rotated 45
// degrees into the bottom margin band. A dashed marker is drawn at the
// baseline run's mean when the stage names one. Output is deterministic for
// a given stage and config.
func BarChart(s *bench.Stage, cfg ChartConfig) ([]byte, error) {
	if len(s.Results) == 0 {
		return nil, fmt.Errorf("bar chart: stage %q has no results", s.Name)
	}

	maxMean := 0.0
	for _, r := range s.Results {
		if r.MeanNs > maxMean {
			maxMean = r.MeanNs
		}
	}
	if maxMean == 0 {
		maxMean = 1
	}

	n := len(s.Results)
	width := chartMarginLeft + chartMarginRight + n*chartBarWidth + (n+1)*chartBarGap
	height := chartMarginTop + chartPlotHeight + cfg.MarginBottom
	axisY := chartMarginTop + chartPlotHeight

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="white"/>`+"\n", width, height)
	fmt.Fprintf(&b, `<text x="%d" y="30" font-size="20" text-anchor="middle">%s</text>`+"\n",
		width/2, svgEscape(s.Name))

	// Gridlines with tick labels at quarter steps of the tallest bar.
	for i := 0; i <= 4; i++ {
		frac := float64(i) / 4
		y := float64(axisY) - frac*chartPlotHeight
		fmt.Fprintf(&b, `<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="#dddddd"/>`+"\n",
			chartMarginLeft, y, width-chartMarginRight, y)
		fmt.Fprintf(&b, `<text x="%d" y="%.1f" font-size="12" text-anchor="end">%.0f</text>`+"\n",
			chartMarginLeft-8, y+4, frac*maxMean)
	}

	for i, r := range s.Results {
		barX := chartMarginLeft + chartBarGap + i*(chartBarWidth+chartBarGap)
		barH := r.MeanNs / maxMean * chartPlotHeight
		barY := float64(axisY) - barH
		fmt.Fprintf(&b, `<rect x="%d" y="%.1f" width="%d" height="%.1f" fill="%s"/>`+"\n",
			barX, barY, chartBarWidth, barH, barPalette[i%len(barPalette)])

		centerX := barX + chartBarWidth/2
		fmt.Fprintf(&b, `<text x="%d" y="%.1f" font-size="%g" text-anchor="middle">%.1f</text>`+"\n",
			centerX, barY-6, cfg.FontSizeBarLabel, r.MeanNs)

		labelY := axisY + 16
		fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="13" text-anchor="start" transform="rotate(45 %d %d)">%s</text>`+"\n",
			centerX, labelY, centerX, labelY, svgEscape(r.Name))
	}

	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="black"/>`+"\n",
		chartMarginLeft, chartMarginTop, chartMarginLeft, axisY)
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="black"/>`+"\n",
		chartMarginLeft, axisY, width-chartMarginRight, axisY)
	fmt.Fprintf(&b, `<text x="20" y="%d" font-size="13" transform="rotate(-90 20 %d)" text-anchor="middle">Time (ns)</text>`+"\n",
		chartMarginTop+chartPlotHeight/2, chartMarginTop+chartPlotHeight/2)

	if baseline, ok := s.Lookup(s.Baseline); ok && baseline.MeanNs > 0 {
		y := float64(axisY) - baseline.MeanNs/maxMean*chartPlotHeight
		fmt.Fprintf(&b, `<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="#888888" stroke-dasharray="6 4"/>`+"\n",
			chartMarginLeft, y, width-chartMarginRight, y)
	}

	b.WriteString("</svg>\n")
	return []byte(b.String()), nil
}

var svgEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func svgEscape(s string) string {
	return svgEscaper.Replace(s)
}
