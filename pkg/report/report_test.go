package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/appnet-org/wirebench/pkg/bench"
)

func sampleStage() *bench.Stage {
	return &bench.Stage{
		Name:       "Round Trip",
		Baseline:   "Beta Write",
		Iterations: 100000,
		Results: []bench.Result{
			{Name: "Alpha Write", MeanNs: 250.0, Bytes: 1000},
			{Name: "Beta Write", MeanNs: 100.0, Bytes: 1000},
		},
	}
}

// ==================== Table Tests ====================

func TestTableFormat(t *testing.T) {
	out := Table(sampleStage())

	require.True(t, strings.HasPrefix(out, "Round Trip\n\n"))
	require.Contains(t, out, "| Operation | Time (ns) | Throughput (MB/s) |\n")
	require.Contains(t, out, "|-----------|-----------|-------------------|\n")
	require.Contains(t, out, "| Alpha Write | 250.0 | 4000.0 |\n")
	require.Contains(t, out, "| Beta Write | 100.0 | 10000.0 |\n")
}

func TestTablePreservesRunOrder(t *testing.T) {
	out := Table(sampleStage())
	require.Less(t, strings.Index(out, "Alpha Write"), strings.Index(out, "Beta Write"))
}

func TestRowsOmitsStageName(t *testing.T) {
	out := Rows(sampleStage())
	require.True(t, strings.HasPrefix(out, "| Operation |"))
	require.NotContains(t, out, "Round Trip")
	require.Contains(t, out, "| Alpha Write | 250.0 | 4000.0 |\n")
}

// ==================== Markdown Tests ====================

func TestMarkdownRelativeColumn(t *testing.T) {
	md := string(Markdown(sampleStage()))

	require.Contains(t, md, "# Round Trip\n")
	require.Contains(t, md, "Iterations: 100000\n")
	require.Contains(t, md, "| Relative |")
	require.Contains(t, md, "| Alpha Write | 250.0 | 4000.0 | 2.50x |\n")
	require.Contains(t, md, "| Beta Write | 100.0 | 10000.0 | 1.00x |\n")
}

func TestMarkdownWithoutBaseline(t *testing.T) {
	s := sampleStage()
	s.Baseline = ""
	md := string(Markdown(s))
	require.NotContains(t, md, "x |")

	s.Baseline = "No Such Run"
	md = string(Markdown(s))
	require.NotContains(t, md, "x |")
}

// ==================== Chart Tests ====================

func TestBarChartShape(t *testing.T) {
	cfg := ChartConfig{MarginBottom: 140, FontSizeBarLabel: 16.0}
	svg, err := BarChart(sampleStage(), cfg)
	require.NoError(t, err)

	out := string(svg)
	require.True(t, strings.HasPrefix(out, "<svg "))
	require.True(t, strings.HasSuffix(out, "</svg>\n"))
	require.Contains(t, out, `height="490"`) // 50 top + 300 plot + 140 margin
	require.Contains(t, out, "Alpha Write")
	require.Contains(t, out, "Beta Write")
	require.Contains(t, out, `font-size="16"`)
	require.Contains(t, out, "rotate(45")
	require.Contains(t, out, "stroke-dasharray") // baseline marker
}

func TestBarChartDeterministic(t *testing.T) {
	cfg := ChartConfig{MarginBottom: 100, FontSizeBarLabel: 20.0}
	a, err := BarChart(sampleStage(), cfg)
	require.NoError(t, err)
	b, err := BarChart(sampleStage(), cfg)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestBarChartEmptyStage(t *testing.T) {
	_, err := BarChart(&bench.Stage{Name: "empty"}, ChartConfig{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no results")
}

func TestBarChartEscapesNames(t *testing.T) {
	s := &bench.Stage{
		Name: "a < b & c",
		Results: []bench.Result{
			{Name: "Run <&>", MeanNs: 10.0, Bytes: 100},
		},
	}
	svg, err := BarChart(s, ChartConfig{MarginBottom: 100, FontSizeBarLabel: 12.0})
	require.NoError(t, err)

	out := string(svg)
	require.Contains(t, out, "a &lt; b &amp; c")
	require.Contains(t, out, "Run &lt;&amp;&gt;")
	require.NotContains(t, out, "Run <&>")
}
