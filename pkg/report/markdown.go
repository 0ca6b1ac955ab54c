// Package report renders finished benchmark stages as stdout tables,
// markdown report files, and SVG bar charts. Render output is a pure
// function of the stage contents; the orchestrator decides where it goes.
package report

import (
	"fmt"
	"strings"

	"github.com/appnet-org/wirebench/pkg/bench"
)

// Table renders s as the table the harness prints to stdout: the stage
// name, then one row per run with mean time and throughput at one decimal
// place each.
func Table(s *bench.Stage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", s.Name)
	b.WriteString(Rows(s))
	return b.String()
}

// Rows renders just the table portion of a stage, header included, for
// callers that print their own heading above it.
func Rows(s *bench.Stage) string {
	var b strings.Builder
	b.WriteString("| Operation | Time (ns) | Throughput (MB/s) |\n")
	b.WriteString("|-----------|-----------|-------------------|\n")
	for _, r := range s.Results {
		fmt.Fprintf(&b, "| %s | %.1f | %.1f |\n", r.Name, r.MeanNs, r.Throughput())
	}
	return b.String()
}

// Markdown renders the report file body: stage header, iteration count, and
// the stdout table extended with a Relative column normalized against the
// stage baseline. Relative cells stay empty when the baseline is unset or
// does not name a recorded run.
func Markdown(s *bench.Stage) []byte {
	baseline, haveBaseline := s.Lookup(s.Baseline)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", s.Name)
	fmt.Fprintf(&b, "Iterations: %d\n\n", s.Iterations)
	b.WriteString("| Operation | Time (ns) | Throughput (MB/s) | Relative |\n")
	b.WriteString("|-----------|-----------|-------------------|----------|\n")
	for _, r := range s.Results {
		relative := ""
		if haveBaseline && baseline.MeanNs > 0 {
			relative = fmt.Sprintf("%.2fx", r.MeanNs/baseline.MeanNs)
		}
		fmt.Fprintf(&b, "| %s | %.1f | %.1f | %s |\n", r.Name, r.MeanNs, r.Throughput(), relative)
	}
	return []byte(b.String())
}
