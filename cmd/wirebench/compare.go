package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/appnet-org/wirebench/pkg/bench"
	"github.com/appnet-org/wirebench/pkg/codec"
	"github.com/appnet-org/wirebench/pkg/codec/capnproto"
	"github.com/appnet-org/wirebench/pkg/codec/flatbuf"
	"github.com/appnet-org/wirebench/pkg/codec/jsonx"
	"github.com/appnet-org/wirebench/pkg/codec/msgpack"
	"github.com/appnet-org/wirebench/pkg/codec/protobuf"
	"github.com/appnet-org/wirebench/pkg/logging"
	"github.com/appnet-org/wirebench/pkg/model"
	"github.com/appnet-org/wirebench/pkg/report"
)

var (
	progressColor = color.New(color.FgCyan)
	successColor  = color.New(color.FgGreen)
)

// benchCodecs returns the adapters in the order their runs appear in the
// stages and tables.
func benchCodecs() []codec.Codec {
	return []codec.Codec{
		msgpack.New(),
		capnproto.New(),
		flatbuf.New(),
		protobuf.New(),
		jsonx.New(),
	}
}

// timedRun is one named closure scheduled into a stage. bytes is the payload
// size a single call processes; the closure's return value feeds the sink.
type timedRun struct {
	name  string
	bytes int
	fn    func() int
}

// compare runs the full cross-format session: validate every adapter against
// the canonical instance, run the Round Trip and Zero-Copy Read stages, print
// their tables to w, and write the markdown and chart files.
func compare(w io.Writer) error {
	ref := model.Reference()
	want := ref.Checksum()
	formats := benchCodecs()

	// Serialize reuses adapter scratch, so the reference buffers the read
	// runs iterate over are copied out here.
	refBufs := make([][]byte, len(formats))
	for i, f := range formats {
		out, err := f.Serialize(ref)
		if err != nil {
			return fmt.Errorf("serialize %s: %w", f.Name(), err)
		}
		buf := append([]byte(nil), out...)

		sum, err := f.Checksum(buf)
		if err != nil {
			return fmt.Errorf("checksum %s: %w", f.Name(), err)
		}
		if sum != want {
			return fmt.Errorf("checksum mismatch for %s: wire %d, model %d", f.Name(), sum, want)
		}
		if _, err := f.Deserialize(buf); err != nil {
			return fmt.Errorf("deserialize %s: %w", f.Name(), err)
		}

		refBufs[i] = buf
		logging.Debug("reference buffer ready",
			zap.String("format", f.Name()),
			zap.Int("bytes", len(buf)),
			zap.Uint64("xxhash", xxhash.Sum64(buf)))
	}

	fmt.Fprint(w, "Serialized sizes:\n\n")
	for i, f := range formats {
		fmt.Fprintf(w, "  %-12s %4d bytes\n", f.Name(), len(refBufs[i]))
	}
	fmt.Fprintln(w)

	var iterErr error
	record := func(run string, err error) {
		if cfgFailFast && iterErr == nil {
			iterErr = fmt.Errorf("%s: %w", run, err)
		}
	}

	execute := func(s *bench.Stage, runs []timedRun) error {
		progressColor.Fprintf(w, "==> running %s (%d runs, %d iterations each)\n\n", s.Name, len(runs), s.Iterations)
		for _, r := range runs {
			s.Run(r.name, r.bytes, r.fn)
			if iterErr != nil {
				return iterErr
			}
			logging.Debug("run finished", zap.String("stage", s.Name), zap.String("run", r.name))
		}
		fmt.Fprintln(w, report.Table(s))
		return nil
	}

	writeReports := func(s *bench.Stage, mdName, svgName string, cfg report.ChartConfig) error {
		md := report.Markdown(s)
		if len(md) == 0 {
			return fmt.Errorf("markdown report for %s is empty", s.Name)
		}
		path := filepath.Join(cfgReportDir, mdName)
		if err := os.WriteFile(path, md, 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		successColor.Fprintf(w, "wrote %s\n", path)

		svg, err := report.BarChart(s, cfg)
		if err != nil {
			return fmt.Errorf("chart for %s: %w", s.Name, err)
		}
		if len(svg) == 0 {
			return fmt.Errorf("chart for %s is empty", s.Name)
		}
		path = filepath.Join(cfgReportDir, svgName)
		if err := os.WriteFile(path, svg, 0o644); err != nil {
			return fmt.Errorf("write chart: %w", err)
		}
		successColor.Fprintf(w, "wrote %s\n", path)
		return nil
	}

	roundTrip := &bench.Stage{Name: "Round Trip", Baseline: "FlatBuffers Write", Iterations: cfgIterations}
	var rtRuns []timedRun
	for i, f := range formats {
		f := f
		size := len(refBufs[i])
		name := f.Name() + " Write"
		rtRuns = append(rtRuns, timedRun{name, size, func() int {
			out, err := f.Serialize(ref)
			if err != nil {
				record(name, err)
				return 0
			}
			return len(out)
		}})

		if p, ok := f.(codec.PreallocSerializer); ok {
			pname := f.Name() + " Write (prealloc)"
			rtRuns = append(rtRuns, timedRun{pname, size, func() int {
				out, err := p.SerializePrealloc(ref)
				if err != nil {
					record(pname, err)
					return 0
				}
				return len(out)
			}})
		}
	}
	for i, f := range formats {
		f := f
		buf := refBufs[i]
		name := f.Name() + " Read"
		rtRuns = append(rtRuns, timedRun{name, len(buf), func() int {
			obj, err := f.Deserialize(buf)
			if err != nil {
				record(name, err)
				return 0
			}
			return len(obj.StringArray)
		}})
	}
	if err := execute(roundTrip, rtRuns); err != nil {
		return err
	}
	if err := writeReports(roundTrip, "results.md", "results.svg",
		report.ChartConfig{MarginBottom: 140, FontSizeBarLabel: 16.0}); err != nil {
		return err
	}
	fmt.Fprintln(w)

	zeroCopy := &bench.Stage{Name: "Zero-Copy Read", Baseline: "FlatBuffers", Iterations: cfgIterations}
	var zcRuns []timedRun
	for i, f := range formats {
		f := f
		buf := refBufs[i]
		name := f.Name()
		zcRuns = append(zcRuns, timedRun{name, len(buf), func() int {
			sum, err := f.Checksum(buf)
			if err != nil {
				record(name, err)
				return 0
			}
			return int(sum)
		}})
	}
	if err := execute(zeroCopy, zcRuns); err != nil {
		return err
	}
	if err := writeReports(zeroCopy, "results_zero_copy.md", "results_zero_copy.svg",
		report.ChartConfig{MarginBottom: 100, FontSizeBarLabel: 20.0}); err != nil {
		return err
	}

	logging.Info("benchmark session complete", zap.Uint64("sink", bench.SinkValue()))
	return nil
}
