package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/appnet-org/wirebench/pkg/bench"
	"github.com/appnet-org/wirebench/pkg/codec/msgpack"
	"github.com/appnet-org/wirebench/pkg/logging"
	"github.com/appnet-org/wirebench/pkg/model"
	"github.com/appnet-org/wirebench/pkg/report"
)

var msgpackCmd = &cobra.Command{
	Use:   "msgpack",
	Short: "MessagePack single-format deep dive",
	Long: `Benchmark only the MessagePack adapter: plain write, size-hinted write,
and full read. Prints one table and writes no report files.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := deepDive(cmd.OutOrStdout()); err != nil {
			logging.Fatal("benchmark failed", zap.Error(err))
		}
		return nil
	},
}

// deepDive benchmarks the MessagePack adapter on its own and prints the
// header block and table to w.
func deepDive(w io.Writer) error {
	ref := model.Reference()
	c := msgpack.New()

	out, err := c.Serialize(ref)
	if err != nil {
		return fmt.Errorf("serialize MessagePack: %w", err)
	}
	buf := append([]byte(nil), out...)

	fmt.Fprint(w, "MessagePack Benchmark\n=====================\n\n")
	fmt.Fprintf(w, "Iterations: %d\n", cfgIterations)
	fmt.Fprintf(w, "Serialized size: %d bytes\n\n", len(buf))

	var iterErr error
	record := func(run string, err error) {
		if cfgFailFast && iterErr == nil {
			iterErr = fmt.Errorf("%s: %w", run, err)
		}
	}

	stage := &bench.Stage{Name: "MessagePack", Iterations: cfgIterations}
	runs := []timedRun{
		{"Write", len(buf), func() int {
			out, err := c.Serialize(ref)
			if err != nil {
				record("Write", err)
				return 0
			}
			return len(out)
		}},
		{"Write (prealloc)", len(buf), func() int {
			out, err := c.SerializePrealloc(ref)
			if err != nil {
				record("Write (prealloc)", err)
				return 0
			}
			return len(out)
		}},
		{"Read", len(buf), func() int {
			obj, err := c.Deserialize(buf)
			if err != nil {
				record("Read", err)
				return 0
			}
			return len(obj.StringArray)
		}},
	}
	for _, r := range runs {
		stage.Run(r.name, r.bytes, r.fn)
		if iterErr != nil {
			return iterErr
		}
	}

	fmt.Fprint(w, report.Rows(stage))
	logging.Info("benchmark session complete", zap.Uint64("sink", bench.SinkValue()))
	return nil
}
