package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// ==================== Timer Tests ====================

// TestMeasureCallCount verifies the warmup and timed loops run the exact
// documented number of iterations.
func TestMeasureCallCount(t *testing.T) {
	calls := 0
	Measure(100, func() int {
		calls++
		return 1
	})
	require.Equal(t, 110, calls) // 100/10 warmup + 100 timed
}

func TestMeasureSmallN(t *testing.T) {
	calls := 0
	Measure(5, func() int {
		calls++
		return 1
	})
	require.Equal(t, 5, calls) // 5/10 == 0, warmup skipped

	calls = 0
	mean := Measure(0, func() int {
		calls++
		return 1
	})
	require.Equal(t, 0, calls)
	require.Equal(t, 0.0, mean)
}

func TestMeasureMeanIsPositive(t *testing.T) {
	mean := Measure(20, func() int {
		time.Sleep(time.Microsecond)
		return 1
	})
	// Sleep guarantees at least the requested duration per call.
	require.Greater(t, mean, 1000.0)
}

// TestMeasureStableAcrossN verifies doubling the iteration count does not
// change the per-call mean beyond noise. The tolerance is deliberately
// loose; this guards against the mean accidentally scaling with n.
func TestMeasureStableAcrossN(t *testing.T) {
	work := make([]int, 1000)
	for i := range work {
		work[i] = i
	}
	fn := func() int {
		total := 0
		for _, v := range work {
			total += v
		}
		return total
	}
	a := Measure(2000, fn)
	b := Measure(4000, fn)
	require.Greater(t, a, 0.0)
	require.Greater(t, b, 0.0)
	require.Less(t, a/b, 100.0)
	require.Less(t, b/a, 100.0)
}

func TestObserveAccumulates(t *testing.T) {
	before := SinkValue()
	Observe(5)
	Observe(7)
	require.Equal(t, before+12, SinkValue())
}

func TestMeasureFeedsSink(t *testing.T) {
	before := SinkValue()
	Measure(10, func() int { return 3 })
	// 1 warmup call + 10 timed calls, 3 bytes each.
	require.Equal(t, before+33, SinkValue())
}

// ==================== Stage Tests ====================

func TestStageRunRecords(t *testing.T) {
	s := &Stage{Name: "demo", Iterations: 50}
	s.Run("first", 128, func() int { return 128 })

	require.Len(t, s.Results, 1)
	require.Equal(t, "first", s.Results[0].Name)
	require.Equal(t, 128, s.Results[0].Bytes)
	require.GreaterOrEqual(t, s.Results[0].MeanNs, 0.0)
}

func TestStageRunOrder(t *testing.T) {
	s := &Stage{Name: "demo", Iterations: 10}
	for _, name := range []string{"a", "b", "c"} {
		s.Run(name, 1, func() int { return 1 })
	}
	require.Equal(t, "a", s.Results[0].Name)
	require.Equal(t, "b", s.Results[1].Name)
	require.Equal(t, "c", s.Results[2].Name)
}

func TestStageLookup(t *testing.T) {
	s := &Stage{Name: "demo", Iterations: 10}
	s.Run("present", 64, func() int { return 64 })

	r, ok := s.Lookup("present")
	require.True(t, ok)
	require.Equal(t, 64, r.Bytes)

	_, ok = s.Lookup("absent")
	require.False(t, ok)
}

func TestResultThroughput(t *testing.T) {
	r := Result{MeanNs: 250.0, Bytes: 1000}
	require.Equal(t, 4000.0, r.Throughput()) // 1000 bytes / 250 ns * 1000

	require.Equal(t, 0.0, Result{Bytes: 1000}.Throughput())
}
