// Package bench provides the measurement loop and run bookkeeping for the
// serialization benchmarks. The harness is single-threaded; none of this
// is safe for concurrent use.
package bench

import "time"

// sink accumulates every value returned by a measured closure. Reading it
// back through SinkValue keeps the compiler from proving the results unused
// and hollowing out the timed loop.
var sink uint64

// Observe folds v into the package sink.
func Observe(v int) {
	sink += uint64(v)
}

// SinkValue returns the accumulated sink. The harness logs it once at the
// end of a session so the accumulation is observably live.
func SinkValue() uint64 {
	return sink
}

// Measure runs fn n/10 times untimed to warm caches and code paths, then
// times exactly n calls and returns the mean nanoseconds per call. The
// return value of every call, warmup included, goes through Observe.
func Measure(n int, fn func() int) float64 {
	if n <= 0 {
		return 0
	}
	for i := 0; i < n/10; i++ {
		Observe(fn())
	}
	start := time.Now()
	for i := 0; i < n; i++ {
		Observe(fn())
	}
	elapsed := time.Since(start)
	return float64(elapsed.Nanoseconds()) / float64(n)
}
