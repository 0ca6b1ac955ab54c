package bench

// Result is one finished measurement within a stage.
type Result struct {
	Name   string
	MeanNs float64
	Bytes  int
}

// Throughput returns the mean throughput in MB/s.
func (r Result) Throughput() float64 {
	if r.MeanNs == 0 {
		return 0
	}
	return float64(r.Bytes) / r.MeanNs * 1000.0
}

// Stage is an ordered collection of measurements reported together.
// Baseline names the run the report's relative column normalizes against;
// it is bookkeeping only and never affects measurement.
type Stage struct {
	Name       string
	Baseline   string
	Iterations int
	Results    []Result
}

// Run measures fn with the stage's iteration count and appends the result.
// bytes is the payload size a single call of fn processes; the reporting
// layer derives throughput from it.
func (s *Stage) Run(name string, bytes int, fn func() int) {
	mean := Measure(s.Iterations, fn)
	s.Results = append(s.Results, Result{Name: name, MeanNs: mean, Bytes: bytes})
}

// Lookup returns the named result and whether it exists.
func (s *Stage) Lookup(name string) (Result, bool) {
	for _, r := range s.Results {
		if r.Name == name {
			return r, true
		}
	}
	return Result{}, false
}
