package analytics

import "time"

// RunResult summarizes a run that ended on the success path.
type RunResult struct {
	Samples   []time.Duration
	AverageMs int
	Grade     Grade
}

// SamplesMs returns the samples in whole milliseconds, in round order.
func (r RunResult) SamplesMs() []int {
	ms := make([]int, len(r.Samples))
	for i, s := range r.Samples {
		ms[i] = int(s.Milliseconds())
	}
	return ms
}
