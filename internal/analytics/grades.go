package analytics

import (
	"fmt"
	"math"
	"time"
)

type GradeID string

const (
	GradeGod           GradeID = "god"
	GradeDiamond       GradeID = "diamond"
	GradeGold          GradeID = "gold"
	GradeSilver        GradeID = "silver"
	GradeBronze        GradeID = "bronze"
	GradeNeedsPractice GradeID = "needs_practice"
)

// Unbounded marks the open upper end of the slowest band.
const Unbounded = math.MaxInt

// Grade is one millisecond band. Min and Max are both inclusive.
type Grade struct {
	ID    GradeID
	Index int
	Min   int
	Max   int
	Color string
}

// Grades are contiguous, ordered fastest first, and cover [0, inf).
var Grades = []Grade{
	{ID: GradeGod, Index: 0, Min: 0, Max: 150, Color: "border-purple-500"},
	{ID: GradeDiamond, Index: 1, Min: 151, Max: 250, Color: "border-sky-400"},
	{ID: GradeGold, Index: 2, Min: 251, Max: 350, Color: "border-yellow-400"},
	{ID: GradeSilver, Index: 3, Min: 351, Max: 450, Color: "border-slate-400"},
	{ID: GradeBronze, Index: 4, Min: 451, Max: 600, Color: "border-orange-900"},
	{ID: GradeNeedsPractice, Index: 5, Min: 601, Max: Unbounded, Color: "border-red-500"},
}

func (g Grade) Contains(ms int) bool {
	return ms >= g.Min && ms <= g.Max
}

// RangeLabel renders the band for display, e.g. "151-250ms" or "> 600ms".
func (g Grade) RangeLabel() string {
	if g.Max == Unbounded {
		return fmt.Sprintf("> %dms", g.Min-1)
	}
	return fmt.Sprintf("%d-%dms", g.Min, g.Max)
}

// GradeFor returns the band containing avgMs. Negative values clamp to the
// fastest band.
func GradeFor(avgMs int) Grade {
	for _, g := range Grades {
		if g.Contains(avgMs) {
			return g
		}
	}
	return Grades[0]
}

// Average is the mean of samples rounded to the nearest millisecond, or 0
// when there are none.
func Average(samples []time.Duration) int {
	if len(samples) == 0 {
		return 0
	}
	var sum time.Duration
	for _, s := range samples {
		sum += s
	}
	return int(math.Round(float64(sum) / float64(len(samples)) / float64(time.Millisecond)))
}

// Evaluate grades a completed sample list. Only runs that finished on the
// success path should be evaluated.
func Evaluate(samples []time.Duration) RunResult {
	avg := Average(samples)
	return RunResult{
		Samples:   append([]time.Duration(nil), samples...),
		AverageMs: avg,
		Grade:     GradeFor(avg),
	}
}
