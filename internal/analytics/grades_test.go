package analytics

import (
	"testing"
	"time"
)

func ms(vals ...int) []time.Duration {
	out := make([]time.Duration, len(vals))
	for i, v := range vals {
		out[i] = time.Duration(v) * time.Millisecond
	}
	return out
}

func TestGrades_ContiguousAndOrdered(t *testing.T) {
	if len(Grades) != 6 {
		t.Fatalf("len(Grades) = %d, want 6", len(Grades))
	}
	if Grades[0].Min != 0 {
		t.Errorf("first band Min = %d, want 0", Grades[0].Min)
	}
	if Grades[len(Grades)-1].Max != Unbounded {
		t.Error("last band should be unbounded")
	}
	for i, g := range Grades {
		if g.Index != i {
			t.Errorf("Grades[%d].Index = %d", i, g.Index)
		}
		if i > 0 && g.Min != Grades[i-1].Max+1 {
			t.Errorf("band %s starts at %d, want %d", g.ID, g.Min, Grades[i-1].Max+1)
		}
	}
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name    string
		samples []time.Duration
		want    int
	}{
		{"empty", nil, 0},
		{"single", ms(321), 321},
		{"five rounds", ms(200, 300, 250, 280, 220), 250},
		{"rounds half up", ms(200, 201), 201},
		{"rounds down", ms(200, 200, 201), 200},
		{"sub-millisecond parts summed", []time.Duration{200600 * time.Microsecond, 200600 * time.Microsecond}, 201},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Average(tt.samples); got != tt.want {
				t.Errorf("Average() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGradeFor_Boundaries(t *testing.T) {
	tests := []struct {
		avg  int
		want GradeID
	}{
		{0, GradeGod},
		{150, GradeGod},
		{151, GradeDiamond},
		{250, GradeDiamond},
		{251, GradeGold},
		{350, GradeGold},
		{351, GradeSilver},
		{450, GradeSilver},
		{451, GradeBronze},
		{600, GradeBronze},
		{601, GradeNeedsPractice},
		{100000, GradeNeedsPractice},
		{-5, GradeGod},
	}
	for _, tt := range tests {
		if got := GradeFor(tt.avg); got.ID != tt.want {
			t.Errorf("GradeFor(%d) = %s, want %s", tt.avg, got.ID, tt.want)
		}
	}
}

func TestEvaluate(t *testing.T) {
	samples := ms(200, 300, 250, 280, 220)
	res := Evaluate(samples)

	if res.AverageMs != 250 {
		t.Errorf("AverageMs = %d, want 250", res.AverageMs)
	}
	if res.Grade.ID != GradeDiamond {
		t.Errorf("Grade = %s, want %s", res.Grade.ID, GradeDiamond)
	}

	samples[0] = 0
	if res.Samples[0] != 200*time.Millisecond {
		t.Error("Evaluate should copy the sample list")
	}
	got := res.SamplesMs()
	if len(got) != 5 || got[4] != 220 {
		t.Errorf("SamplesMs() = %v", got)
	}
}

func TestGrade_RangeLabel(t *testing.T) {
	if got := Grades[1].RangeLabel(); got != "151-250ms" {
		t.Errorf("RangeLabel() = %q, want %q", got, "151-250ms")
	}
	if got := Grades[5].RangeLabel(); got != "> 600ms" {
		t.Errorf("RangeLabel() = %q, want %q", got, "> 600ms")
	}
}
