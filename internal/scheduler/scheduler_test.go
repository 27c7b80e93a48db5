package scheduler

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"reactiontest/internal/targets"
)

type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MinDelay != 500*time.Millisecond {
		t.Errorf("MinDelay = %v, want 500ms", cfg.MinDelay)
	}
	if cfg.MaxDelay != 3500*time.Millisecond {
		t.Errorf("MaxDelay = %v, want 3.5s", cfg.MaxDelay)
	}
	if cfg.AverageDelay != 1300*time.Millisecond {
		t.Errorf("AverageDelay = %v, want 1.3s", cfg.AverageDelay)
	}
	if cfg.DecoyChance != 0.7 {
		t.Errorf("DecoyChance = %v, want 0.7", cfg.DecoyChance)
	}
	if cfg.DecoyEligibleRound != 3 {
		t.Errorf("DecoyEligibleRound = %d, want 3", cfg.DecoyEligibleRound)
	}
}

func TestRawDelay(t *testing.T) {
	rate := 1.0 / 1300
	for _, u := range []float64{0.01, 0.2, 0.5, 0.9, 1} {
		want := -math.Log(u) / rate
		if got := RawDelay(u, rate); got != want {
			t.Errorf("RawDelay(%v) = %v, want %v", u, got, want)
		}
	}
	if got := RawDelay(1, rate); got != 0 {
		t.Errorf("RawDelay(1) = %v, want 0", got)
	}
}

func TestConfig_Delay(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name string
		u    float64
		want time.Duration
	}{
		{"u=1 clamps to min", 1, 500 * time.Millisecond},
		{"tiny u clamps to max", 1e-9, 3500 * time.Millisecond},
		// -ln(0.5)*1300 = 901.09
		{"median", 0.5, 901 * time.Millisecond},
		// -ln(e^-1)*1300 = 1300
		{"mean", math.Exp(-1), 1300 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.Delay(tt.u); got != tt.want {
				t.Errorf("Delay(%v) = %v, want %v", tt.u, got, tt.want)
			}
		})
	}
}

func TestNextDelay_AlwaysClamped(t *testing.T) {
	s := New(DefaultConfig(), rand.New(rand.NewPCG(3, 4)))
	for i := 0; i < 10000; i++ {
		d := s.NextDelay()
		if d < 500*time.Millisecond || d > 3500*time.Millisecond {
			t.Fatalf("NextDelay() = %v, outside [500ms, 3.5s]", d)
		}
		if d%time.Millisecond != 0 {
			t.Fatalf("NextDelay() = %v, not whole milliseconds", d)
		}
	}
}

func TestNextDelay_RedrawsZero(t *testing.T) {
	src := &seqSource{vals: []float64{0, 0, 0.5}}
	s := New(DefaultConfig(), src)

	if got := s.NextDelay(); got != 901*time.Millisecond {
		t.Errorf("NextDelay() = %v, want 901ms", got)
	}
	if src.i != 3 {
		t.Errorf("draws = %d, want 3", src.i)
	}
}

func TestWantDecoy_IneligibleRounds(t *testing.T) {
	src := &seqSource{vals: []float64{0}}
	s := New(DefaultConfig(), src)

	for round := 1; round < 3; round++ {
		if s.WantDecoy(round) {
			t.Errorf("WantDecoy(%d) = true, want false", round)
		}
	}
	if src.i != 0 {
		t.Errorf("ineligible rounds consumed %d draws, want 0", src.i)
	}
}

func TestWantDecoy_Threshold(t *testing.T) {
	tests := []struct {
		draw float64
		want bool
	}{
		{0, true},
		{0.69, true},
		{0.7, false},
		{0.99, false},
	}
	for _, tt := range tests {
		s := New(DefaultConfig(), &seqSource{vals: []float64{tt.draw}})
		if got := s.WantDecoy(3); got != tt.want {
			t.Errorf("WantDecoy(3) with draw %v = %v, want %v", tt.draw, got, tt.want)
		}
	}
}

func TestWantDecoy_EmpiricalRate(t *testing.T) {
	s := New(DefaultConfig(), rand.New(rand.NewPCG(42, 99)))
	const n = 20000
	hits := 0
	for i := 0; i < n; i++ {
		if s.WantDecoy(3 + i%3) {
			hits++
		}
	}
	rate := float64(hits) / n
	// sd = sqrt(0.7*0.3/20000) ~ 0.0032
	if math.Abs(rate-0.7) > 0.02 {
		t.Errorf("empirical decoy rate = %.4f, want 0.7 +/- 0.02", rate)
	}
}

func TestPlan_UnmeasuredSurface(t *testing.T) {
	s := New(DefaultConfig(), nil)
	for _, surface := range []targets.Surface{{}, {Width: 600}, {Width: 10, Height: 10}} {
		_, err := s.Plan(1, surface)
		if !errors.Is(err, ErrSurfaceUnmeasured) {
			t.Errorf("Plan(%+v) error = %v, want ErrSurfaceUnmeasured", surface, err)
		}
	}
}

func TestPlan_NoDecoyEarlyRounds(t *testing.T) {
	s := New(DefaultConfig(), rand.New(rand.NewPCG(5, 6)))
	surface := targets.Surface{Width: 600, Height: 256}

	for i := 0; i < 500; i++ {
		trial, err := s.Plan(1+i%2, surface)
		if err != nil {
			t.Fatal(err)
		}
		if trial.HasDecoy() {
			t.Fatalf("round %d planned a decoy", trial.Round)
		}
	}
}

func TestPlan_DecoySeparated(t *testing.T) {
	s := New(DefaultConfig(), rand.New(rand.NewPCG(8, 9)))
	surface := targets.Surface{Width: 600, Height: 256}

	decoys := 0
	for i := 0; i < 1000; i++ {
		trial, err := s.Plan(3+i%3, surface)
		if err != nil {
			t.Fatal(err)
		}
		if !trial.HasDecoy() {
			continue
		}
		decoys++
		if d := targets.Distance(trial.Target, *trial.Decoy); d < targets.MinSeparation {
			t.Fatalf("decoy distance = %v, want >= %v", d, targets.MinSeparation)
		}
	}
	if decoys == 0 {
		t.Error("no decoys planned over 1000 eligible rounds")
	}
}
