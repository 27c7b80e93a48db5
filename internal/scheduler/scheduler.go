// Package scheduler decides when the next stimulus appears and whether it
// comes with a decoy.
//
// Delays follow a clamped exponential distribution so the stimulus has a
// constant hazard rate and cannot be anticipated from rhythm.
package scheduler

import (
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"reactiontest/internal/targets"
)

// ErrSurfaceUnmeasured is returned by Plan when the play area has not been
// laid out yet. It is transient: callers keep their state and try again.
var ErrSurfaceUnmeasured = errors.New("play surface not measured")

type Config struct {
	MinDelay           time.Duration
	MaxDelay           time.Duration
	AverageDelay       time.Duration
	DecoyChance        float64
	DecoyEligibleRound int
}

func DefaultConfig() Config {
	return Config{
		MinDelay:           500 * time.Millisecond,
		MaxDelay:           3500 * time.Millisecond,
		AverageDelay:       1300 * time.Millisecond,
		DecoyChance:        0.7,
		DecoyEligibleRound: 3,
	}
}

// Trial is the plan for one round's stimulus.
type Trial struct {
	Round  int
	Target targets.Placement
	Decoy  *targets.Placement
}

func (t Trial) HasDecoy() bool {
	return t.Decoy != nil
}

type Scheduler struct {
	cfg Config
	src targets.Source
}

// New returns a Scheduler drawing from src. A nil src uses math/rand/v2.
func New(cfg Config, src targets.Source) *Scheduler {
	if src == nil {
		src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Scheduler{cfg: cfg, src: src}
}

// RawDelay is the unclamped exponential draw -ln(u)/rate, in milliseconds.
func RawDelay(u, rate float64) float64 {
	return -math.Log(u) / rate
}

// Delay converts a uniform draw u in (0,1] into a stimulus delay: an
// exponential sample with mean AverageDelay, clamped to [MinDelay, MaxDelay]
// and rounded to the millisecond.
func (c Config) Delay(u float64) time.Duration {
	rate := 1 / float64(c.AverageDelay.Milliseconds())
	ms := RawDelay(u, rate)
	ms = math.Max(float64(c.MinDelay.Milliseconds()), math.Min(ms, float64(c.MaxDelay.Milliseconds())))
	return time.Duration(math.Round(ms)) * time.Millisecond
}

// NextDelay draws the delay before the next stimulus.
func (s *Scheduler) NextDelay() time.Duration {
	return s.cfg.Delay(s.uniformNonZero())
}

// DecoyEligible reports whether round may show a decoy at all.
func (c Config) DecoyEligible(round int) bool {
	return round >= c.DecoyEligibleRound
}

// WantDecoy makes the per-round Bernoulli draw. Ineligible rounds never
// consume randomness.
func (s *Scheduler) WantDecoy(round int) bool {
	if !s.cfg.DecoyEligible(round) {
		return false
	}
	return s.src.Float64() < s.cfg.DecoyChance
}

// Plan places the target, and a decoy when this round draws one, on surface.
func (s *Scheduler) Plan(round int, surface targets.Surface) (Trial, error) {
	if !surface.Measured() {
		return Trial{}, ErrSurfaceUnmeasured
	}

	trial := Trial{
		Round:  round,
		Target: targets.Random(s.src, surface),
	}
	if s.WantDecoy(round) {
		if decoy, ok := targets.PlaceDecoy(s.src, surface, trial.Target); ok {
			trial.Decoy = &decoy
		}
	}
	return trial, nil
}

// uniformNonZero draws from (0,1). Source yields [0,1), so only exact zero
// needs a redraw.
func (s *Scheduler) uniformNonZero() float64 {
	u := s.src.Float64()
	for u == 0 {
		u = s.src.Float64()
	}
	return u
}
