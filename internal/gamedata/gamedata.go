package gamedata

import (
	"errors"
	"sync"
	"time"

	"reactiontest/internal/analytics"
	"reactiontest/internal/events"
	"reactiontest/internal/scheduler"
	"reactiontest/internal/targets"
)

type State string

const (
	StateIdle     = State("idle")
	StateWaiting  = State("waiting")
	StatePlaying  = State("playing")
	StateFinished = State("finished")
)

type FinishReason string

const (
	ReasonNone    = FinishReason("")
	ReasonSuccess = FinishReason("success")
	ReasonDecoy   = FinishReason("decoy")
)

type Config struct {
	TotalRounds int
	// SurfaceRetryDelay is how long to wait before planning again when the
	// play surface has not been measured yet.
	SurfaceRetryDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		TotalRounds:       5,
		SurfaceRetryDelay: 100 * time.Millisecond,
	}
}

// Observer is notified of run milestones. Calls happen with the game lock
// held and must not call back into the Game.
type Observer interface {
	RunStarted()
	StimulusShown(round int, decoy bool)
	ReactionRecorded(round int, d time.Duration)
	RunFinished(reason FinishReason, samples []time.Duration)
}

type Option func(*Game)

func WithClock(c Clock) Option {
	return func(g *Game) { g.clock = c }
}

func WithObserver(o Observer) Option {
	return func(g *Game) { g.observer = o }
}

// Game is the trial state machine for a single player's run. All commands
// and timer callbacks are serialized by mu.
type Game struct {
	mu       sync.Mutex
	cfg      Config
	clock    Clock
	sched    *scheduler.Scheduler
	observer Observer
	Events   *events.Bus

	state   State
	reason  FinishReason
	round   int
	samples []time.Duration
	surface targets.Surface
	trial   *scheduler.Trial
	shownAt time.Time

	// timer is the single pending stimulus timer. gen is bumped every time
	// it is armed or cancelled so a callback that lost the race is ignored.
	timer  Timer
	gen    uint64
	seq    uint64
	closed bool
}

func NewGame(sched *scheduler.Scheduler, bus *events.Bus, cfg Config, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		clock:  SystemClock{},
		sched:  sched,
		Events: bus,
		state:  StateIdle,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Game) Round() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.round
}

func (g *Game) Reason() FinishReason {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.reason
}

// Samples returns a copy of the reaction times recorded so far.
func (g *Game) Samples() []time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]time.Duration(nil), g.samples...)
}

// Trial returns the stimulus currently on screen, if any.
func (g *Game) Trial() (scheduler.Trial, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.trial == nil {
		return scheduler.Trial{}, false
	}
	return *g.trial, true
}

func (g *Game) Surface() targets.Surface {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.surface
}

// Pending reports whether a stimulus timer is armed.
func (g *Game) Pending() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.timer != nil
}

// Start begins a fresh run: samples cleared, round 1, first stimulus armed.
// It is also the restart command, and restarts a run in progress.
func (g *Game) Start() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return false
	}

	g.cancelTimer()
	g.samples = nil
	g.round = 1
	g.reason = ReasonNone
	g.trial = nil
	g.state = StateWaiting
	g.arm(g.sched.NextDelay())

	if g.observer != nil {
		g.observer.RunStarted()
	}
	g.publish()
	return true
}

// Restart is Start, named for the finished screen.
func (g *Game) Restart() bool {
	return g.Start()
}

// Resize records the play surface as measured by the client. A waiting
// round picks it up when its timer fires.
func (g *Game) Resize(s targets.Surface) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.surface = s
}

// HitTarget resolves the current trial with a click on the normal target,
// timed on the server. It reports false and changes nothing unless the game
// is playing.
func (g *Game) HitTarget() bool {
	return g.HitTargetAfter(0)
}

// HitTargetAfter is HitTarget with the reaction time measured by the client
// from paint to pointer press. It is recorded when 0 < measured <= the
// server-side delta, which already covers the time the stimulus could have
// been on screen; otherwise the server-side delta is used.
func (g *Game) HitTargetAfter(measured time.Duration) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed || g.state != StatePlaying {
		return false
	}

	g.cancelTimer()
	sample := g.clock.Now().Sub(g.shownAt)
	if measured > 0 && measured <= sample {
		sample = measured
	}
	g.samples = append(g.samples, sample)
	g.trial = nil
	if g.observer != nil {
		g.observer.ReactionRecorded(g.round, sample)
	}

	if g.round < g.cfg.TotalRounds {
		g.round++
		g.state = StateWaiting
		g.arm(g.sched.NextDelay())
	} else {
		g.finish(ReasonSuccess)
	}
	g.publish()
	return true
}

// HitDecoy resolves the current trial with a click on the decoy, ending the
// run without recording a sample. Clicks when no decoy is shown are ignored.
func (g *Game) HitDecoy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed || g.state != StatePlaying || g.trial == nil || !g.trial.HasDecoy() {
		return false
	}

	g.cancelTimer()
	g.trial = nil
	g.finish(ReasonDecoy)
	g.publish()
	return true
}

// Teardown cancels any pending timer and closes the event stream. Every
// later command is a no-op.
func (g *Game) Teardown() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return
	}
	g.cancelTimer()
	g.closed = true
	g.Events.Close()
}

// Result grades the run. ok is false unless the run finished successfully.
func (g *Game) Result() (res analytics.RunResult, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != StateFinished || g.reason != ReasonSuccess {
		return analytics.RunResult{}, false
	}
	return analytics.Evaluate(g.samples), true
}

// Snapshot returns the current run as a read-only event.
func (g *Game) Snapshot() events.StateEvent {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

func (g *Game) snapshot() events.StateEvent {
	ev := events.StateEvent{
		Seq:         g.seq,
		State:       string(g.state),
		Reason:      string(g.reason),
		Round:       g.round,
		TotalRounds: g.cfg.TotalRounds,
		SamplesMs:   make([]int, len(g.samples)),
	}
	for i, s := range g.samples {
		ev.SamplesMs[i] = int(s.Round(time.Millisecond).Milliseconds())
	}
	if g.state == StatePlaying && g.trial != nil {
		target := g.trial.Target
		ev.Target = &target
		if g.trial.Decoy != nil {
			decoy := *g.trial.Decoy
			ev.Decoy = &decoy
		}
	}
	if g.state == StateFinished && g.reason == ReasonSuccess {
		res := analytics.Evaluate(g.samples)
		ev.AverageMs = res.AverageMs
		ev.Grade = string(res.Grade.ID)
	}
	return ev
}

func (g *Game) finish(reason FinishReason) {
	g.state = StateFinished
	g.reason = reason
	if g.observer != nil {
		g.observer.RunFinished(reason, append([]time.Duration(nil), g.samples...))
	}
}

func (g *Game) publish() {
	g.seq++
	g.Events.Publish(g.snapshot())
}

// arm must be called with the previous timer already cancelled.
func (g *Game) arm(d time.Duration) {
	g.gen++
	gen := g.gen
	g.timer = g.clock.AfterFunc(d, func() { g.fire(gen) })
}

func (g *Game) cancelTimer() {
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	g.gen++
}

func (g *Game) fire(gen uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed || gen != g.gen || g.state != StateWaiting {
		return
	}
	g.timer = nil

	trial, err := g.sched.Plan(g.round, g.surface)
	if errors.Is(err, scheduler.ErrSurfaceUnmeasured) {
		g.arm(g.cfg.SurfaceRetryDelay)
		return
	}

	g.trial = &trial
	g.state = StatePlaying
	g.shownAt = g.clock.Now()
	if g.observer != nil {
		g.observer.StimulusShown(g.round, trial.HasDecoy())
	}
	g.publish()
}
