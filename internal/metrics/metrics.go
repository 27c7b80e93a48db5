// Package metrics exposes run and resolver counters to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"reactiontest/internal/gamedata"
	"reactiontest/internal/i18n"
)

var _ gamedata.Observer = (*Recorder)(nil)

// Recorder owns a private registry so several servers (and tests) can run in
// one process.
type Recorder struct {
	registry *prometheus.Registry

	runsStarted    prometheus.Counter
	runsFinished   *prometheus.CounterVec
	stimuli        *prometheus.CounterVec
	reactions      prometheus.Histogram
	resolutions    *prometheus.CounterVec
	activeSessions prometheus.Gauge
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reactiontest_runs_started_total",
			Help: "Runs started or restarted.",
		}),
		runsFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reactiontest_runs_finished_total",
			Help: "Runs that reached the finished state, by reason.",
		}, []string{"reason"}),
		stimuli: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reactiontest_stimuli_shown_total",
			Help: "Stimuli shown, by whether a decoy accompanied the target.",
		}, []string{"decoy"}),
		reactions: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "reactiontest_reaction_seconds",
			Help:    "Recorded reaction times.",
			Buckets: []float64{0.15, 0.25, 0.35, 0.45, 0.6, 1, 2},
		}),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reactiontest_language_resolutions_total",
			Help: "Language resolutions, by deciding source.",
		}, []string{"source"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "reactiontest_active_sessions",
			Help: "Sessions currently held in memory.",
		}),
	}
	r.registry.MustRegister(
		r.runsStarted,
		r.runsFinished,
		r.stimuli,
		r.reactions,
		r.resolutions,
		r.activeSessions,
		collectors.NewGoCollector(),
	)
	return r
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Recorder) RunStarted() {
	r.runsStarted.Inc()
}

func (r *Recorder) StimulusShown(round int, decoy bool) {
	label := "false"
	if decoy {
		label = "true"
	}
	r.stimuli.WithLabelValues(label).Inc()
}

func (r *Recorder) ReactionRecorded(round int, d time.Duration) {
	r.reactions.Observe(d.Seconds())
}

func (r *Recorder) RunFinished(reason gamedata.FinishReason, samples []time.Duration) {
	r.runsFinished.WithLabelValues(string(reason)).Inc()
}

func (r *Recorder) LanguageResolved(src i18n.Source) {
	r.resolutions.WithLabelValues(string(src)).Inc()
}

func (r *Recorder) SessionOpened() {
	r.activeSessions.Inc()
}

func (r *Recorder) SessionClosed() {
	r.activeSessions.Dec()
}
