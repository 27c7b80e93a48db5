package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"reactiontest/internal/gamedata"
	"reactiontest/internal/i18n"
)

func scrape(t *testing.T, r *Recorder) string {
	t.Helper()
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(body)
}

func TestRecorder_Run(t *testing.T) {
	r := NewRecorder()
	r.RunStarted()
	r.RunStarted()
	r.StimulusShown(1, false)
	r.StimulusShown(3, true)
	r.ReactionRecorded(1, 240*time.Millisecond)
	r.RunFinished(gamedata.ReasonDecoy, nil)

	out := scrape(t, r)
	for _, want := range []string{
		"reactiontest_runs_started_total 2",
		`reactiontest_runs_finished_total{reason="decoy"} 1`,
		`reactiontest_stimuli_shown_total{decoy="true"} 1`,
		`reactiontest_stimuli_shown_total{decoy="false"} 1`,
		`reactiontest_reaction_seconds_bucket{le="0.25"} 1`,
		"reactiontest_reaction_seconds_count 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestRecorder_SessionsAndResolutions(t *testing.T) {
	r := NewRecorder()
	r.SessionOpened()
	r.SessionOpened()
	r.SessionClosed()
	r.LanguageResolved(i18n.SourceGeo)

	out := scrape(t, r)
	if !strings.Contains(out, "reactiontest_active_sessions 1") {
		t.Error("active sessions gauge should be 1")
	}
	if !strings.Contains(out, `reactiontest_language_resolutions_total{source="geo"} 1`) {
		t.Error("geo resolution not counted")
	}
}

func TestNewRecorder_Independent(t *testing.T) {
	a := NewRecorder()
	b := NewRecorder()
	a.RunStarted()

	if strings.Contains(scrape(t, b), "reactiontest_runs_started_total 1") {
		t.Error("recorders should not share a registry")
	}
}
