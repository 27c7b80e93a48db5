package server

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"reactiontest/internal/analytics"
	"reactiontest/internal/i18n"
	"reactiontest/internal/metrics"
	"reactiontest/internal/sessions"
	"reactiontest/internal/targets"
	"reactiontest/internal/wshub"
)

const (
	sessionCookie = "session_id"

	// maxClientMs caps client-measured reaction times before conversion.
	maxClientMs = 60000
)

type Server struct {
	Sessions *sessions.Store
	Resolver *i18n.Resolver
	Tmpl     *template.Template
	Metrics  *metrics.Recorder // nil if metrics are disabled
	BaseURL  string
}

type gradeRow struct {
	Label string
	Color string
	Text  i18n.GradeText
}

type pageData struct {
	Lang      i18n.Language
	Meta      i18n.PageMeta
	JSONLD    template.JS
	T         i18n.Translation
	Current   i18n.Info
	Languages []i18n.Info
	Grades    []gradeRow
	Status    string
	StateJSON string
	Diameter  int
}

// playResponse answers every command with whether it changed the run and
// the run as it now stands.
type playResponse struct {
	Accepted bool `json:"accepted"`
	wshub.ServerMessage
}

// getSession resolves the current session from the session cookie.
func (s *Server) getSession(r *http.Request) *sessions.Session {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil
	}
	sess, err := s.Sessions.Get(cookie.Value)
	if err != nil {
		return nil
	}
	return sess
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	lang, src := s.Resolver.Resolve(r.Context(), r)
	log.Printf("[Handle:Home] resolved %s from %s\n", lang, src)
	http.Redirect(w, r, "/"+string(lang), http.StatusFound)
}

func (s *Server) handleGame(w http.ResponseWriter, r *http.Request) {
	lang, src := s.Resolver.Resolve(r.Context(), r)
	if src != i18n.SourcePath {
		// Unsupported prefix: send the browser to the language it resolved to.
		http.Redirect(w, r, "/"+string(lang), http.StatusFound)
		return
	}

	sess := s.getSession(r)
	if sess == nil {
		var err error
		sess, err = s.Sessions.Create(lang)
		if err != nil {
			log.Println(err)
			http.Error(w, "Failed to create session", http.StatusInternalServerError)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    sess.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	sess.SetLang(lang)

	msg := sess.Message(sess.Game.Snapshot())
	stateJSON, err := json.Marshal(msg)
	if err != nil {
		log.Println(err)
		http.Error(w, "Error encoding state", http.StatusInternalServerError)
		return
	}

	tr := i18n.Lookup(lang)
	meta := i18n.Meta(s.BaseURL, lang)
	data := pageData{
		Lang:      lang,
		Meta:      meta,
		JSONLD:    template.JS(meta.JSONLD),
		T:         tr,
		Current:   i18n.InfoFor(lang),
		Languages: i18n.Languages,
		Status:    msg.Status,
		StateJSON: string(stateJSON),
		Diameter:  targets.Diameter,
	}
	for i, g := range analytics.Grades {
		data.Grades = append(data.Grades, gradeRow{
			Label: g.RangeLabel(),
			Color: g.Color,
			Text:  tr.Grades[i],
		})
	}

	w.Header().Set("Content-Language", string(lang))
	if err := s.Tmpl.ExecuteTemplate(w, "game", data); err != nil {
		log.Println(err)
		http.Error(w, "Error rendering game view", http.StatusInternalServerError)
	}
}

// apply runs one play-surface command against the session's game.
func (s *Server) apply(sess *sessions.Session, msg wshub.ClientMessage) bool {
	g := sess.Game
	switch msg.Type {
	case wshub.TypeStart, wshub.TypeRestart:
		return g.Start()
	case wshub.TypeResize:
		g.Resize(targets.Surface{Width: msg.W, Height: msg.H})
		return true
	case wshub.TypeHit:
		switch targets.Kind(msg.Kind) {
		case targets.KindTarget:
			return g.HitTargetAfter(clientDelta(msg.Ms))
		case targets.KindDecoy:
			return g.HitDecoy()
		}
	}
	return false
}

// clientDelta converts a client-measured reaction time in milliseconds. Zero
// means none was sent or it was unusable.
func clientDelta(ms float64) time.Duration {
	if !isFinite(ms) || ms <= 0 || ms > maxClientMs {
		return 0
	}
	return time.Duration(ms * float64(time.Millisecond))
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func (s *Server) respond(w http.ResponseWriter, sess *sessions.Session, accepted bool) {
	resp := playResponse{
		Accepted:      accepted,
		ServerMessage: sess.Message(sess.Game.Snapshot()),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Println(err)
	}
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	sess := s.getSession(r)
	if sess == nil {
		http.Error(w, "Session not found", http.StatusBadRequest)
		return
	}
	s.respond(w, sess, s.apply(sess, wshub.ClientMessage{Type: wshub.TypeStart}))
}

func (s *Server) handleSurface(w http.ResponseWriter, r *http.Request) {
	sess := s.getSession(r)
	if sess == nil {
		http.Error(w, "Session not found", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	width, err := strconv.ParseFloat(r.FormValue("w"), 64)
	if err != nil || width < 0 || !isFinite(width) {
		http.Error(w, "Invalid width", http.StatusBadRequest)
		return
	}
	height, err := strconv.ParseFloat(r.FormValue("h"), 64)
	if err != nil || height < 0 || !isFinite(height) {
		http.Error(w, "Invalid height", http.StatusBadRequest)
		return
	}
	s.respond(w, sess, s.apply(sess, wshub.ClientMessage{Type: wshub.TypeResize, W: width, H: height}))
}

func (s *Server) handleHit(w http.ResponseWriter, r *http.Request) {
	sess := s.getSession(r)
	if sess == nil {
		http.Error(w, "Session not found", http.StatusBadRequest)
		return
	}
	kind := targets.Kind(r.PathValue("kind"))
	if kind != targets.KindTarget && kind != targets.KindDecoy {
		http.Error(w, "Invalid target kind", http.StatusNotFound)
		return
	}
	msg := wshub.ClientMessage{Type: wshub.TypeHit, Kind: string(kind)}
	if v := r.FormValue("ms"); v != "" {
		ms, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "Invalid reaction time", http.StatusBadRequest)
			return
		}
		msg.Ms = ms
	}
	s.respond(w, sess, s.apply(sess, msg))
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	sess := s.getSession(r)
	if sess == nil {
		http.Error(w, "Session not found", http.StatusBadRequest)
		return
	}
	s.respond(w, sess, true)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	sess := s.getSession(r)
	if sess == nil {
		http.Error(w, "Session not found", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	msgChan := sess.Broadcaster.Subscribe()
	defer sess.Broadcaster.Unsubscribe(msgChan)

	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg, ok := <-msgChan:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: %s\n", msg.Event)
			for _, line := range strings.Split(msg.Msg, "\n") {
				fmt.Fprintf(w, "data: %s\n", line)
			}
			fmt.Fprint(w, "\n")
			flusher.Flush()
		}
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"ok","sessions":%d}`, s.Sessions.Len())
}
