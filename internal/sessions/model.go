package sessions

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"reactiontest/internal/broadcast"
	"reactiontest/internal/events"
	"reactiontest/internal/gamedata"
	"reactiontest/internal/i18n"
	"reactiontest/internal/wshub"
)

// Session is one browser's run, its outbound streams and its language.
type Session struct {
	ID          string
	Game        *gamedata.Game
	Broadcaster *broadcast.Broadcaster
	Hub         *wshub.Hub
	CreatedAt   time.Time

	mu       sync.Mutex
	lang     i18n.Language
	lastSeen time.Time
}

func (s *Session) Lang() i18n.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// SetLang switches the language used for status lines sent from now on.
func (s *Session) SetLang(lang i18n.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lang = lang
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

// Message wraps ev with the localized status line.
func (s *Session) Message(ev events.StateEvent) wshub.ServerMessage {
	tr := i18n.Lookup(s.Lang())
	return wshub.ServerMessage{
		Type:   "state",
		State:  &ev,
		Status: tr.Status(ev.State, ev.Reason, ev.Round, ev.TotalRounds),
	}
}

func (s *Session) encode(ev events.StateEvent) (string, error) {
	data, err := json.Marshal(s.Message(ev))
	if err != nil {
		return "", fmt.Errorf("encoding state message: %w", err)
	}
	return string(data), nil
}
