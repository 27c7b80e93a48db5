package sessions

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"reactiontest/internal/broadcast"
	"reactiontest/internal/events"
	"reactiontest/internal/gamedata"
	"reactiontest/internal/i18n"
	"reactiontest/internal/scheduler"
	"reactiontest/internal/wshub"
)

const (
	DefaultTTL    = 1 * time.Hour
	sweepInterval = 5 * time.Minute
)

var ErrNotFound = errors.New("session not found")

// Observer receives game milestones and session lifecycle changes.
type Observer interface {
	gamedata.Observer
	SessionOpened()
	SessionClosed()
}

type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	schedCfg scheduler.Config
	gameCfg  gamedata.Config
	observer Observer
	ttl      time.Duration
	now      func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewStore starts a background sweep that tears down sessions idle for
// longer than ttl. observer may be nil.
func NewStore(schedCfg scheduler.Config, gameCfg gamedata.Config, ttl time.Duration, observer Observer) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &Store{
		sessions: make(map[string]*Session),
		schedCfg: schedCfg,
		gameCfg:  gameCfg,
		observer: observer,
		ttl:      ttl,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	go s.sweepStale()
	return s
}

func (s *Store) Create(lang i18n.Language) (*Session, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("generating session id: %w", err)
	}

	bus := events.NewBus()
	opts := []gamedata.Option{}
	if s.observer != nil {
		opts = append(opts, gamedata.WithObserver(s.observer))
	}
	game := gamedata.NewGame(scheduler.New(s.schedCfg, nil), bus, s.gameCfg, opts...)

	now := s.now()
	sess := &Session{
		ID:        id.String(),
		Game:      game,
		Hub:       wshub.NewHub(),
		CreatedAt: now,
		lang:      lang,
		lastSeen:  now,
	}
	sess.Broadcaster = broadcast.NewBroadcaster(bus, sess.encode, sess.Hub)

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	if s.observer != nil {
		s.observer.SessionOpened()
	}
	log.Printf("[Session] created %s (%s)\n", sess.ID, lang)
	return sess, nil
}

// Get returns the session and marks it as seen.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}
	sess.touch(s.now())
	return sess, nil
}

// Delete tears the session down: timer cancelled, streams closed.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if ok {
		s.teardown(sess)
	}
}

func (s *Store) List() []*Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		list = append(list, sess)
	}
	return list
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// SweepStale removes every session not seen since now-ttl and reports how
// many were removed.
func (s *Store) SweepStale(now time.Time) int {
	s.mu.Lock()
	var stale []*Session
	for id, sess := range s.sessions {
		if now.Sub(sess.LastSeen()) > s.ttl {
			stale = append(stale, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range stale {
		s.teardown(sess)
	}
	return len(stale)
}

// Close stops the sweeper and tears down every session.
func (s *Store) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
	s.mu.Lock()
	all := make([]*Session, 0, len(s.sessions))
	for id, sess := range s.sessions {
		all = append(all, sess)
		delete(s.sessions, id)
	}
	s.mu.Unlock()
	for _, sess := range all {
		s.teardown(sess)
	}
}

func (s *Store) teardown(sess *Session) {
	sess.Game.Teardown()
	sess.Hub.Close()
	if s.observer != nil {
		s.observer.SessionClosed()
	}
	log.Printf("[Session] closed %s\n", sess.ID)
}

func (s *Store) sweepStale() {
	interval := sweepInterval
	if s.ttl < 2*interval {
		interval = s.ttl / 2
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if n := s.SweepStale(s.now()); n > 0 {
				log.Printf("[Session] swept %d stale sessions\n", n)
			}
		}
	}
}
