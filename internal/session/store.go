package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

type entry struct {
	state    State
	lastSeen time.Time
}

// Store keeps one State per session id in memory.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	now      func() time.Time
}

func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		sessions: make(map[string]*entry),
		now:      now,
	}
}

func (s *Store) Now() time.Time {
	return s.now()
}

func (s *Store) Create() (string, State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	now := s.now()
	state := NewState(now)
	s.sessions[id] = &entry{state: state, lastSeen: now}
	return id, state
}

func (s *Store) Get(id string) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return State{}, false
	}
	e.lastSeen = s.now()
	return e.state, true
}

// Dispatch applies the actions in order. Either all of them take effect or,
// on the first rejected action, none do.
func (s *Store) Dispatch(id string, actions ...Action) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return State{}, ErrNotFound
	}

	next := e.state
	for _, a := range actions {
		var err error
		if next, err = Reduce(next, a); err != nil {
			return e.state, err
		}
	}

	e.state = next
	e.lastSeen = s.now()
	return next, nil
}

// Prune drops sessions idle for longer than maxIdle and returns how many were removed.
func (s *Store) Prune(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	removed := 0
	for id, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
