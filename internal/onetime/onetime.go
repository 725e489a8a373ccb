// Package onetime tracks which one-time quests a viewer has visited or
// claimed. State lives only in process memory and is scoped to a page
// session: rendering the quest page without a session starts a new one, so
// navigating away and back starts over.
package onetime

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"nexuraPortal/internal/types/quest"
)

type Status int

const (
	Pending Status = iota
	Visited
	Claimed
)

func (s Status) String() string {
	switch s {
	case Visited:
		return "visited"
	case Claimed:
		return "claimed"
	default:
		return "pending"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type session struct {
	visited  map[string]struct{}
	claimed  map[string]struct{}
	lastSeen time.Time
}

type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Begin starts an empty page session.
func (s *Store) Begin() uuid.UUID {
	id := uuid.New()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch(id)
	return id
}

// ParseSession validates a session id taken from a request.
func ParseSession(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid session id: %w", err)
	}
	return id, nil
}

// touch must be called with mu held.
func (s *Store) touch(id uuid.UUID) *session {
	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{
			visited: make(map[string]struct{}),
			claimed: make(map[string]struct{}),
		}
		s.sessions[id] = sess
	}
	sess.lastSeen = s.now()
	return sess
}

func (s *Store) Status(id uuid.UUID, taskID string) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Pending
	}
	return sess.status(taskID)
}

func (sess *session) status(taskID string) Status {
	if _, ok := sess.claimed[taskID]; ok {
		return Claimed
	}
	if _, ok := sess.visited[taskID]; ok {
		return Visited
	}
	return Pending
}

// Advance moves a task one step: pending to visited, visited to claimed.
// Claimed tasks stay claimed. It returns the status after the call and
// whether anything changed. Unknown sessions are created on demand.
func (s *Store) Advance(id uuid.UUID, taskID string) (Status, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.touch(id)
	switch sess.status(taskID) {
	case Pending:
		sess.visited[taskID] = struct{}{}
		return Visited, true
	case Visited:
		sess.claimed[taskID] = struct{}{}
		return Claimed, true
	default:
		return Claimed, false
	}
}

// Sweep drops sessions idle for longer than the ttl and returns how many
// were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
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

// Label is the button text for a one-time quest in the given status.
func Label(q quest.Quest, st Status) string {
	switch st {
	case Claimed:
		return "Completed"
	case Visited:
		return "Claim " + q.Reward.String()
	default:
		return q.ActionLabel
	}
}
