package mem

import (
	"sync"
	"time"
)

// RevocationStore remembers session token ids that were logged out until
// the token would have expired anyway.
type RevocationStore interface {
	Revoke(tokenID string, until time.Time)
	IsRevoked(tokenID string) bool
	// Sweep drops entries past their expiry and returns how many it removed.
	Sweep() int
}

type RevokedSessions struct {
	mu   sync.RWMutex
	data map[string]time.Time
	now  func() time.Time
}

func NewRevokedSessions() *RevokedSessions {
	return &RevokedSessions{
		data: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (s *RevokedSessions) Revoke(tokenID string, until time.Time) {
	if tokenID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[tokenID] = until
}

func (s *RevokedSessions) IsRevoked(tokenID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	until, ok := s.data[tokenID]
	if !ok {
		return false
	}
	return s.now().Before(until)
}

func (s *RevokedSessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, until := range s.data {
		if !now.Before(until) {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}
