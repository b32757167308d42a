package session

import (
	"sync"

	"github.com/mkorchagin/ConsultBooker/internal/domain"
)

// Store keeps per-user conversation state in memory. State here is
// deliberately ephemeral: the persisted slot status is the source of truth,
// so losing sessions on restart only costs the user a restart of the dialog.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]domain.Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[int64]domain.Session)}
}

func (s *Store) Get(userID int64) (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[userID]
	return sess, ok
}

func (s *Store) SetAwaitingProof(userID, slotID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[userID] = domain.Session{
		Stage:  domain.StageAwaitingProof,
		SlotID: slotID,
	}
}

func (s *Store) SetAwaitingSlotTime(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[userID] = domain.Session{Stage: domain.StageAwaitingSlotTime}
}

func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
}
