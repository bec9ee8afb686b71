// Package storage provides in-memory per-chat state for the transport
// layer: active training sessions and add-word drafts.
package storage

import (
	"sync"

	"learnwords/internal/service"
)

// SessionStorage keeps at most one active training session per chat.
// This is what serializes training: a chat with a stored session is
// mid-run, and a new one cannot start until it completes.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*service.TrainingSession
}

// NewSessionStorage creates an empty session table.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]*service.TrainingSession),
	}
}

// Store saves the active session for a chat.
func (s *SessionStorage) Store(chatID int64, session *service.TrainingSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = session
}

// Get retrieves the active session for a chat, or nil.
func (s *SessionStorage) Get(chatID int64) *service.TrainingSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[chatID]
}

// Delete removes the session for a chat.
func (s *SessionStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}
