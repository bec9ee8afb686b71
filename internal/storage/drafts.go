package storage

import (
	"sync"

	"learnwords/internal/domain/entities"
)

// DraftStep is the current step of an add-word conversation.
type DraftStep int

const (
	StepKind DraftStep = iota // waiting for the entry kind
	StepOriginal              // waiting for the source-language text
	StepTranslation           // waiting for the translation
)

// WordDraft accumulates a new dictionary entry across messages.
type WordDraft struct {
	Step     DraftStep
	Kind     entities.WordKind
	Original string
}

// DraftStorage keeps at most one add-word draft per chat.
type DraftStorage struct {
	mu     sync.RWMutex
	drafts map[int64]*WordDraft
}

// NewDraftStorage creates an empty draft table.
func NewDraftStorage() *DraftStorage {
	return &DraftStorage{
		drafts: make(map[int64]*WordDraft),
	}
}

// Store saves the draft for a chat.
func (s *DraftStorage) Store(chatID int64, draft *WordDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[chatID] = draft
}

// Get retrieves the draft for a chat, or nil.
func (s *DraftStorage) Get(chatID int64) *WordDraft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.drafts[chatID]
}

// Delete removes the draft for a chat.
func (s *DraftStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, chatID)
}
