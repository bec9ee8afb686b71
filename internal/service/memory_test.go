package service_test

import (
	"context"
	"sync"

	"learnwords/internal/domain/entities"
	"learnwords/internal/repository"
)

// memWordRepo is an in-memory WordRepository for tests. Errors can be
// injected per operation.
type memWordRepo struct {
	mu    sync.Mutex
	words map[int64][]entities.Word

	loadErr error
	saveErr error
}

func newMemWordRepo(words ...entities.Word) *memWordRepo {
	r := &memWordRepo{words: make(map[int64][]entities.Word)}
	if len(words) > 0 {
		r.words[testUserID] = words
	}
	return r
}

func (r *memWordRepo) Load(_ context.Context, userID int64) ([]entities.Word, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	out := make([]entities.Word, len(r.words[userID]))
	copy(out, r.words[userID])
	return out, nil
}

func (r *memWordRepo) Save(_ context.Context, userID int64, words []entities.Word) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	stored := make([]entities.Word, len(words))
	copy(stored, words)
	r.words[userID] = stored
	return nil
}

func (r *memWordRepo) Append(_ context.Context, userID int64, word entities.Word) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.words[userID] {
		if w.SameOriginal(word.Original) {
			return repository.ErrDuplicateWord
		}
	}
	r.words[userID] = append(r.words[userID], word)
	return nil
}

func (r *memWordRepo) Exists(_ context.Context, userID int64, original string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.words[userID] {
		if w.SameOriginal(original) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memWordRepo) stored(userID int64) []entities.Word {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.words[userID]
}

// memSettingsRepo is an in-memory SettingsRepository for tests.
type memSettingsRepo struct {
	mu       sync.Mutex
	settings map[int64]entities.UserSettings
}

func newMemSettingsRepo() *memSettingsRepo {
	return &memSettingsRepo{settings: make(map[int64]entities.UserSettings)}
}

func (r *memSettingsRepo) Get(_ context.Context, userID int64) (*entities.UserSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.settings[userID]
	if !ok {
		return nil, repository.ErrSettingsNotFound
	}
	out := s
	return &out, nil
}

func (r *memSettingsRepo) Save(_ context.Context, userID int64, settings *entities.UserSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings[userID] = *settings
	return nil
}

const testUserID int64 = 42
