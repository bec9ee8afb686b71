package service

import (
	"math/rand"
	"sync"
	"time"
)

// TrainerRegistry hands out one long-lived Trainer per user, so that
// the single outstanding question of each user lives in exactly one
// place. The registry itself is safe for concurrent use; the trainers
// it returns are not.
type TrainerRegistry struct {
	mu       sync.Mutex
	words    WordRepository
	settings SettingsRepository
	rng      func() *rand.Rand
	trainers map[int64]*Trainer
}

// NewTrainerRegistry creates a registry over the given stores.
func NewTrainerRegistry(words WordRepository, settings SettingsRepository) *TrainerRegistry {
	return &TrainerRegistry{
		words:    words,
		settings: settings,
		rng: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		trainers: make(map[int64]*Trainer),
	}
}

// Trainer returns the user's trainer, creating it on first use.
func (r *TrainerRegistry) Trainer(userID int64) *Trainer {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.trainers[userID]
	if !ok {
		t = NewTrainer(userID, r.words, r.settings, r.rng())
		r.trainers[userID] = t
	}

	return t
}

// Remove drops the user's trainer, releasing its state.
func (r *TrainerRegistry) Remove(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.trainers, userID)
}
