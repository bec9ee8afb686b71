package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"learnwords/internal/domain/entities"
	"learnwords/internal/service"
	"learnwords/internal/storage"
)

func TestSessionStorage(t *testing.T) {
	s := storage.NewSessionStorage()

	assert.Nil(t, s.Get(1))

	session := service.NewTrainingSession(nil)
	s.Store(1, session)
	assert.Same(t, session, s.Get(1))
	assert.Nil(t, s.Get(2))

	s.Delete(1)
	assert.Nil(t, s.Get(1))

	// Deleting a missing session is a no-op.
	s.Delete(1)
}

func TestDraftStorage(t *testing.T) {
	s := storage.NewDraftStorage()

	assert.Nil(t, s.Get(1))

	draft := &storage.WordDraft{Step: storage.StepOriginal, Kind: entities.KindPhrase}
	s.Store(1, draft)

	got := s.Get(1)
	assert.Same(t, draft, got)

	// Mutations through the pointer are visible to the next reader.
	got.Step = storage.StepTranslation
	got.Original = "good morning"
	assert.Equal(t, storage.StepTranslation, s.Get(1).Step)

	s.Delete(1)
	assert.Nil(t, s.Get(1))
}
