package service

import (
	"context"

	"learnwords/internal/domain/entities"
)

// WordRepository is the storage contract for one user's dictionary.
// Load never fails for a user without a dictionary; it returns an
// empty list. Save atomically replaces the full persisted set.
type WordRepository interface {
	Load(ctx context.Context, userID int64) ([]entities.Word, error)
	Save(ctx context.Context, userID int64, words []entities.Word) error
	Append(ctx context.Context, userID int64, word entities.Word) error
	Exists(ctx context.Context, userID int64, original string) (bool, error)
}

// SettingsRepository is the storage contract for per-user settings.
// Get returns repository.ErrSettingsNotFound for users without
// persisted settings.
type SettingsRepository interface {
	Get(ctx context.Context, userID int64) (*entities.UserSettings, error)
	Save(ctx context.Context, userID int64, settings *entities.UserSettings) error
}
