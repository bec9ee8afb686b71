package service

import (
	"context"
	"errors"
	"fmt"

	"learnwords/internal/domain/entities"
	"learnwords/internal/repository"
)

// SettingsService loads and mutates per-user training settings.
type SettingsService struct {
	repository SettingsRepository
}

func NewSettingsService(repository SettingsRepository) *SettingsService {
	return &SettingsService{repository: repository}
}

// GetOrCreate returns the user's settings, persisting defaults on
// first access.
func (s *SettingsService) GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	settings, err := s.repository.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			settings = entities.NewUserSettings()
			if err := s.repository.Save(ctx, userID, settings); err != nil {
				return nil, err
			}
			return settings, nil
		}
		return nil, err
	}

	return settings, nil
}

// UpdateQuizLength sets how many questions one training run asks and
// returns the updated settings.
func (s *SettingsService) UpdateQuizLength(ctx context.Context, userID int64, quizLength int) (*entities.UserSettings, error) {
	if quizLength <= 0 {
		return nil, fmt.Errorf("quiz length must be positive, got %d", quizLength)
	}

	settings, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings.QuizLength = quizLength

	if err := s.repository.Save(ctx, userID, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// UpdateFilter restricts training to one entry kind, or to all, and
// returns the updated settings.
func (s *SettingsService) UpdateFilter(ctx context.Context, userID int64, filter entities.KindFilter) (*entities.UserSettings, error) {
	settings, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings.Filter = filter

	if err := s.repository.Save(ctx, userID, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
