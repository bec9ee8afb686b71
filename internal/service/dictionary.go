package service

import (
	"context"
	"fmt"
	"strings"

	"learnwords/internal/domain/entities"
	"learnwords/internal/repository"
)

// DictionaryService handles the add-word flow: validation, duplicate
// checks and appending to the user's dictionary.
type DictionaryService struct {
	words     WordRepository
	validator *Validator
}

func NewDictionaryService(words WordRepository, validator *Validator) *DictionaryService {
	return &DictionaryService{
		words:     words,
		validator: validator,
	}
}

// AddWord validates and stores a new entry. Inputs are trimmed and
// lowercased before validation. Returns repository.ErrDuplicateWord
// when the original already exists (case-insensitive).
func (s *DictionaryService) AddWord(
	ctx context.Context, userID int64, original, translation string, kind entities.WordKind,
) (*entities.Word, error) {
	original = strings.ToLower(strings.TrimSpace(original))
	translation = strings.ToLower(strings.TrimSpace(translation))

	if err := s.validator.ValidateOriginal(original, kind); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateTranslation(translation); err != nil {
		return nil, err
	}

	exists, err := s.words.Exists(ctx, userID, original)
	if err != nil {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}
	if exists {
		return nil, repository.ErrDuplicateWord
	}

	word := entities.NewWord(original, translation, kind)
	if err := s.words.Append(ctx, userID, word); err != nil {
		return nil, fmt.Errorf("append word: %w", err)
	}

	return &word, nil
}

// Words returns the user's full dictionary.
func (s *DictionaryService) Words(ctx context.Context, userID int64) ([]entities.Word, error) {
	return s.words.Load(ctx, userID)
}
