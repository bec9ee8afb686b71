package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnwords/internal/domain/entities"
	"learnwords/internal/service"
)

func TestValidator_ValidateOriginal(t *testing.T) {
	v := service.NewValidator()

	tests := []struct {
		name     string
		original string
		kind     entities.WordKind
		wantErr  error
	}{
		{name: "valid word", original: "cat", kind: entities.KindWord},
		{name: "valid phrase", original: "good morning", kind: entities.KindPhrase},
		{name: "valid expression", original: "to make a long story short", kind: entities.KindExpression},
		{name: "empty", original: "   ", kind: entities.KindWord, wantErr: service.ErrEmptyInput},
		{name: "cyrillic original", original: "кошка", kind: entities.KindWord, wantErr: service.ErrNotLatin},
		{name: "digits", original: "cat2", kind: entities.KindWord, wantErr: service.ErrNotLatin},
		{name: "two words for kind word", original: "good morning", kind: entities.KindWord, wantErr: service.ErrWordCountMismatch},
		{name: "one word for kind phrase", original: "cat", kind: entities.KindPhrase, wantErr: service.ErrWordCountMismatch},
		{name: "two words for kind expression", original: "good morning", kind: entities.KindExpression, wantErr: service.ErrWordCountMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateOriginal(tt.original, tt.kind)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidator_ValidateTranslation(t *testing.T) {
	v := service.NewValidator()

	tests := []struct {
		name        string
		translation string
		wantErr     error
	}{
		{name: "valid", translation: "кошка"},
		{name: "with yo", translation: "ёж"},
		{name: "multi word", translation: "доброе утро"},
		{name: "empty", translation: "", wantErr: service.ErrEmptyInput},
		{name: "latin translation", translation: "cat", wantErr: service.ErrNotCyrillic},
		{name: "mixed", translation: "кошka", wantErr: service.ErrNotCyrillic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateTranslation(tt.translation)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestWordKind_MatchesCount(t *testing.T) {
	require.True(t, entities.KindWord.MatchesCount(1))
	require.False(t, entities.KindWord.MatchesCount(2))
	require.True(t, entities.KindPhrase.MatchesCount(2))
	require.False(t, entities.KindPhrase.MatchesCount(3))
	require.True(t, entities.KindExpression.MatchesCount(3))
	require.True(t, entities.KindExpression.MatchesCount(7))
	require.False(t, entities.KindExpression.MatchesCount(2))
}
