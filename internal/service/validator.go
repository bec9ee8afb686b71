package service

import (
	"strings"

	"learnwords/internal/domain/entities"
)

// Validator checks new dictionary entries before they are stored.
// Originals must be Latin, translations Cyrillic; spaces separate
// words, and the word count must match the declared kind.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateOriginal checks the source-language text against the kind.
func (v *Validator) ValidateOriginal(original string, kind entities.WordKind) error {
	original = strings.TrimSpace(original)
	if original == "" {
		return ErrEmptyInput
	}
	if !isLatin(original) {
		return ErrNotLatin
	}
	if !kind.MatchesCount(len(strings.Fields(original))) {
		return ErrWordCountMismatch
	}

	return nil
}

// ValidateTranslation checks the target-language text.
func (v *Validator) ValidateTranslation(translation string) error {
	translation = strings.TrimSpace(translation)
	if translation == "" {
		return ErrEmptyInput
	}
	if !isCyrillic(translation) {
		return ErrNotCyrillic
	}

	return nil
}

func isLatin(s string) bool {
	for _, r := range s {
		if r == ' ' {
			continue
		}
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

func isCyrillic(s string) bool {
	for _, r := range s {
		if r == ' ' || r == 'ё' || r == 'Ё' {
			continue
		}
		if (r < 'а' || r > 'я') && (r < 'А' || r > 'Я') {
			return false
		}
	}
	return true
}
