// Package entities contains domain entities used across the application.
package entities

import "strings"

// WordKind classifies a dictionary entry by the number of words
// in its original text.
type WordKind string

const (
	KindWord       WordKind = "word"       // a single word
	KindPhrase     WordKind = "phrase"     // two words
	KindExpression WordKind = "expression" // three or more words
)

const (
	// MasteryThreshold is the number of correct answers after which
	// a word is considered learned.
	MasteryThreshold = 3

	// DistractorCount is the number of wrong choices offered alongside
	// the correct translation.
	DistractorCount = 3
)

// Word represents one dictionary entry of a user.
// Original is unique within a user's dictionary (case-insensitive).
type Word struct {
	Original       string   // text in the source language (Latin alphabet)
	Translation    string   // text in the target language (Cyrillic alphabet)
	Kind           WordKind // derived from the word count of Original at creation
	CorrectAnswers int      // cumulative correct answers, never negative
	UsageCount     int      // times the word was presented as a learning target
}

// NewWord creates a dictionary entry with zeroed counters.
func NewWord(original, translation string, kind WordKind) Word {
	return Word{
		Original:    original,
		Translation: translation,
		Kind:        kind,
	}
}

// IsLearned reports whether the word reached the mastery threshold.
func (w Word) IsLearned() bool {
	return w.CorrectAnswers >= MasteryThreshold
}

// WordCount returns the number of space-separated words in Original.
func (w Word) WordCount() int {
	return len(strings.Fields(w.Original))
}

// SameOriginal reports whether the entry has the given original text,
// compared case-insensitively. Original is the stable key of an entry.
func (w Word) SameOriginal(original string) bool {
	return strings.EqualFold(w.Original, original)
}

// KindForWordCount derives the entry kind from a word count.
// Returns false for non-positive counts.
func KindForWordCount(n int) (WordKind, bool) {
	switch {
	case n <= 0:
		return "", false
	case n == 1:
		return KindWord, true
	case n == 2:
		return KindPhrase, true
	default:
		return KindExpression, true
	}
}

// MatchesCount reports whether a word count is valid for the kind:
// exactly one word for KindWord, exactly two for KindPhrase and
// three or more for KindExpression.
func (k WordKind) MatchesCount(n int) bool {
	switch k {
	case KindWord:
		return n == 1
	case KindPhrase:
		return n == 2
	case KindExpression:
		return n >= 3
	default:
		return false
	}
}

// ParseWordKind parses a stored kind value.
func ParseWordKind(s string) (WordKind, bool) {
	switch WordKind(s) {
	case KindWord, KindPhrase, KindExpression:
		return WordKind(s), true
	default:
		return "", false
	}
}
