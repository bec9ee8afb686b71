package service

import "errors"

var (
	// ErrEmptyDictionary is returned by Statistics when the user has no words.
	ErrEmptyDictionary = errors.New("dictionary is empty")

	// ErrNothingToLearn is returned by NextQuestion when no entry matches
	// the current mastery and kind filters.
	ErrNothingToLearn = errors.New("nothing to learn")

	// ErrNoActiveQuestion is returned when an answer is submitted while
	// no question is outstanding.
	ErrNoActiveQuestion = errors.New("no active question")

	// ErrSessionFinished is returned when a completed training session
	// is started or answered again. Sessions are single-use.
	ErrSessionFinished = errors.New("training session already finished")
)

// Validation errors of the add-word flow. All are recoverable: the
// caller prompts the user to retry.
var (
	ErrEmptyInput        = errors.New("input is empty")
	ErrNotLatin          = errors.New("original text must contain only latin letters")
	ErrNotCyrillic       = errors.New("translation must contain only cyrillic letters")
	ErrWordCountMismatch = errors.New("word count does not match the chosen kind")
)
