// Package repository defines errors shared by the storage backends.
package repository

import "errors"

var (
	// ErrSettingsNotFound is returned when a user has no persisted settings yet.
	ErrSettingsNotFound = errors.New("settings not found")

	// ErrDuplicateWord is returned when appending an entry whose original
	// text already exists in the user's dictionary (case-insensitive).
	ErrDuplicateWord = errors.New("word already exists in the dictionary")
)
