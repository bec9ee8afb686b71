package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"learnwords/internal/domain/entities"
	"learnwords/internal/repository"
)

// SettingsRepository stores one key=value settings file per user.
type SettingsRepository struct {
	dir string
}

// NewSettingsRepository creates the data directory if needed.
func NewSettingsRepository(dir string) (*SettingsRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &SettingsRepository{dir: dir}, nil
}

func (r *SettingsRepository) path(userID int64) string {
	return filepath.Join(r.dir, fmt.Sprintf("settings_%d.txt", userID))
}

// Get loads the user's settings.
// Returns repository.ErrSettingsNotFound when no file exists yet.
// Unknown keys and unparsable values fall back to defaults.
func (r *SettingsRepository) Get(_ context.Context, userID int64) (*entities.UserSettings, error) {
	data, err := os.ReadFile(r.path(userID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, repository.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("read settings file: %w", err)
	}

	settings := entities.NewUserSettings()
	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "quiz_length":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				settings.QuizLength = n
			}
		case "filter":
			if f, ok := entities.ParseKindFilter(value); ok {
				settings.Filter = f
			}
		}
	}

	return settings, nil
}

// Save persists the user's settings, replacing the previous file.
func (r *SettingsRepository) Save(_ context.Context, userID int64, settings *entities.UserSettings) error {
	content := fmt.Sprintf("quiz_length=%d\nfilter=%s\n", settings.QuizLength, settings.Filter)

	if err := os.WriteFile(r.path(userID), []byte(content), 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}
