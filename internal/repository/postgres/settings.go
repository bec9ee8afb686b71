package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"learnwords/internal/domain/entities"
	"learnwords/internal/repository"
)

// SettingsRepository stores per-user training settings.
type SettingsRepository struct {
	db *pgxpool.Pool
}

func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get retrieves settings by user ID.
// Returns repository.ErrSettingsNotFound if settings don't exist.
func (r *SettingsRepository) Get(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	query := `
        SELECT quiz_length, filter
        FROM user_settings
        WHERE user_id = $1
    `

	var settings entities.UserSettings
	var filter string
	err := r.db.QueryRow(ctx, query, userID).Scan(&settings.QuizLength, &filter)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get settings by user id: %w", err)
	}

	if f, ok := entities.ParseKindFilter(filter); ok {
		settings.Filter = f
	} else {
		settings.Filter = entities.FilterAll
	}

	return &settings, nil
}

// Save upserts the user's settings.
func (r *SettingsRepository) Save(ctx context.Context, userID int64, settings *entities.UserSettings) error {
	query := `
        INSERT INTO user_settings (user_id, quiz_length, filter, created_at, updated_at)
        VALUES ($1, $2, $3, NOW(), NOW())
        ON CONFLICT (user_id) DO UPDATE
        SET quiz_length = EXCLUDED.quiz_length,
            filter = EXCLUDED.filter,
            updated_at = NOW()
    `

	if _, err := r.db.Exec(ctx, query, userID, settings.QuizLength, string(settings.Filter)); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	return nil
}
