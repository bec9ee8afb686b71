// Package postgres implements dictionary and settings storage on PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"learnwords/internal/domain/entities"
	infra "learnwords/internal/infra/postgres"
	"learnwords/internal/repository"
)

// WordRepository stores dictionary entries in the words table.
type WordRepository struct {
	db *pgxpool.Pool
	tr *infra.Transactor
}

func NewWordRepository(db *pgxpool.Pool, tr *infra.Transactor) *WordRepository {
	return &WordRepository{db: db, tr: tr}
}

// Load returns all entries of the user's dictionary in insertion order.
func (r *WordRepository) Load(ctx context.Context, userID int64) ([]entities.Word, error) {
	query := `
        SELECT original, translation, kind, correct_answers, usage_count
        FROM words
        WHERE user_id = $1
        ORDER BY id
    `

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("load words: %w", err)
	}
	defer rows.Close()

	var words []entities.Word
	for rows.Next() {
		var w entities.Word
		var kind string
		if err := rows.Scan(&w.Original, &w.Translation, &kind, &w.CorrectAnswers, &w.UsageCount); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		w.Kind, _ = entities.ParseWordKind(kind)
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load words: %w", err)
	}

	return words, nil
}

// Save replaces the user's full dictionary in a single transaction.
func (r *WordRepository) Save(ctx context.Context, userID int64, words []entities.Word) error {
	return r.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM words WHERE user_id = $1`, userID); err != nil {
			return fmt.Errorf("clear words: %w", err)
		}

		if len(words) == 0 {
			return nil
		}

		_, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{"words"},
			[]string{"user_id", "original", "translation", "kind", "correct_answers", "usage_count"},
			pgx.CopyFromSlice(len(words), func(i int) ([]any, error) {
				w := words[i]
				return []any{userID, w.Original, w.Translation, string(w.Kind), w.CorrectAnswers, w.UsageCount}, nil
			}),
		)
		if err != nil {
			return fmt.Errorf("insert words: %w", err)
		}

		return nil
	})
}

// Append adds a single entry to the user's dictionary.
// Returns repository.ErrDuplicateWord if the original already exists.
func (r *WordRepository) Append(ctx context.Context, userID int64, word entities.Word) error {
	query := `
        INSERT INTO words (user_id, original, translation, kind, correct_answers, usage_count)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (user_id, lower(original)) DO NOTHING
    `

	cmdTag, err := r.db.Exec(ctx, query,
		userID, word.Original, word.Translation, string(word.Kind), word.CorrectAnswers, word.UsageCount)
	if err != nil {
		return fmt.Errorf("append word: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return repository.ErrDuplicateWord
	}

	return nil
}

// Exists reports whether the user's dictionary already contains an entry
// with the given original text, compared case-insensitively.
func (r *WordRepository) Exists(ctx context.Context, userID int64, original string) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM words
            WHERE user_id = $1 AND lower(original) = lower($2)
        )
    `

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, original).Scan(&exists); err != nil {
		return false, fmt.Errorf("check word exists: %w", err)
	}

	return exists, nil
}
