// Package file implements flat-file storage for dictionaries and settings.
// Each user owns one words file and one settings file under the data
// directory; the caller guarantees at most one in-flight call per user.
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

const wordColumns = 5

// WordRepository stores one pipe-delimited dictionary file per user:
// original|translation|kind|correct_answers|usage_count
type WordRepository struct {
	dir string
}

// NewWordRepository creates the data directory if needed.
func NewWordRepository(dir string) (*WordRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &WordRepository{dir: dir}, nil
}

func (r *WordRepository) path(userID int64) string {
	return filepath.Join(r.dir, fmt.Sprintf("words_%d.txt", userID))
}

// Load returns all entries of the user's dictionary.
// A missing file means an empty dictionary, not an error.
// Malformed lines are skipped.
func (r *WordRepository) Load(_ context.Context, userID int64) ([]entities.Word, error) {
	data, err := os.ReadFile(r.path(userID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read words file: %w", err)
	}

	var words []entities.Word
	for _, line := range strings.Split(string(data), "\n") {
		w, ok := parseLine(line)
		if !ok {
			continue
		}
		words = append(words, w)
	}

	return words, nil
}

// Save atomically replaces the user's dictionary: the new content is
// written to a temporary file and renamed over the old one.
func (r *WordRepository) Save(_ context.Context, userID int64, words []entities.Word) error {
	var sb strings.Builder
	for _, w := range words {
		sb.WriteString(formatLine(w))
	}

	path := r.path(userID)
	tmp, err := os.CreateTemp(r.dir, "words_*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.WriteString(sb.String()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write words file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close words file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace words file: %w", err)
	}

	return nil
}

// Append adds a single entry to the end of the user's dictionary.
// Returns repository.ErrDuplicateWord if the original already exists.
func (r *WordRepository) Append(ctx context.Context, userID int64, word entities.Word) error {
	exists, err := r.Exists(ctx, userID, word.Original)
	if err != nil {
		return err
	}
	if exists {
		return repository.ErrDuplicateWord
	}

	f, err := os.OpenFile(r.path(userID), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open words file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(formatLine(word)); err != nil {
		return fmt.Errorf("append word: %w", err)
	}

	return nil
}

// Exists reports whether the user's dictionary already contains an entry
// with the given original text, compared case-insensitively.
func (r *WordRepository) Exists(ctx context.Context, userID int64, original string) (bool, error) {
	words, err := r.Load(ctx, userID)
	if err != nil {
		return false, err
	}

	for _, w := range words {
		if w.SameOriginal(original) {
			return true, nil
		}
	}

	return false, nil
}

func formatLine(w entities.Word) string {
	return fmt.Sprintf("%s|%s|%s|%d|%d\n",
		w.Original, w.Translation, w.Kind, w.CorrectAnswers, w.UsageCount)
}

func parseLine(line string) (entities.Word, bool) {
	parts := strings.Split(strings.TrimRight(line, "\r"), "|")
	if len(parts) != wordColumns {
		return entities.Word{}, false
	}

	original := strings.TrimSpace(parts[0])
	translation := strings.TrimSpace(parts[1])
	if original == "" || translation == "" {
		return entities.Word{}, false
	}

	kind, ok := entities.ParseWordKind(strings.TrimSpace(parts[2]))
	if !ok {
		return entities.Word{}, false
	}

	correct, err := strconv.Atoi(strings.TrimSpace(parts[3]))
	if err != nil || correct < 0 {
		correct = 0
	}
	usage, err := strconv.Atoi(strings.TrimSpace(parts[4]))
	if err != nil || usage < 0 {
		usage = 0
	}

	return entities.Word{
		Original:       original,
		Translation:    translation,
		Kind:           kind,
		CorrectAnswers: correct,
		UsageCount:     usage,
	}, true
}
