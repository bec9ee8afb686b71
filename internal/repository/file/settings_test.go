package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnwords/internal/domain/entities"
	"learnwords/internal/repository"
	"learnwords/internal/repository/file"
)

func newSettingsRepo(t *testing.T) (*file.SettingsRepository, string) {
	t.Helper()
	dir := t.TempDir()
	repo, err := file.NewSettingsRepository(dir)
	require.NoError(t, err)
	return repo, dir
}

func TestSettingsRepository_GetMissing(t *testing.T) {
	repo, _ := newSettingsRepo(t)

	_, err := repo.Get(context.Background(), testUserID)
	require.ErrorIs(t, err, repository.ErrSettingsNotFound)
}

func TestSettingsRepository_SaveGet(t *testing.T) {
	repo, _ := newSettingsRepo(t)
	ctx := context.Background()

	want := &entities.UserSettings{QuizLength: 7, Filter: entities.FilterPhrase}
	require.NoError(t, repo.Save(ctx, testUserID, want))

	got, err := repo.Get(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsRepository_BadValuesFallBackToDefaults(t *testing.T) {
	repo, dir := newSettingsRepo(t)

	content := "quiz_length=zero\nfilter=everything\nnonsense line\nunknown_key=1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings_7.txt"), []byte(content), 0o644))

	got, err := repo.Get(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultQuizLength, got.QuizLength)
	assert.Equal(t, entities.FilterAll, got.Filter)
}

func TestSettingsRepository_NegativeQuizLengthIgnored(t *testing.T) {
	repo, dir := newSettingsRepo(t)

	content := "quiz_length=-5\nfilter=word\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings_7.txt"), []byte(content), 0o644))

	got, err := repo.Get(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultQuizLength, got.QuizLength)
	assert.Equal(t, entities.FilterWord, got.Filter)
}
