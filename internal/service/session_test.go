package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnwords/internal/domain/entities"
	"learnwords/internal/service"
)

func TestTrainingSession_FullRun(t *testing.T) {
	words := newMemWordRepo(
		word("cat", "кошка", 0, 4),
		word("dog", "собака", 0, 1),
		word("sun", "солнце", 0, 2),
	)
	trainer := newTestTrainer(words, newMemSettingsRepo(), 3)
	session := service.NewTrainingSession(trainer)

	completed := 0
	ctx := context.Background()

	question, err := session.Start(ctx, 2, func() { completed++ })
	require.NoError(t, err)
	require.NotNil(t, question)
	assert.Equal(t, service.StateAwaitingAnswer, session.State())

	// Start resets usage counters before the first pick.
	minUsage := question.Word.UsageCount
	assert.Equal(t, 1, minUsage)

	result, err := session.SubmitAnswer(ctx, question.CorrectIndex())
	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.False(t, result.Done)
	require.NotNil(t, result.Next)
	assert.Equal(t, 0, completed)

	result, err = session.SubmitAnswer(ctx, result.Next.CorrectIndex())
	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.True(t, result.Done)
	assert.Nil(t, result.Next)

	assert.Equal(t, service.StateComplete, session.State())
	assert.Equal(t, 2, session.Answered())
	assert.Equal(t, 2, session.Correct())
	assert.Equal(t, 1, completed)

	// Least-used selection drills two distinct words, one point each.
	mastered := 0
	for _, w := range words.stored(testUserID) {
		assert.LessOrEqual(t, w.CorrectAnswers, 1)
		mastered += w.CorrectAnswers
	}
	assert.Equal(t, 2, mastered)
}

func TestTrainingSession_WrongAnswerCarriesCorrection(t *testing.T) {
	words := newMemWordRepo(
		word("cat", "кошка", 0, 0),
		word("dog", "собака", 0, 0),
	)
	trainer := newTestTrainer(words, newMemSettingsRepo(), 1)
	session := service.NewTrainingSession(trainer)

	ctx := context.Background()

	question, err := session.Start(ctx, 3, nil)
	require.NoError(t, err)

	correctIndex := question.CorrectIndex()
	wrong := (correctIndex + 1) % len(question.Choices)

	result, err := session.SubmitAnswer(ctx, wrong)
	require.NoError(t, err)
	assert.False(t, result.Correct)
	assert.Equal(t, question.Word.Original, result.Word.Original)
	assert.Equal(t, correctIndex, result.CorrectIndex)
	assert.Equal(t, 1, session.Answered())
	assert.Equal(t, 0, session.Correct())
}

func TestTrainingSession_StartIsSingleUse(t *testing.T) {
	words := newMemWordRepo(word("cat", "кошка", 0, 0), word("dog", "собака", 0, 0))
	trainer := newTestTrainer(words, newMemSettingsRepo(), 1)
	session := service.NewTrainingSession(trainer)

	ctx := context.Background()

	_, err := session.Start(ctx, 1, nil)
	require.NoError(t, err)

	_, err = session.Start(ctx, 1, nil)
	require.ErrorIs(t, err, service.ErrSessionFinished)

	session.Cancel()
	_, err = session.Start(ctx, 1, nil)
	require.ErrorIs(t, err, service.ErrSessionFinished)
}

func TestTrainingSession_StartWithNothingToLearn(t *testing.T) {
	words := newMemWordRepo(word("cat", "кошка", entities.MasteryThreshold, 0))
	trainer := newTestTrainer(words, newMemSettingsRepo(), 1)
	session := service.NewTrainingSession(trainer)

	completed := 0
	_, err := session.Start(context.Background(), 2, func() { completed++ })
	require.ErrorIs(t, err, service.ErrNothingToLearn)

	assert.Equal(t, service.StateComplete, session.State())
	assert.Equal(t, 1, completed)
}

func TestTrainingSession_StartWithEmptyDictionary(t *testing.T) {
	trainer := newTestTrainer(newMemWordRepo(), newMemSettingsRepo(), 1)
	session := service.NewTrainingSession(trainer)

	completed := 0
	_, err := session.Start(context.Background(), 2, func() { completed++ })
	require.ErrorIs(t, err, service.ErrEmptyDictionary)

	assert.Equal(t, service.StateComplete, session.State())
	assert.Equal(t, 1, completed)
}

func TestTrainingSession_PoolExhaustedMidRun(t *testing.T) {
	// A single unlearned word two answers short of mastery: the pool
	// dries up before the requested length is reached.
	words := newMemWordRepo(
		word("cat", "кошка", entities.MasteryThreshold-2, 0),
		word("dog", "собака", entities.MasteryThreshold, 0),
	)
	trainer := newTestTrainer(words, newMemSettingsRepo(), 1)
	session := service.NewTrainingSession(trainer)

	ctx := context.Background()

	question, err := session.Start(ctx, 10, nil)
	require.NoError(t, err)

	result, err := session.SubmitAnswer(ctx, question.CorrectIndex())
	require.NoError(t, err)
	require.False(t, result.Done)
	require.NotNil(t, result.Next)

	result, err = session.SubmitAnswer(ctx, result.Next.CorrectIndex())
	require.NoError(t, err)
	assert.True(t, result.Done)
	assert.Nil(t, result.Next)
	assert.Equal(t, service.StateComplete, session.State())
}

func TestTrainingSession_SubmitWithoutStart(t *testing.T) {
	trainer := newTestTrainer(newMemWordRepo(word("cat", "кошка", 0, 0)), newMemSettingsRepo(), 1)
	session := service.NewTrainingSession(trainer)

	_, err := session.SubmitAnswer(context.Background(), 0)
	require.ErrorIs(t, err, service.ErrNoActiveQuestion)
}

func TestTrainingSession_CancelFiresOnCompleteOnce(t *testing.T) {
	words := newMemWordRepo(word("cat", "кошка", 0, 0), word("dog", "собака", 0, 0))
	trainer := newTestTrainer(words, newMemSettingsRepo(), 1)
	session := service.NewTrainingSession(trainer)

	completed := 0
	_, err := session.Start(context.Background(), 5, func() { completed++ })
	require.NoError(t, err)

	session.Cancel()
	session.Cancel()

	assert.Equal(t, service.StateComplete, session.State())
	assert.Equal(t, 1, completed)
}
