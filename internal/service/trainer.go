package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"learnwords/internal/domain/entities"
)

// Trainer drives the learning loop for a single user: it selects the
// next question, builds distractors, evaluates answers and updates the
// mastery and usage counters.
//
// A Trainer holds the last question it produced, so exactly one Trainer
// must exist per user (see TrainerRegistry). It is not safe for
// concurrent use; the transport layer serializes calls per chat.
type Trainer struct {
	userID   int64
	words    WordRepository
	settings SettingsRepository
	rng      *rand.Rand

	question *entities.Question
}

// NewTrainer creates a trainer for one user. A nil rng falls back to a
// time-seeded source; tests inject a seeded one.
func NewTrainer(userID int64, words WordRepository, settings SettingsRepository, rng *rand.Rand) *Trainer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Trainer{
		userID:   userID,
		words:    words,
		settings: settings,
		rng:      rng,
	}
}

// Statistics reloads the dictionary and summarizes learning progress.
// Returns ErrEmptyDictionary when the user has no words yet.
func (t *Trainer) Statistics(ctx context.Context) (*entities.Statistics, error) {
	words, err := t.words.Load(ctx, t.userID)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrEmptyDictionary
	}

	learned := 0
	for _, w := range words {
		if w.IsLearned() {
			learned++
		}
	}

	return &entities.Statistics{
		Learned:         learned,
		Total:           len(words),
		ProgressPercent: learned * 100 / len(words),
	}, nil
}

// ResetUsage zeroes every usage counter and persists, so that
// least-used selection restarts fairly for a new training run.
func (t *Trainer) ResetUsage(ctx context.Context) error {
	words, err := t.words.Load(ctx, t.userID)
	if err != nil {
		return fmt.Errorf("load dictionary: %w", err)
	}

	for i := range words {
		words[i].UsageCount = 0
	}

	if err := t.words.Save(ctx, t.userID, words); err != nil {
		return fmt.Errorf("save dictionary: %w", err)
	}

	return nil
}

// ResetProgress zeroes both counters of every entry and persists.
// Entries themselves are never removed.
func (t *Trainer) ResetProgress(ctx context.Context) error {
	words, err := t.words.Load(ctx, t.userID)
	if err != nil {
		return fmt.Errorf("load dictionary: %w", err)
	}

	for i := range words {
		words[i].CorrectAnswers = 0
		words[i].UsageCount = 0
	}

	if err := t.words.Save(ctx, t.userID, words); err != nil {
		return fmt.Errorf("save dictionary: %w", err)
	}

	t.question = nil

	return nil
}

// NextQuestion selects the next word to drill and builds its choices.
//
// The target is picked uniformly at random among the not-yet-learned
// entries (restricted by the kind filter from settings) that are tied
// at the minimum usage count. Its usage counter is incremented and
// persisted before the question is returned. Distractors are drawn
// uniformly from the rest of the unfiltered dictionary, up to three.
//
// Returns ErrEmptyDictionary when the user has no words at all and
// ErrNothingToLearn when no entry matches the filters.
func (t *Trainer) NextQuestion(ctx context.Context) (*entities.Question, error) {
	words, err := t.words.Load(ctx, t.userID)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrEmptyDictionary
	}

	filter := t.loadFilter(ctx)

	var pool []int
	for i, w := range words {
		if !w.IsLearned() && filter.Allows(w.Kind) {
			pool = append(pool, i)
		}
	}
	if len(pool) == 0 {
		return nil, ErrNothingToLearn
	}

	minUsage := words[pool[0]].UsageCount
	for _, i := range pool {
		if words[i].UsageCount < minUsage {
			minUsage = words[i].UsageCount
		}
	}

	var leastUsed []int
	for _, i := range pool {
		if words[i].UsageCount == minUsage {
			leastUsed = append(leastUsed, i)
		}
	}

	targetIdx := leastUsed[t.rng.Intn(len(leastUsed))]
	words[targetIdx].UsageCount++

	if err := t.words.Save(ctx, t.userID, words); err != nil {
		return nil, fmt.Errorf("save dictionary: %w", err)
	}

	target := words[targetIdx]

	candidates := make([]entities.Word, 0, len(words)-1)
	for i, w := range words {
		if i != targetIdx {
			candidates = append(candidates, w)
		}
	}
	t.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > entities.DistractorCount {
		candidates = candidates[:entities.DistractorCount]
	}

	choices := append([]entities.Word{target}, candidates...)
	t.rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	t.question = &entities.Question{Word: target, Choices: choices}

	return t.question, nil
}

// CheckAnswer compares the selected index against the outstanding
// question. A correct answer increments the target's mastery counter
// and persists the dictionary. A wrong answer mutates nothing. Either
// way the question is consumed; callers must fetch a new question
// before the next check.
//
// On a persistence failure the question stays outstanding, so the
// caller can safely retry.
func (t *Trainer) CheckAnswer(ctx context.Context, selectedIndex int) (bool, error) {
	if t.question == nil {
		return false, ErrNoActiveQuestion
	}

	q := t.question
	if selectedIndex < 0 || selectedIndex >= len(q.Choices) || selectedIndex != q.CorrectIndex() {
		t.question = nil
		return false, nil
	}

	words, err := t.words.Load(ctx, t.userID)
	if err != nil {
		return false, fmt.Errorf("load dictionary: %w", err)
	}

	for i := range words {
		if words[i].SameOriginal(q.Word.Original) {
			words[i].CorrectAnswers++
			break
		}
	}

	if err := t.words.Save(ctx, t.userID, words); err != nil {
		return false, fmt.Errorf("save dictionary: %w", err)
	}

	t.question = nil

	return true, nil
}

// Question returns the outstanding question, or nil.
func (t *Trainer) Question() *entities.Question {
	return t.question
}

// loadFilter reads the kind filter from settings, falling back to
// defaults for users without persisted settings.
func (t *Trainer) loadFilter(ctx context.Context) entities.KindFilter {
	settings, err := t.settings.Get(ctx, t.userID)
	if err != nil || settings == nil {
		return entities.FilterAll
	}

	return settings.Filter
}
