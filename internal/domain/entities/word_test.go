package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"learnwords/internal/domain/entities"
)

func TestWord_IsLearned(t *testing.T) {
	assert.False(t, entities.Word{CorrectAnswers: 0}.IsLearned())
	assert.False(t, entities.Word{CorrectAnswers: entities.MasteryThreshold - 1}.IsLearned())
	assert.True(t, entities.Word{CorrectAnswers: entities.MasteryThreshold}.IsLearned())
	assert.True(t, entities.Word{CorrectAnswers: entities.MasteryThreshold + 5}.IsLearned())
}

func TestWord_SameOriginal(t *testing.T) {
	w := entities.NewWord("Hello World", "всем привет", entities.KindPhrase)

	assert.True(t, w.SameOriginal("hello world"))
	assert.True(t, w.SameOriginal("HELLO WORLD"))
	assert.False(t, w.SameOriginal("hello"))
}

func TestKindForWordCount(t *testing.T) {
	tests := []struct {
		count int
		want  entities.WordKind
		ok    bool
	}{
		{count: -1},
		{count: 0},
		{count: 1, want: entities.KindWord, ok: true},
		{count: 2, want: entities.KindPhrase, ok: true},
		{count: 3, want: entities.KindExpression, ok: true},
		{count: 10, want: entities.KindExpression, ok: true},
	}

	for _, tt := range tests {
		kind, ok := entities.KindForWordCount(tt.count)
		assert.Equal(t, tt.ok, ok, "count %d", tt.count)
		assert.Equal(t, tt.want, kind, "count %d", tt.count)
	}
}

func TestQuestion_CorrectIndex(t *testing.T) {
	cat := entities.NewWord("cat", "кошка", entities.KindWord)
	dog := entities.NewWord("dog", "собака", entities.KindWord)
	sun := entities.NewWord("sun", "солнце", entities.KindWord)

	q := entities.Question{Word: cat, Choices: []entities.Word{dog, sun, cat}}
	assert.Equal(t, 2, q.CorrectIndex())

	malformed := entities.Question{Word: cat, Choices: []entities.Word{dog, sun}}
	assert.Equal(t, -1, malformed.CorrectIndex())
}

func TestKindFilter_Allows(t *testing.T) {
	assert.True(t, entities.FilterAll.Allows(entities.KindWord))
	assert.True(t, entities.FilterAll.Allows(entities.KindExpression))
	assert.True(t, entities.FilterPhrase.Allows(entities.KindPhrase))
	assert.False(t, entities.FilterPhrase.Allows(entities.KindWord))
	assert.False(t, entities.FilterWord.Allows(entities.KindExpression))
}
