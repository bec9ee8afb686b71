package entities

// Question is one multiple-choice question of a training run.
// Choices always contain the target word exactly once; the order
// is randomized by the trainer. Questions are never persisted.
type Question struct {
	Word    Word   // the word being tested
	Choices []Word // possible answers, including the target
}

// CorrectIndex returns the position of the target word within Choices,
// or -1 if the question is malformed.
func (q Question) CorrectIndex() int {
	for i, c := range q.Choices {
		if c.SameOriginal(q.Word.Original) {
			return i
		}
	}
	return -1
}
