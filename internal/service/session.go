package service

import (
	"context"
	"errors"

	"learnwords/internal/domain/entities"
)

// SessionState is the lifecycle state of a training session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateAwaitingAnswer
	StateComplete
)

// AnswerResult reports the outcome of one submitted answer.
type AnswerResult struct {
	Correct      bool
	Word         entities.Word      // the target of the answered question
	CorrectIndex int                // position of the right choice in the answered question
	Next         *entities.Question // next question, nil when the session completed
	Done         bool               // true when the session completed with this answer
}

// TrainingSession is a bounded run of N questions for one user.
//
// Idle -> AwaitingAnswer -> ... -> Complete. Sessions are single-use:
// once Complete they cannot be restarted, and onComplete fires exactly
// once. Like the Trainer, a session is confined to its user's worker.
type TrainingSession struct {
	trainer *Trainer

	state      SessionState
	remaining  int
	answered   int
	correct    int
	onComplete func()
}

// NewTrainingSession creates an idle session over the user's trainer.
func NewTrainingSession(trainer *Trainer) *TrainingSession {
	return &TrainingSession{trainer: trainer}
}

// Start resets usage counters for a fair run and fetches the first
// question. When the dictionary is empty or nothing matches the current
// filters the session completes immediately and ErrEmptyDictionary or
// ErrNothingToLearn is returned.
func (s *TrainingSession) Start(ctx context.Context, quizLength int, onComplete func()) (*entities.Question, error) {
	if s.state != StateIdle {
		return nil, ErrSessionFinished
	}
	if quizLength <= 0 {
		quizLength = 1
	}

	s.onComplete = onComplete
	s.remaining = quizLength

	if err := s.trainer.ResetUsage(ctx); err != nil {
		return nil, err
	}

	question, err := s.trainer.NextQuestion(ctx)
	if err != nil {
		if errors.Is(err, ErrNothingToLearn) || errors.Is(err, ErrEmptyDictionary) {
			s.complete()
		}
		return nil, err
	}

	s.state = StateAwaitingAnswer

	return question, nil
}

// SubmitAnswer evaluates the outstanding question and advances the
// session. Calling it while no question is outstanding returns
// ErrNoActiveQuestion and changes nothing.
func (s *TrainingSession) SubmitAnswer(ctx context.Context, selectedIndex int) (*AnswerResult, error) {
	if s.state != StateAwaitingAnswer {
		return nil, ErrNoActiveQuestion
	}

	question := s.trainer.Question()
	if question == nil {
		return nil, ErrNoActiveQuestion
	}
	correctIndex := question.CorrectIndex()

	correct, err := s.trainer.CheckAnswer(ctx, selectedIndex)
	if err != nil {
		// The answer was not recorded; the session stays as it was
		// so the caller can retry.
		return nil, err
	}

	s.answered++
	if correct {
		s.correct++
	}
	s.remaining--

	result := &AnswerResult{Correct: correct, Word: question.Word, CorrectIndex: correctIndex}

	if s.remaining <= 0 {
		s.complete()
		result.Done = true
		return result, nil
	}

	next, err := s.trainer.NextQuestion(ctx)
	if err != nil {
		// Pool exhausted mid-run, or the store failed; either way the
		// run cannot continue.
		s.complete()
		result.Done = true
		if errors.Is(err, ErrNothingToLearn) {
			return result, nil
		}
		return result, err
	}
	result.Next = next

	return result, nil
}

// Cancel completes the session from any state without touching
// counters of the outstanding question.
func (s *TrainingSession) Cancel() {
	if s.state == StateComplete {
		return
	}
	s.complete()
}

// State returns the current lifecycle state.
func (s *TrainingSession) State() SessionState {
	return s.state
}

// Answered returns how many questions were answered so far.
func (s *TrainingSession) Answered() int {
	return s.answered
}

// Correct returns how many answers were correct so far.
func (s *TrainingSession) Correct() int {
	return s.correct
}

func (s *TrainingSession) complete() {
	s.state = StateComplete
	if s.onComplete != nil {
		s.onComplete()
		s.onComplete = nil
	}
}
