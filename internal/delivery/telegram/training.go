package telegram

import (
	"context"
	"errors"
	"fmt"

	"learnwords/internal/domain/entities"
	"learnwords/internal/service"
)

// startTrainingHandler begins a new training run for the chat.
func (h *Handler) startTrainingHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if h.sessions.Get(chatID) != nil {
			h.send(newHTMLMessage(chatID, msgTrainingActive))
			return nil
		}

		settings, err := h.settingsService.GetOrCreate(ctx, chatID)
		if err != nil {
			return fmt.Errorf("get settings: %w", err)
		}

		trainer := h.trainers.Trainer(chatID)
		session := service.NewTrainingSession(trainer)

		question, err := session.Start(ctx, settings.QuizLength, func() {
			h.sessions.Delete(chatID)
		})
		if err != nil {
			switch {
			case errors.Is(err, service.ErrEmptyDictionary):
				msg := newHTMLMessage(chatID, msgEmptyDictionary)
				msg.ReplyMarkup = buildMenuKeyboard()
				h.send(msg)
				return nil
			case errors.Is(err, service.ErrNothingToLearn):
				msg := newHTMLMessage(chatID, msgNothingToLearn)
				msg.ReplyMarkup = buildMenuKeyboard()
				h.send(msg)
				return nil
			default:
				return fmt.Errorf("start training: %w", err)
			}
		}

		h.sessions.Store(chatID, session)
		h.sendQuestion(chatID, question)

		return nil
	}
}

// answerHandler processes a pressed answer button.
func (h *Handler) answerHandler(selectedIndex int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session := h.sessions.Get(chatID)
		if session == nil {
			h.send(newHTMLMessage(chatID, msgNoTraining))
			return nil
		}

		result, err := session.SubmitAnswer(ctx, selectedIndex)
		if err != nil && !errors.Is(err, service.ErrNothingToLearn) {
			if errors.Is(err, service.ErrNoActiveQuestion) {
				h.send(newHTMLMessage(chatID, msgNoTraining))
				return nil
			}
			return fmt.Errorf("submit answer: %w", err)
		}

		if result.Correct {
			h.send(newHTMLMessage(chatID, msgCorrect))
		} else {
			h.send(newHTMLMessage(chatID, formatWrongAnswer(result.Word)))
		}

		if result.Done {
			msg := newHTMLMessage(chatID, formatSummary(session.Correct(), session.Answered()))
			msg.ReplyMarkup = buildMenuKeyboard()
			h.send(msg)
			return nil
		}

		h.sendQuestion(chatID, result.Next)

		return nil
	}
}

// cancelHandler aborts the current training run or add-word
// conversation, if any.
func (h *Handler) cancelHandler() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		if h.drafts.Get(chatID) != nil {
			h.drafts.Delete(chatID)
			msg := newHTMLMessage(chatID, msgAddCancelled)
			msg.ReplyMarkup = buildMenuKeyboard()
			h.send(msg)
			return nil
		}

		session := h.sessions.Get(chatID)
		if session == nil {
			msg := newHTMLMessage(chatID, msgNoTraining)
			msg.ReplyMarkup = buildMenuKeyboard()
			h.send(msg)
			return nil
		}

		session.Cancel()
		h.sessions.Delete(chatID)

		msg := newHTMLMessage(chatID, msgTrainingStopped)
		msg.ReplyMarkup = buildMenuKeyboard()
		h.send(msg)

		return nil
	}
}

func (h *Handler) sendQuestion(chatID int64, q *entities.Question) {
	msg := newHTMLMessage(chatID, formatQuestion(q))
	msg.ReplyMarkup = buildQuestionKeyboard(q)
	h.send(msg)
}
