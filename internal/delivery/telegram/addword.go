package telegram

import (
	"context"
	"errors"
	"fmt"

	"learnwords/internal/domain/entities"
	"learnwords/internal/repository"
	"learnwords/internal/service"
	"learnwords/internal/storage"
)

// addWordStartHandler opens the add-word conversation.
func (h *Handler) addWordStartHandler() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		if h.sessions.Get(chatID) != nil {
			h.send(newHTMLMessage(chatID, msgTrainingActive))
			return nil
		}

		h.drafts.Store(chatID, &storage.WordDraft{Step: storage.StepKind})

		msg := newHTMLMessage(chatID, msgChooseKind)
		msg.ReplyMarkup = buildKindKeyboard()
		h.send(msg)

		return nil
	}
}

// addWordKindHandler records the chosen entry kind and asks for the
// original.
func (h *Handler) addWordKindHandler(value string) HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		kind, ok := entities.ParseWordKind(value)
		if !ok {
			return fmt.Errorf("unknown word kind %q", value)
		}

		draft := h.drafts.Get(chatID)
		if draft == nil {
			draft = &storage.WordDraft{}
		}

		draft.Step = storage.StepOriginal
		draft.Kind = kind
		h.drafts.Store(chatID, draft)

		h.send(newHTMLMessage(chatID, formatKindPrompt(kind)))

		return nil
	}
}

// addWordInputHandler consumes plain text inside the add-word
// conversation.
func (h *Handler) addWordInputHandler(text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		draft := h.drafts.Get(chatID)
		if draft == nil {
			h.send(newHTMLMessage(chatID, msgUseMenu))
			return nil
		}

		switch draft.Step {
		case storage.StepKind:
			msg := newHTMLMessage(chatID, msgChooseKind)
			msg.ReplyMarkup = buildKindKeyboard()
			h.send(msg)
			return nil

		case storage.StepOriginal:
			draft.Original = text
			draft.Step = storage.StepTranslation
			h.drafts.Store(chatID, draft)
			h.send(newHTMLMessage(chatID, msgEnterTranslation))
			return nil

		case storage.StepTranslation:
			word, err := h.dictionary.AddWord(ctx, chatID, draft.Original, text, draft.Kind)
			if err != nil {
				if retry, feedback := validationMessage(err); retry {
					// A bad original restarts from the original step,
					// a bad translation just re-asks for the translation.
					if isOriginalError(err) {
						draft.Step = storage.StepOriginal
						h.drafts.Store(chatID, draft)
					}
					h.send(newHTMLMessage(chatID, feedback))
					return nil
				}
				return fmt.Errorf("add word: %w", err)
			}

			h.drafts.Delete(chatID)

			msg := newHTMLMessage(chatID, fmt.Sprintf(msgWordAdded, word.Original, word.Translation))
			msg.ReplyMarkup = buildMenuKeyboard()
			h.send(msg)
			return nil
		}

		return nil
	}
}

// validationMessage maps dictionary errors to user-facing text. The
// second return value is the message; the first reports whether the
// error is recoverable by retyping.
func validationMessage(err error) (bool, string) {
	switch {
	case errors.Is(err, service.ErrEmptyInput):
		return true, msgEmptyInput
	case errors.Is(err, service.ErrNotLatin):
		return true, msgNotLatin
	case errors.Is(err, service.ErrNotCyrillic):
		return true, msgNotCyrillic
	case errors.Is(err, service.ErrWordCountMismatch):
		return true, msgWordCountMismatch
	case errors.Is(err, repository.ErrDuplicateWord):
		return true, msgDuplicateWord
	default:
		return false, ""
	}
}

// isOriginalError reports whether the validation error concerns the
// original rather than the translation.
func isOriginalError(err error) bool {
	return errors.Is(err, service.ErrNotLatin) ||
		errors.Is(err, service.ErrWordCountMismatch) ||
		errors.Is(err, repository.ErrDuplicateWord)
}
