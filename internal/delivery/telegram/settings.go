package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"learnwords/internal/domain/entities"
	"learnwords/internal/service"
)

// statisticsHandler shows the progress screen.
func (h *Handler) statisticsHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		trainer := h.trainers.Trainer(chatID)

		stats, err := trainer.Statistics(ctx)
		if err != nil {
			if errors.Is(err, service.ErrEmptyDictionary) {
				msg := newHTMLMessage(chatID, msgEmptyDictionary)
				msg.ReplyMarkup = buildMenuKeyboard()
				h.send(msg)
				return nil
			}
			return fmt.Errorf("get statistics: %w", err)
		}

		msg := newHTMLMessage(chatID, formatStatistics(stats))
		msg.ReplyMarkup = buildMenuKeyboard()
		h.send(msg)

		return nil
	}
}

// settingsHandler shows the settings screen.
func (h *Handler) settingsHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		settings, err := h.settingsService.GetOrCreate(ctx, chatID)
		if err != nil {
			return fmt.Errorf("get settings: %w", err)
		}

		msg := newHTMLMessage(chatID, formatSettings(settings))
		msg.ReplyMarkup = buildSettingsKeyboard()
		h.send(msg)

		return nil
	}
}

// updateQuizLengthHandler stores a new quiz length picked from the
// keyboard.
func (h *Handler) updateQuizLengthHandler(value string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		length, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("bad quiz length %q: %w", value, err)
		}

		settings, err := h.settingsService.UpdateQuizLength(ctx, chatID, length)
		if err != nil {
			return fmt.Errorf("update quiz length: %w", err)
		}

		msg := newHTMLMessage(chatID, formatSettings(settings))
		msg.ReplyMarkup = buildSettingsKeyboard()
		h.send(msg)

		return nil
	}
}

// updateFilterHandler stores a new kind filter picked from the keyboard.
func (h *Handler) updateFilterHandler(value string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		filter, ok := entities.ParseKindFilter(value)
		if !ok {
			return fmt.Errorf("unknown filter %q", value)
		}

		settings, err := h.settingsService.UpdateFilter(ctx, chatID, filter)
		if err != nil {
			return fmt.Errorf("update filter: %w", err)
		}

		msg := newHTMLMessage(chatID, formatSettings(settings))
		msg.ReplyMarkup = buildSettingsKeyboard()
		h.send(msg)

		return nil
	}
}

// resetProgressHandler zeroes the per-word counters after the user
// confirmed.
func (h *Handler) resetProgressHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if session := h.sessions.Get(chatID); session != nil {
			session.Cancel()
			h.sessions.Delete(chatID)
		}

		trainer := h.trainers.Trainer(chatID)
		if err := trainer.ResetProgress(ctx); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}

		msg := newHTMLMessage(chatID, msgResetDone)
		msg.ReplyMarkup = buildMenuKeyboard()
		h.send(msg)

		return nil
	}
}
