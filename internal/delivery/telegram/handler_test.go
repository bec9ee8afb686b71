package telegram

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHandleUpdate_CallbackWithoutMessage(t *testing.T) {
	h := &Handler{logger: zap.NewNop()}

	// A button pressed on a sufficiently old message delivers a callback
	// query with a nil Message. The update must be dropped, not routed.
	assert.NotPanics(t, func() {
		h.handleUpdate(context.Background(), tgbotapi.Update{
			CallbackQuery: &tgbotapi.CallbackQuery{ID: "1", Data: buildMenuCallback(menuLearn)},
		})
	})
}

func TestHandleUpdate_EmptyUpdate(t *testing.T) {
	h := &Handler{logger: zap.NewNop()}

	assert.NotPanics(t, func() {
		h.handleUpdate(context.Background(), tgbotapi.Update{})
	})
}
