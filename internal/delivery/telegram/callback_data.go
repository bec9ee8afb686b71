package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionMenu     = "menu"
	actionAnswer   = "answer"
	actionAddWord  = "addword"
	actionSettings = "settings"
	actionCancel   = "cancel"
)

// Menu sub-actions.
const (
	menuLearn    = "learn"
	menuAdd      = "add"
	menuStats    = "stats"
	menuSettings = "settings"
	menuMain     = "main"
)

// Settings sub-actions.
const (
	settingsQuizLength = "length"
	settingsFilter     = "filter"
	settingsReset      = "reset"
)

// Reset sub-actions.
const (
	resetConfirm = "confirm"
	resetCancel  = "cancel"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildMenuCallback builds callback data for a main menu action.
func buildMenuCallback(item string) string {
	return callbackData{
		Action: actionMenu,
		Params: []string{item},
	}.encode()
}

// buildAnswerCallback builds callback data for answering a question.
func buildAnswerCallback(index int) string {
	return callbackData{
		Action: actionAnswer,
		Params: []string{strconv.Itoa(index)},
	}.encode()
}

// buildAddWordKindCallback builds callback data for choosing the kind
// of a new entry.
func buildAddWordKindCallback(kind string) string {
	return callbackData{
		Action: actionAddWord,
		Params: []string{kind},
	}.encode()
}

// buildSettingsCallback builds callback data for settings-related actions.
func buildSettingsCallback(subAction string, value ...string) string {
	params := []string{subAction}
	params = append(params, value...)
	return callbackData{
		Action: actionSettings,
		Params: params,
	}.encode()
}

// buildCancelCallback builds callback data for cancelling the current
// training run.
func buildCancelCallback() string {
	return actionCancel
}
