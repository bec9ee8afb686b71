package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallbackDataRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data callbackData
		want string
	}{
		{
			name: "action only",
			data: callbackData{Action: actionCancel},
			want: "cancel",
		},
		{
			name: "one param",
			data: callbackData{Action: actionMenu, Params: []string{menuLearn}},
			want: "menu:learn",
		},
		{
			name: "two params",
			data: callbackData{Action: actionSettings, Params: []string{settingsQuizLength, "7"}},
			want: "settings:length:7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := tt.data.encode()
			assert.Equal(t, tt.want, encoded)

			decoded := decodeCallback(encoded)
			assert.Equal(t, tt.data.Action, decoded.Action)
			if len(tt.data.Params) > 0 {
				assert.Equal(t, tt.data.Params, decoded.Params)
			}
			assert.Equal(t, encoded, decoded.Raw)
		})
	}
}

func TestBuildCallbacks(t *testing.T) {
	assert.Equal(t, "menu:stats", buildMenuCallback(menuStats))
	assert.Equal(t, "answer:2", buildAnswerCallback(2))
	assert.Equal(t, "addword:phrase", buildAddWordKindCallback("phrase"))
	assert.Equal(t, "settings:filter:word", buildSettingsCallback(settingsFilter, "word"))
	assert.Equal(t, "settings:reset", buildSettingsCallback(settingsReset))
	assert.Equal(t, "cancel", buildCancelCallback())
}

func TestDecodeCallbackAnswer(t *testing.T) {
	data := decodeCallback("answer:1")
	assert.Equal(t, actionAnswer, data.Action)
	assert.Equal(t, []string{"1"}, data.Params)
}
