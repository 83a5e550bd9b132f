package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monopolysim/internal/engine"
)

func TestEventMsgFlattensEvent(t *testing.T) {
	env, err := NewEnvelope(MsgEvent, 3, EventMsg{
		Event: engine.Event{Type: engine.EventLanded, Turn: 2, Player: "Ann", Space: 39, Name: "Boardwalk"},
		Text:  "Ann is on Boardwalk",
	})
	require.NoError(t, err)

	data, err := json.Marshal(env)
	require.NoError(t, err)

	var raw struct {
		Type    string         `json:"type"`
		Seq     int            `json:"seq"`
		Payload map[string]any `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, MsgEvent, raw.Type)
	assert.Equal(t, 3, raw.Seq)
	assert.Equal(t, "landed", raw.Payload["type"])
	assert.Equal(t, "Boardwalk", raw.Payload["name"])
	assert.Equal(t, "Ann is on Boardwalk", raw.Payload["text"])
}

func TestNewEnvelopeRejectsUnencodable(t *testing.T) {
	_, err := NewEnvelope(MsgError, 1, make(chan int))
	assert.Error(t, err)
}
