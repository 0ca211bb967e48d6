package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/pairsync/internal/models"
)

func TestEncodeDecodeSyncRequest(t *testing.T) {
	state := models.NewSnapshot()
	state.Collections["invoices"] = []models.Entity{{"id": "A", "paidAmount": float64(50)}}
	state.Log = []models.LogEntry{
		{ID: "l1", EntityID: "A", Action: models.LogActionCreate, Timestamp: 100},
	}

	data, err := EncodeSyncRequest(state)
	require.NoError(t, err)

	msg, err := Decode(data)
	require.NoError(t, err)

	req, ok := msg.(SyncRequest)
	require.True(t, ok, "decoded message must be SyncRequest")
	require.NotNil(t, req.State)
	assert.Len(t, req.State.Collections["invoices"], 1)
	assert.Equal(t, "A", req.State.Collections["invoices"][0].ID())
	assert.Equal(t, state.Log, req.State.Log)
}

func TestEncodeDecodeAction(t *testing.T) {
	action := models.Action{
		ID:         "act-1",
		Type:       models.LogActionUpdate,
		Scope:      models.ScopeReplicated,
		Collection: "invoices",
		EntityID:   "A",
		Payload:    json.RawMessage(`{"id":"A","paidAmount":70}`),
		Timestamp:  123,
	}

	data, err := EncodeAction(action)
	require.NoError(t, err)

	msg, err := Decode(data)
	require.NoError(t, err)

	actionMsg, ok := msg.(ActionMessage)
	require.True(t, ok, "decoded message must be ActionMessage")
	assert.Equal(t, action.ID, actionMsg.Action.ID)
	assert.Equal(t, action.Collection, actionMsg.Action.Collection)
	assert.JSONEq(t, string(action.Payload), string(actionMsg.Action.Payload))
}

func TestEncodeDecodeHeartbeat(t *testing.T) {
	data, err := EncodeHeartbeat(456)
	require.NoError(t, err)

	msg, err := Decode(data)
	require.NoError(t, err)

	hb, ok := msg.(Heartbeat)
	require.True(t, ok, "decoded message must be Heartbeat")
	assert.Equal(t, int64(456), hb.Timestamp)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		expected error
		name     string
		data     string
	}{
		{name: "unknown type", data: `{"type":"BOGUS"}`, expected: ErrUnknownType},
		{name: "missing sync payload", data: `{"type":"SYNC_REQUEST"}`, expected: ErrEmptyPayload},
		{name: "missing action payload", data: `{"type":"ACTION"}`, expected: ErrEmptyPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestDecode_MalformedJSON(t *testing.T) {
	_, err := Decode([]byte(`not json`))
	assert.Error(t, err)

	_, err = Decode([]byte(`{"type":"ACTION","payload":"not an object"}`))
	assert.Error(t, err)
}

func TestDecode_WireFormat(t *testing.T) {
	// Формат конверта фиксирован: поле type с известным тегом.
	data, err := EncodeHeartbeat(1)
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(data, &env))
	assert.Equal(t, TypeHeartbeat, env.Type)
}
