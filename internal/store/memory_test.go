package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/pairsync/internal/models"
)

func TestMemoryStore_GetStateReturnsCopy(t *testing.T) {
	initial := models.NewSnapshot()
	initial.Collections["invoices"] = []models.Entity{{"id": "A"}}

	s := NewMemoryStore(initial)

	state, err := s.GetState(context.Background())
	require.NoError(t, err)

	// Мутация копии не должна влиять на хранилище.
	state.Collections["invoices"][0]["id"] = "hacked"

	fresh, err := s.GetState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A", fresh.Collections["invoices"][0].ID())
}

func TestMemoryStore_NilInitial(t *testing.T) {
	s := NewMemoryStore(nil)

	state, err := s.GetState(context.Background())
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Empty(t, state.Collections)
}

func TestMemoryStore_DispatchCreate(t *testing.T) {
	s := NewMemoryStore(nil)

	err := s.Dispatch(context.Background(), models.Action{
		ID:         "act-1",
		Type:       models.LogActionCreate,
		Scope:      models.ScopeReplicated,
		Collection: "invoices",
		Payload:    json.RawMessage(`{"id":"A","paidAmount":10}`),
		Timestamp:  100,
	})
	require.NoError(t, err)

	state, err := s.GetState(context.Background())
	require.NoError(t, err)

	require.Len(t, state.Collections["invoices"], 1)
	assert.Equal(t, "A", state.Collections["invoices"][0].ID())

	require.Len(t, state.Log, 1)
	assert.Equal(t, models.LogActionCreate, state.Log[0].Action)
	assert.Equal(t, "A", state.Log[0].EntityID, "entity id is taken from the payload")
}

func TestMemoryStore_DispatchUpdateReplacesEntity(t *testing.T) {
	initial := models.NewSnapshot()
	initial.Collections["invoices"] = []models.Entity{{"id": "A", "paidAmount": float64(10)}}

	s := NewMemoryStore(initial)

	err := s.Dispatch(context.Background(), models.Action{
		ID:         "act-2",
		Type:       models.LogActionUpdate,
		Collection: "invoices",
		EntityID:   "A",
		Payload:    json.RawMessage(`{"id":"A","paidAmount":70}`),
		Timestamp:  200,
	})
	require.NoError(t, err)

	state, _ := s.GetState(context.Background())
	require.Len(t, state.Collections["invoices"], 1)
	paid, _ := state.Collections["invoices"][0].Number("paidAmount")
	assert.Equal(t, float64(70), paid)
}

func TestMemoryStore_DispatchDelete(t *testing.T) {
	initial := models.NewSnapshot()
	initial.Collections["invoices"] = []models.Entity{{"id": "A"}, {"id": "B"}}

	s := NewMemoryStore(initial)

	err := s.Dispatch(context.Background(), models.Action{
		ID:         "act-3",
		Type:       models.LogActionDelete,
		Collection: "invoices",
		EntityID:   "A",
		Timestamp:  300,
	})
	require.NoError(t, err)

	state, _ := s.GetState(context.Background())
	require.Len(t, state.Collections["invoices"], 1)
	assert.Equal(t, "B", state.Collections["invoices"][0].ID())

	require.Len(t, state.Log, 1)
	assert.Equal(t, models.LogActionDelete, state.Log[0].Action)
}

func TestMemoryStore_DispatchUnknownTypeIsNoop(t *testing.T) {
	s := NewMemoryStore(nil)

	err := s.Dispatch(context.Background(), models.Action{
		ID:   "act-4",
		Type: "NAVIGATE",
	})
	require.NoError(t, err)

	state, _ := s.GetState(context.Background())
	assert.Empty(t, state.Log, "unknown action types are opaque to the store")
}

func TestMemoryStore_DispatchErrors(t *testing.T) {
	tests := []struct {
		name   string
		action models.Action
	}{
		{
			name:   "create without collection",
			action: models.Action{ID: "a", Type: models.LogActionCreate, Payload: json.RawMessage(`{"id":"x"}`)},
		},
		{
			name:   "create without payload",
			action: models.Action{ID: "a", Type: models.LogActionCreate, Collection: "invoices"},
		},
		{
			name:   "create with entity without id",
			action: models.Action{ID: "a", Type: models.LogActionCreate, Collection: "invoices", Payload: json.RawMessage(`{"x":1}`)},
		},
		{
			name:   "delete without entity id",
			action: models.Action{ID: "a", Type: models.LogActionDelete, Collection: "invoices"},
		},
		{
			name:   "full replace without state",
			action: models.Action{ID: "a", FullReplace: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMemoryStore(nil)
			assert.Error(t, s.Dispatch(context.Background(), tt.action))
		})
	}
}

func TestMemoryStore_DispatchFullReplace(t *testing.T) {
	initial := models.NewSnapshot()
	initial.UI = &models.UIState{CurrentScreen: "invoices"}

	s := NewMemoryStore(initial)

	next := models.NewSnapshot()
	next.Collections["contacts"] = []models.Entity{{"id": "C"}}

	err := s.Dispatch(context.Background(), models.Action{
		ID:          "act-5",
		FullReplace: true,
		State:       next,
	})
	require.NoError(t, err)

	state, _ := s.GetState(context.Background())
	assert.Len(t, state.Collections["contacts"], 1)
	require.NotNil(t, state.UI)
	assert.Equal(t, "invoices", state.UI.CurrentScreen, "UI session fields survive full replace")
}

func TestMemoryStore_ReplaceStatePreservesUI(t *testing.T) {
	initial := models.NewSnapshot()
	initial.UI = &models.UIState{CurrentScreen: "budget"}

	s := NewMemoryStore(initial)

	merged := models.NewSnapshot()
	merged.Collections["accounts"] = []models.Entity{{"id": "a1"}}

	require.NoError(t, s.ReplaceState(context.Background(), merged))

	state, _ := s.GetState(context.Background())
	assert.Len(t, state.Collections["accounts"], 1)
	require.NotNil(t, state.UI)
	assert.Equal(t, "budget", state.UI.CurrentScreen)
}

func TestMemoryStore_LogTruncation(t *testing.T) {
	s := NewMemoryStore(nil)

	for i := 0; i < models.MaxLogEntries+50; i++ {
		err := s.Dispatch(context.Background(), models.Action{
			ID:         uuidLike(i),
			Type:       models.LogActionUpdate,
			Collection: "invoices",
			Payload:    json.RawMessage(`{"id":"A"}`),
			Timestamp:  int64(i),
		})
		require.NoError(t, err)
	}

	state, _ := s.GetState(context.Background())
	assert.Len(t, state.Log, models.MaxLogEntries)
	assert.Equal(t, int64(50), state.Log[0].Timestamp, "oldest entries are dropped")
}

func uuidLike(i int) string {
	return string(rune('a'+i%26)) + "-" + string(rune('0'+i%10))
}
