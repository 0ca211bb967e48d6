package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntity_ID(t *testing.T) {
	tests := []struct {
		entity   Entity
		name     string
		expected string
	}{
		{name: "string id", entity: Entity{"id": "abc"}, expected: "abc"},
		{name: "missing id", entity: Entity{"name": "x"}, expected: ""},
		{name: "non-string id", entity: Entity{"id": 42}, expected: ""},
		{name: "nil entity", entity: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.entity.ID())
		})
	}
}

func TestEntity_Number(t *testing.T) {
	entity := Entity{
		"float":  float64(12.5),
		"int":    7,
		"int64":  int64(9),
		"string": "not a number",
	}

	value, ok := entity.Number("float")
	require.True(t, ok)
	assert.Equal(t, 12.5, value)

	value, ok = entity.Number("int")
	require.True(t, ok)
	assert.Equal(t, float64(7), value)

	value, ok = entity.Number("int64")
	require.True(t, ok)
	assert.Equal(t, float64(9), value)

	_, ok = entity.Number("string")
	assert.False(t, ok)

	_, ok = entity.Number("missing")
	assert.False(t, ok)
}

func TestEntity_Clone(t *testing.T) {
	entity := Entity{"id": "a", "amount": float64(5)}

	clone := entity.Clone()
	clone["amount"] = float64(10)

	amount, _ := entity.Number("amount")
	assert.Equal(t, float64(5), amount, "clone must not share top-level fields")
}

func TestSnapshot_Clone(t *testing.T) {
	s := NewSnapshot()
	s.Collections["invoices"] = []Entity{{"id": "A"}}
	s.Sequences["invoices"] = Sequence{Prefix: "INV-", Next: 2}
	s.Log = []LogEntry{{ID: "l1", EntityID: "A", Action: LogActionCreate, Timestamp: 10}}
	s.UI = &UIState{CurrentScreen: "invoices"}

	clone := s.Clone()
	clone.Collections["invoices"][0]["id"] = "B"
	clone.Log[0].Timestamp = 99
	clone.UI.CurrentScreen = "settings"

	assert.Equal(t, "A", s.Collections["invoices"][0].ID())
	assert.Equal(t, int64(10), s.Log[0].Timestamp)
	assert.Equal(t, "invoices", s.UI.CurrentScreen)
}

func TestSnapshot_CloneNil(t *testing.T) {
	var s *Snapshot
	assert.Nil(t, s.Clone())
}

func TestSnapshot_Sanitized(t *testing.T) {
	s := NewSnapshot()
	s.Collections["invoices"] = []Entity{{"id": "A"}}
	s.UI = &UIState{CurrentScreen: "invoices", SelectedID: "A"}

	sanitized := s.Sanitized()

	assert.Nil(t, sanitized.UI, "session-only fields must be stripped before send")
	assert.Len(t, sanitized.Collections["invoices"], 1)
	assert.NotNil(t, s.UI, "source snapshot keeps its session fields")
}

func TestLogEntry_NewerThan(t *testing.T) {
	tests := []struct {
		name     string
		a        LogEntry
		b        LogEntry
		expected bool
	}{
		{
			name:     "greater timestamp wins",
			a:        LogEntry{ID: "a", Timestamp: 20},
			b:        LogEntry{ID: "z", Timestamp: 10},
			expected: true,
		},
		{
			name:     "lower timestamp loses",
			a:        LogEntry{ID: "z", Timestamp: 10},
			b:        LogEntry{ID: "a", Timestamp: 20},
			expected: false,
		},
		{
			name:     "equal timestamps break tie by id",
			a:        LogEntry{ID: "b", Timestamp: 10},
			b:        LogEntry{ID: "a", Timestamp: 10},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.NewerThan(tt.b))
		})
	}
}

func TestScope_Replicated(t *testing.T) {
	assert.True(t, ScopeReplicated.Replicated())
	assert.False(t, ScopeLocal.Replicated())

	// Нулевое значение - безопасный default: не реплицируется.
	var zero Scope
	assert.False(t, zero.Replicated())
}
