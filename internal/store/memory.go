package store

import (
	"context"
	"sync"

	"github.com/iudanet/pairsync/internal/models"
)

// MemoryStore - потокобезопасное in-memory хранилище состояния.
// Используется в тестах и demo-команде; долговременное хранение
// обеспечивает boltdb.Store.
type MemoryStore struct {
	state *models.Snapshot
	mu    sync.RWMutex
}

// NewMemoryStore создает хранилище с заданным начальным состоянием.
// nil трактуется как пустой снапшот.
func NewMemoryStore(initial *models.Snapshot) *MemoryStore {
	if initial == nil {
		initial = models.NewSnapshot()
	}
	return &MemoryStore{state: initial.Clone()}
}

// GetState возвращает копию текущего снапшота.
func (s *MemoryStore) GetState(ctx context.Context) (*models.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Clone(), nil
}

// Dispatch применяет одну мутацию к состоянию.
func (s *MemoryStore) Dispatch(ctx context.Context, action models.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ApplyAction(s.state, action)
}

// ReplaceState атомарно заменяет состояние результатом слияния.
// Локальные сессионные поля прежнего состояния сохраняются.
func (s *MemoryStore) ReplaceState(ctx context.Context, state *models.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state == nil {
		state = models.NewSnapshot()
	}

	ui := s.state.UI
	s.state = state.Clone()
	s.state.UI = ui

	return nil
}
