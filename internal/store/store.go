package store

import (
	"context"
	"errors"

	"github.com/iudanet/pairsync/internal/models"
)

//go:generate moq -out store_mock.go . StateStore

// Common store errors
var (
	// ErrStoreClosed indicates that the store is closed
	ErrStoreClosed = errors.New("store is closed")
)

// StateStore defines interface for the local application state store.
// The sync engine never keeps its own copy of the state: it reads the
// snapshot once per sync cycle and writes the merge result back atomically.
type StateStore interface {
	// GetState returns the current application snapshot
	GetState(ctx context.Context) (*models.Snapshot, error)

	// Dispatch applies a single mutation to the local state
	Dispatch(ctx context.Context, action models.Action) error

	// ReplaceState atomically adopts a new snapshot as the source of truth,
	// preserving local-only UI session fields of the previous state
	ReplaceState(ctx context.Context, state *models.Snapshot) error
}
