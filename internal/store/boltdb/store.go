package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/pairsync/internal/models"
	"github.com/iudanet/pairsync/internal/store"
)

var (
	// BoltDB bucket and key names
	bucketState = []byte("state")
	keySnapshot = []byte("snapshot")
)

// Store represents BoltDB-backed state store implementation.
// Снапшот хранится одним JSON значением: движку синхронизации нужно
// атомарное чтение и атомарная замена всего состояния, а не построчный доступ.
type Store struct {
	db *bbolt.DB
}

// New creates a new BoltDB state store instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Store, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Store{db: db}

	if err := s.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Store) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketState); err != nil {
			return fmt.Errorf("failed to create state bucket: %w", err)
		}
		return nil
	})
}

// GetState returns the stored snapshot.
// Отсутствие сохраненного снапшота - это пустое состояние, а не ошибка.
func (s *Store) GetState(ctx context.Context) (*models.Snapshot, error) {
	if s.db == nil {
		return nil, store.ErrStoreClosed
	}

	state := models.NewSnapshot()

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketState)
		if bucket == nil {
			return nil
		}

		data := bucket.Get(keySnapshot)
		if data == nil {
			return nil
		}

		if err := json.Unmarshal(data, state); err != nil {
			return fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get state: %w", err)
	}

	if state.Collections == nil {
		state.Collections = make(map[string][]models.Entity)
	}

	return state, nil
}

// Dispatch applies a single mutation inside one write transaction
func (s *Store) Dispatch(ctx context.Context, action models.Action) error {
	if s.db == nil {
		return store.ErrStoreClosed
	}

	return s.update(func(state *models.Snapshot) error {
		return store.ApplyAction(state, action)
	})
}

// ReplaceState atomically adopts a new snapshot, preserving local UI fields
func (s *Store) ReplaceState(ctx context.Context, state *models.Snapshot) error {
	if s.db == nil {
		return store.ErrStoreClosed
	}

	if state == nil {
		state = models.NewSnapshot()
	}

	return s.update(func(current *models.Snapshot) error {
		ui := current.UI
		clone := state.Clone()

		current.Collections = clone.Collections
		current.Sequences = clone.Sequences
		current.Log = clone.Log
		current.UI = ui

		return nil
	})
}

// update выполняет read-modify-write снапшота в одной транзакции BoltDB.
func (s *Store) update(mutate func(*models.Snapshot) error) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketState)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		state := models.NewSnapshot()
		if data := bucket.Get(keySnapshot); data != nil {
			if err := json.Unmarshal(data, state); err != nil {
				return fmt.Errorf("failed to unmarshal snapshot: %w", err)
			}
		}
		if state.Collections == nil {
			state.Collections = make(map[string][]models.Entity)
		}

		if err := mutate(state); err != nil {
			return err
		}

		data, err := json.Marshal(state)
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}

		if err := bucket.Put(keySnapshot, data); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}
