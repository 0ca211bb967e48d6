package store

import (
	"encoding/json"
	"fmt"

	"github.com/iudanet/pairsync/internal/models"
	"github.com/iudanet/pairsync/internal/validation"
)

// ApplyAction применяет одну мутацию к снапшоту in place.
// Мутации с типами CREATE, UPDATE, RESTORE и DELETE интерпретируются
// движком хранилища; прочие типы непрозрачны и состояние не меняют.
// Каждая интерпретируемая мутация фиксируется в журнале операций.
func ApplyAction(state *models.Snapshot, action models.Action) error {
	if err := validation.ValidateAction(action); err != nil {
		return err
	}

	if action.FullReplace {
		replaceInPlace(state, action.State)
		return nil
	}

	switch action.Type {
	case models.LogActionCreate, models.LogActionUpdate, models.LogActionRestore:
		var entity models.Entity
		if err := json.Unmarshal(action.Payload, &entity); err != nil {
			return fmt.Errorf("failed to unmarshal entity payload: %w", err)
		}

		upsert(state, action.Collection, entity)
		appendLog(state, action)

	case models.LogActionDelete:
		remove(state, action.Collection, action.EntityID)
		appendLog(state, action)

	default:
		// Тип неизвестен хранилищу - мутация принадлежит прикладному слою.
	}

	return nil
}

// replaceInPlace заменяет состояние целиком, сохраняя локальные
// сессионные поля прежнего состояния.
func replaceInPlace(state, next *models.Snapshot) {
	ui := state.UI
	clone := next.Clone()
	if clone == nil {
		clone = models.NewSnapshot()
	}

	state.Collections = clone.Collections
	state.Sequences = clone.Sequences
	state.Log = clone.Log
	state.UI = ui
}

func upsert(state *models.Snapshot, collection string, entity models.Entity) {
	if state.Collections == nil {
		state.Collections = make(map[string][]models.Entity)
	}

	list := state.Collections[collection]
	for i, existing := range list {
		if existing.ID() == entity.ID() {
			list[i] = entity
			return
		}
	}

	state.Collections[collection] = append(list, entity)
}

func remove(state *models.Snapshot, collection, entityID string) {
	list := state.Collections[collection]
	for i, existing := range list {
		if existing.ID() == entityID {
			state.Collections[collection] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// appendLog фиксирует мутацию в журнале операций и усекает журнал
// до MaxLogEntries, отбрасывая самые старые записи.
func appendLog(state *models.Snapshot, action models.Action) {
	entityID := action.EntityID
	if entityID == "" && len(action.Payload) > 0 {
		var entity models.Entity
		if err := json.Unmarshal(action.Payload, &entity); err == nil {
			entityID = entity.ID()
		}
	}

	state.Log = append(state.Log, models.LogEntry{
		ID:        action.ID,
		EntityID:  entityID,
		Action:    action.Type,
		Timestamp: action.Timestamp,
	})

	if excess := len(state.Log) - models.MaxLogEntries; excess > 0 {
		state.Log = state.Log[excess:]
	}
}
