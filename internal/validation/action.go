package validation

import (
	"encoding/json"
	"fmt"

	"github.com/iudanet/pairsync/internal/models"
)

// ValidateAction проверяет структурные требования к мутации до ее
// применения хранилищем:
//   - FULL_REPLACE обязан нести полный снапшот
//   - CREATE, UPDATE и RESTORE обязаны нести коллекцию и сущность с id
//   - DELETE обязан нести коллекцию и id сущности
//
// Типы, неизвестные хранилищу, не проверяются: такие мутации
// принадлежат прикладному слою и состояние не меняют.
func ValidateAction(action models.Action) error {
	if action.FullReplace {
		if action.State == nil {
			return fmt.Errorf("full replace action %q carries no state", action.ID)
		}
		return nil
	}

	switch action.Type {
	case models.LogActionCreate, models.LogActionUpdate, models.LogActionRestore:
		if action.Collection == "" {
			return fmt.Errorf("action %q misses collection", action.ID)
		}
		if len(action.Payload) == 0 {
			return fmt.Errorf("action %q misses payload", action.ID)
		}

		var entity models.Entity
		if err := json.Unmarshal(action.Payload, &entity); err != nil {
			return fmt.Errorf("failed to unmarshal entity payload: %w", err)
		}
		if entity.ID() == "" {
			return fmt.Errorf("action %q carries entity without id", action.ID)
		}

	case models.LogActionDelete:
		if action.Collection == "" {
			return fmt.Errorf("delete action %q misses collection", action.ID)
		}
		if action.EntityID == "" {
			return fmt.Errorf("delete action %q misses entity id", action.ID)
		}
	}

	return nil
}
