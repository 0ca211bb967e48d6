package validation

import (
	"fmt"

	"github.com/google/uuid"
)

// ValidatePeerID проверяет, что peer id имеет формат UUID.
// Идентификаторы пиров выдает транспорт, поэтому любой другой формат -
// ошибка вызывающего кода, а не сети.
func ValidatePeerID(peerID string) error {
	if peerID == "" {
		return fmt.Errorf("peer id cannot be empty")
	}

	if err := uuid.Validate(peerID); err != nil {
		return fmt.Errorf("peer id must be a UUID: %w", err)
	}

	return nil
}
