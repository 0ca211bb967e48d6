package models

import "encoding/json"

// Scope определяет область действия мутации.
// Нулевое значение трактуется как локальная область: новый тип действия,
// для которого область не указана явно, никогда не транслируется пиру.
type Scope string

const (
	// ScopeLocal - действие применяется только локально (навигация,
	// выбор записи, логин/логаут, флаги обновления).
	ScopeLocal Scope = "local"

	// ScopeReplicated - действие транслируется удаленному пиру.
	ScopeReplicated Scope = "replicated"
)

// Replicated возвращает true, если действие подлежит трансляции пиру.
func (s Scope) Replicated() bool {
	return s == ScopeReplicated
}

// Action представляет одну мутацию локального состояния.
// Движок синхронизации транслирует реплицируемые мутации пиру
// и применяет входящие мутации к локальному состоянию.
type Action struct {
	ID         string          `json:"id"`                   // ID уникальный идентификатор мутации (UUID)
	Type       string          `json:"type"`                 // Type тип мутации, определяется приложением
	Scope      Scope           `json:"scope,omitempty"`      // Scope область действия: local или replicated
	Collection string          `json:"collection,omitempty"` // Collection имя затронутой коллекции
	EntityID   string          `json:"entity_id,omitempty"`  // EntityID идентификатор затронутой записи
	Payload    json.RawMessage `json:"payload,omitempty"`    // Payload данные мутации (непрозрачны для движка)
	State      *Snapshot       `json:"state,omitempty"`      // State новое состояние при полной замене
	Timestamp  int64           `json:"timestamp"`            // Timestamp unix-время мутации в миллисекундах

	// FullReplace помечает мутацию, заменяющую состояние целиком
	// (восстановление из бэкапа, загрузка демо-данных). Такие мутации
	// передаются пиру как SYNC_REQUEST, чтобы получатель прогнал новое
	// состояние через слияние, а не применил его вслепую.
	FullReplace bool `json:"full_replace,omitempty"`
}
