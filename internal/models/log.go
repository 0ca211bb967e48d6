package models

// Действия, фиксируемые в журнале операций
const (
	LogActionCreate  = "CREATE"
	LogActionRestore = "RESTORE"
	LogActionDelete  = "DELETE"
	LogActionUpdate  = "UPDATE"
)

// MaxLogEntries ограничивает длину объединенного журнала после слияния.
// Более старые записи отбрасываются. Это ограничивает размер сообщений
// при повторных синхронизациях, но означает, что tombstone старше горизонта
// больше не может подавить воскрешение записи (задокументированное ограничение).
const MaxLogEntries = 1000

// LogEntry представляет одну запись журнала операций.
// Журнал - единственный источник информации о свежести данных:
// сами записи приложения не несут timestamp последнего изменения.
type LogEntry struct {
	ID        string `json:"id"`        // ID уникальный идентификатор записи журнала (UUID)
	EntityID  string `json:"entity_id"` // EntityID идентификатор записи приложения
	Action    string `json:"action"`    // Action тип операции: CREATE, RESTORE, DELETE, UPDATE
	Timestamp int64  `json:"timestamp"` // Timestamp unix-время операции в миллисекундах
}

// NewerThan сравнивает две записи журнала.
// При равных timestamps сравниваются ID (лексикографически) для детерминизма:
// оба пира должны получить одинаковый порядок журнала после слияния.
func (e LogEntry) NewerThan(other LogEntry) bool {
	if e.Timestamp != other.Timestamp {
		return e.Timestamp > other.Timestamp
	}
	return e.ID > other.ID
}
