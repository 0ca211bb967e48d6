package models

// Entity представляет одну запись приложения (счет, контакт, инвойс и т.д.).
// Структура записи непрозрачна для движка синхронизации: единственное
// обязательное поле - глобально уникальный строковый "id".
// Записи не несут timestamp последнего изменения; признаком свежести
// служит только журнал операций (Log).
type Entity map[string]any

// ID возвращает уникальный идентификатор записи.
// Возвращает пустую строку, если поле "id" отсутствует или имеет не строковый тип.
func (e Entity) ID() string {
	id, _ := e["id"].(string)
	return id
}

// Number возвращает числовое значение поля field.
// Поддерживает типы, которые могут появиться после JSON десериализации.
// Возвращает (0, false), если поле отсутствует или не является числом.
func (e Entity) Number(field string) (float64, bool) {
	switch v := e[field].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// Clone создает копию записи.
// Копируются только поля верхнего уровня: движок синхронизации никогда
// не мутирует вложенные значения, поэтому глубокая копия не требуется.
func (e Entity) Clone() Entity {
	if e == nil {
		return nil
	}
	clone := make(Entity, len(e))
	for k, v := range e {
		clone[k] = v
	}
	return clone
}

// Sequence представляет настройки нумерации документов (например, инвойсов).
// Next - следующий свободный человекочитаемый номер.
type Sequence struct {
	Prefix string `json:"prefix,omitempty"`
	Next   int64  `json:"next"`
}

// UIState содержит сессионные поля, существующие только локально
// (текущий открытый экран, выбранная запись). Эти поля никогда
// не передаются по сети и не участвуют в слиянии.
type UIState struct {
	CurrentScreen string `json:"current_screen,omitempty"`
	SelectedID    string `json:"selected_id,omitempty"`
}

// Snapshot представляет полное состояние приложения:
// отображение имени коллекции в упорядоченный список записей,
// журнал операций и настройки нумерации.
type Snapshot struct {
	Collections map[string][]Entity `json:"collections"`
	Sequences   map[string]Sequence `json:"sequences,omitempty"`
	UI          *UIState            `json:"ui,omitempty"`
	Log         []LogEntry          `json:"log"`
}

// NewSnapshot создает пустой снапшот с инициализированными коллекциями.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Collections: make(map[string][]Entity),
		Sequences:   make(map[string]Sequence),
	}
}

// Clone создает копию снапшота.
// Списки записей и журнал копируются, сами записи клонируются поверхностно.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}

	clone := &Snapshot{
		Collections: make(map[string][]Entity, len(s.Collections)),
		Sequences:   make(map[string]Sequence, len(s.Sequences)),
		Log:         make([]LogEntry, len(s.Log)),
	}

	for name, entities := range s.Collections {
		list := make([]Entity, 0, len(entities))
		for _, entity := range entities {
			list = append(list, entity.Clone())
		}
		clone.Collections[name] = list
	}

	for name, seq := range s.Sequences {
		clone.Sequences[name] = seq
	}

	copy(clone.Log, s.Log)

	if s.UI != nil {
		ui := *s.UI
		clone.UI = &ui
	}

	return clone
}

// Sanitized возвращает копию снапшота без локальных сессионных полей.
// Используется перед отправкой снапшота удаленному пиру.
func (s *Snapshot) Sanitized() *Snapshot {
	clone := s.Clone()
	if clone == nil {
		return NewSnapshot()
	}
	clone.UI = nil
	return clone
}
