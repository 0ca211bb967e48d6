package merge

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/iudanet/pairsync/internal/models"
)

// Progress описывает прогресс слияния для наблюдателей (UI или логов).
// Несет только информационную нагрузку и не влияет на корректность.
type Progress struct {
	Phase   string // имя завершенной фазы: "log", имя коллекции, "finalize"
	Percent int    // прогресс 0-100
}

// Option настраивает Engine.
type Option func(*Engine)

// WithProgress задает callback прогресса слияния.
// Callback вызывается синхронно после каждой крупной фазы;
// движок не делает принудительных пауз между фазами.
func WithProgress(fn func(Progress)) Option {
	return func(e *Engine) {
		e.progressFn = fn
	}
}

// WithProgressFields задает имена числовых полей прогресса
// (по умолчанию "paidAmount"), по которым удаленная запись
// считается авторитетной при строгом превышении локального значения.
func WithProgressFields(fields ...string) Option {
	return func(e *Engine) {
		e.progressFields = fields
	}
}

// WithMaxLogEntries задает предел длины объединенного журнала.
func WithMaxLogEntries(limit int) Option {
	return func(e *Engine) {
		e.maxLog = limit
	}
}

// WithLogger задает логгер движка.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Engine выполняет детерминированное слияние двух независимо развившихся
// снапшотов одного логического набора данных. Свежесть определяется
// исключительно по журналу операций: сами записи не несут timestamps.
// Слияние чистое и синхронное; некорректные входные данные приводятся
// к безопасным пустым значениям, а не к ошибке.
type Engine struct {
	logger         *slog.Logger
	progressFn     func(Progress)
	progressFields []string
	maxLog         int
}

// New создает новый движок слияния.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger:         slog.Default(),
		progressFields: []string{"paidAmount"},
		maxLog:         models.MaxLogEntries,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Merge объединяет локальный и удаленный снапшоты в один.
// Операция коммутативна с точностью до локальных сессионных полей
// и правила прогресса: оба пира, выполнив слияние со своей стороны,
// получают одинаковый результат.
//
// Алгоритм для каждой коллекции одинаков:
//  1. По объединенному журналу строятся карты последних DELETE
//     и последних CREATE/RESTORE per entity id.
//  2. Запись считается эффективно удаленной, если последний DELETE
//     строго новее последнего CREATE/RESTORE.
//  3. Коллекции объединяются по id; при конфликте удаленная запись
//     побеждает только если ее поле прогресса строго больше локального,
//     иначе сохраняется локальная (защита незавершенной локальной правки).
//  4. Эффективно удаленные записи исключаются из результата,
//     даже если одна из сторон физически еще хранит копию.
func (e *Engine) Merge(local, remote *models.Snapshot) *models.Snapshot {
	if local == nil {
		local = models.NewSnapshot()
	}
	if remote == nil {
		remote = models.NewSnapshot()
	}

	deleted := latestTimestamps(local.Log, remote.Log, isDelete)
	restored := latestTimestamps(local.Log, remote.Log, isRestore)

	names := collectionNames(local, remote)
	phases := len(names) + 2
	done := 0

	done++
	e.report("log", done, phases)

	result := models.NewSnapshot()

	for _, name := range names {
		result.Collections[name] = e.mergeCollection(
			name,
			local.Collections[name],
			remote.Collections[name],
			deleted,
			restored,
		)
		done++
		e.report(name, done, phases)
	}

	result.Log = mergeLogs(local.Log, remote.Log, e.maxLog)
	result.Sequences = mergeSequences(local.Sequences, remote.Sequences)

	// Локальные сессионные поля не участвуют в слиянии и переживают его.
	if local.UI != nil {
		ui := *local.UI
		result.UI = &ui
	}

	done++
	e.report("finalize", done, phases)

	return result
}

// mergeCollection объединяет одну коллекцию по правилам слияния.
// Результат отсортирован по id записи, чтобы оба пира сошлись
// к идентичному снапшоту независимо от исходного порядка.
func (e *Engine) mergeCollection(
	name string,
	local, remote []models.Entity,
	deleted, restored map[string]int64,
) []models.Entity {
	merged := make(map[string]models.Entity, len(local)+len(remote))

	for _, entity := range local {
		id := entity.ID()
		if id == "" {
			e.logger.Debug("Dropping entity without id", "collection", name)
			continue
		}
		merged[id] = entity
	}

	for _, entity := range remote {
		id := entity.ID()
		if id == "" {
			e.logger.Debug("Dropping entity without id", "collection", name)
			continue
		}

		existing, exists := merged[id]
		if !exists {
			merged[id] = entity
			continue
		}

		if e.remoteProgressWins(existing, entity) {
			e.logger.Debug("Taking remote entity (progress is ahead)",
				"collection", name,
				"entity_id", id)
			merged[id] = entity
		}
	}

	ids := make([]string, 0, len(merged))
	for id := range merged {
		if effectivelyDeleted(id, deleted, restored) {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	result := make([]models.Entity, 0, len(ids))
	for _, id := range ids {
		result = append(result, merged[id].Clone())
	}

	return result
}

// remoteProgressWins проверяет правило прогресса: финансовый прогресс
// только растет, поэтому сторона с большим значением поля прогресса
// считается авторитетной и ее запись берется целиком.
func (e *Engine) remoteProgressWins(local, remote models.Entity) bool {
	for _, field := range e.progressFields {
		remoteValue, ok := remote.Number(field)
		if !ok {
			continue
		}
		localValue, _ := local.Number(field)
		if remoteValue > localValue {
			return true
		}
	}
	return false
}

// effectivelyDeleted определяет, подавлен ли id tombstone-ом:
// есть запись об удалении и (нет восстановления или удаление строго новее).
func effectivelyDeleted(id string, deleted, restored map[string]int64) bool {
	deletedAt, ok := deleted[id]
	if !ok {
		return false
	}
	restoredAt, ok := restored[id]
	if !ok {
		return true
	}
	return deletedAt > restoredAt
}

func isDelete(action string) bool {
	return action == models.LogActionDelete
}

func isRestore(action string) bool {
	return action == models.LogActionCreate || action == models.LogActionRestore
}

// latestTimestamps строит карту entityId -> максимальный timestamp
// среди записей обоих журналов, подходящих под предикат match.
func latestTimestamps(local, remote []models.LogEntry, match func(string) bool) map[string]int64 {
	latest := make(map[string]int64)

	scan := func(entries []models.LogEntry) {
		for _, entry := range entries {
			if !match(entry.Action) || entry.EntityID == "" {
				continue
			}
			if ts, ok := latest[entry.EntityID]; !ok || entry.Timestamp > ts {
				latest[entry.EntityID] = entry.Timestamp
			}
		}
	}

	scan(local)
	scan(remote)

	return latest
}

// mergeLogs объединяет журналы: дедупликация по id записи,
// сортировка по убыванию timestamp, усечение до limit записей.
func mergeLogs(local, remote []models.LogEntry, limit int) []models.LogEntry {
	seen := make(map[string]bool, len(local)+len(remote))
	union := make([]models.LogEntry, 0, len(local)+len(remote))

	add := func(entries []models.LogEntry) {
		for _, entry := range entries {
			key := entry.ID
			if key == "" {
				// Запись без id дедуплицируется по содержимому.
				key = fmt.Sprintf("%s|%s|%d", entry.EntityID, entry.Action, entry.Timestamp)
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			union = append(union, entry)
		}
	}

	add(local)
	add(remote)

	sort.Slice(union, func(i, j int) bool {
		return union[i].NewerThan(union[j])
	})

	if limit > 0 && len(union) > limit {
		union = union[:limit]
	}

	return union
}

// mergeSequences объединяет настройки нумерации документов.
// Счетчик следующего номера берется как max(local, remote), чтобы ни одна
// сторона никогда не переиспользовала уже выданный человекочитаемый номер.
// Префикс сохраняется локальный; пустой локальный префикс дозаполняется
// удаленным, чтобы результат был одинаков на обоих пирах.
func mergeSequences(local, remote map[string]models.Sequence) map[string]models.Sequence {
	result := make(map[string]models.Sequence, len(local)+len(remote))

	for name, seq := range local {
		result[name] = seq
	}

	for name, remoteSeq := range remote {
		localSeq, exists := result[name]
		if !exists {
			result[name] = remoteSeq
			continue
		}

		merged := localSeq
		if merged.Prefix == "" {
			merged.Prefix = remoteSeq.Prefix
		}
		if remoteSeq.Next > merged.Next {
			merged.Next = remoteSeq.Next
		}
		result[name] = merged
	}

	return result
}

// collectionNames возвращает отсортированное объединение имен коллекций.
func collectionNames(local, remote *models.Snapshot) []string {
	set := make(map[string]bool, len(local.Collections)+len(remote.Collections))
	for name := range local.Collections {
		set[name] = true
	}
	for name := range remote.Collections {
		set[name] = true
	}

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// report публикует прогресс после завершения фазы.
func (e *Engine) report(phase string, done, phases int) {
	if e.progressFn == nil {
		return
	}
	e.progressFn(Progress{
		Phase:   phase,
		Percent: done * 100 / phases,
	})
}
