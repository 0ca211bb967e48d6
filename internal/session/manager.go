package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/iudanet/pairsync/internal/merge"
	"github.com/iudanet/pairsync/internal/models"
	"github.com/iudanet/pairsync/internal/store"
	"github.com/iudanet/pairsync/internal/transport"
	"github.com/iudanet/pairsync/pkg/api"
)

// Сообщения об ошибках, видимые пользователю
const (
	msgConnectionUnstable = "Connection unstable"
	msgConnectionLost     = "Connection lost; restart sync"
)

// Ошибки публичного API сессии
var (
	// ErrSessionActive indicates that a session is already running;
	// call Disconnect before starting a new one
	ErrSessionActive = errors.New("session is already active")
)

// Option настраивает Manager.
type Option func(*Manager)

// WithLogger задает логгер.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithClock задает источник времени. В тестах используется fake clock.
func WithClock(clock clockwork.Clock) Option {
	return func(m *Manager) {
		m.clock = clock
	}
}

// WithConfig задает тайминги сессии.
func WithConfig(cfg Config) Option {
	return func(m *Manager) {
		m.cfg = cfg
	}
}

// WithMergeEngine подменяет движок слияния. Без этой опции Manager
// создает движок сам и подключает его прогресс к публикации сессии.
func WithMergeEngine(engine *merge.Engine) Option {
	return func(m *Manager) {
		m.merger = engine
	}
}

// Manager владеет единственным активным peer-to-peer соединением процесса
// и оркестрирует его жизненный цикл: установку, heartbeats, восстановление
// после сбоев и обмен состоянием. Все зависимости внедряются через
// конструктор, поэтому в тестах может сосуществовать несколько экземпляров.
type Manager struct {
	transport transport.Transport
	store     store.StateStore
	merger    *merge.Engine
	clock     clockwork.Clock
	logger    *slog.Logger
	subs      *broadcaster
	cfg       Config

	mu             sync.Mutex
	session        models.ConnectionSession
	endpoint       transport.Endpoint
	conn           transport.Conn
	stopLiveness   chan struct{}
	reconnectTimer clockwork.Timer
	lastSeen       time.Time
	attempts       int
}

// NewManager создает менеджер сессии с внедренными транспортом и хранилищем.
func NewManager(t transport.Transport, s store.StateStore, opts ...Option) *Manager {
	m := &Manager{
		transport: t,
		store:     s,
		clock:     clockwork.NewRealClock(),
		logger:    slog.Default(),
		subs:      newBroadcaster(),
		cfg:       DefaultConfig(),
		session:   models.ConnectionSession{Status: models.StatusDisconnected},
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.merger == nil {
		m.merger = merge.New(
			merge.WithLogger(m.logger),
			merge.WithProgress(m.onMergeProgress),
		)
	}

	return m
}

// Subscribe регистрирует наблюдателя состояния сессии.
// Возвращает функцию отписки.
func (m *Manager) Subscribe(listener func(models.ConnectionSession)) func() {
	return m.subs.subscribe(listener)
}

// Session возвращает текущий снимок состояния сессии.
func (m *Manager) Session() models.ConnectionSession {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.session
}

// StartHosting открывает локальный endpoint и ждет ровно одно входящее
// соединение. Возвращает локальный peer id: его передача другой стороне
// (например, показ пользователю) остается за вызывающим кодом.
func (m *Manager) StartHosting(ctx context.Context) (string, error) {
	if err := m.beginSession(models.RoleHost); err != nil {
		return "", err
	}

	endpoint, err := m.openEndpoint(ctx)
	if err != nil {
		return "", err
	}

	m.logger.Info("Hosting session", "local_peer_id", endpoint.LocalID())
	return endpoint.LocalID(), nil
}

// JoinSession открывает локальный endpoint и устанавливает соединение
// с известным пиром. Ошибка возвращается только при фатальном сбое
// установки; восстановимые сбои уходят в backoff переподключения.
func (m *Manager) JoinSession(ctx context.Context, remotePeerID string) error {
	if err := m.beginSession(models.RoleClient); err != nil {
		return err
	}

	endpoint, err := m.openEndpoint(ctx)
	if err != nil {
		return err
	}

	m.logger.Info("Joining session",
		"local_peer_id", endpoint.LocalID(),
		"remote_peer_id", remotePeerID)

	conn, err := endpoint.Dial(ctx, remotePeerID)
	if err != nil {
		if transport.IsRecoverable(err) {
			m.logger.Warn("Dial failed, scheduling reconnect", "error", err)
			m.scheduleReconnect()
			return nil
		}
		m.fail(err.Error())
		return fmt.Errorf("failed to dial peer: %w", err)
	}

	m.adopt(conn)
	return nil
}

// Disconnect выполняет явный teardown сессии. Идемпотентен и безопасен
// в любом состоянии: останавливает heartbeats, закрывает соединение,
// уничтожает endpoint и сбрасывает сессию.
func (m *Manager) Disconnect() {
	m.mu.Lock()
	m.stopLivenessLocked()
	if m.reconnectTimer != nil {
		m.reconnectTimer.Stop()
		m.reconnectTimer = nil
	}
	conn := m.conn
	endpoint := m.endpoint
	m.conn = nil
	m.endpoint = nil
	m.attempts = 0
	m.session = models.ConnectionSession{Status: models.StatusDisconnected, Role: models.RoleNone}
	m.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
	if endpoint != nil {
		_ = endpoint.Close()
	}

	m.logger.Info("Session disconnected")
	m.publish()
}

// BroadcastAction транслирует локальную мутацию пиру.
// Локальные мутации (навигация, выбор, сессия) не покидают процесс.
// Мутация, заменяющая состояние целиком, уходит как SYNC_REQUEST:
// получатель обязан прогнать ее через слияние, а не применить вслепую.
// Ошибки отправки логируются и не прерывают вызывающий код.
func (m *Manager) BroadcastAction(action models.Action) {
	if !action.Scope.Replicated() {
		return
	}

	m.mu.Lock()
	conn := m.conn
	m.mu.Unlock()

	if conn == nil {
		m.logger.Debug("No active connection, action not broadcast", "action_type", action.Type)
		return
	}

	var (
		payload []byte
		err     error
	)

	if action.FullReplace {
		state := action.State
		if state == nil {
			state, err = m.store.GetState(context.Background())
			if err != nil {
				m.logger.Warn("Failed to read state for full replace broadcast", "error", err)
				return
			}
		}
		payload, err = api.EncodeSyncRequest(state.Sanitized())
	} else {
		payload, err = api.EncodeAction(action)
	}

	if err != nil {
		m.logger.Warn("Failed to encode action", "action_type", action.Type, "error", err)
		return
	}

	if err := conn.Send(payload); err != nil {
		m.logger.Warn("Failed to send action", "action_type", action.Type, "error", err)
	}
}

// beginSession переводит сессию в connecting с заданной ролью.
func (m *Manager) beginSession(role models.Role) error {
	m.mu.Lock()
	if m.session.Status != models.StatusDisconnected {
		m.mu.Unlock()
		return ErrSessionActive
	}
	m.session = models.ConnectionSession{
		Status: models.StatusConnecting,
		Role:   role,
	}
	m.mu.Unlock()

	m.publish()
	return nil
}

// openEndpoint открывает локальный endpoint и подключает его события.
func (m *Manager) openEndpoint(ctx context.Context) (transport.Endpoint, error) {
	endpoint, err := m.transport.Open(ctx)
	if err != nil {
		m.fail(err.Error())
		return nil, fmt.Errorf("failed to open endpoint: %w", err)
	}

	// Входящие соединения и соединения после Reconnect приходят сюда.
	endpoint.OnConnection(m.adopt)
	endpoint.OnError(m.handleTransportError)

	m.mu.Lock()
	m.endpoint = endpoint
	m.session.LocalPeerID = endpoint.LocalID()
	m.mu.Unlock()

	m.publish()
	return endpoint, nil
}

// adopt делает соединение активным. Прежнее активное соединение
// закрывается: в процессе существует не более одного.
func (m *Manager) adopt(conn transport.Conn) {
	m.mu.Lock()
	old := m.conn
	m.conn = conn
	m.session.RemotePeerID = conn.RemoteID()
	m.mu.Unlock()

	if old != nil && old != conn {
		m.logger.Info("Replacing active connection", "remote_peer_id", conn.RemoteID())
		_ = old.Close()
	}

	conn.OnOpen(func() { m.handleOpen(conn) })
	conn.OnData(func(payload []byte) { m.handleData(conn, payload) })
	conn.OnClose(func() { m.handleClose(conn) })
	conn.OnError(func(err error) { m.handleConnError(conn, err) })
}

// handleOpen обрабатывает открытие канала данных: фиксирует connected,
// сбрасывает счетчик попыток, запускает монитор живости и немедленно
// отправляет пиру полный снапшот. Обе стороны делают это независимо,
// поэтому при установке соединения синхронизация идет в обе стороны.
func (m *Manager) handleOpen(conn transport.Conn) {
	m.mu.Lock()
	if m.conn != conn {
		m.mu.Unlock()
		return
	}
	m.session.Status = models.StatusConnected
	m.session.Err = ""
	m.attempts = 0
	m.lastSeen = m.clock.Now()
	m.startLivenessLocked(conn)
	m.mu.Unlock()

	m.logger.Info("Connection established", "remote_peer_id", conn.RemoteID())
	m.publish()

	m.sendSnapshot(conn)
}

// sendSnapshot отправляет пиру полный локальный снапшот как SYNC_REQUEST.
// Сессионные поля вычищаются перед отправкой.
func (m *Manager) sendSnapshot(conn transport.Conn) {
	state, err := m.store.GetState(context.Background())
	if err != nil {
		m.logger.Warn("Failed to read state for sync request", "error", err)
		return
	}

	payload, err := api.EncodeSyncRequest(state.Sanitized())
	if err != nil {
		m.logger.Warn("Failed to encode sync request", "error", err)
		return
	}

	if err := conn.Send(payload); err != nil {
		m.logger.Warn("Failed to send sync request", "error", err)
	}
}

// handleData обрабатывает входящее сообщение активного соединения.
// Любое входящее сообщение (не только heartbeat) сбрасывает таймер живости
// и снимает мягкий сигнал нестабильности: канал снова подает признаки жизни.
func (m *Manager) handleData(conn transport.Conn, payload []byte) {
	m.mu.Lock()
	if m.conn != conn {
		m.mu.Unlock()
		return
	}
	m.lastSeen = m.clock.Now()
	recovered := m.session.Status == models.StatusError && m.session.Err == msgConnectionUnstable
	if recovered {
		m.session.Status = models.StatusConnected
		m.session.Err = ""
	}
	m.mu.Unlock()

	if recovered {
		m.logger.Info("Connection recovered", "remote_peer_id", conn.RemoteID())
		m.publish()
	}

	msg, err := api.Decode(payload)
	if err != nil {
		m.logger.Warn("Dropping malformed message", "error", err)
		return
	}

	switch msg := msg.(type) {
	case api.Heartbeat:
		// Только сброс таймера живости, никакой прикладной логики.

	case api.ActionMessage:
		// Входящая мутация считается каузально новой и применяется напрямую,
		// без слияния.
		if err := m.store.Dispatch(context.Background(), msg.Action); err != nil {
			m.logger.Warn("Failed to apply remote action",
				"action_type", msg.Action.Type,
				"error", err)
		}

	case api.SyncRequest:
		m.handleSyncRequest(conn, msg.State)
	}
}

// handleSyncRequest запускает слияние локального состояния с полученным
// снапшотом и атомарно применяет результат как новый источник истины.
// Переходы syncing/connected выполняются только пока соединение остается
// активным: Disconnect или вытеснение во время слияния имеют приоритет.
// Сам результат слияния применяется в любом случае - начатое слияние
// завершается и не теряет объединенное состояние.
func (m *Manager) handleSyncRequest(conn transport.Conn, remote *models.Snapshot) {
	if !m.setStatusFor(conn, models.StatusSyncing, "") {
		return
	}

	local, err := m.store.GetState(context.Background())
	if err != nil {
		m.logger.Error("Failed to read local state for merge", "error", err)
		m.setStatusFor(conn, models.StatusConnected, "")
		return
	}

	merged := m.merger.Merge(local, remote)

	if err := m.store.ReplaceState(context.Background(), merged); err != nil {
		m.logger.Error("Failed to apply merged state", "error", err)
		m.setStatusFor(conn, models.StatusConnected, "")
		return
	}

	m.logger.Info("State merged",
		"collections", len(merged.Collections),
		"log_entries", len(merged.Log))

	// Статус syncing удерживается, чтобы наблюдатели отобразили завершение.
	if m.cfg.SyncSettleDelay > 0 {
		m.clock.Sleep(m.cfg.SyncSettleDelay)
	}

	m.setStatusFor(conn, models.StatusConnected, "")
}

// handleClose обрабатывает закрытие канала: остановка heartbeats
// и переход в disconnected.
func (m *Manager) handleClose(conn transport.Conn) {
	m.mu.Lock()
	if m.conn != conn {
		m.mu.Unlock()
		return
	}
	m.conn = nil
	m.stopLivenessLocked()
	m.session.Status = models.StatusDisconnected
	m.mu.Unlock()

	m.logger.Info("Connection closed", "remote_peer_id", conn.RemoteID())
	m.publish()
}

// handleConnError обрабатывает ошибку активного соединения.
func (m *Manager) handleConnError(conn transport.Conn, err error) {
	m.mu.Lock()
	stale := m.conn != conn
	m.mu.Unlock()

	if stale {
		return
	}
	m.handleTransportError(err)
}

// handleTransportError классифицирует ошибку транспорта:
// восстановимая уходит в backoff, фатальная завершает сессию.
func (m *Manager) handleTransportError(err error) {
	if transport.IsRecoverable(err) {
		m.logger.Warn("Recoverable transport error", "error", err)
		m.scheduleReconnect()
		return
	}

	m.logger.Error("Fatal transport error", "error", err)
	m.fail(err.Error())
}

// scheduleReconnect планирует попытку восстановления соединения
// с линейным backoff: задержка = ReconnectStep x номер попытки.
// Счетчик инкрементируется до планирования, поэтому повторные сбои
// увеличивают паузу. После исчерпания попыток сессия переходит
// в терминальную ошибку до явного Disconnect.
func (m *Manager) scheduleReconnect() {
	m.mu.Lock()
	m.attempts++
	attempt := m.attempts

	if attempt >= m.cfg.MaxReconnectAttempts {
		m.session.Status = models.StatusError
		m.session.Err = msgConnectionLost
		m.mu.Unlock()

		m.logger.Error("Reconnect attempts exhausted", "attempts", attempt)
		m.publish()
		return
	}

	endpoint := m.endpoint
	m.session.Status = models.StatusConnecting
	delay := m.cfg.ReconnectStep * time.Duration(attempt)

	m.reconnectTimer = m.clock.AfterFunc(delay, func() {
		m.reconnect(endpoint)
	})
	m.mu.Unlock()

	m.logger.Info("Reconnect scheduled", "attempt", attempt, "delay", delay)
	m.publish()
}

// reconnect выполняет отложенную попытку восстановления.
func (m *Manager) reconnect(endpoint transport.Endpoint) {
	m.mu.Lock()
	stale := m.endpoint != endpoint
	m.mu.Unlock()

	if stale || endpoint == nil {
		return
	}

	if err := endpoint.Reconnect(context.Background()); err != nil {
		m.handleTransportError(err)
	}
}

// fail переводит сессию в состояние ошибки без автоматических повторов.
func (m *Manager) fail(message string) {
	m.mu.Lock()
	m.stopLivenessLocked()
	m.session.Status = models.StatusError
	m.session.Err = message
	m.mu.Unlock()

	m.publish()
}

// setStatusFor обновляет статус сессии, только если conn все еще
// является активным соединением. Возвращает false, если соединение
// за это время было разорвано или вытеснено.
func (m *Manager) setStatusFor(conn transport.Conn, status models.Status, message string) bool {
	m.mu.Lock()
	if m.conn != conn {
		m.mu.Unlock()
		return false
	}
	m.session.Status = status
	m.session.Err = message
	m.mu.Unlock()

	m.publish()
	return true
}

// onMergeProgress публикует прогресс слияния наблюдателям.
func (m *Manager) onMergeProgress(p merge.Progress) {
	m.mu.Lock()
	m.session.Progress = p.Percent
	m.mu.Unlock()

	m.publish()
}

// publish рассылает снимок сессии подписчикам. Вызывается без блокировки.
func (m *Manager) publish() {
	m.mu.Lock()
	session := m.session
	m.mu.Unlock()

	m.subs.publish(session)
}
