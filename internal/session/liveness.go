package session

import (
	"github.com/iudanet/pairsync/internal/models"
	"github.com/iudanet/pairsync/internal/transport"
	"github.com/iudanet/pairsync/pkg/api"
)

// startLivenessLocked запускает монитор живости активного соединения.
// Вызывается под m.mu. Прежний монитор, если был, останавливается.
func (m *Manager) startLivenessLocked(conn transport.Conn) {
	m.stopLivenessLocked()

	stop := make(chan struct{})
	m.stopLiveness = stop

	go m.heartbeatLoop(conn, stop)
	go m.livenessLoop(stop)
}

// stopLivenessLocked останавливает монитор живости. Вызывается под m.mu.
func (m *Manager) stopLivenessLocked() {
	if m.stopLiveness != nil {
		close(m.stopLiveness)
		m.stopLiveness = nil
	}
}

// heartbeatLoop периодически отправляет heartbeat по активному каналу.
// Неудачная отправка логируется и не считается фатальной.
func (m *Manager) heartbeatLoop(conn transport.Conn, stop <-chan struct{}) {
	ticker := m.clock.NewTicker(m.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			payload, err := api.EncodeHeartbeat(m.clock.Now().UnixMilli())
			if err != nil {
				m.logger.Warn("Failed to encode heartbeat", "error", err)
				continue
			}
			if err := conn.Send(payload); err != nil {
				m.logger.Warn("Failed to send heartbeat", "error", err)
			}
		}
	}
}

// livenessLoop периодически проверяет давность последнего входящего
// сообщения (heartbeat или данные). Превышение таймаута в состоянии
// connected переводит сессию в ошибку "Connection unstable".
// Это только сигнал обнаружения: сокет принудительно не закрывается,
// а первое же входящее сообщение снимает сигнал.
func (m *Manager) livenessLoop(stop <-chan struct{}) {
	ticker := m.clock.NewTicker(m.cfg.LivenessInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			m.mu.Lock()
			gap := m.clock.Now().Sub(m.lastSeen)
			unstable := m.session.Status == models.StatusConnected && gap > m.cfg.HeartbeatTimeout
			if unstable {
				m.session.Status = models.StatusError
				m.session.Err = msgConnectionUnstable
			}
			m.mu.Unlock()

			if unstable {
				m.logger.Error("Heartbeat timeout", "gap", gap)
				m.publish()
			}
		}
	}
}
