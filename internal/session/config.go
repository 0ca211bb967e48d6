package session

import "time"

// Config настраивает тайминги сессии синхронизации.
// Поля загружаются из файла конфигурации или переменных окружения
// через mapstructure (viper в cmd/pairsync).
type Config struct {
	// HeartbeatInterval - период отправки heartbeat по активному каналу
	HeartbeatInterval time.Duration `mapstructure:"heartbeat-interval"`

	// LivenessInterval - период проверки давности последнего входящего сообщения
	LivenessInterval time.Duration `mapstructure:"liveness-interval"`

	// HeartbeatTimeout - максимальная пауза входящих сообщений, после которой
	// соединение считается нестабильным
	HeartbeatTimeout time.Duration `mapstructure:"heartbeat-timeout"`

	// ReconnectStep - шаг линейного backoff: задержка = ReconnectStep x номер попытки
	ReconnectStep time.Duration `mapstructure:"reconnect-step"`

	// SyncSettleDelay - удержание статуса syncing после слияния, чтобы
	// наблюдатели успели отобразить завершение. В тестах ставится в 0.
	SyncSettleDelay time.Duration `mapstructure:"sync-settle-delay"`

	// MaxReconnectAttempts - максимум последовательных попыток восстановления
	MaxReconnectAttempts int `mapstructure:"max-reconnect-attempts"`
}

// DefaultConfig возвращает конфигурацию сессии по умолчанию.
func DefaultConfig() Config {
	return Config{
		HeartbeatInterval:    2 * time.Second,
		LivenessInterval:     5 * time.Second,
		HeartbeatTimeout:     15 * time.Second,
		ReconnectStep:        2 * time.Second,
		SyncSettleDelay:      500 * time.Millisecond,
		MaxReconnectAttempts: 5,
	}
}
