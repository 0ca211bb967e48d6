package models

// Status представляет состояние сессии синхронизации.
type Status string

// Состояния сессии синхронизации
const (
	StatusDisconnected Status = "disconnected"
	StatusConnecting   Status = "connecting"
	StatusConnected    Status = "connected"
	StatusSyncing      Status = "syncing"
	StatusError        Status = "error"
)

// Role представляет роль пира в сессии.
type Role string

// Роли пира в сессии
const (
	RoleHost   Role = "host"
	RoleClient Role = "client"
	RoleNone   Role = ""
)

// ConnectionSession представляет наблюдаемое состояние сессии синхронизации.
// Публикуется подписчикам (UI или логам) при каждом изменении статуса,
// прогресса или ошибки.
type ConnectionSession struct {
	Status       Status `json:"status"`
	Role         Role   `json:"role"`
	LocalPeerID  string `json:"local_peer_id,omitempty"`
	RemotePeerID string `json:"remote_peer_id,omitempty"`
	Err          string `json:"error,omitempty"`
	Progress     int    `json:"progress"`
}
