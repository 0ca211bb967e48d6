package api

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/pairsync/internal/models"
)

// Типы сообщений протокола синхронизации
const (
	TypeSyncRequest = "SYNC_REQUEST"
	TypeAction      = "ACTION"
	TypeHeartbeat   = "HEARTBEAT"
)

// Ошибки декодирования сообщений
var (
	// ErrUnknownType indicates that message carries an unknown type tag
	ErrUnknownType = errors.New("unknown message type")

	// ErrEmptyPayload indicates that message payload is missing
	ErrEmptyPayload = errors.New("empty message payload")
)

// Envelope представляет конверт сообщения на проводе.
// Type определяет интерпретацию Payload.
type Envelope struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"timestamp,omitempty"`
}

// Message - размеченное объединение всех видов входящих сообщений.
// Конкретный тип определяется через type switch после Decode.
type Message interface {
	messageType() string
}

// SyncRequest представляет запрос полной синхронизации.
// Отправляется каждой стороной один раз при установке соединения,
// а также при локальной полной замене состояния.
type SyncRequest struct {
	State *models.Snapshot `json:"state"`
}

func (SyncRequest) messageType() string { return TypeSyncRequest }

// ActionMessage представляет репликацию одной локальной мутации.
type ActionMessage struct {
	Action models.Action `json:"action"`
}

func (ActionMessage) messageType() string { return TypeAction }

// Heartbeat представляет сигнал жизни канала.
// Не вызывает никакой прикладной логики, только сбрасывает
// таймер последнего входящего сообщения у получателя.
type Heartbeat struct {
	Timestamp int64 `json:"timestamp"`
}

func (Heartbeat) messageType() string { return TypeHeartbeat }

// EncodeSyncRequest сериализует запрос полной синхронизации.
func EncodeSyncRequest(state *models.Snapshot) ([]byte, error) {
	payload, err := json.Marshal(SyncRequest{State: state})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sync request: %w", err)
	}
	return marshalEnvelope(Envelope{Type: TypeSyncRequest, Payload: payload})
}

// EncodeAction сериализует репликацию одной мутации.
func EncodeAction(action models.Action) ([]byte, error) {
	payload, err := json.Marshal(ActionMessage{Action: action})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal action: %w", err)
	}
	return marshalEnvelope(Envelope{Type: TypeAction, Payload: payload})
}

// EncodeHeartbeat сериализует heartbeat с заданным timestamp.
func EncodeHeartbeat(timestamp int64) ([]byte, error) {
	return marshalEnvelope(Envelope{Type: TypeHeartbeat, Timestamp: timestamp})
}

func marshalEnvelope(env Envelope) ([]byte, error) {
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal envelope: %w", err)
	}
	return data, nil
}

// Decode разбирает и валидирует входящее сообщение на границе транспорта.
// Возвращает типизированное сообщение или ошибку; неизвестный тег типа -
// это ошибка, а не повод для паники или молчаливого игнорирования.
func Decode(data []byte) (Message, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal envelope: %w", err)
	}

	switch env.Type {
	case TypeSyncRequest:
		if len(env.Payload) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyPayload, env.Type)
		}
		var msg SyncRequest
		if err := json.Unmarshal(env.Payload, &msg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sync request: %w", err)
		}
		return msg, nil

	case TypeAction:
		if len(env.Payload) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyPayload, env.Type)
		}
		var msg ActionMessage
		if err := json.Unmarshal(env.Payload, &msg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal action: %w", err)
		}
		return msg, nil

	case TypeHeartbeat:
		return Heartbeat{Timestamp: env.Timestamp}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, env.Type)
	}
}
