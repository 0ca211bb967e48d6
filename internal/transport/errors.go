package transport

import "errors"

// Common transport errors
var (
	// ErrPeerUnavailable indicates that the remote peer is temporarily unreachable
	ErrPeerUnavailable = errors.New("peer temporarily unavailable")

	// ErrNetwork indicates a transient network failure
	ErrNetwork = errors.New("network failure")

	// ErrSocket indicates a transient socket-level failure
	ErrSocket = errors.New("socket error")

	// ErrInvalidPeerID indicates a malformed or unknown peer id
	ErrInvalidPeerID = errors.New("invalid peer id")

	// ErrRejected indicates a protocol-level rejection by the peer
	ErrRejected = errors.New("connection rejected")

	// ErrNotConnected indicates that the channel is not open
	ErrNotConnected = errors.New("channel is not open")

	// ErrClosed indicates that the endpoint is closed
	ErrClosed = errors.New("endpoint is closed")
)

// IsRecoverable сообщает, стоит ли пытаться восстановить соединение
// после данной ошибки. Сетевые сбои, временная недоступность пира и ошибки
// сокета восстановимы; некорректный peer id и отказ протокола - нет.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrPeerUnavailable) ||
		errors.Is(err, ErrNetwork) ||
		errors.Is(err, ErrSocket)
}
