package transport

import "context"

//go:generate moq -out transport_mock.go . Transport Endpoint Conn

// Transport defines interface for the low-level real-time channel layer.
// The engine consumes it and never implements real networking itself;
// Pipe provides an in-process implementation for tests and demos.
type Transport interface {
	// Open creates a local endpoint and acquires its peer id
	Open(ctx context.Context) (Endpoint, error)
}

// Endpoint defines interface for a local peer endpoint.
type Endpoint interface {
	// LocalID returns the peer id assigned to this endpoint
	LocalID() string

	// Dial actively connects to a remote peer by id
	Dial(ctx context.Context, remoteID string) (Conn, error)

	// OnConnection registers handler for inbound connections.
	// Connections created by Reconnect are delivered here as well.
	OnConnection(handler func(Conn))

	// OnError registers handler for endpoint-level errors
	OnError(handler func(error))

	// Reconnect re-establishes the last connection after a recoverable failure
	Reconnect(ctx context.Context) error

	// Close destroys the endpoint
	Close() error
}

// Conn defines interface for a bidirectional ordered message channel
// between exactly two peers.
type Conn interface {
	// RemoteID returns the peer id of the other side
	RemoteID() string

	// Send transmits one message to the peer.
	// Returns ErrNotConnected if the channel is not open.
	Send(payload []byte) error

	// OnOpen registers handler invoked once the channel becomes usable
	OnOpen(handler func())

	// OnData registers handler for inbound messages
	OnData(handler func(payload []byte))

	// OnClose registers handler invoked when the channel is torn down
	OnClose(handler func())

	// OnError registers handler for channel-level errors
	OnError(handler func(error))

	// Close tears down the channel on both sides
	Close() error
}
