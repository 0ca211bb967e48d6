package transport

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/iudanet/pairsync/internal/validation"
)

// Pipe - транспорт внутри одного процесса: реестр endpoints по peer id,
// каналы доставки сообщений в памяти. Используется в тестах и demo-команде;
// реальная сеть остается за внешним транспортом.
type Pipe struct {
	endpoints map[string]*pipeEndpoint
	mu        sync.Mutex
}

// NewPipe создает новый in-process транспорт.
func NewPipe() *Pipe {
	return &Pipe{
		endpoints: make(map[string]*pipeEndpoint),
	}
}

// Open создает локальный endpoint с новым peer id.
func (p *Pipe) Open(ctx context.Context) (Endpoint, error) {
	ep := &pipeEndpoint{
		pipe: p,
		id:   uuid.New().String(),
	}

	p.mu.Lock()
	p.endpoints[ep.id] = ep
	p.mu.Unlock()

	return ep, nil
}

func (p *Pipe) lookup(id string) (*pipeEndpoint, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ep, ok := p.endpoints[id]
	return ep, ok
}

func (p *Pipe) unregister(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.endpoints, id)
}

// pipeEndpoint реализует Endpoint поверх реестра Pipe.
type pipeEndpoint struct {
	pipe        *Pipe
	id          string
	connHandler func(Conn)
	errHandler  func(error)
	lastRemote  string
	closed      bool
	mu          sync.Mutex
}

func (e *pipeEndpoint) LocalID() string {
	return e.id
}

func (e *pipeEndpoint) OnConnection(handler func(Conn)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.connHandler = handler
}

func (e *pipeEndpoint) OnError(handler func(error)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.errHandler = handler
}

// Dial устанавливает соединение с удаленным endpoint.
// Некорректный peer id - фатальная ошибка; отсутствие пира в реестре
// трактуется как временная недоступность (пир еще не открыл endpoint).
func (e *pipeEndpoint) Dial(ctx context.Context, remoteID string) (Conn, error) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil, ErrClosed
	}
	e.lastRemote = remoteID
	e.mu.Unlock()

	if err := validation.ValidatePeerID(remoteID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPeerID, err)
	}

	remote, ok := e.pipe.lookup(remoteID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPeerUnavailable, remoteID)
	}

	local := newPipeConn(remoteID)
	inbound := newPipeConn(e.id)
	local.peer = inbound
	inbound.peer = local

	// Входящая сторона получает соединение через свой OnConnection handler.
	remote.mu.Lock()
	handler := remote.connHandler
	remote.mu.Unlock()

	if handler != nil {
		handler(inbound)
	}

	local.enqueueOpen()
	inbound.enqueueOpen()

	return local, nil
}

// Reconnect повторно устанавливает последнее исходящее соединение.
// Новое соединение доставляется через OnConnection handler, как и входящее.
// Для endpoint без исходящих соединений (хост) это no-op: endpoint
// остается в реестре и продолжает принимать входящие.
func (e *pipeEndpoint) Reconnect(ctx context.Context) error {
	e.mu.Lock()
	remoteID := e.lastRemote
	closed := e.closed
	handler := e.connHandler
	e.mu.Unlock()

	if closed {
		return ErrClosed
	}
	if remoteID == "" {
		return nil
	}

	conn, err := e.Dial(ctx, remoteID)
	if err != nil {
		return err
	}

	if handler != nil {
		handler(conn)
	}

	return nil
}

func (e *pipeEndpoint) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	e.mu.Unlock()

	e.pipe.unregister(e.id)
	return nil
}

// pipeConn реализует Conn.
// Входящие события обрабатываются выделенной goroutine, чтобы доставка
// была асинхронной и упорядоченной; данные, пришедшие до регистрации
// OnData handler, буферизуются и доставляются после регистрации.
type pipeConn struct {
	peer         *pipeConn
	events       chan pipeEvent
	openHandler  func()
	dataHandler  func(payload []byte)
	closeHandler func()
	errHandler   func(error)
	pending      [][]byte
	remoteID     string
	opened       bool
	closed       bool
	closeSent    bool
	mu           sync.Mutex
}

type pipeEvent struct {
	payload []byte
	kind    int
}

const (
	eventOpen = iota
	eventData
	eventClose
)

func newPipeConn(remoteID string) *pipeConn {
	c := &pipeConn{
		remoteID: remoteID,
		events:   make(chan pipeEvent, 256),
	}
	go c.loop()
	return c
}

func (c *pipeConn) loop() {
	for event := range c.events {
		switch event.kind {
		case eventOpen:
			c.mu.Lock()
			c.opened = true
			handler := c.openHandler
			c.mu.Unlock()
			if handler != nil {
				handler()
			}

		case eventData:
			c.mu.Lock()
			handler := c.dataHandler
			if handler == nil {
				c.pending = append(c.pending, event.payload)
				c.mu.Unlock()
				continue
			}
			c.mu.Unlock()
			handler(event.payload)

		case eventClose:
			c.mu.Lock()
			c.closed = true
			handler := c.closeHandler
			c.mu.Unlock()
			if handler != nil {
				handler()
			}
			return
		}
	}
}

func (c *pipeConn) RemoteID() string {
	return c.remoteID
}

func (c *pipeConn) Send(payload []byte) error {
	c.mu.Lock()
	closed := c.closed
	peer := c.peer
	c.mu.Unlock()

	if closed || peer == nil {
		return ErrNotConnected
	}

	// Копия защищает получателя от переиспользования буфера отправителем.
	data := make([]byte, len(payload))
	copy(data, payload)

	peer.enqueue(pipeEvent{kind: eventData, payload: data})
	return nil
}

func (c *pipeConn) OnOpen(handler func()) {
	c.mu.Lock()
	c.openHandler = handler
	replay := c.opened
	c.mu.Unlock()

	// Канал уже открыт - handler вызывается сразу.
	if replay && handler != nil {
		handler()
	}
}

func (c *pipeConn) OnData(handler func(payload []byte)) {
	c.mu.Lock()
	c.dataHandler = handler
	pending := c.pending
	c.pending = nil
	c.mu.Unlock()

	for _, payload := range pending {
		handler(payload)
	}
}

func (c *pipeConn) OnClose(handler func()) {
	c.mu.Lock()
	c.closeHandler = handler
	replay := c.closed
	c.mu.Unlock()

	if replay && handler != nil {
		handler()
	}
}

func (c *pipeConn) OnError(handler func(error)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.errHandler = handler
}

// Close закрывает канал с обеих сторон.
func (c *pipeConn) Close() error {
	c.mu.Lock()
	if c.closeSent {
		c.mu.Unlock()
		return nil
	}
	c.closeSent = true
	peer := c.peer
	c.mu.Unlock()

	c.enqueue(pipeEvent{kind: eventClose})
	if peer != nil {
		peer.mu.Lock()
		sent := peer.closeSent
		peer.closeSent = true
		peer.mu.Unlock()
		if !sent {
			peer.enqueue(pipeEvent{kind: eventClose})
		}
	}

	return nil
}

func (c *pipeConn) enqueueOpen() {
	c.enqueue(pipeEvent{kind: eventOpen})
}

func (c *pipeConn) enqueue(event pipeEvent) {
	defer func() {
		// Канал событий закрытого соединения: событие отбрасывается.
		_ = recover()
	}()

	select {
	case c.events <- event:
	default:
		// Переполнение буфера событий - соединение считается мертвым.
		c.mu.Lock()
		handler := c.errHandler
		c.mu.Unlock()
		if handler != nil {
			handler(ErrSocket)
		}
	}
}
