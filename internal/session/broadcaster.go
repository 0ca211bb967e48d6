package session

import (
	"sync"

	"github.com/iudanet/pairsync/internal/models"
)

// broadcaster рассылает снимки состояния сессии подписчикам.
// Тонкий fan-out без какой-либо логики: наблюдатели (UI или логи)
// сами решают, что делать со статусом, прогрессом и ошибкой.
type broadcaster struct {
	listeners map[int]func(models.ConnectionSession)
	nextID    int
	mu        sync.Mutex
}

func newBroadcaster() *broadcaster {
	return &broadcaster{
		listeners: make(map[int]func(models.ConnectionSession)),
	}
}

// subscribe регистрирует подписчика и возвращает функцию отписки.
func (b *broadcaster) subscribe(listener func(models.ConnectionSession)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = listener
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.listeners, id)
		b.mu.Unlock()
	}
}

// publish доставляет снимок сессии всем подписчикам.
// Вызовы выполняются синхронно вне блокировок Manager.
func (b *broadcaster) publish(session models.ConnectionSession) {
	b.mu.Lock()
	listeners := make([]func(models.ConnectionSession), 0, len(b.listeners))
	for _, listener := range b.listeners {
		listeners = append(listeners, listener)
	}
	b.mu.Unlock()

	for _, listener := range listeners {
		listener(session)
	}
}
