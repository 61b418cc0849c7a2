// Package events carries application events from the core to the GUI and logs.
package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	ProfileSaved     = "profile.saved"
	ProfileDeleted   = "profile.deleted"
	LaunchCompleted  = "launch.completed"
	StoreChanged     = "store.changed"
	AutostartChanged = "autostart.changed"
)

type Event struct {
	Type      string
	Timestamp time.Time
	Data      map[string]interface{}
}

type EventHandler interface {
	Handle(event Event)
	GetID() string
}

type handlerFunc struct {
	id string
	fn func(Event)
}

func (h handlerFunc) Handle(event Event) { h.fn(event) }
func (h handlerFunc) GetID() string      { return h.id }

// HandlerFunc wraps fn with a fresh unique ID.
func HandlerFunc(fn func(Event)) EventHandler {
	return handlerFunc{id: uuid.NewString(), fn: fn}
}

// Bus dispatches events from a single worker. Publish never blocks: when the
// buffer is full the event is dropped.
type Bus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
	buffer      chan Event
	done        chan struct{}
	closed      bool
	wg          sync.WaitGroup
	onPanic     func(interface{})
}

func NewBus(bufferSize int) *Bus {
	bus := &Bus{
		subscribers: make(map[string][]EventHandler),
		buffer:      make(chan Event, bufferSize),
		done:        make(chan struct{}),
		onPanic:     func(interface{}) {},
	}

	bus.startWorker()
	return bus
}

// OnPanic installs a callback for handlers that panic.
func (b *Bus) OnPanic(fn func(interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onPanic = fn
}

func (b *Bus) Publish(eventType string, data map[string]interface{}) {
	event := Event{Type: eventType, Timestamp: time.Now(), Data: data}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	select {
	case b.buffer <- event:
	default:
	}
}

func (b *Bus) Subscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

func (b *Bus) Unsubscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers := b.subscribers[eventType]
	for i, h := range handlers {
		if h.GetID() == handler.GetID() {
			b.subscribers[eventType] = append(handlers[:i:i], handlers[i+1:]...)
			break
		}
	}
}

// Shutdown delivers what is already buffered and stops the worker.
func (b *Bus) Shutdown() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	close(b.buffer)
	b.mu.Unlock()

	b.wg.Wait()
}

func (b *Bus) startWorker() {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for event := range b.buffer {
			b.dispatchEvent(event)
		}
	}()
}

func (b *Bus) dispatchEvent(event Event) {
	b.mu.RLock()
	handlers := make([]EventHandler, len(b.subscribers[event.Type]))
	copy(handlers, b.subscribers[event.Type])
	onPanic := b.onPanic
	b.mu.RUnlock()

	for _, handler := range handlers {
		func(h EventHandler) {
			defer func() {
				if r := recover(); r != nil {
					onPanic(r)
				}
			}()
			h.Handle(event)
		}(handler)
	}
}
