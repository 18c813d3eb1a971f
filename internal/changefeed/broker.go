// Package changefeed fans out order change notifications to in-process subscribers.
//
// Subscribers are expected to reload the full order collection on every event,
// so events carry no payload beyond what changed and a slow subscriber may miss
// events while it still has one queued.
package changefeed

import (
	"context"
	"sync"
	"time"
)

type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
)

type Event struct {
	Type    EventType `json:"type"`
	OrderID string    `json:"order_id"`
	At      time.Time `json:"at"`
}

const defaultBuffer = 16

type Broker struct {
	mu     sync.RWMutex
	subs   map[uint64]chan Event
	nextID uint64
	buffer int
}

func NewBroker() *Broker {
	return &Broker{
		subs:   make(map[uint64]chan Event),
		buffer: defaultBuffer,
	}
}

// Subscribe registers a subscriber until ctx is done; the returned channel is then closed.
func (b *Broker) Subscribe(ctx context.Context) <-chan Event {
	ch := make(chan Event, b.buffer)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subs, id)
		close(ch)
		b.mu.Unlock()
	}()

	return ch
}

// Publish never blocks. A subscriber with a full buffer skips the event: its
// queued events already guarantee another reload.
func (b *Broker) Publish(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (b *Broker) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
