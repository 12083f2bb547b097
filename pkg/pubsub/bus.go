// Package pubsub fans change events out to in-process subscribers.
//
// Publish never blocks: each subscriber owns a buffered channel and an event
// that does not fit is dropped for that subscriber only. Subscribers therefore
// see every event eventually or learn about the gap through Dropped.
package pubsub

import (
	"sync"
	"sync/atomic"
	"time"
)

// Wildcard subscribes to every topic.
const Wildcard = "*"

type Event struct {
	Topic   string      `json:"topic"`
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
	At      time.Time   `json:"at"`
}

type Publisher interface {
	Publish(event Event)
}

type Subscriber interface {
	Subscribe(topic string) (<-chan Event, func())
}

type subscription struct {
	topic string
	ch    chan Event
}

type Bus struct {
	mu      sync.RWMutex
	subs    map[*subscription]struct{}
	buffer  int
	dropped atomic.Int64
	closed  bool
}

func NewBus(buffer int) *Bus {
	if buffer < 1 {
		buffer = 1
	}
	return &Bus{
		subs:   make(map[*subscription]struct{}),
		buffer: buffer,
	}
}

// Subscribe returns a channel receiving events for topic (or Wildcard) and a
// cancel func that closes it. Cancel is safe to call more than once.
func (b *Bus) Subscribe(topic string) (<-chan Event, func()) {
	sub := &subscription{topic: topic, ch: make(chan Event, b.buffer)}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(sub.ch)
		return sub.ch, func() {}
	}
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	return sub.ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if _, ok := b.subs[sub]; ok {
				delete(b.subs, sub)
				close(sub.ch)
			}
		})
	}
}

func (b *Bus) Publish(event Event) {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subs {
		if sub.topic != Wildcard && sub.topic != event.Topic {
			continue
		}
		select {
		case sub.ch <- event:
		default:
			b.dropped.Add(1)
		}
	}
}

// Dropped counts events discarded because a subscriber buffer was full.
func (b *Bus) Dropped() int64 {
	return b.dropped.Load()
}

func (b *Bus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close closes every subscriber channel. Later publishes are no-ops.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for sub := range b.subs {
		close(sub.ch)
		delete(b.subs, sub)
	}
}
