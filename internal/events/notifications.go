// Package events fans committed wallet notifications out to in-process
// subscribers.
package events

import (
	"sync"

	"github.com/chriscamplejohn/walletledger/internal/multiwallet"
)

// Broadcaster delivers committed notifications to all subscribers via
// buffered channels. The API is intentionally small so call sites can
// stay straightforward.
type Broadcaster struct {
	mu     sync.RWMutex
	subs   map[chan multiwallet.Notification]struct{}
	buffer int
}

// NewBroadcaster creates a broadcaster with the given per-subscriber
// buffer.
func NewBroadcaster(buffer int) *Broadcaster {
	if buffer < 1 {
		buffer = 64
	}
	return &Broadcaster{
		subs:   make(map[chan multiwallet.Notification]struct{}),
		buffer: buffer,
	}
}

// Publish sends the notification to all subscribers, dropping it for a
// reader that has fallen behind.
func (b *Broadcaster) Publish(n multiwallet.Notification) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs {
		select {
		case ch <- n:
		default:
			// drop slow consumer
		}
	}
}

// Subscribe returns a channel that receives notifications until
// Unsubscribe is called.
func (b *Broadcaster) Subscribe() chan multiwallet.Notification {
	ch := make(chan multiwallet.Notification, b.buffer)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes the channel and closes it.
func (b *Broadcaster) Unsubscribe(ch chan multiwallet.Notification) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}
