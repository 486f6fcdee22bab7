// Package notifier fans out reload pings to the live-reload streams.
package notifier

import "sync"

// Notifier delivers a ping to every subscriber. A ping carries no payload:
// subscribers only learn that the page should be reloaded.
type Notifier struct {
	mu   sync.RWMutex
	subs map[chan struct{}]struct{}
}

// New returns an empty Notifier.
func New() *Notifier {
	return &Notifier{subs: make(map[chan struct{}]struct{})}
}

// Subscribe registers a listener. The returned cancel func must be called
// once the listener goes away; it closes the channel.
func (n *Notifier) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	n.mu.Lock()
	n.subs[ch] = struct{}{}
	n.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, ch)
			n.mu.Unlock()
			close(ch)
		})
	}
}

// Broadcast pings every subscriber without blocking. A subscriber that
// still has an unread ping keeps just the one.
func (n *Notifier) Broadcast() {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Len returns the number of active subscribers.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs)
}
