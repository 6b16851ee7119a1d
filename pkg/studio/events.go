package studio

import (
	"context"
	"sync"
	"time"
)

// EventKind classifies session events for user-visible notification styling.
type EventKind string

const (
	EventInfo    EventKind = "info"
	EventSuccess EventKind = "success"
	EventError   EventKind = "error"
)

// Event is a user-visible session notification: a generated image, a failed
// render, or the outcome of an export action.
type Event struct {
	Kind    EventKind `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// hub fans session events out to subscribers. Sends are non-blocking: a
// subscriber whose buffer is full misses the event rather than stalling the
// regeneration pipeline.
type hub struct {
	mu     sync.RWMutex
	subs   map[chan Event]struct{}
	closed bool
}

const subscriberBuffer = 8

func newHub() *hub {
	return &hub{subs: make(map[chan Event]struct{})}
}

// subscribe registers a new subscriber. The subscription ends and the
// channel closes when ctx is cancelled or the hub shuts down. Subscribing to
// a closed hub returns an already-closed channel.
func (h *hub) subscribe(ctx context.Context) <-chan Event {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(ch)
		return ch
	}
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	if ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			h.unsubscribe(ch)
		}()
	}

	return ch
}

func (h *hub) unsubscribe(ch chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
}

func (h *hub) publish(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// close shuts down the hub and closes all subscriber channels. Safe to call
// repeatedly.
func (h *hub) close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for ch := range h.subs {
		close(ch)
	}
	clear(h.subs)
}
