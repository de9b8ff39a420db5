// Package realtime fans out feedback lifecycle events in-process.
//
// The Hub delivers feedback creation and deletion events to every connected
// dashboard stream. Delivery is best-effort: each subscriber owns a buffered
// channel and a slow consumer loses events rather than stalling publishers.
// The Hub is an injected dependency; construct one in main and share it
// between the service layer (publishers) and the stream handler
// (subscribers).
package realtime

import (
	"sync"

	"github.com/tbourn/go-feedback-backend/internal/domain"
)

// EventType discriminates the payload of an Event.
type EventType string

const (
	// EventCreated announces a newly stored feedback record.
	EventCreated EventType = "created"
	// EventDeleted announces removal of a record by ID.
	EventDeleted EventType = "deleted"
)

// subscriberBuffer is the per-client channel depth. Events beyond it are
// dropped for that client.
const subscriberBuffer = 100

// Event is the wire payload pushed to dashboard streams. Feedback is set for
// created events, ID for deleted events.
type Event struct {
	Type     EventType        `json:"type"`
	Feedback *domain.Feedback `json:"feedback,omitempty"`
	ID       string           `json:"id,omitempty"`
}

// Hub tracks subscribers and broadcasts events to all of them.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]chan Event
}

// NewHub returns an empty Hub ready for use.
func NewHub() *Hub {
	return &Hub{subscribers: make(map[string]chan Event)}
}

// Subscribe registers clientID and returns its receive channel. Subscribing
// an already-registered ID replaces (and closes) the previous channel.
func (h *Hub) Subscribe(clientID string) <-chan Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, ok := h.subscribers[clientID]; ok {
		close(old)
	}
	ch := make(chan Event, subscriberBuffer)
	h.subscribers[clientID] = ch
	return ch
}

// Unsubscribe removes clientID and closes its channel. Unknown IDs are a
// no-op, so deferred cleanup is always safe.
func (h *Hub) Unsubscribe(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subscribers[clientID]; ok {
		close(ch)
		delete(h.subscribers, clientID)
	}
}

// Publish broadcasts ev to every subscriber without blocking. A subscriber
// whose buffer is full misses this event.
func (h *Hub) Publish(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subscribers {
		select {
		case ch <- ev:
		default:
		}
	}
}

// PublishCreated broadcasts a created event for fb.
func (h *Hub) PublishCreated(fb *domain.Feedback) {
	h.Publish(Event{Type: EventCreated, Feedback: fb})
}

// PublishDeleted broadcasts a deleted event for id.
func (h *Hub) PublishDeleted(id string) {
	h.Publish(Event{Type: EventDeleted, ID: id})
}

// SubscriberCount reports the number of connected clients.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
