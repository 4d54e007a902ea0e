package events

import "sync"

// subscriberBuffer bounds how far a slow observer may lag before it starts
// losing events.
const subscriberBuffer = 10

// Hub mirrors search lifecycle events to observers outside the request that
// triggered them, such as the /events firehose. Delivery is best-effort: the
// searching client gets its own stream and the final event always carries
// the complete result, so a dropped event here loses nothing durable.
type Hub struct {
	mu      sync.Mutex
	clients map[chan string]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[chan string]struct{})}
}

// Subscribe registers an observer. The caller must Unsubscribe when done.
func (h *Hub) Subscribe() chan string {
	ch := make(chan string, subscriberBuffer)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan string) {
	h.mu.Lock()
	delete(h.clients, ch)
	h.mu.Unlock()
	close(ch)
}

// Publish fans an event out to every observer, skipping any whose buffer is
// full.
func (h *Hub) Publish(evt string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- evt:
		default:
		}
	}
}
