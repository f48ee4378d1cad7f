package document

import (
	"context"
	"sync"

	"github.com/BruksfildServices01/salon-booking/internal/store"
)

// Channel is the Postgres NOTIFY channel shared by all collections.
const Channel = "store_changes"

type Event struct {
	Collection string   `json:"collection"`
	Op         store.Op `json:"op"`
	ID         string   `json:"id"`
}

// Hub fans change events out to per-collection subscribers. A slow
// subscriber drops events instead of stalling the listener.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: map[string]map[chan Event]struct{}{}}
}

func (h *Hub) Subscribe(ctx context.Context, collection string) <-chan Event {
	ch := make(chan Event, 32)

	h.mu.Lock()
	if h.subs[collection] == nil {
		h.subs[collection] = map[chan Event]struct{}{}
	}
	h.subs[collection][ch] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.subs[collection], ch)
		h.mu.Unlock()
		close(ch)
	}()

	return ch
}

func (h *Hub) Dispatch(ev Event) (delivered int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs[ev.Collection] {
		select {
		case ch <- ev:
			delivered++
		default:
		}
	}
	return delivered
}
