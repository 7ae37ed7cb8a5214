package activity

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
	"github.com/taaza-dairy/taaza-cli/internal/ports"
)

// Hub fans qualifying activity events out to subscribers. Subscribers are
// called synchronously on the publishing goroutine.
type Hub struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]func()
	log    zerolog.Logger
}

var _ ports.ActivitySource = (*Hub)(nil)

func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		subs: map[int]func(){},
		log:  logger.With().Str("component", "activity").Logger(),
	}
}

func (h *Hub) Subscribe(fn func()) func() {
	if fn == nil {
		return func() {}
	}

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = fn
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

// Publish notifies subscribers when kind is a qualifying interaction and
// reports whether it was.
func (h *Hub) Publish(kind domain.ActivityKind) bool {
	if !kind.Qualifying() {
		h.log.Trace().Str("kind", string(kind)).Msg("ignored activity")
		return false
	}

	h.mu.RLock()
	subs := make([]func(), 0, len(h.subs))
	for _, fn := range h.subs {
		subs = append(subs, fn)
	}
	h.mu.RUnlock()

	for _, fn := range subs {
		fn()
	}
	return true
}

func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
