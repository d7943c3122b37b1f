package repositories

import (
	"context"
	"sync"

	"torrealta-portal/internal/core/domain"
)

// eventRepository implements EventRepository with in-memory storage
type eventRepository struct {
	mu     sync.RWMutex
	events []*domain.Event
}

// NewEventRepository creates a new in-memory event repository
func NewEventRepository() EventRepository {
	return &eventRepository{}
}

// Create adds an event to the board
func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := *event
	r.events = append(r.events, &e)
	return nil
}

// List lists all events in board order
func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Event, 0, len(r.events))
	for _, e := range r.events {
		ev := *e
		out = append(out, &ev)
	}
	return out, nil
}

// ListDestacados lists highlighted events only
func (r *eventRepository) ListDestacados(ctx context.Context) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Event
	for _, e := range r.events {
		if e.Destacado {
			ev := *e
			out = append(out, &ev)
		}
	}
	return out, nil
}
