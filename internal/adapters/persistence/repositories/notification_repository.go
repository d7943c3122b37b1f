package repositories

import (
	"context"
	"sync"

	"torrealta-portal/internal/core/domain"
)

// notificationRepository implements NotificationRepository with in-memory storage
type notificationRepository struct {
	mu   sync.RWMutex
	feed []*domain.Notification // newest first
	byID map[string]*domain.Notification
}

// NewNotificationRepository creates a new in-memory notification repository
func NewNotificationRepository() NotificationRepository {
	return &notificationRepository{
		byID: make(map[string]*domain.Notification),
	}
}

// Create prepends a notification so the feed stays newest first
func (r *notificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := *notification
	r.feed = append([]*domain.Notification{&n}, r.feed...)
	r.byID[n.ID] = &n
	return nil
}

// GetByID gets a notification by ID
func (r *notificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *n
	return &out, nil
}

// List lists the whole feed, newest first
func (r *notificationRepository) List(ctx context.Context) ([]*domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Notification, 0, len(r.feed))
	for _, n := range r.feed {
		nn := *n
		out = append(out, &nn)
	}
	return out, nil
}

// MarkRead flags one notification as read
func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	n.Leida = true
	return nil
}

// MarkAllRead flags the whole feed as read
func (r *notificationRepository) MarkAllRead(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.feed {
		n.Leida = true
	}
	return nil
}

// CountUnread counts unread notifications
func (r *notificationRepository) CountUnread(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, n := range r.feed {
		if !n.Leida {
			count++
		}
	}
	return count, nil
}

// CountByTipo counts notifications of the given origin
func (r *notificationRepository) CountByTipo(ctx context.Context, tipo domain.TipoNotificacion) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, n := range r.feed {
		if n.Tipo == tipo {
			count++
		}
	}
	return count, nil
}
