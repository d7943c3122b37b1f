package repositories

import (
	"context"
	"sync"
	"time"

	"torrealta-portal/internal/core/domain"
)

// sessionRepository implements SessionRepository with in-memory storage
type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session // keyed by session ID
	byHash   map[string]string          // token hash -> session ID
}

// NewSessionRepository creates a new in-memory session repository
func NewSessionRepository() SessionRepository {
	return &sessionRepository{
		sessions: make(map[string]*domain.Session),
		byHash:   make(map[string]string),
	}
}

// Create stores a new session
func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := *session
	r.sessions[s.ID] = &s
	r.byHash[s.TokenHash] = s.ID
	return nil
}

// GetByTokenHash looks up a session by its hashed refresh token
func (r *sessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byHash[tokenHash]
	if !ok {
		return nil, domain.ErrNotFound
	}
	s := *r.sessions[id]
	return &s, nil
}

// Revoke marks a session as revoked
func (r *sessionRepository) Revoke(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return domain.ErrNotFound
	}
	now := time.Now()
	s.RevokedAt = &now
	return nil
}

// RevokeByTokenHash marks the session holding tokenHash as revoked
func (r *sessionRepository) RevokeByTokenHash(ctx context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byHash[tokenHash]
	if !ok {
		return domain.ErrNotFound
	}
	now := time.Now()
	r.sessions[id].RevokedAt = &now
	return nil
}

// RevokeAllByUserID revokes every active session of a user
func (r *sessionRepository) RevokeAllByUserID(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for _, s := range r.sessions {
		if s.UserID == userID && s.RevokedAt == nil {
			s.RevokedAt = &now
		}
	}
	return nil
}

// DeleteExpired drops sessions past their expiry
func (r *sessionRepository) DeleteExpired(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for id, s := range r.sessions {
		if now.After(s.ExpiresAt) {
			delete(r.byHash, s.TokenHash)
			delete(r.sessions, id)
		}
	}
	return nil
}

// CountActiveByUserID counts non-revoked, non-expired sessions of a user
func (r *sessionRepository) CountActiveByUserID(ctx context.Context, userID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, s := range r.sessions {
		if s.UserID == userID && !s.IsRevoked() && !s.IsExpired() {
			count++
		}
	}
	return count, nil
}
