package repositories

import (
	"context"
	"strings"
	"sync"
	"time"

	"torrealta-portal/internal/core/domain"
)

// userRepository implements UserRepository with in-memory storage
type userRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
	order []string // insertion order of user IDs
}

// NewUserRepository creates a new in-memory user repository
func NewUserRepository() UserRepository {
	return &userRepository{
		users: make(map[string]*domain.User),
	}
}

func cloneUser(u *domain.User) *domain.User {
	out := *u
	out.HistorialPagos = make([]domain.PaymentRecord, len(u.HistorialPagos))
	copy(out.HistorialPagos, u.HistorialPagos)
	return &out
}

// Create creates a new user
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.ID]; exists {
		return domain.ErrUserAlreadyExists
	}
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrUserAlreadyExists
		}
	}

	r.users[user.ID] = cloneUser(user)
	r.order = append(r.order, user.ID)
	return nil
}

// GetByID gets a user by ID
func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(user), nil
}

// GetByEmail gets a user by email (case-insensitive)
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if strings.EqualFold(r.users[id].Email, email) {
			return cloneUser(r.users[id]), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Update replaces a stored user
func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	user.UpdatedAt = time.Now()
	r.users[user.ID] = cloneUser(user)
	return nil
}

// List lists users in insertion order
func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneUser(r.users[id]))
	}
	return out, nil
}

// ExistsByEmail checks if email is already registered
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

// AddPayment prepends a payment record to the user's history (newest first)
func (r *userRepository) AddPayment(ctx context.Context, userID string, record domain.PaymentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.HistorialPagos = append([]domain.PaymentRecord{record}, user.HistorialPagos...)
	user.UpdatedAt = time.Now()
	return nil
}

// CountByRol counts users holding the given role
func (r *userRepository) CountByRol(ctx context.Context, rol domain.Rol) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, u := range r.users {
		if u.Rol == rol {
			count++
		}
	}
	return count, nil
}
