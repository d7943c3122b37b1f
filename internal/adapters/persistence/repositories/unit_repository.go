package repositories

import (
	"context"
	"sync"

	"torrealta-portal/internal/core/domain"
)

// unitRepository implements UnitRepository with in-memory storage
type unitRepository struct {
	mu    sync.RWMutex
	units map[string]*domain.Unit
	order []string // catalog order, lowest floor first
}

// NewUnitRepository creates a new in-memory unit repository
func NewUnitRepository() UnitRepository {
	return &unitRepository{
		units: make(map[string]*domain.Unit),
	}
}

func cloneUnit(u *domain.Unit) *domain.Unit {
	out := *u
	out.MediaURLs = append([]string(nil), u.MediaURLs...)
	return &out
}

// Create adds a unit to the catalog
func (r *unitRepository) Create(ctx context.Context, unit *domain.Unit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.units[unit.ID]; exists {
		return domain.ErrInvalidInput
	}
	r.units[unit.ID] = cloneUnit(unit)
	r.order = append(r.order, unit.ID)
	return nil
}

// GetByID gets a unit by ID
func (r *unitRepository) GetByID(ctx context.Context, id string) (*domain.Unit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	unit, ok := r.units[id]
	if !ok {
		return nil, domain.ErrUnitNotFound
	}
	return cloneUnit(unit), nil
}

// List lists all units in catalog order
func (r *unitRepository) List(ctx context.Context) ([]*domain.Unit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Unit, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneUnit(r.units[id]))
	}
	return out, nil
}

// ListByEstado lists units in the given state, catalog order
func (r *unitRepository) ListByEstado(ctx context.Context, estado domain.EstadoUnidad) ([]*domain.Unit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Unit
	for _, id := range r.order {
		if r.units[id].Estado == estado {
			out = append(out, cloneUnit(r.units[id]))
		}
	}
	return out, nil
}

// UpdateEstado changes the occupancy state of a unit
func (r *unitRepository) UpdateEstado(ctx context.Context, id string, estado domain.EstadoUnidad) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	unit, ok := r.units[id]
	if !ok {
		return domain.ErrUnitNotFound
	}
	unit.Estado = estado
	return nil
}

// CountByEstado counts units in the given state
func (r *unitRepository) CountByEstado(ctx context.Context, estado domain.EstadoUnidad) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, u := range r.units {
		if u.Estado == estado {
			count++
		}
	}
	return count, nil
}

// Count returns the catalog size
func (r *unitRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.units)), nil
}
