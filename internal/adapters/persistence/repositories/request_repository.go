package repositories

import (
	"context"
	"sync"

	"torrealta-portal/internal/core/domain"
)

// requestRepository implements RequestRepository with in-memory storage
type requestRepository struct {
	mu       sync.RWMutex
	requests []*domain.SupportRequest // newest first
	byID     map[string]*domain.SupportRequest
}

// NewRequestRepository creates a new in-memory request repository
func NewRequestRepository() RequestRepository {
	return &requestRepository{
		byID: make(map[string]*domain.SupportRequest),
	}
}

func cloneRequest(req *domain.SupportRequest) *domain.SupportRequest {
	out := *req
	if req.FechaCierre != nil {
		t := *req.FechaCierre
		out.FechaCierre = &t
	}
	return &out
}

// Create prepends a request so listings show newest first
func (r *requestRepository) Create(ctx context.Context, request *domain.SupportRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	req := cloneRequest(request)
	r.requests = append([]*domain.SupportRequest{req}, r.requests...)
	r.byID[req.ID] = req
	return nil
}

// GetByID gets a request by ID
func (r *requestRepository) GetByID(ctx context.Context, id string) (*domain.SupportRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	return cloneRequest(req), nil
}

// Update replaces a stored request
func (r *requestRepository) Update(ctx context.Context, request *domain.SupportRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[request.ID]
	if !ok {
		return domain.ErrRequestNotFound
	}
	*stored = *cloneRequest(request)
	return nil
}

// List lists all requests, newest first
func (r *requestRepository) List(ctx context.Context) ([]*domain.SupportRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.SupportRequest, 0, len(r.requests))
	for _, req := range r.requests {
		out = append(out, cloneRequest(req))
	}
	return out, nil
}

// ListByUserID lists a user's requests, newest first
func (r *requestRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.SupportRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.SupportRequest
	for _, req := range r.requests {
		if req.UserID == userID {
			out = append(out, cloneRequest(req))
		}
	}
	return out, nil
}

// CountByEstado counts requests in the given workflow state
func (r *requestRepository) CountByEstado(ctx context.Context, estado domain.EstadoSolicitud) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, req := range r.requests {
		if req.Estado == estado {
			count++
		}
	}
	return count, nil
}
