package services

import (
	"context"
	"log"
	"strings"
	"time"

	"torrealta-portal/internal/adapters/persistence/repositories"
	"torrealta-portal/internal/core/domain"

	"github.com/google/uuid"
)

// Request list filter sentinels
const (
	FiltroTipoTodas   = "todas"
	FiltroEstadoTodos = "todos"
)

// estadoRank orders the workflow states; transitions only move forward
func estadoRank(e domain.EstadoSolicitud) int {
	switch e {
	case domain.SolicitudPendiente:
		return 0
	case domain.SolicitudEnProceso:
		return 1
	case domain.SolicitudResuelta:
		return 2
	}
	return -1
}

// RequestService handles the support request workflow
type RequestService struct {
	requestRepo   repositories.RequestRepository
	userRepo      repositories.UserRepository
	notifyService *NotificationService
}

// NewRequestService creates a new request service
func NewRequestService(
	requestRepo repositories.RequestRepository,
	userRepo repositories.UserRepository,
	notifyService *NotificationService,
) *RequestService {
	return &RequestService{
		requestRepo:   requestRepo,
		userRepo:      userRepo,
		notifyService: notifyService,
	}
}

// SubmitInput represents a new support request
type SubmitInput struct {
	Tipo    domain.TipoSolicitud `json:"tipo" validate:"required"`
	Detalle string               `json:"detalle" validate:"required"`
}

// RequestFilter narrows listings by kind and workflow state
type RequestFilter struct {
	Tipo   string // "todas" or a TipoSolicitud
	Estado string // "todos" or an EstadoSolicitud
}

// RequestStats aggregates the per-kind and per-state counts
type RequestStats struct {
	Total int64 `json:"total"`

	Reclamos       int64 `json:"reclamos"`
	Mantenimientos int64 `json:"mantenimientos"`
	Sugerencias    int64 `json:"sugerencias"`

	Pendientes int64 `json:"pendientes"`
	EnProceso  int64 `json:"en_proceso"`
	Resueltas  int64 `json:"resueltas"`
}

// Submit files a new request in Pendiente state
func (s *RequestService) Submit(ctx context.Context, userID string, input *SubmitInput) (*domain.SupportRequest, error) {
	// 1. Validate
	if !domain.ValidTipoSolicitud(input.Tipo) {
		return nil, domain.ErrInvalidRequestType
	}
	detalle := strings.TrimSpace(input.Detalle)
	if detalle == "" {
		return nil, domain.ErrEmptyRequestDetail
	}

	// 2. Resolve the requester
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 3. File the request
	now := time.Now()
	request := &domain.SupportRequest{
		ID:                 "sol" + uuid.New().String()[:8],
		UserID:             user.ID,
		UnidadID:           user.UnidadAsignada,
		Tipo:               input.Tipo,
		Detalle:            detalle,
		Estado:             domain.SolicitudPendiente,
		FechaCreacion:      now,
		FechaActualizacion: now,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	// 4. Notify the administration feed
	if s.notifyService != nil {
		s.notifyService.NotifyNewRequest(ctx, user, request)
	}

	log.Printf("✅ Request submitted: %s (%s) by %s", request.ID, request.Tipo, user.Nombre)
	return request, nil
}

// List returns all requests matching the filter, newest first
func (s *RequestService) List(ctx context.Context, filter RequestFilter) ([]*domain.SupportRequest, error) {
	requests, err := s.requestRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return applyFilter(requests, filter), nil
}

// ListByUser returns one user's requests matching the filter, newest first
func (s *RequestService) ListByUser(ctx context.Context, userID string, filter RequestFilter) ([]*domain.SupportRequest, error) {
	requests, err := s.requestRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return applyFilter(requests, filter), nil
}

func applyFilter(requests []*domain.SupportRequest, filter RequestFilter) []*domain.SupportRequest {
	out := make([]*domain.SupportRequest, 0, len(requests))
	for _, req := range requests {
		if filter.Tipo != "" && filter.Tipo != FiltroTipoTodas && string(req.Tipo) != filter.Tipo {
			continue
		}
		if filter.Estado != "" && filter.Estado != FiltroEstadoTodos && string(req.Estado) != filter.Estado {
			continue
		}
		out = append(out, req)
	}
	return out
}

// Stats counts requests per kind and per workflow state, recomputed on
// every call
func (s *RequestService) Stats(ctx context.Context) (*RequestStats, error) {
	requests, err := s.requestRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &RequestStats{Total: int64(len(requests))}
	for _, req := range requests {
		switch req.Tipo {
		case domain.SolicitudReclamo:
			stats.Reclamos++
		case domain.SolicitudMantenimiento:
			stats.Mantenimientos++
		case domain.SolicitudSugerencia:
			stats.Sugerencias++
		}
		switch req.Estado {
		case domain.SolicitudPendiente:
			stats.Pendientes++
		case domain.SolicitudEnProceso:
			stats.EnProceso++
		case domain.SolicitudResuelta:
			stats.Resueltas++
		}
	}
	return stats, nil
}

// UpdateStatus advances a request through the workflow. Transitions
// only move forward: Pendiente -> En Proceso -> Resuelta.
func (s *RequestService) UpdateStatus(ctx context.Context, id string, estado domain.EstadoSolicitud) (*domain.SupportRequest, error) {
	// 1. Validate the target state
	if !domain.ValidEstadoSolicitud(estado) {
		return nil, domain.ErrInvalidInput
	}

	// 2. Load and check the transition direction
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if estadoRank(estado) <= estadoRank(request.Estado) {
		return nil, domain.ErrInvalidStatusChange
	}

	// 3. Apply
	now := time.Now()
	request.Estado = estado
	request.FechaActualizacion = now
	if estado == domain.SolicitudResuelta {
		request.FechaCierre = &now
	}
	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	// 4. Notify the feed
	if s.notifyService != nil {
		if user, err := s.userRepo.GetByID(ctx, request.UserID); err == nil {
			s.notifyService.NotifyRequestStatus(ctx, user, request)
		}
	}

	log.Printf("✅ Request %s moved to %s", request.ID, request.Estado)
	return request, nil
}
