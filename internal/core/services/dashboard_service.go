package services

import (
	"context"
	"time"

	"torrealta-portal/internal/adapters/persistence/repositories"
	"torrealta-portal/internal/core/domain"
)

// DashboardService aggregates portal data for the dashboard views
type DashboardService struct {
	userRepo         repositories.UserRepository
	unitRepo         repositories.UnitRepository
	requestRepo      repositories.RequestRepository
	notificationRepo repositories.NotificationRepository
	eventRepo        repositories.EventRepository
	paymentService   *PaymentService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	userRepo repositories.UserRepository,
	unitRepo repositories.UnitRepository,
	requestRepo repositories.RequestRepository,
	notificationRepo repositories.NotificationRepository,
	eventRepo repositories.EventRepository,
	paymentService *PaymentService,
) *DashboardService {
	return &DashboardService{
		userRepo:         userRepo,
		unitRepo:         unitRepo,
		requestRepo:      requestRepo,
		notificationRepo: notificationRepo,
		eventRepo:        eventRepo,
		paymentService:   paymentService,
	}
}

// ============================================================
// Admin Dashboard
// ============================================================

// AdminDashboardData represents admin dashboard data
type AdminDashboardData struct {
	// Unit statistics
	TotalUnidades         int64 `json:"total_unidades"`
	UnidadesDisponibles   int64 `json:"unidades_disponibles"`
	UnidadesOcupadas      int64 `json:"unidades_ocupadas"`
	UnidadesMantenimiento int64 `json:"unidades_mantenimiento"`

	// Residents
	TotalResidentes int64 `json:"total_residentes"`

	// Request workflow statistics
	SolicitudesPendientes int64 `json:"solicitudes_pendientes"`
	SolicitudesEnProceso  int64 `json:"solicitudes_en_proceso"`
	SolicitudesResueltas  int64 `json:"solicitudes_resueltas"`

	// Activity
	PagosRegistrados      int64 `json:"pagos_registrados"`
	NotificacionesSinLeer int64 `json:"notificaciones_sin_leer"`

	// Recent requests
	SolicitudesRecientes []*domain.SupportRequest `json:"solicitudes_recientes"`
}

// GetAdminDashboard returns admin dashboard data
func (s *DashboardService) GetAdminDashboard(ctx context.Context) (*AdminDashboardData, error) {
	data := &AdminDashboardData{}
	var err error

	// Unit counts by state
	if data.TotalUnidades, err = s.unitRepo.Count(ctx); err != nil {
		return nil, err
	}
	if data.UnidadesDisponibles, err = s.unitRepo.CountByEstado(ctx, domain.UnidadDisponible); err != nil {
		return nil, err
	}
	if data.UnidadesOcupadas, err = s.unitRepo.CountByEstado(ctx, domain.UnidadOcupado); err != nil {
		return nil, err
	}
	if data.UnidadesMantenimiento, err = s.unitRepo.CountByEstado(ctx, domain.UnidadMantenimiento); err != nil {
		return nil, err
	}

	// Residents
	if data.TotalResidentes, err = s.userRepo.CountByRol(ctx, domain.RolResidente); err != nil {
		return nil, err
	}

	// Request workflow counts
	if data.SolicitudesPendientes, err = s.requestRepo.CountByEstado(ctx, domain.SolicitudPendiente); err != nil {
		return nil, err
	}
	if data.SolicitudesEnProceso, err = s.requestRepo.CountByEstado(ctx, domain.SolicitudEnProceso); err != nil {
		return nil, err
	}
	if data.SolicitudesResueltas, err = s.requestRepo.CountByEstado(ctx, domain.SolicitudResuelta); err != nil {
		return nil, err
	}

	// Activity
	if data.PagosRegistrados, err = s.notificationRepo.CountByTipo(ctx, domain.NotificacionPago); err != nil {
		return nil, err
	}
	if data.NotificacionesSinLeer, err = s.notificationRepo.CountUnread(ctx); err != nil {
		return nil, err
	}

	// Recent requests, newest first
	requests, err := s.requestRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(requests) > 5 {
		requests = requests[:5]
	}
	data.SolicitudesRecientes = requests

	return data, nil
}

// ============================================================
// Resident Dashboard
// ============================================================

// ResidentDashboardData represents a resident's dashboard data
type ResidentDashboardData struct {
	Unidad            *domain.Unit           `json:"unidad,omitempty"`
	Pago              *PaymentSummary        `json:"pago,omitempty"`
	PagosRecientes    []domain.PaymentRecord `json:"pagos_recientes"`
	Solicitudes       *RequestStats          `json:"solicitudes"`
	EventosDestacados []*domain.Event        `json:"eventos_destacados"`
}

// GetResidentDashboard returns dashboard data for one resident
func (s *DashboardService) GetResidentDashboard(ctx context.Context, userID string) (*ResidentDashboardData, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	data := &ResidentDashboardData{
		PagosRecientes: []domain.PaymentRecord{},
	}

	// Unit and payment picture, when one is assigned
	if user.UnidadAsignada != "" {
		if data.Unidad, err = s.unitRepo.GetByID(ctx, user.UnidadAsignada); err != nil {
			return nil, err
		}
		if data.Pago, err = s.paymentService.GetSummary(ctx, userID, time.Now()); err != nil {
			return nil, err
		}
	}

	// Recent payments, newest first
	pagos := user.HistorialPagos
	if len(pagos) > 5 {
		pagos = pagos[:5]
	}
	data.PagosRecientes = pagos

	// Own request counts
	requests, err := s.requestRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats := &RequestStats{Total: int64(len(requests))}
	for _, req := range requests {
		switch req.Estado {
		case domain.SolicitudPendiente:
			stats.Pendientes++
		case domain.SolicitudEnProceso:
			stats.EnProceso++
		case domain.SolicitudResuelta:
			stats.Resueltas++
		}
	}
	data.Solicitudes = stats

	// Highlighted events
	if data.EventosDestacados, err = s.eventRepo.ListDestacados(ctx); err != nil {
		return nil, err
	}

	return data, nil
}
