package services

import (
	"context"
	"testing"
	"time"

	"torrealta-portal/internal/adapters/persistence/repositories"
	"torrealta-portal/internal/core/domain"
)

func newDashboardFixture(t *testing.T) *DashboardService {
	t.Helper()
	ctx := context.Background()

	userRepo := repositories.NewUserRepository()
	unitRepo := repositories.NewUnitRepository()
	eventRepo := repositories.NewEventRepository()
	requestRepo := repositories.NewRequestRepository()
	notificationRepo := repositories.NewNotificationRepository()

	units := []*domain.Unit{
		{ID: "101", Piso: 1, Tipo: domain.UnidadApartamento, Estado: domain.UnidadDisponible, PrecioOferta: 900000},
		{ID: "102", Piso: 1, Tipo: domain.UnidadApartamento, Estado: domain.UnidadOcupado, PrecioOferta: 850000},
		{ID: "103", Piso: 1, Tipo: domain.UnidadApartaestudio, Estado: domain.UnidadMantenimiento, PrecioOferta: 650000},
	}
	for _, u := range units {
		if err := unitRepo.Create(ctx, u); err != nil {
			t.Fatalf("create unit: %v", err)
		}
	}

	users := []*domain.User{
		{ID: "user001", Nombre: "María González", Email: "maria@torrealta.co", Rol: domain.RolResidente, UnidadAsignada: "102",
			HistorialPagos: []domain.PaymentRecord{
				{ID: "pago001", Monto: 850000, Estado: domain.PagoCompletado},
			}},
		{ID: "admin001", Nombre: "Admin Edificio", Email: "admin@torrealta.co", Rol: domain.RolAdministrador},
	}
	for _, u := range users {
		if err := userRepo.Create(ctx, u); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}

	requests := []*domain.SupportRequest{
		{ID: "sol001", UserID: "user001", Tipo: domain.SolicitudReclamo, Estado: domain.SolicitudPendiente, FechaCreacion: time.Now()},
		{ID: "sol002", UserID: "user001", Tipo: domain.SolicitudMantenimiento, Estado: domain.SolicitudEnProceso, FechaCreacion: time.Now()},
	}
	for _, r := range requests {
		if err := requestRepo.Create(ctx, r); err != nil {
			t.Fatalf("create request: %v", err)
		}
	}

	notifications := []*domain.Notification{
		{ID: "not001", Tipo: domain.NotificacionPago, Mensaje: "Pago recibido", Usuario: "María González", Fecha: time.Now()},
		{ID: "not002", Tipo: domain.NotificacionSolicitud, Mensaje: "Nueva solicitud", Usuario: "María González", Fecha: time.Now(), Leida: true},
	}
	for _, n := range notifications {
		if err := notificationRepo.Create(ctx, n); err != nil {
			t.Fatalf("create notification: %v", err)
		}
	}

	events := []*domain.Event{
		{ID: "evt001", Titulo: "Asamblea general", Destacado: true},
		{ID: "evt002", Titulo: "Mantenimiento ascensor", Destacado: false},
	}
	for _, e := range events {
		if err := eventRepo.Create(ctx, e); err != nil {
			t.Fatalf("create event: %v", err)
		}
	}

	notifyService := NewNotificationService(notificationRepo)
	paymentService := NewPaymentService(userRepo, unitRepo, notifyService, 0)
	return NewDashboardService(userRepo, unitRepo, requestRepo, notificationRepo, eventRepo, paymentService)
}

func TestDashboardService_GetAdminDashboard(t *testing.T) {
	service := newDashboardFixture(t)

	data, err := service.GetAdminDashboard(context.Background())
	if err != nil {
		t.Fatalf("GetAdminDashboard: %v", err)
	}

	if data.TotalUnidades != 3 {
		t.Errorf("total unidades = %d, want 3", data.TotalUnidades)
	}
	if data.UnidadesDisponibles != 1 || data.UnidadesOcupadas != 1 || data.UnidadesMantenimiento != 1 {
		t.Errorf("unit counts = %d/%d/%d", data.UnidadesDisponibles, data.UnidadesOcupadas, data.UnidadesMantenimiento)
	}
	if data.TotalResidentes != 1 {
		t.Errorf("residentes = %d, want 1", data.TotalResidentes)
	}
	if data.SolicitudesPendientes != 1 || data.SolicitudesEnProceso != 1 || data.SolicitudesResueltas != 0 {
		t.Errorf("solicitudes = %d/%d/%d", data.SolicitudesPendientes, data.SolicitudesEnProceso, data.SolicitudesResueltas)
	}
	if data.PagosRegistrados != 1 {
		t.Errorf("pagos registrados = %d, want 1", data.PagosRegistrados)
	}
	if data.NotificacionesSinLeer != 1 {
		t.Errorf("sin leer = %d, want 1", data.NotificacionesSinLeer)
	}
	if len(data.SolicitudesRecientes) != 2 {
		t.Errorf("solicitudes recientes = %d, want 2", len(data.SolicitudesRecientes))
	}
}

func TestDashboardService_GetResidentDashboard(t *testing.T) {
	service := newDashboardFixture(t)

	data, err := service.GetResidentDashboard(context.Background(), "user001")
	if err != nil {
		t.Fatalf("GetResidentDashboard: %v", err)
	}

	if data.Unidad == nil || data.Unidad.ID != "102" {
		t.Fatalf("unidad = %+v, want 102", data.Unidad)
	}
	if data.Pago == nil || data.Pago.ValorBase != 850000 {
		t.Errorf("pago = %+v", data.Pago)
	}
	if len(data.PagosRecientes) != 1 || data.PagosRecientes[0].ID != "pago001" {
		t.Errorf("pagos recientes = %+v", data.PagosRecientes)
	}
	if data.Solicitudes.Total != 2 || data.Solicitudes.Pendientes != 1 || data.Solicitudes.EnProceso != 1 {
		t.Errorf("solicitudes = %+v", data.Solicitudes)
	}
	if len(data.EventosDestacados) != 1 || data.EventosDestacados[0].ID != "evt001" {
		t.Errorf("eventos destacados = %+v", data.EventosDestacados)
	}
}

func TestDashboardService_GetResidentDashboardNoUnit(t *testing.T) {
	service := newDashboardFixture(t)

	data, err := service.GetResidentDashboard(context.Background(), "admin001")
	if err != nil {
		t.Fatalf("GetResidentDashboard: %v", err)
	}
	if data.Unidad != nil || data.Pago != nil {
		t.Error("user without unit should have no unit or payment block")
	}
	if data.PagosRecientes == nil || len(data.PagosRecientes) != 0 {
		t.Errorf("pagos recientes = %+v, want empty slice", data.PagosRecientes)
	}
}
