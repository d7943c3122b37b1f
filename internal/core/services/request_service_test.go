package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"torrealta-portal/internal/adapters/persistence/repositories"
	"torrealta-portal/internal/core/domain"
)

func newRequestFixture(t *testing.T) (*RequestService, repositories.NotificationRepository) {
	t.Helper()
	ctx := context.Background()

	userRepo := repositories.NewUserRepository()
	requestRepo := repositories.NewRequestRepository()
	notificationRepo := repositories.NewNotificationRepository()
	notifyService := NewNotificationService(notificationRepo)

	user := &domain.User{
		ID:             "user001",
		Nombre:         "María González",
		Email:          "maria@torrealta.co",
		Rol:            domain.RolResidente,
		UnidadAsignada: "102",
	}
	if err := userRepo.Create(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	return NewRequestService(requestRepo, userRepo, notifyService), notificationRepo
}

func TestRequestService_Submit(t *testing.T) {
	service, notificationRepo := newRequestFixture(t)
	ctx := context.Background()

	request, err := service.Submit(ctx, "user001", &SubmitInput{
		Tipo:    domain.SolicitudMantenimiento,
		Detalle: "  La llave del lavamanos gotea  ",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if !strings.HasPrefix(request.ID, "sol") {
		t.Errorf("id = %s, want sol prefix", request.ID)
	}
	if request.Estado != domain.SolicitudPendiente {
		t.Errorf("estado = %s, want Pendiente", request.Estado)
	}
	if request.Detalle != "La llave del lavamanos gotea" {
		t.Errorf("detalle not trimmed: %q", request.Detalle)
	}
	if request.UnidadID != "102" {
		t.Errorf("unidad = %s, want 102", request.UnidadID)
	}
	if request.FechaCierre != nil {
		t.Error("new request should have no close date")
	}
	if !request.FechaActualizacion.Equal(request.FechaCreacion) {
		t.Errorf("updated date = %v, want the creation date %v", request.FechaActualizacion, request.FechaCreacion)
	}

	feed, _ := notificationRepo.List(ctx)
	if len(feed) != 1 || feed[0].Tipo != domain.NotificacionSolicitud {
		t.Errorf("expected one request notification, got %d", len(feed))
	}
	if feed[0].Usuario != "María González" || feed[0].Detalle != "La llave del lavamanos gotea" {
		t.Errorf("feed entry = %+v", feed[0])
	}
}

func TestRequestService_SubmitValidation(t *testing.T) {
	service, _ := newRequestFixture(t)
	ctx := context.Background()

	_, err := service.Submit(ctx, "user001", &SubmitInput{Tipo: "Queja", Detalle: "algo"})
	if !errors.Is(err, domain.ErrInvalidRequestType) {
		t.Errorf("expected ErrInvalidRequestType, got %v", err)
	}

	_, err = service.Submit(ctx, "user001", &SubmitInput{Tipo: domain.SolicitudReclamo, Detalle: "   "})
	if !errors.Is(err, domain.ErrEmptyRequestDetail) {
		t.Errorf("expected ErrEmptyRequestDetail, got %v", err)
	}

	_, err = service.Submit(ctx, "nobody", &SubmitInput{Tipo: domain.SolicitudReclamo, Detalle: "algo"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRequestService_UpdateStatusForwardOnly(t *testing.T) {
	service, _ := newRequestFixture(t)
	ctx := context.Background()

	request, err := service.Submit(ctx, "user001", &SubmitInput{
		Tipo:    domain.SolicitudReclamo,
		Detalle: "Ruido en el pasillo",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// Pendiente -> En Proceso
	updated, err := service.UpdateStatus(ctx, request.ID, domain.SolicitudEnProceso)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Estado != domain.SolicitudEnProceso {
		t.Errorf("estado = %s, want En Proceso", updated.Estado)
	}
	if updated.FechaCierre != nil {
		t.Error("En Proceso should not set a close date")
	}
	if updated.FechaActualizacion.Before(request.FechaActualizacion) {
		t.Error("transition should bump the updated date")
	}

	// Backwards is rejected
	if _, err := service.UpdateStatus(ctx, request.ID, domain.SolicitudPendiente); !errors.Is(err, domain.ErrInvalidStatusChange) {
		t.Errorf("expected ErrInvalidStatusChange going backwards, got %v", err)
	}

	// Same state is rejected
	if _, err := service.UpdateStatus(ctx, request.ID, domain.SolicitudEnProceso); !errors.Is(err, domain.ErrInvalidStatusChange) {
		t.Errorf("expected ErrInvalidStatusChange for same state, got %v", err)
	}

	// En Proceso -> Resuelta sets the close date
	resolved, err := service.UpdateStatus(ctx, request.ID, domain.SolicitudResuelta)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if resolved.FechaCierre == nil {
		t.Error("Resuelta should set the close date")
	} else if !resolved.FechaActualizacion.Equal(*resolved.FechaCierre) {
		t.Error("closing should move the updated date to the close date")
	}
}

func TestRequestService_UpdateStatusSkipAhead(t *testing.T) {
	service, _ := newRequestFixture(t)
	ctx := context.Background()

	request, _ := service.Submit(ctx, "user001", &SubmitInput{
		Tipo:    domain.SolicitudSugerencia,
		Detalle: "Más sillas en la terraza",
	})

	// Pendiente -> Resuelta directly is still a forward move
	resolved, err := service.UpdateStatus(ctx, request.ID, domain.SolicitudResuelta)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if resolved.Estado != domain.SolicitudResuelta || resolved.FechaCierre == nil {
		t.Errorf("expected resolved request with close date, got %+v", resolved)
	}
}

func TestRequestService_UpdateStatusErrors(t *testing.T) {
	service, _ := newRequestFixture(t)
	ctx := context.Background()

	if _, err := service.UpdateStatus(ctx, "sol999", domain.SolicitudResuelta); !errors.Is(err, domain.ErrRequestNotFound) {
		t.Errorf("expected ErrRequestNotFound, got %v", err)
	}

	request, _ := service.Submit(ctx, "user001", &SubmitInput{
		Tipo:    domain.SolicitudReclamo,
		Detalle: "algo",
	})
	if _, err := service.UpdateStatus(ctx, request.ID, "Cerrada"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for unknown state, got %v", err)
	}
}

func TestRequestService_ListFilters(t *testing.T) {
	service, _ := newRequestFixture(t)
	ctx := context.Background()

	reclamo, _ := service.Submit(ctx, "user001", &SubmitInput{Tipo: domain.SolicitudReclamo, Detalle: "uno"})
	service.Submit(ctx, "user001", &SubmitInput{Tipo: domain.SolicitudMantenimiento, Detalle: "dos"})
	service.Submit(ctx, "user001", &SubmitInput{Tipo: domain.SolicitudSugerencia, Detalle: "tres"})
	service.UpdateStatus(ctx, reclamo.ID, domain.SolicitudEnProceso)

	all, err := service.List(ctx, RequestFilter{Tipo: FiltroTipoTodas, Estado: FiltroEstadoTodos})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 requests, got %d", len(all))
	}

	// Newest first
	if all[0].Detalle != "tres" {
		t.Errorf("expected newest first, head is %q", all[0].Detalle)
	}

	byTipo, _ := service.List(ctx, RequestFilter{Tipo: string(domain.SolicitudReclamo)})
	if len(byTipo) != 1 || byTipo[0].ID != reclamo.ID {
		t.Errorf("tipo filter returned %d results", len(byTipo))
	}

	byEstado, _ := service.List(ctx, RequestFilter{Estado: string(domain.SolicitudPendiente)})
	if len(byEstado) != 2 {
		t.Errorf("estado filter returned %d results, want 2", len(byEstado))
	}
}

func TestRequestService_Stats(t *testing.T) {
	service, _ := newRequestFixture(t)
	ctx := context.Background()

	first, _ := service.Submit(ctx, "user001", &SubmitInput{Tipo: domain.SolicitudReclamo, Detalle: "uno"})
	second, _ := service.Submit(ctx, "user001", &SubmitInput{Tipo: domain.SolicitudMantenimiento, Detalle: "dos"})
	service.Submit(ctx, "user001", &SubmitInput{Tipo: domain.SolicitudSugerencia, Detalle: "tres"})

	service.UpdateStatus(ctx, first.ID, domain.SolicitudEnProceso)
	service.UpdateStatus(ctx, second.ID, domain.SolicitudResuelta)

	stats, err := service.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 3 || stats.Pendientes != 1 || stats.EnProceso != 1 || stats.Resueltas != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.Reclamos != 1 || stats.Mantenimientos != 1 || stats.Sugerencias != 1 {
		t.Errorf("per-kind counts = %d/%d/%d", stats.Reclamos, stats.Mantenimientos, stats.Sugerencias)
	}
}

func TestRequestService_ListByUser(t *testing.T) {
	service, _ := newRequestFixture(t)
	ctx := context.Background()

	service.Submit(ctx, "user001", &SubmitInput{Tipo: domain.SolicitudReclamo, Detalle: "uno"})

	mine, err := service.ListByUser(ctx, "user001", RequestFilter{})
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(mine) != 1 {
		t.Errorf("expected 1 request, got %d", len(mine))
	}

	others, _ := service.ListByUser(ctx, "user999", RequestFilter{})
	if len(others) != 0 {
		t.Errorf("expected no requests for another user, got %d", len(others))
	}
}
