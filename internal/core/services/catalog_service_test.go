package services

import (
	"context"
	"testing"
	"time"

	"torrealta-portal/internal/adapters/persistence/repositories"
	"torrealta-portal/internal/core/domain"
)

func newCatalogFixture(t *testing.T) *CatalogService {
	t.Helper()
	ctx := context.Background()

	unitRepo := repositories.NewUnitRepository()
	units := []*domain.Unit{
		{ID: "101", Piso: 1, Tipo: domain.UnidadApartamento, Estado: domain.UnidadOcupado, PrecioOferta: 850000},
		{ID: "102", Piso: 1, Tipo: domain.UnidadApartaestudio, Estado: domain.UnidadDisponible, PrecioOferta: 650000},
		{ID: "201", Piso: 2, Tipo: domain.UnidadApartamento, Estado: domain.UnidadMantenimiento, PrecioOferta: 850000},
		{ID: "202", Piso: 2, Tipo: domain.UnidadApartamento, Estado: domain.UnidadDisponible, PrecioOferta: 870000},
	}
	for _, u := range units {
		if err := unitRepo.Create(ctx, u); err != nil {
			t.Fatalf("seeding unit %s: %v", u.ID, err)
		}
	}

	eventRepo := repositories.NewEventRepository()
	events := []*domain.Event{
		{ID: "evt001", Titulo: "Asamblea general", Fecha: time.Now().AddDate(0, 0, 7), Destacado: true},
		{ID: "evt002", Titulo: "Jornada de aseo", Fecha: time.Now().AddDate(0, 0, 14)},
	}
	for _, e := range events {
		if err := eventRepo.Create(ctx, e); err != nil {
			t.Fatalf("seeding event %s: %v", e.ID, err)
		}
	}

	return NewCatalogService(unitRepo, eventRepo)
}

func TestCatalogService_ListUnits(t *testing.T) {
	service := newCatalogFixture(t)
	ctx := context.Background()

	all, err := service.ListUnits(ctx, UnitFilter{})
	if err != nil {
		t.Fatalf("ListUnits: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("expected 4 units, got %d", len(all))
	}

	disponibles, err := service.ListUnits(ctx, UnitFilter{Estado: "Disponible"})
	if err != nil {
		t.Fatalf("ListUnits filtered: %v", err)
	}
	if len(disponibles) != 2 {
		t.Errorf("expected 2 available units, got %d", len(disponibles))
	}

	segundo, _ := service.ListUnits(ctx, UnitFilter{Piso: 2})
	if len(segundo) != 2 {
		t.Errorf("expected 2 units on floor 2, got %d", len(segundo))
	}

	estudios, _ := service.ListUnits(ctx, UnitFilter{Tipo: "Apartaestudio"})
	if len(estudios) != 1 || estudios[0].ID != "102" {
		t.Errorf("expected only unit 102, got %d results", len(estudios))
	}

	combinado, _ := service.ListUnits(ctx, UnitFilter{Estado: "Disponible", Piso: 2, Tipo: "Apartamento"})
	if len(combinado) != 1 || combinado[0].ID != "202" {
		t.Errorf("expected only unit 202, got %d results", len(combinado))
	}

	if _, err := service.ListUnits(ctx, UnitFilter{Estado: "Arrendado"}); err != domain.ErrInvalidUnitStatus {
		t.Errorf("expected ErrInvalidUnitStatus, got %v", err)
	}
	if _, err := service.ListUnits(ctx, UnitFilter{Tipo: "Penthouse"}); err != domain.ErrInvalidUnitType {
		t.Errorf("expected ErrInvalidUnitType, got %v", err)
	}
}

func TestCatalogService_SetUnitEstado(t *testing.T) {
	service := newCatalogFixture(t)
	ctx := context.Background()

	unit, err := service.SetUnitEstado(ctx, "102", domain.UnidadOcupado)
	if err != nil {
		t.Fatalf("SetUnitEstado: %v", err)
	}
	if unit.Estado != domain.UnidadOcupado {
		t.Errorf("expected Ocupado, got %s", unit.Estado)
	}

	if _, err := service.SetUnitEstado(ctx, "102", "Arrendado"); err != domain.ErrInvalidUnitStatus {
		t.Errorf("expected ErrInvalidUnitStatus, got %v", err)
	}
	if _, err := service.SetUnitEstado(ctx, "999", domain.UnidadDisponible); err != domain.ErrUnitNotFound {
		t.Errorf("expected ErrUnitNotFound, got %v", err)
	}
}

func TestCatalogService_BuildingMap(t *testing.T) {
	service := newCatalogFixture(t)

	floors, err := service.BuildingMap(context.Background())
	if err != nil {
		t.Fatalf("BuildingMap: %v", err)
	}
	if len(floors) != 2 {
		t.Fatalf("expected 2 floors, got %d", len(floors))
	}

	// Top floor first
	if floors[0].Piso != 2 || floors[1].Piso != 1 {
		t.Errorf("expected floors [2, 1], got [%d, %d]", floors[0].Piso, floors[1].Piso)
	}

	second := floors[0]
	if second.Total != 2 || second.Disponibles != 1 || second.Mantenimiento != 1 || second.Ocupadas != 0 {
		t.Errorf("unexpected floor 2 summary: %+v", second)
	}
	if len(second.Unidades) != 2 {
		t.Errorf("expected 2 units on floor 2, got %d", len(second.Unidades))
	}

	first := floors[1]
	if first.Total != 2 || first.Disponibles != 1 || first.Ocupadas != 1 {
		t.Errorf("unexpected floor 1 summary: %+v", first)
	}
}

func TestCatalogService_ListEvents(t *testing.T) {
	service := newCatalogFixture(t)
	ctx := context.Background()

	all, err := service.ListEvents(ctx, false)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 events, got %d", len(all))
	}

	destacados, err := service.ListEvents(ctx, true)
	if err != nil {
		t.Fatalf("ListEvents destacados: %v", err)
	}
	if len(destacados) != 1 || destacados[0].ID != "evt001" {
		t.Errorf("expected only evt001 highlighted, got %+v", destacados)
	}
}
