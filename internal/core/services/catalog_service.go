package services

import (
	"context"
	"log"
	"sort"

	"torrealta-portal/internal/adapters/persistence/repositories"
	"torrealta-portal/internal/core/domain"
)

// CatalogService exposes the unit catalog and the event board
type CatalogService struct {
	unitRepo  repositories.UnitRepository
	eventRepo repositories.EventRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	unitRepo repositories.UnitRepository,
	eventRepo repositories.EventRepository,
) *CatalogService {
	return &CatalogService{
		unitRepo:  unitRepo,
		eventRepo: eventRepo,
	}
}

// UnitFilter narrows catalog listings. Zero values match everything.
type UnitFilter struct {
	Estado string
	Tipo   string
	Piso   int
}

// ListUnits lists units, optionally narrowed by occupancy state,
// layout type and floor
func (s *CatalogService) ListUnits(ctx context.Context, filter UnitFilter) ([]*domain.Unit, error) {
	if filter.Estado != "" && !domain.ValidEstadoUnidad(domain.EstadoUnidad(filter.Estado)) {
		return nil, domain.ErrInvalidUnitStatus
	}
	if filter.Tipo != "" && !domain.ValidTipoUnidad(domain.TipoUnidad(filter.Tipo)) {
		return nil, domain.ErrInvalidUnitType
	}

	if filter.Estado != "" && filter.Tipo == "" && filter.Piso == 0 {
		return s.unitRepo.ListByEstado(ctx, domain.EstadoUnidad(filter.Estado))
	}

	units, err := s.unitRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Unit, 0, len(units))
	for _, u := range units {
		if filter.Estado != "" && string(u.Estado) != filter.Estado {
			continue
		}
		if filter.Tipo != "" && string(u.Tipo) != filter.Tipo {
			continue
		}
		if filter.Piso != 0 && u.Piso != filter.Piso {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

// GetUnit gets one unit by ID
func (s *CatalogService) GetUnit(ctx context.Context, id string) (*domain.Unit, error) {
	return s.unitRepo.GetByID(ctx, id)
}

// SetUnitEstado changes the occupancy state of a unit
func (s *CatalogService) SetUnitEstado(ctx context.Context, id string, estado domain.EstadoUnidad) (*domain.Unit, error) {
	if !domain.ValidEstadoUnidad(estado) {
		return nil, domain.ErrInvalidUnitStatus
	}
	if err := s.unitRepo.UpdateEstado(ctx, id, estado); err != nil {
		return nil, err
	}

	log.Printf("✅ Unit %s moved to %s", id, estado)
	return s.unitRepo.GetByID(ctx, id)
}

// FloorSummary aggregates unit availability on a single floor
type FloorSummary struct {
	Piso          int            `json:"piso"`
	Total         int            `json:"total"`
	Disponibles   int            `json:"disponibles"`
	Ocupadas      int            `json:"ocupadas"`
	Mantenimiento int            `json:"mantenimiento"`
	Unidades      []*domain.Unit `json:"unidades"`
}

// BuildingMap summarizes unit availability per floor, top floor first
func (s *CatalogService) BuildingMap(ctx context.Context) ([]*FloorSummary, error) {
	units, err := s.unitRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	floors := make(map[int]*FloorSummary)
	for _, u := range units {
		f, ok := floors[u.Piso]
		if !ok {
			f = &FloorSummary{Piso: u.Piso, Unidades: []*domain.Unit{}}
			floors[u.Piso] = f
		}
		f.Total++
		switch u.Estado {
		case domain.UnidadDisponible:
			f.Disponibles++
		case domain.UnidadOcupado:
			f.Ocupadas++
		case domain.UnidadMantenimiento:
			f.Mantenimiento++
		}
		f.Unidades = append(f.Unidades, u)
	}

	result := make([]*FloorSummary, 0, len(floors))
	for _, f := range floors {
		result = append(result, f)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Piso > result[j].Piso
	})

	return result, nil
}

// ListEvents lists the event board, optionally highlighted entries only
func (s *CatalogService) ListEvents(ctx context.Context, destacados bool) ([]*domain.Event, error) {
	if destacados {
		return s.eventRepo.ListDestacados(ctx)
	}
	return s.eventRepo.List(ctx)
}
