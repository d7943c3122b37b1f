package handlers

import (
	"errors"

	"torrealta-portal/internal/core/domain"
	"torrealta-portal/internal/core/services"
	"torrealta-portal/internal/pkg/pagination"
	"torrealta-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UnitHandler handles unit catalog endpoints
type UnitHandler struct {
	catalogService *services.CatalogService
}

// NewUnitHandler creates a new unit handler
func NewUnitHandler(catalogService *services.CatalogService) *UnitHandler {
	return &UnitHandler{catalogService: catalogService}
}

// UpdateEstadoRequest represents a unit state change request body
type UpdateEstadoRequest struct {
	Estado string `json:"estado"`
}

// List handles unit catalog listing
// @Summary List units
// @Description List the building's units, optionally filtered by occupancy state
// @Tags Units
// @Accept json
// @Produce json
// @Param estado query string false "Occupancy state filter (Disponible, Ocupado, Mantenimiento)"
// @Param tipo query string false "Layout filter (Apartamento, Apartaestudio)"
// @Param piso query int false "Floor filter"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /units [get]
func (h *UnitHandler) List(c *fiber.Ctx) error {
	filter := services.UnitFilter{
		Estado: c.Query("estado"),
		Tipo:   c.Query("tipo"),
		Piso:   c.QueryInt("piso"),
	}

	units, err := h.catalogService.ListUnits(c.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidUnitStatus):
			return response.BadRequest(c, "Invalid unit state filter")
		case errors.Is(err, domain.ErrInvalidUnitType):
			return response.BadRequest(c, "Invalid unit type filter")
		default:
			return response.InternalServerError(c, "Failed to list units")
		}
	}

	params := pagination.GetParams(c)
	start, end := params.Slice(len(units))

	return response.Success(c, "Units retrieved successfully",
		pagination.NewResponse(units[start:end], params, int64(len(units))))
}

// Map handles the building availability map
// @Summary Building map
// @Description Per-floor availability summary of the building
// @Tags Units
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /units/map [get]
func (h *UnitHandler) Map(c *fiber.Ctx) error {
	floors, err := h.catalogService.BuildingMap(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to build the unit map")
	}

	return response.Success(c, "Building map retrieved successfully", floors)
}

// Get handles single unit retrieval
// @Summary Get unit
// @Description Get one unit by ID
// @Tags Units
// @Accept json
// @Produce json
// @Param id path string true "Unit ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /units/{id} [get]
func (h *UnitHandler) Get(c *fiber.Ctx) error {
	unit, err := h.catalogService.GetUnit(c.Context(), c.Params("id"))
	if err != nil {
		return response.NotFound(c, "Unit not found")
	}

	return response.Success(c, "Unit retrieved successfully", unit)
}

// UpdateEstado handles unit state changes (admin only)
// @Summary Update unit state
// @Description Change the occupancy state of a unit
// @Tags Units
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Param body body UpdateEstadoRequest true "New state"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /units/{id}/estado [patch]
func (h *UnitHandler) UpdateEstado(c *fiber.Ctx) error {
	var req UpdateEstadoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Estado == "" {
		return response.BadRequest(c, "Estado is required")
	}

	unit, err := h.catalogService.SetUnitEstado(c.Context(), c.Params("id"), domain.EstadoUnidad(req.Estado))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidUnitStatus):
			return response.BadRequest(c, "Invalid unit state")
		case errors.Is(err, domain.ErrUnitNotFound):
			return response.NotFound(c, "Unit not found")
		default:
			return response.InternalServerError(c, "Failed to update unit")
		}
	}

	return response.Success(c, "Unit updated successfully", unit)
}
