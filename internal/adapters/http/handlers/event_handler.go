package handlers

import (
	"torrealta-portal/internal/core/services"
	"torrealta-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EventHandler handles event board endpoints
type EventHandler struct {
	catalogService *services.CatalogService
}

// NewEventHandler creates a new event handler
func NewEventHandler(catalogService *services.CatalogService) *EventHandler {
	return &EventHandler{catalogService: catalogService}
}

// List handles event board listing
// @Summary List events
// @Description List building events, optionally highlighted only
// @Tags Events
// @Accept json
// @Produce json
// @Param destacados query bool false "Highlighted events only"
// @Success 200 {object} response.Response
// @Router /events [get]
func (h *EventHandler) List(c *fiber.Ctx) error {
	events, err := h.catalogService.ListEvents(c.Context(), c.QueryBool("destacados"))
	if err != nil {
		return response.InternalServerError(c, "Failed to list events")
	}

	return response.Success(c, "Events retrieved successfully", events)
}
