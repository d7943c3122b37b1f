package handlers

import (
	"errors"

	"torrealta-portal/internal/core/domain"
	"torrealta-portal/internal/core/services"
	"torrealta-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RequestHandler handles support request endpoints
type RequestHandler struct {
	requestService *services.RequestService
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(requestService *services.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// SubmitRequestBody represents a new support request body
type SubmitRequestBody struct {
	Tipo    string `json:"tipo"`
	Detalle string `json:"detalle"`
}

// UpdateRequestStatusBody represents a workflow state change body
type UpdateRequestStatusBody struct {
	Estado string `json:"estado"`
}

// Submit handles a new support request
// @Summary Submit request
// @Description File a support request (Reclamo, Mantenimiento, Sugerencia)
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SubmitRequestBody true "Request data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /requests [post]
func (h *RequestHandler) Submit(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req SubmitRequestBody
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	request, err := h.requestService.Submit(c.Context(), userID, &services.SubmitInput{
		Tipo:    domain.TipoSolicitud(req.Tipo),
		Detalle: req.Detalle,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequestType):
			return response.BadRequest(c, "Invalid request type")
		case errors.Is(err, domain.ErrEmptyRequestDetail):
			return response.BadRequest(c, "Request detail is required")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		default:
			return response.InternalServerError(c, "Failed to submit request")
		}
	}

	return response.Created(c, "Request submitted successfully", request)
}

// ListMine handles the caller's request history
// @Summary My requests
// @Description The caller's support requests, filterable by kind and state
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tipo query string false "Kind filter (todas, Reclamo, Mantenimiento, Sugerencia)"
// @Param estado query string false "State filter (todos, Pendiente, En Proceso, Resuelta)"
// @Success 200 {object} response.Response
// @Router /requests/mine [get]
func (h *RequestHandler) ListMine(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	requests, err := h.requestService.ListByUser(c.Context(), userID, services.RequestFilter{
		Tipo:   c.Query("tipo"),
		Estado: c.Query("estado"),
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to list requests")
	}

	return response.Success(c, "Requests retrieved successfully", requests)
}

// List handles the full request list (admin only)
// @Summary List requests
// @Description All support requests, filterable by kind and state
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tipo query string false "Kind filter"
// @Param estado query string false "State filter"
// @Success 200 {object} response.Response
// @Router /requests [get]
func (h *RequestHandler) List(c *fiber.Ctx) error {
	requests, err := h.requestService.List(c.Context(), services.RequestFilter{
		Tipo:   c.Query("tipo"),
		Estado: c.Query("estado"),
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to list requests")
	}

	return response.Success(c, "Requests retrieved successfully", requests)
}

// Stats handles workflow counters (admin only)
// @Summary Request statistics
// @Description Request counts per workflow state
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /requests/stats [get]
func (h *RequestHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.requestService.Stats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute request statistics")
	}

	return response.Success(c, "Request statistics retrieved successfully", stats)
}

// UpdateStatus handles workflow state changes (admin only)
// @Summary Update request state
// @Description Advance a request through the workflow (forward only)
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param body body UpdateRequestStatusBody true "New state"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /requests/{id}/estado [patch]
func (h *RequestHandler) UpdateStatus(c *fiber.Ctx) error {
	var req UpdateRequestStatusBody
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Estado == "" {
		return response.BadRequest(c, "Estado is required")
	}

	request, err := h.requestService.UpdateStatus(c.Context(), c.Params("id"), domain.EstadoSolicitud(req.Estado))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid request state")
		case errors.Is(err, domain.ErrRequestNotFound):
			return response.NotFound(c, "Request not found")
		case errors.Is(err, domain.ErrInvalidStatusChange):
			return response.Conflict(c, "Requests can only move forward in the workflow")
		default:
			return response.InternalServerError(c, "Failed to update request")
		}
	}

	return response.Success(c, "Request updated successfully", request)
}
