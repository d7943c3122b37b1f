package handlers

import (
	"errors"
	"time"

	"torrealta-portal/internal/core/domain"
	"torrealta-portal/internal/core/services"
	"torrealta-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles rent payment endpoints
type PaymentHandler struct {
	paymentService *services.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// PayRequest represents a payment submission body
type PayRequest struct {
	Concepto string `json:"concepto"`
	Metodo   string `json:"metodo"`
}

// Summary handles the payment summary for the current user
// @Summary Payment summary
// @Description Base rent, late fee, total and due-date standing for the caller's unit
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /payments/summary [get]
func (h *PaymentHandler) Summary(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	summary, err := h.paymentService.GetSummary(c.Context(), userID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnitNotAssigned):
			return response.NotFound(c, "No unit assigned to this account")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		default:
			return response.InternalServerError(c, "Failed to build payment summary")
		}
	}

	return response.Success(c, "Payment summary retrieved successfully", summary)
}

// Pay handles a payment submission
// @Summary Submit payment
// @Description Pay the current rent plus any running late fee
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body PayRequest true "Payment data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /payments [post]
func (h *PaymentHandler) Pay(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req PayRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Metodo == "" {
		return response.BadRequest(c, "Payment method is required")
	}

	record, err := h.paymentService.RecordPayment(c.Context(), userID, &services.PayInput{
		Concepto: req.Concepto,
		Metodo:   req.Metodo,
	}, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPaymentMethod):
			return response.UnprocessableEntity(c, "Unknown payment method")
		case errors.Is(err, domain.ErrUnitNotAssigned):
			return response.NotFound(c, "No unit assigned to this account")
		case errors.Is(err, domain.ErrInvalidAmount):
			return response.UnprocessableEntity(c, "Unit has no valid rent amount")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		default:
			return response.InternalServerError(c, "Failed to record payment")
		}
	}

	return response.Created(c, "Payment recorded successfully", record)
}

// History handles the payment history for the current user
// @Summary Payment history
// @Description The caller's payment records, newest first
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /payments/history [get]
func (h *PaymentHandler) History(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	history, err := h.paymentService.GetHistory(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to load payment history")
	}

	return response.Success(c, "Payment history retrieved successfully", history)
}
