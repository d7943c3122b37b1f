package handlers

import (
	"errors"

	"torrealta-portal/internal/core/services"
	"torrealta-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler handles the administration feed endpoints
type NotificationHandler struct {
	notifyService *services.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notifyService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifyService: notifyService}
}

// List handles feed listing
// @Summary List notifications
// @Description The administration feed, filterable (todas, pagos, solicitudes, no-leidas)
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filtro query string false "Feed filter"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	feed, err := h.notifyService.List(c.Context(), c.Query("filtro"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidFiltro) {
			return response.BadRequest(c, "Invalid feed filter")
		}
		return response.InternalServerError(c, "Failed to list notifications")
	}

	return response.Success(c, "Notifications retrieved successfully", feed)
}

// UnreadCount handles the unread counter
// @Summary Unread count
// @Description Number of unread feed entries
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	count, err := h.notifyService.UnreadCount(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to count notifications")
	}

	return response.Success(c, "Unread count retrieved successfully", fiber.Map{
		"unread": count,
	})
}

// MarkRead handles flagging one entry as read
// @Summary Mark notification read
// @Description Flag one feed entry as read
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Response
// @Router /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.notifyService.MarkRead(c.Context(), c.Params("id")); err != nil {
		return response.InternalServerError(c, "Failed to update notification")
	}

	return response.Success(c, "Notification marked as read", nil)
}

// MarkAllRead handles flagging the whole feed as read
// @Summary Mark all read
// @Description Flag every feed entry as read
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /notifications/read-all [patch]
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.notifyService.MarkAllRead(c.Context()); err != nil {
		return response.InternalServerError(c, "Failed to update notifications")
	}

	return response.Success(c, "All notifications marked as read", nil)
}
