package handlers

import (
	"errors"

	"torrealta-portal/internal/core/domain"
	"torrealta-portal/internal/core/services"
	"torrealta-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetAdminDashboard returns admin dashboard data
// @Summary Admin Dashboard
// @Description Building-wide statistics for the administration (Admin only)
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /dashboard/admin [get]
func (h *DashboardHandler) GetAdminDashboard(c *fiber.Ctx) error {
	data, err := h.dashboardService.GetAdminDashboard(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to get admin dashboard")
	}

	return response.Success(c, "Admin dashboard retrieved successfully", data)
}

// GetResidentDashboard returns resident dashboard data
// @Summary Resident Dashboard
// @Description The caller's unit, payment picture, requests and events
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /dashboard/resident [get]
func (h *DashboardHandler) GetResidentDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	data, err := h.dashboardService.GetResidentDashboard(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to get resident dashboard")
	}

	return response.Success(c, "Resident dashboard retrieved successfully", data)
}

// GetMyDashboard returns dashboard based on user role
// @Summary My Dashboard
// @Description Get dashboard based on current user's role (auto-detect)
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) GetMyDashboard(c *fiber.Ctx) error {
	rol, _ := c.Locals("rol").(string)
	userID, _ := c.Locals("userID").(string)

	var data interface{}
	var err error

	switch rol {
	case string(domain.RolAdministrador):
		data, err = h.dashboardService.GetAdminDashboard(c.Context())
	default:
		data, err = h.dashboardService.GetResidentDashboard(c.Context(), userID)
	}

	if err != nil {
		return response.InternalServerError(c, "Failed to get dashboard")
	}

	return response.Success(c, "Dashboard retrieved successfully", fiber.Map{
		"rol":  rol,
		"data": data,
	})
}
