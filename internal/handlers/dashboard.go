package handlers

import (
	"github.com/expostands/expostands-api/internal/services"
	"github.com/expostands/expostands-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DashboardHandler handles the admin dashboard summary.
type DashboardHandler struct {
	AdminDB *gorm.DB
}

// GetStats handles GET /api/admin/dashboard
// @Summary Admin dashboard counts
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.EnvelopeStruct
// @Security CookieAuth
// @Router /admin/dashboard [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats := services.GetDashboardStats(h.AdminDB)
	return utils.SuccessResponse(c, stats)
}
