package handlers

import (
	"github.com/expostands/expostands-api/internal/models"
	"github.com/expostands/expostands-api/internal/services"
	"github.com/expostands/expostands-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PrivacyHandler handles the singleton privacy policy.
type PrivacyHandler struct {
	DB      *gorm.DB
	AdminDB *gorm.DB
}

// GetPolicy handles GET /api/privacy-policy
// @Summary Get the privacy policy
// @Tags Privacy
// @Produce json
// @Success 200 {object} utils.EnvelopeStruct
// @Failure 404 {object} utils.EnvelopeStruct
// @Router /privacy-policy [get]
func (h *PrivacyHandler) GetPolicy(c *fiber.Ctx) error {
	row, err := services.GetPrivacyPolicy(h.DB)
	if err != nil {
		return respondServiceError(c, "getPrivacyPolicy", err, "Privacy policy not found")
	}

	html, err := services.RenderMarkdown(row.Content)
	if err != nil {
		return utils.InternalErrorResponse(c, "renderPrivacyPolicy", err)
	}

	return utils.SuccessResponse(c, fiber.Map{
		"id":         row.ID,
		"title":      row.Title,
		"content":    row.Content,
		"html":       html,
		"updated_at": row.UpdatedAt,
	})
}

// UpsertPolicy handles POST/PUT /api/privacy-policy
// @Summary Create or replace the privacy policy
// @Tags Privacy
// @Accept json
// @Produce json
// @Success 200 {object} utils.EnvelopeStruct
// @Failure 400 {object} utils.EnvelopeStruct
// @Security CookieAuth
// @Router /privacy-policy [put]
func (h *PrivacyHandler) UpsertPolicy(c *fiber.Ctx) error {
	var body struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if msg := utils.RequireFields(map[string]string{
		"Title":   body.Title,
		"Content": body.Content,
	}, []string{"Title", "Content"}); msg != "" {
		return utils.ValidationErrorResponse(c, msg)
	}

	row, err := services.UpsertPrivacyPolicy(h.AdminDB, &models.PrivacyPolicy{
		Title:   body.Title,
		Content: body.Content,
	})
	if err != nil {
		return utils.InternalErrorResponse(c, "upsertPrivacyPolicy", err)
	}

	return utils.SuccessResponse(c, row)
}
