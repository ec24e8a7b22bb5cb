package handlers

import (
	"log"

	"github.com/expostands/expostands-api/internal/models"
	"github.com/expostands/expostands-api/internal/services"
	"github.com/expostands/expostands-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WebhookHandler consumes auth-provider user lifecycle events and mirrors
// them into the admin_users table. The signature middleware has already
// verified the payload by the time these run.
type WebhookHandler struct {
	AdminDB *gorm.DB
}

type webhookUser struct {
	ID         string         `json:"id"`
	Email      string         `json:"email"`
	GivenName  string         `json:"given_name"`
	FamilyName string         `json:"family_name"`
	Roles      datatypes.JSON `json:"roles"`
	Picture    string         `json:"picture"`
}

type webhookPayload struct {
	Event string      `json:"event"`
	User  webhookUser `json:"user"`
}

// HandleAuthEvent handles POST /api/webhooks/auth
// @Summary Consume an auth-provider user lifecycle event
// @Description Mirrors user.created/user.updated/user.deleted into admin_users.
// @Description Unknown event types are acknowledged and ignored.
// @Tags Webhooks
// @Accept json
// @Produce json
// @Success 200 {object} utils.EnvelopeStruct
// @Failure 400 {object} utils.EnvelopeStruct
// @Failure 401 {object} utils.EnvelopeStruct
// @Router /webhooks/auth [post]
func (h *WebhookHandler) HandleAuthEvent(c *fiber.Ctx) error {
	var payload webhookPayload
	if err := c.BodyParser(&payload); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid payload")
	}

	if payload.User.ID == "" {
		return utils.ValidationErrorResponse(c, "User ID is required")
	}

	switch payload.Event {
	case "user.created", "user.updated":
		user := &models.AdminUser{
			ExternalID: payload.User.ID,
			Email:      payload.User.Email,
			GivenName:  payload.User.GivenName,
			FamilyName: payload.User.FamilyName,
			Roles:      payload.User.Roles,
			Picture:    payload.User.Picture,
		}
		mirrored, err := services.UpsertAdminUser(h.AdminDB, user)
		if err != nil {
			return utils.InternalErrorResponse(c, "webhookUpsertAdminUser", err)
		}
		return utils.SuccessResponse(c, mirrored)

	case "user.deleted":
		if err := services.DeleteAdminUser(h.AdminDB, payload.User.ID); err != nil {
			return utils.InternalErrorResponse(c, "webhookDeleteAdminUser", err)
		}
		return utils.SuccessResponse(c, fiber.Map{"deleted": payload.User.ID})

	default:
		// The provider sends more event types than we mirror.
		log.Printf("ignoring webhook event %q", payload.Event)
		return utils.SuccessResponse(c, fiber.Map{"ignored": payload.Event})
	}
}
