package handlers

import (
	"errors"

	"github.com/expostands/expostands-api/internal/models"
	"github.com/expostands/expostands-api/internal/services"
	"github.com/expostands/expostands-api/internal/types"
	"github.com/expostands/expostands-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EventHandler handles event categories and event submissions.
type EventHandler struct {
	DB      *gorm.DB
	AdminDB *gorm.DB
}

// ListCategories handles GET /api/events/categories
// @Summary List event categories
// @Tags Events
// @Produce json
// @Success 200 {object} utils.EnvelopeStruct
// @Router /events/categories [get]
func (h *EventHandler) ListCategories(c *fiber.Ctx) error {
	rows, err := services.ListEventCategories(h.DB, !c.QueryBool("all", false))
	if err != nil {
		return utils.InternalErrorResponse(c, "listEventCategories", err)
	}
	return utils.SuccessResponse(c, rows)
}

// GetCategory handles GET /api/events/categories/:id
func (h *EventHandler) GetCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	row, err := services.GetEventCategory(h.AdminDB, id)
	if err != nil {
		return respondServiceError(c, "getEventCategory", err, "Category not found")
	}

	return utils.SuccessResponse(c, row)
}

type categoryInput struct {
	Name      string        `json:"name"`
	Slug      string        `json:"slug"`
	SortOrder types.FlexInt `json:"sort_order"`
	IsActive  *bool         `json:"is_active"`
}

// CreateCategory handles POST /api/events/categories
// @Summary Create an event category
// @Tags Events
// @Accept json
// @Produce json
// @Success 200 {object} utils.EnvelopeStruct
// @Failure 400 {object} utils.EnvelopeStruct
// @Security CookieAuth
// @Router /events/categories [post]
func (h *EventHandler) CreateCategory(c *fiber.Ctx) error {
	var body categoryInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if msg := utils.RequireFields(map[string]string{
		"Name": body.Name,
		"Slug": body.Slug,
	}, []string{"Name", "Slug"}); msg != "" {
		return utils.ValidationErrorResponse(c, msg)
	}

	cat := &models.EventCategory{
		Name:      body.Name,
		Slug:      body.Slug,
		SortOrder: body.SortOrder.Int(),
		IsActive:  true,
	}
	if body.IsActive != nil {
		cat.IsActive = *body.IsActive
	}

	if err := services.CreateEventCategory(h.AdminDB, cat); err != nil {
		return utils.InternalErrorResponse(c, "createEventCategory", err)
	}

	return utils.SuccessResponse(c, cat)
}

// UpdateCategory handles PUT /api/events/categories/:id
func (h *EventHandler) UpdateCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	var body categoryInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if msg := utils.RequireFields(map[string]string{
		"Name": body.Name,
		"Slug": body.Slug,
	}, []string{"Name", "Slug"}); msg != "" {
		return utils.ValidationErrorResponse(c, msg)
	}

	cat := &models.EventCategory{
		Name:      body.Name,
		Slug:      body.Slug,
		SortOrder: body.SortOrder.Int(),
		IsActive:  true,
	}
	if body.IsActive != nil {
		cat.IsActive = *body.IsActive
	}

	row, err := services.UpdateEventCategory(h.AdminDB, id, cat)
	if err != nil {
		return respondServiceError(c, "updateEventCategory", err, "Category not found")
	}

	return utils.SuccessResponse(c, row)
}

// DeleteCategory handles DELETE /api/events/categories/:id
// @Summary Delete an event category
// @Description Deletion is blocked while event submissions reference the category.
// @Tags Events
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} utils.EnvelopeStruct
// @Failure 400 {object} utils.EnvelopeStruct
// @Failure 404 {object} utils.EnvelopeStruct
// @Security CookieAuth
// @Router /events/categories/{id} [delete]
func (h *EventHandler) DeleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := services.DeleteEventCategory(h.AdminDB, id); err != nil {
		if errors.Is(err, services.ErrCategoryInUse) {
			return utils.ValidationErrorResponse(c, "Category has event submissions and cannot be deleted")
		}
		return respondServiceError(c, "deleteEventCategory", err, "Category not found")
	}

	return utils.SuccessResponse(c, fiber.Map{"deleted": id})
}

type eventSubmissionInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	EventName  string `json:"event_name"`
	EventDate  string `json:"event_date"`
	City       string `json:"city"`
	StandSize  string `json:"stand_size"`
	Message    string `json:"message"`
	CategoryID string `json:"category_id"`
}

// CreateSubmission handles POST /api/events/submissions
// @Summary Submit an event stand request
// @Tags Events
// @Accept json
// @Produce json
// @Success 200 {object} utils.EnvelopeStruct
// @Failure 400 {object} utils.EnvelopeStruct
// @Router /events/submissions [post]
func (h *EventHandler) CreateSubmission(c *fiber.Ctx) error {
	var body eventSubmissionInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if msg := utils.RequireFields(map[string]string{
		"Name":       body.Name,
		"Email":      body.Email,
		"Event name": body.EventName,
	}, []string{"Name", "Email", "Event name"}); msg != "" {
		return utils.ValidationErrorResponse(c, msg)
	}

	sub := &models.EventSubmission{
		Name:       body.Name,
		Email:      body.Email,
		Phone:      body.Phone,
		EventName:  body.EventName,
		City:       body.City,
		StandSize:  body.StandSize,
		Message:    body.Message,
		CategoryID: body.CategoryID,
	}
	if body.EventDate != "" {
		t := parseDate(body.EventDate)
		if t == nil {
			return utils.ValidationErrorResponse(c, "Event date must be RFC 3339 or YYYY-MM-DD")
		}
		sub.EventDate = t
	}

	if err := services.CreateEventSubmission(h.DB, sub); err != nil {
		return respondServiceError(c, "createEventSubmission", err, "Category not found")
	}

	return utils.SuccessResponse(c, sub)
}

// ListSubmissions handles GET /api/events/submissions
// @Summary List event submissions
// @Tags Events
// @Produce json
// @Param status query string false "Status filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} utils.EnvelopeStruct
// @Security CookieAuth
// @Router /events/submissions [get]
func (h *EventHandler) ListSubmissions(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	filter := parseSubmissionFilter(c)

	rows, total, err := services.ListEventSubmissions(h.AdminDB, filter, page, limit)
	if err != nil {
		return utils.InternalErrorResponse(c, "listEventSubmissions", err)
	}

	return utils.ListResponse(c, rows, total, page, limit)
}

// GetSubmission handles GET /api/events/submissions/:id
func (h *EventHandler) GetSubmission(c *fiber.Ctx) error {
	id := c.Params("id")

	row, err := services.GetEventSubmission(h.AdminDB, id)
	if err != nil {
		return respondServiceError(c, "getEventSubmission", err, "Submission not found")
	}

	return utils.SuccessResponse(c, row)
}

// PatchSubmission handles PATCH /api/events/submissions/:id
func (h *EventHandler) PatchSubmission(c *fiber.Ctx) error {
	id := c.Params("id")

	var patch services.SubmissionPatch
	if err := c.BodyParser(&patch); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if patch.Status != nil && !models.ValidSubmissionStatus(*patch.Status) {
		return utils.ValidationErrorResponse(c, "Invalid status value")
	}

	row, err := services.PatchEventSubmission(h.AdminDB, id, patch)
	if err != nil {
		return respondServiceError(c, "patchEventSubmission", err, "Submission not found")
	}

	return utils.SuccessResponse(c, row)
}

// DeleteSubmission handles DELETE /api/events/submissions/:id
func (h *EventHandler) DeleteSubmission(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := services.DeleteEventSubmission(h.AdminDB, id); err != nil {
		return respondServiceError(c, "deleteEventSubmission", err, "Submission not found")
	}

	return utils.SuccessResponse(c, fiber.Map{"deleted": id})
}
