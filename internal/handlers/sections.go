package handlers

import (
	"fmt"

	"github.com/expostands/expostands-api/internal/models"
	"github.com/expostands/expostands-api/internal/services"
	"github.com/expostands/expostands-api/internal/types"
	"github.com/expostands/expostands-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SectionHandler handles page section routes. DB is the public read tier;
// AdminDB is the service tier used by mutations.
type SectionHandler struct {
	DB      *gorm.DB
	AdminDB *gorm.DB
}

// GetPageSections handles GET /api/sections/:page
// @Summary Get all active sections of a page
// @Tags Sections
// @Produce json
// @Param page path string true "Page key"
// @Success 200 {object} utils.EnvelopeStruct
// @Failure 404 {object} utils.EnvelopeStruct
// @Router /sections/{page} [get]
func (h *SectionHandler) GetPageSections(c *fiber.Ctx) error {
	page := c.Params("page")

	sections, err := services.GetPageSections(h.DB, page)
	if err != nil {
		return respondServiceError(c, "getPageSections", err,
			fmt.Sprintf("No sections found for page '%s'", page))
	}

	return utils.SuccessResponse(c, sections)
}

// GetSection handles GET /api/sections/:page/:section
// @Summary Get one active section
// @Tags Sections
// @Produce json
// @Param page path string true "Page key"
// @Param section path string true "Section key"
// @Success 200 {object} utils.EnvelopeStruct
// @Failure 404 {object} utils.EnvelopeStruct
// @Router /sections/{page}/{section} [get]
func (h *SectionHandler) GetSection(c *fiber.Ctx) error {
	page := c.Params("page")
	section := c.Params("section")

	row, err := services.GetActiveSection(h.DB, page, section)
	if err != nil {
		return respondServiceError(c, "getSection", err,
			fmt.Sprintf("Section '%s/%s' not found", page, section))
	}

	return utils.SuccessResponse(c, row)
}

type sectionInput struct {
	Heading    string         `json:"heading"`
	Subheading string         `json:"subheading"`
	Body       string         `json:"body"`
	Images     datatypes.JSON `json:"images"`
	Extra      datatypes.JSON `json:"extra"`
	IsActive   *bool          `json:"is_active"`
}

// UpsertSection handles POST/PUT /api/sections/:page/:section
// @Summary Create or update a section
// @Tags Sections
// @Accept json
// @Produce json
// @Param page path string true "Page key"
// @Param section path string true "Section key"
// @Success 200 {object} utils.EnvelopeStruct
// @Failure 400 {object} utils.EnvelopeStruct
// @Security CookieAuth
// @Router /sections/{page}/{section} [put]
func (h *SectionHandler) UpsertSection(c *fiber.Ctx) error {
	page := c.Params("page")
	section := c.Params("section")

	var body sectionInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if msg := utils.RequireFields(map[string]string{"Heading": body.Heading}, []string{"Heading"}); msg != "" {
		return utils.ValidationErrorResponse(c, msg)
	}

	row := &models.PageSection{
		Page:       page,
		Section:    section,
		Heading:    body.Heading,
		Subheading: body.Subheading,
		Body:       body.Body,
		Images:     body.Images,
		Extra:      body.Extra,
		IsActive:   true,
	}
	if body.IsActive != nil {
		row.IsActive = *body.IsActive
	}

	saved, err := services.UpsertSection(h.AdminDB, row)
	if err != nil {
		return utils.InternalErrorResponse(c, "upsertSection", err)
	}

	return utils.SuccessResponse(c, saved)
}

type sectionItemInput struct {
	SectionID string        `json:"section_id"`
	Title     string        `json:"title"`
	Body      string        `json:"body"`
	Icon      string        `json:"icon"`
	ImageURL  string        `json:"image_url"`
	SortOrder types.FlexInt `json:"sort_order"`
	IsActive  *bool         `json:"is_active"`
}

// CreateSectionItem handles POST /api/sections/items
// @Summary Add a child item to a section
// @Tags Sections
// @Accept json
// @Produce json
// @Success 200 {object} utils.EnvelopeStruct
// @Failure 400 {object} utils.EnvelopeStruct
// @Security CookieAuth
// @Router /sections/items [post]
func (h *SectionHandler) CreateSectionItem(c *fiber.Ctx) error {
	var body sectionItemInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if msg := utils.RequireFields(map[string]string{
		"Section": body.SectionID,
		"Title":   body.Title,
	}, []string{"Section", "Title"}); msg != "" {
		return utils.ValidationErrorResponse(c, msg)
	}
	if msg := utils.ValidateURLField("Image URL", body.ImageURL); msg != "" {
		return utils.ValidationErrorResponse(c, msg)
	}

	item := &models.SectionItem{
		SectionID: body.SectionID,
		Title:     body.Title,
		Body:      body.Body,
		Icon:      body.Icon,
		ImageURL:  body.ImageURL,
		SortOrder: body.SortOrder.Int(),
		IsActive:  true,
	}
	if body.IsActive != nil {
		item.IsActive = *body.IsActive
	}

	if err := services.CreateSectionItem(h.AdminDB, item); err != nil {
		return respondServiceError(c, "createSectionItem", err, "Section not found")
	}

	return utils.SuccessResponse(c, item)
}

// UpdateSectionItem handles PUT /api/sections/items/:id
// @Summary Update a section item
// @Tags Sections
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} utils.EnvelopeStruct
// @Failure 404 {object} utils.EnvelopeStruct
// @Security CookieAuth
// @Router /sections/items/{id} [put]
func (h *SectionHandler) UpdateSectionItem(c *fiber.Ctx) error {
	id := c.Params("id")

	var body sectionItemInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if msg := utils.RequireFields(map[string]string{"Title": body.Title}, []string{"Title"}); msg != "" {
		return utils.ValidationErrorResponse(c, msg)
	}
	if msg := utils.ValidateURLField("Image URL", body.ImageURL); msg != "" {
		return utils.ValidationErrorResponse(c, msg)
	}

	item := &models.SectionItem{
		Title:     body.Title,
		Body:      body.Body,
		Icon:      body.Icon,
		ImageURL:  body.ImageURL,
		SortOrder: body.SortOrder.Int(),
		IsActive:  true,
	}
	if body.IsActive != nil {
		item.IsActive = *body.IsActive
	}

	saved, err := services.UpdateSectionItem(h.AdminDB, id, item)
	if err != nil {
		return respondServiceError(c, "updateSectionItem", err, "Section item not found")
	}

	return utils.SuccessResponse(c, saved)
}

// DeleteSectionItem handles DELETE /api/sections/items/:id
// @Summary Delete a section item
// @Tags Sections
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} utils.EnvelopeStruct
// @Failure 404 {object} utils.EnvelopeStruct
// @Security CookieAuth
// @Router /sections/items/{id} [delete]
func (h *SectionHandler) DeleteSectionItem(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := services.DeleteSectionItem(h.AdminDB, id); err != nil {
		return respondServiceError(c, "deleteSectionItem", err, "Section item not found")
	}

	return utils.SuccessResponse(c, fiber.Map{"deleted": id})
}
