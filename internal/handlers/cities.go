package handlers

import (
	"fmt"

	"github.com/expostands/expostands-api/internal/models"
	"github.com/expostands/expostands-api/internal/services"
	"github.com/expostands/expostands-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CityHandler handles city aggregate routes.
type CityHandler struct {
	DB      *gorm.DB
	AdminDB *gorm.DB
}

// ListCities handles GET /api/cities
// @Summary List cities
// @Tags Cities
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param active query bool false "Only active cities"
// @Success 200 {object} utils.EnvelopeStruct
// @Router /cities [get]
func (h *CityHandler) ListCities(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	activeOnly := c.QueryBool("active", false)

	cities, total, err := services.ListCities(h.DB, page, limit, activeOnly)
	if err != nil {
		return utils.InternalErrorResponse(c, "listCities", err)
	}

	return utils.ListResponse(c, cities, total, page, limit)
}

// GetCity handles GET /api/cities/:slug
// @Summary Get a city with its six child collections
// @Tags Cities
// @Produce json
// @Param slug path string true "City slug"
// @Success 200 {object} utils.EnvelopeStruct
// @Failure 404 {object} utils.EnvelopeStruct
// @Router /cities/{slug} [get]
func (h *CityHandler) GetCity(c *fiber.Ctx) error {
	slug := c.Params("slug")

	city, err := services.GetCityBySlug(h.DB, slug, true)
	if err != nil {
		return respondServiceError(c, "getCity", err, "City not found")
	}

	return utils.SuccessResponse(c, city)
}

// GetCityAdmin handles GET /api/admin/cities/:slug. Inactive children are included.
func (h *CityHandler) GetCityAdmin(c *fiber.Ctx) error {
	slug := c.Params("slug")

	city, err := services.GetCityBySlug(h.AdminDB, slug, false)
	if err != nil {
		return respondServiceError(c, "getCityAdmin", err, "City not found")
	}

	return utils.SuccessResponse(c, city)
}

type cityInput struct {
	Slug            string `json:"slug"`
	Name            string `json:"name"`
	Country         string `json:"country"`
	Heading         string `json:"heading"`
	Description     string `json:"description"`
	HeroImage       string `json:"hero_image"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	IsActive        *bool  `json:"is_active"`
}

func (in *cityInput) validate(requireSlug bool) string {
	required := map[string]string{"Name": in.Name}
	order := []string{"Name"}
	if requireSlug {
		required["Slug"] = in.Slug
		order = []string{"Slug", "Name"}
	}
	if msg := utils.RequireFields(required, order); msg != "" {
		return msg
	}
	return utils.ValidateURLField("Hero image", in.HeroImage)
}

func (in *cityInput) toModel() *models.City {
	city := &models.City{
		Slug:            in.Slug,
		Name:            in.Name,
		Country:         in.Country,
		Heading:         in.Heading,
		Description:     in.Description,
		HeroImage:       in.HeroImage,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		IsActive:        true,
	}
	if in.IsActive != nil {
		city.IsActive = *in.IsActive
	}
	return city
}

// CreateCity handles POST /api/cities
// @Summary Create a city
// @Tags Cities
// @Accept json
// @Produce json
// @Success 200 {object} utils.EnvelopeStruct
// @Failure 400 {object} utils.EnvelopeStruct
// @Security CookieAuth
// @Router /cities [post]
func (h *CityHandler) CreateCity(c *fiber.Ctx) error {
	var body cityInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if msg := body.validate(true); msg != "" {
		return utils.ValidationErrorResponse(c, msg)
	}

	city := body.toModel()
	if err := services.CreateCity(h.AdminDB, city); err != nil {
		return utils.InternalErrorResponse(c, "createCity", err)
	}

	return utils.SuccessResponse(c, city)
}

// UpdateCity handles PUT /api/cities/:slug
// @Summary Update a city row
// @Tags Cities
// @Accept json
// @Produce json
// @Param slug path string true "City slug"
// @Success 200 {object} utils.EnvelopeStruct
// @Failure 404 {object} utils.EnvelopeStruct
// @Security CookieAuth
// @Router /cities/{slug} [put]
func (h *CityHandler) UpdateCity(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var body cityInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if msg := body.validate(false); msg != "" {
		return utils.ValidationErrorResponse(c, msg)
	}

	city, err := services.UpdateCity(h.AdminDB, slug, body.toModel())
	if err != nil {
		return respondServiceError(c, "updateCity", err, "City not found")
	}

	return utils.SuccessResponse(c, city)
}

// DeleteCity handles DELETE /api/cities/:slug
// @Summary Delete a city and its child collections
// @Tags Cities
// @Produce json
// @Param slug path string true "City slug"
// @Success 200 {object} utils.EnvelopeStruct
// @Failure 404 {object} utils.EnvelopeStruct
// @Security CookieAuth
// @Router /cities/{slug} [delete]
func (h *CityHandler) DeleteCity(c *fiber.Ctx) error {
	slug := c.Params("slug")

	if err := services.DeleteCity(h.AdminDB, slug); err != nil {
		return respondServiceError(c, "deleteCity", err, "City not found")
	}

	return utils.SuccessResponse(c, fiber.Map{"deleted": fmt.Sprintf("cities/%s", slug)})
}
