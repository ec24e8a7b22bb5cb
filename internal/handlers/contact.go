package handlers

import (
	"github.com/expostands/expostands-api/internal/models"
	"github.com/expostands/expostands-api/internal/services"
	"github.com/expostands/expostands-api/internal/types"
	"github.com/expostands/expostands-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContactHandler handles submissions, company cards, map, and form settings.
type ContactHandler struct {
	DB      *gorm.DB
	AdminDB *gorm.DB
}

type contactSubmissionInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// CreateSubmission handles POST /api/contact/submissions
// @Summary Submit the contact form
// @Tags Contact
// @Accept json
// @Produce json
// @Success 200 {object} utils.EnvelopeStruct
// @Failure 400 {object} utils.EnvelopeStruct
// @Router /contact/submissions [post]
func (h *ContactHandler) CreateSubmission(c *fiber.Ctx) error {
	var body contactSubmissionInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if msg := utils.RequireFields(map[string]string{
		"Name":    body.Name,
		"Email":   body.Email,
		"Message": body.Message,
	}, []string{"Name", "Email", "Message"}); msg != "" {
		return utils.ValidationErrorResponse(c, msg)
	}

	sub := &models.ContactSubmission{
		Name:    body.Name,
		Email:   body.Email,
		Phone:   body.Phone,
		Message: body.Message,
	}
	if err := services.CreateContactSubmission(h.DB, sub); err != nil {
		return utils.InternalErrorResponse(c, "createContactSubmission", err)
	}

	return utils.SuccessResponse(c, sub)
}

// ListSubmissions handles GET /api/contact/submissions
// @Summary List contact submissions
// @Tags Contact
// @Produce json
// @Param status query string false "Status filter"
// @Param search query string false "Substring over name, email, message"
// @Param from query string false "Created-at lower bound"
// @Param to query string false "Created-at upper bound"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} utils.EnvelopeStruct
// @Security CookieAuth
// @Router /contact/submissions [get]
func (h *ContactHandler) ListSubmissions(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	filter := parseSubmissionFilter(c)

	rows, total, err := services.ListContactSubmissions(h.AdminDB, filter, page, limit)
	if err != nil {
		return utils.InternalErrorResponse(c, "listContactSubmissions", err)
	}

	return utils.ListResponse(c, rows, total, page, limit)
}

// GetSubmission handles GET /api/contact/submissions/:id
func (h *ContactHandler) GetSubmission(c *fiber.Ctx) error {
	id := c.Params("id")

	row, err := services.GetContactSubmission(h.AdminDB, id)
	if err != nil {
		return respondServiceError(c, "getContactSubmission", err, "Submission not found")
	}

	return utils.SuccessResponse(c, row)
}

// PatchSubmission handles PATCH /api/contact/submissions/:id
// @Summary Update submission status or notes
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} utils.EnvelopeStruct
// @Failure 400 {object} utils.EnvelopeStruct
// @Failure 404 {object} utils.EnvelopeStruct
// @Security CookieAuth
// @Router /contact/submissions/{id} [patch]
func (h *ContactHandler) PatchSubmission(c *fiber.Ctx) error {
	id := c.Params("id")

	var patch services.SubmissionPatch
	if err := c.BodyParser(&patch); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if patch.Status != nil && !models.ValidSubmissionStatus(*patch.Status) {
		return utils.ValidationErrorResponse(c, "Invalid status value")
	}

	row, err := services.PatchContactSubmission(h.AdminDB, id, patch)
	if err != nil {
		return respondServiceError(c, "patchContactSubmission", err, "Submission not found")
	}

	return utils.SuccessResponse(c, row)
}

// DeleteSubmission handles DELETE /api/contact/submissions/:id
func (h *ContactHandler) DeleteSubmission(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := services.DeleteContactSubmission(h.AdminDB, id); err != nil {
		return respondServiceError(c, "deleteContactSubmission", err, "Submission not found")
	}

	return utils.SuccessResponse(c, fiber.Map{"deleted": id})
}

type companyInput struct {
	Region    string        `json:"region"`
	Address   string        `json:"address"`
	Phone     string        `json:"phone"`
	Email     string        `json:"email"`
	MapURL    string        `json:"map_url"`
	SortOrder types.FlexInt `json:"sort_order"`
	IsActive  *bool         `json:"is_active"`
}

func (in *companyInput) validate() string {
	if msg := utils.RequireFields(map[string]string{
		"Region":  in.Region,
		"Address": in.Address,
		"Phone":   in.Phone,
		"Email":   in.Email,
	}, []string{"Region", "Address", "Phone", "Email"}); msg != "" {
		return msg
	}
	return utils.ValidateURLField("Map URL", in.MapURL)
}

func (in *companyInput) toModel() *models.Company {
	company := &models.Company{
		Region:    in.Region,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		MapURL:    in.MapURL,
		SortOrder: in.SortOrder.Int(),
		IsActive:  true,
	}
	if in.IsActive != nil {
		company.IsActive = *in.IsActive
	}
	return company
}

// ListCompanies handles GET /api/contact/companies
// @Summary List contact-page company cards
// @Tags Contact
// @Produce json
// @Success 200 {object} utils.EnvelopeStruct
// @Router /contact/companies [get]
func (h *ContactHandler) ListCompanies(c *fiber.Ctx) error {
	rows, err := services.ListCompanies(h.DB, !c.QueryBool("all", false))
	if err != nil {
		return utils.InternalErrorResponse(c, "listCompanies", err)
	}
	return utils.SuccessResponse(c, rows)
}

// CreateCompany handles POST /api/contact/companies
// @Summary Create a company card
// @Tags Contact
// @Accept json
// @Produce json
// @Success 200 {object} utils.EnvelopeStruct
// @Failure 400 {object} utils.EnvelopeStruct
// @Security CookieAuth
// @Router /contact/companies [post]
func (h *ContactHandler) CreateCompany(c *fiber.Ctx) error {
	var body companyInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if msg := body.validate(); msg != "" {
		return utils.ValidationErrorResponse(c, msg)
	}

	company := body.toModel()
	if err := services.CreateCompany(h.AdminDB, company); err != nil {
		return utils.InternalErrorResponse(c, "createCompany", err)
	}

	return utils.SuccessResponse(c, company)
}

// UpdateCompany handles PUT /api/contact/companies/:id
func (h *ContactHandler) UpdateCompany(c *fiber.Ctx) error {
	id := c.Params("id")

	var body companyInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if msg := body.validate(); msg != "" {
		return utils.ValidationErrorResponse(c, msg)
	}

	company, err := services.UpdateCompany(h.AdminDB, id, body.toModel())
	if err != nil {
		return respondServiceError(c, "updateCompany", err, "Company not found")
	}

	return utils.SuccessResponse(c, company)
}

// DeleteCompany handles DELETE /api/contact/companies/:id
func (h *ContactHandler) DeleteCompany(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := services.DeleteCompany(h.AdminDB, id); err != nil {
		return respondServiceError(c, "deleteCompany", err, "Company not found")
	}

	return utils.SuccessResponse(c, fiber.Map{"deleted": id})
}

type mapSettingsInput struct {
	EmbedURL  string        `json:"embed_url"`
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Zoom      types.FlexInt `json:"zoom"`
	IsActive  *bool         `json:"is_active"`
}

// GetMap handles GET /api/contact/map
// @Summary Get the active map configuration
// @Tags Contact
// @Produce json
// @Success 200 {object} utils.EnvelopeStruct
// @Failure 404 {object} utils.EnvelopeStruct
// @Router /contact/map [get]
func (h *ContactHandler) GetMap(c *fiber.Ctx) error {
	row, err := services.GetActiveMapSettings(h.DB)
	if err != nil {
		return respondServiceError(c, "getMapSettings", err, "Map settings not found")
	}
	return utils.SuccessResponse(c, row)
}

// UpsertMap handles POST/PUT /api/contact/map
// @Summary Create or update the map configuration
// @Tags Contact
// @Accept json
// @Produce json
// @Success 200 {object} utils.EnvelopeStruct
// @Failure 400 {object} utils.EnvelopeStruct
// @Security CookieAuth
// @Router /contact/map [put]
func (h *ContactHandler) UpsertMap(c *fiber.Ctx) error {
	var body mapSettingsInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if msg := utils.RequireFields(map[string]string{"Embed URL": body.EmbedURL}, []string{"Embed URL"}); msg != "" {
		return utils.ValidationErrorResponse(c, msg)
	}
	if msg := utils.ValidateURLField("Embed URL", body.EmbedURL); msg != "" {
		return utils.ValidationErrorResponse(c, msg)
	}

	input := &models.MapSettings{
		EmbedURL:  body.EmbedURL,
		Latitude:  body.Latitude,
		Longitude: body.Longitude,
		Zoom:      body.Zoom.Int(),
		IsActive:  true,
	}
	if input.Zoom == 0 {
		input.Zoom = 12
	}
	if body.IsActive != nil {
		input.IsActive = *body.IsActive
	}

	row, err := services.UpsertMapSettings(h.AdminDB, input)
	if err != nil {
		return utils.InternalErrorResponse(c, "upsertMapSettings", err)
	}

	return utils.SuccessResponse(c, row)
}

type formSettingsInput struct {
	FormKey        string         `json:"form_key"`
	Title          string         `json:"title"`
	Subtitle       string         `json:"subtitle"`
	Fields         datatypes.JSON `json:"fields"`
	SuccessMessage string         `json:"success_message"`
	NotifyEmail    string         `json:"notify_email"`
	IsActive       *bool          `json:"is_active"`
}

// ListFormSettings handles GET /api/contact/form-settings
// @Summary List form configurations
// @Tags Contact
// @Produce json
// @Param form_key query string false "Narrow to one form key"
// @Success 200 {object} utils.EnvelopeStruct
// @Router /contact/form-settings [get]
func (h *ContactHandler) ListFormSettings(c *fiber.Ctx) error {
	rows, err := services.ListFormSettings(h.DB, c.Query("form_key"), !c.QueryBool("all", false))
	if err != nil {
		return utils.InternalErrorResponse(c, "listFormSettings", err)
	}
	return utils.SuccessResponse(c, rows)
}

// CreateFormSettings handles POST /api/contact/form-settings
func (h *ContactHandler) CreateFormSettings(c *fiber.Ctx) error {
	var body formSettingsInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if msg := utils.RequireFields(map[string]string{
		"Form key": body.FormKey,
		"Title":    body.Title,
	}, []string{"Form key", "Title"}); msg != "" {
		return utils.ValidationErrorResponse(c, msg)
	}

	row := &models.FormSettings{
		FormKey:        body.FormKey,
		Title:          body.Title,
		Subtitle:       body.Subtitle,
		Fields:         body.Fields,
		SuccessMessage: body.SuccessMessage,
		NotifyEmail:    body.NotifyEmail,
		IsActive:       true,
	}
	if body.IsActive != nil {
		row.IsActive = *body.IsActive
	}

	if err := services.CreateFormSettings(h.AdminDB, row); err != nil {
		return utils.InternalErrorResponse(c, "createFormSettings", err)
	}

	return utils.SuccessResponse(c, row)
}

// PatchFormSettings handles PATCH /api/contact/form-settings/:id
func (h *ContactHandler) PatchFormSettings(c *fiber.Ctx) error {
	id := c.Params("id")

	var body struct {
		Title          *string        `json:"title"`
		Subtitle       *string        `json:"subtitle"`
		Fields         datatypes.JSON `json:"fields"`
		SuccessMessage *string        `json:"success_message"`
		NotifyEmail    *string        `json:"notify_email"`
		IsActive       *bool          `json:"is_active"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	patch := services.FormSettingsPatch{
		Title:          body.Title,
		Subtitle:       body.Subtitle,
		Fields:         body.Fields,
		SuccessMessage: body.SuccessMessage,
		NotifyEmail:    body.NotifyEmail,
		IsActive:       body.IsActive,
	}

	row, err := services.PatchFormSettings(h.AdminDB, id, patch)
	if err != nil {
		return respondServiceError(c, "patchFormSettings", err, "Form settings not found")
	}

	return utils.SuccessResponse(c, row)
}

// DeleteFormSettings handles DELETE /api/contact/form-settings/:id
func (h *ContactHandler) DeleteFormSettings(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := services.DeleteFormSettings(h.AdminDB, id); err != nil {
		return respondServiceError(c, "deleteFormSettings", err, "Form settings not found")
	}

	return utils.SuccessResponse(c, fiber.Map{"deleted": id})
}
