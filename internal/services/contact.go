package services

import (
	"errors"
	"time"

	"github.com/expostands/expostands-api/internal/models"
	"gorm.io/gorm"
)

// SubmissionFilter holds the optional query filters of submission lists.
type SubmissionFilter struct {
	Status string
	Search string // substring over name, email, message
	From   *time.Time
	To     *time.Time
}

// ListContactSubmissions returns a page of submissions, newest first.
func ListContactSubmissions(db *gorm.DB, filter SubmissionFilter, page, limit int) ([]models.ContactSubmission, int64, error) {
	query := db.Model(&models.ContactSubmission{})
	query = applySubmissionFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.ContactSubmission
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func applySubmissionFilter(query *gorm.DB, filter SubmissionFilter) *gorm.DB {
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR message LIKE ?", like, like, like)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", filter.To)
	}
	return query
}

// CreateContactSubmission inserts a visitor submission. Status always
// starts at "new" regardless of input.
func CreateContactSubmission(db *gorm.DB, sub *models.ContactSubmission) error {
	sub.Status = models.SubmissionStatusNew
	sub.IsSpam = false
	return db.Create(sub).Error
}

// GetContactSubmission returns one submission by ID.
func GetContactSubmission(db *gorm.DB, id string) (*models.ContactSubmission, error) {
	var row models.ContactSubmission
	if err := db.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// SubmissionPatch carries the admin-editable submission fields. Nil fields
// are left untouched.
type SubmissionPatch struct {
	Status     *string `json:"status"`
	IsSpam     *bool   `json:"is_spam"`
	AdminNotes *string `json:"admin_notes"`
}

// PatchContactSubmission applies a partial admin update. Any status value
// from the enum is accepted; transitions are unconstrained.
func PatchContactSubmission(db *gorm.DB, id string, patch SubmissionPatch) (*models.ContactSubmission, error) {
	row, err := GetContactSubmission(db, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.IsSpam != nil {
		updates["is_spam"] = *patch.IsSpam
	}
	if patch.AdminNotes != nil {
		updates["admin_notes"] = *patch.AdminNotes
	}

	if len(updates) > 0 {
		if err := db.Model(row).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return row, nil
}

// DeleteContactSubmission removes a submission by ID.
func DeleteContactSubmission(db *gorm.DB, id string) error {
	result := db.Delete(&models.ContactSubmission{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListCompanies returns company cards ordered by sort_order.
func ListCompanies(db *gorm.DB, activeOnly bool) ([]models.Company, error) {
	query := db.Model(&models.Company{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var rows []models.Company
	if err := query.Order("sort_order, created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateCompany inserts a company card. A zero SortOrder defaults to
// count+1 so new cards render last.
func CreateCompany(db *gorm.DB, company *models.Company) error {
	if company.SortOrder == 0 {
		var count int64
		if err := db.Model(&models.Company{}).Count(&count).Error; err != nil {
			return err
		}
		company.SortOrder = int(count) + 1
	}
	return db.Create(company).Error
}

// UpdateCompany overwrites the editable fields of a company card.
func UpdateCompany(db *gorm.DB, id string, input *models.Company) (*models.Company, error) {
	var existing models.Company
	if err := db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := db.Model(&existing).Select(
		"Region", "Address", "Phone", "Email", "MapURL", "SortOrder", "IsActive",
	).Updates(input).Error; err != nil {
		return nil, err
	}

	return &existing, nil
}

// DeleteCompany removes a company card by ID.
func DeleteCompany(db *gorm.DB, id string) error {
	result := db.Delete(&models.Company{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetActiveMapSettings returns the live map configuration.
func GetActiveMapSettings(db *gorm.DB) (*models.MapSettings, error) {
	var row models.MapSettings
	err := db.Where("is_active = ?", true).Order("updated_at DESC").First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// UpsertMapSettings creates the map row, or updates the newest one when it
// already exists. The map is a singleton by convention.
func UpsertMapSettings(db *gorm.DB, input *models.MapSettings) (*models.MapSettings, error) {
	var existing models.MapSettings
	err := db.Order("updated_at DESC").First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err := db.Create(input).Error; err != nil {
			return nil, err
		}
		return input, nil
	}

	if err := db.Model(&existing).Select(
		"EmbedURL", "Latitude", "Longitude", "Zoom", "IsActive",
	).Updates(input).Error; err != nil {
		return nil, err
	}

	return &existing, nil
}

// ListFormSettings returns form configurations, optionally narrowed to one
// form key and to active rows only.
func ListFormSettings(db *gorm.DB, formKey string, activeOnly bool) ([]models.FormSettings, error) {
	query := db.Model(&models.FormSettings{})
	if formKey != "" {
		query = query.Where("form_key = ?", formKey)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var rows []models.FormSettings
	if err := query.Order("form_key, updated_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateFormSettings inserts a form configuration.
func CreateFormSettings(db *gorm.DB, input *models.FormSettings) error {
	return db.Create(input).Error
}

// FormSettingsPatch carries the admin-editable form settings fields.
type FormSettingsPatch struct {
	Title          *string `json:"title"`
	Subtitle       *string `json:"subtitle"`
	Fields         []byte  `json:"-"`
	SuccessMessage *string `json:"success_message"`
	NotifyEmail    *string `json:"notify_email"`
	IsActive       *bool   `json:"is_active"`
}

// PatchFormSettings applies a partial update to a form configuration.
func PatchFormSettings(db *gorm.DB, id string, patch FormSettingsPatch) (*models.FormSettings, error) {
	var existing models.FormSettings
	if err := db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Subtitle != nil {
		updates["subtitle"] = *patch.Subtitle
	}
	if len(patch.Fields) > 0 {
		updates["fields"] = patch.Fields
	}
	if patch.SuccessMessage != nil {
		updates["success_message"] = *patch.SuccessMessage
	}
	if patch.NotifyEmail != nil {
		updates["notify_email"] = *patch.NotifyEmail
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}

	if len(updates) > 0 {
		if err := db.Model(&existing).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &existing, nil
}

// DeleteFormSettings removes a form configuration by ID.
func DeleteFormSettings(db *gorm.DB, id string) error {
	result := db.Delete(&models.FormSettings{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetPrivacyPolicy returns the singleton privacy policy row.
func GetPrivacyPolicy(db *gorm.DB) (*models.PrivacyPolicy, error) {
	var row models.PrivacyPolicy
	err := db.Order("updated_at DESC").First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// UpsertPrivacyPolicy creates or replaces the singleton privacy policy.
func UpsertPrivacyPolicy(db *gorm.DB, input *models.PrivacyPolicy) (*models.PrivacyPolicy, error) {
	existing, err := GetPrivacyPolicy(db)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		if err := db.Create(input).Error; err != nil {
			return nil, err
		}
		return input, nil
	}

	if err := db.Model(existing).Select("Title", "Content").Updates(input).Error; err != nil {
		return nil, err
	}

	return existing, nil
}
