package services

import (
	"errors"
	"fmt"

	"github.com/expostands/expostands-api/internal/models"
	"gorm.io/gorm"
)

// ErrCategoryInUse is returned when deleting a category that still has
// event submissions referencing it.
var ErrCategoryInUse = errors.New("category has events")

// ListEventCategories returns categories ordered by sort_order.
func ListEventCategories(db *gorm.DB, activeOnly bool) ([]models.EventCategory, error) {
	query := db.Model(&models.EventCategory{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var rows []models.EventCategory
	if err := query.Order("sort_order, created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetEventCategory returns one category by ID.
func GetEventCategory(db *gorm.DB, id string) (*models.EventCategory, error) {
	var row models.EventCategory
	if err := db.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// CreateEventCategory inserts a category. A zero SortOrder defaults to
// count+1.
func CreateEventCategory(db *gorm.DB, cat *models.EventCategory) error {
	if cat.SortOrder == 0 {
		var count int64
		if err := db.Model(&models.EventCategory{}).Count(&count).Error; err != nil {
			return err
		}
		cat.SortOrder = int(count) + 1
	}
	return db.Create(cat).Error
}

// UpdateEventCategory overwrites the editable fields of a category.
func UpdateEventCategory(db *gorm.DB, id string, input *models.EventCategory) (*models.EventCategory, error) {
	row, err := GetEventCategory(db, id)
	if err != nil {
		return nil, err
	}

	if err := db.Model(row).Select(
		"Name", "Slug", "SortOrder", "IsActive",
	).Updates(input).Error; err != nil {
		return nil, err
	}

	return row, nil
}

// DeleteEventCategory removes a category unless event submissions still
// reference it.
func DeleteEventCategory(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		row, err := GetEventCategory(tx, id)
		if err != nil {
			return err
		}

		var dependents int64
		if err := tx.Model(&models.EventSubmission{}).
			Where("category_id = ?", id).
			Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return fmt.Errorf("%w: %d submissions reference category %s", ErrCategoryInUse, dependents, id)
		}

		return tx.Delete(row).Error
	})
}

// ListEventSubmissions returns a page of event submissions, newest first.
func ListEventSubmissions(db *gorm.DB, filter SubmissionFilter, page, limit int) ([]models.EventSubmission, int64, error) {
	query := db.Model(&models.EventSubmission{})
	query = applySubmissionFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.EventSubmission
	err := query.
		Preload("Category").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// CreateEventSubmission inserts a visitor event request. Status always
// starts at "new".
func CreateEventSubmission(db *gorm.DB, sub *models.EventSubmission) error {
	if sub.CategoryID != "" {
		if _, err := GetEventCategory(db, sub.CategoryID); err != nil {
			return err
		}
	}
	sub.Status = models.SubmissionStatusNew
	sub.IsSpam = false
	return db.Create(sub).Error
}

// GetEventSubmission returns one event submission with its category.
func GetEventSubmission(db *gorm.DB, id string) (*models.EventSubmission, error) {
	var row models.EventSubmission
	if err := db.Preload("Category").First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// PatchEventSubmission applies a partial admin update.
func PatchEventSubmission(db *gorm.DB, id string, patch SubmissionPatch) (*models.EventSubmission, error) {
	row, err := GetEventSubmission(db, id)
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

// DeleteEventSubmission removes an event submission by ID.
func DeleteEventSubmission(db *gorm.DB, id string) error {
	result := db.Delete(&models.EventSubmission{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
