package services

import (
	"errors"
	"log"

	"github.com/expostands/expostands-api/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned by all service reads when the queried row is absent.
var ErrNotFound = errors.New("not found")

// GetPageSections returns all active sections of a page with their active
// items ordered by sort_order.
func GetPageSections(db *gorm.DB, page string) ([]models.PageSection, error) {
	var sections []models.PageSection
	err := db.
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("is_active = ?", true).Order("sort_order, created_at")
		}).
		Where("page = ? AND is_active = ?", page, true).
		Order("section").
		Find(&sections).Error
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, ErrNotFound
	}
	return sections, nil
}

// GetActiveSection returns the active section row for a (page, section)
// pair with its active items. At most one active row is expected per pair;
// when several exist the most recently updated wins.
func GetActiveSection(db *gorm.DB, page, section string) (*models.PageSection, error) {
	var row models.PageSection
	err := db.
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("is_active = ?", true).Order("sort_order, created_at")
		}).
		Where("page = ? AND section = ? AND is_active = ?", page, section, true).
		Order("updated_at DESC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// SectionWithDefault resolves a section for public rendering: when no
// active row exists, the supplied fallback is returned so the page never
// renders blank. Database failures are logged and also fall back.
func SectionWithDefault(db *gorm.DB, page, section string, fallback *models.PageSection) *models.PageSection {
	row, err := GetActiveSection(db, page, section)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("section %s/%s fetch failed, serving default: %v", page, section, err)
		}
		return fallback
	}
	return row
}

// UpsertSection creates or updates the section row for a (page, section)
// pair. Last write wins; there is no version check.
func UpsertSection(db *gorm.DB, input *models.PageSection) (*models.PageSection, error) {
	var existing models.PageSection
	err := db.Where("page = ? AND section = ?", input.Page, input.Section).
		Order("updated_at DESC").
		First(&existing).Error

	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err := db.Create(input).Error; err != nil {
			return nil, err
		}
		return input, nil
	}

	input.ID = existing.ID
	input.CreatedAt = existing.CreatedAt
	if err := db.Model(&existing).Select(
		"Heading", "Subheading", "Body", "Images", "Extra", "IsActive",
	).Updates(input).Error; err != nil {
		return nil, err
	}

	return GetSectionByID(db, existing.ID)
}

// GetSectionByID returns one section row regardless of active flag.
func GetSectionByID(db *gorm.DB, id string) (*models.PageSection, error) {
	var row models.PageSection
	err := db.Preload("Items", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("sort_order, created_at")
	}).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// CreateSectionItem appends a child item to a section. A zero SortOrder
// defaults to count+1 so new items render last.
func CreateSectionItem(db *gorm.DB, item *models.SectionItem) error {
	var section models.PageSection
	if err := db.First(&section, "id = ?", item.SectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if item.SortOrder == 0 {
		var count int64
		if err := db.Model(&models.SectionItem{}).
			Where("section_id = ?", item.SectionID).
			Count(&count).Error; err != nil {
			return err
		}
		item.SortOrder = int(count) + 1
	}

	return db.Create(item).Error
}

// UpdateSectionItem overwrites the editable fields of an item.
func UpdateSectionItem(db *gorm.DB, id string, item *models.SectionItem) (*models.SectionItem, error) {
	var existing models.SectionItem
	if err := db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := db.Model(&existing).Select(
		"Title", "Body", "Icon", "ImageURL", "SortOrder", "IsActive",
	).Updates(item).Error; err != nil {
		return nil, err
	}

	return &existing, nil
}

// DeleteSectionItem removes an item by ID.
func DeleteSectionItem(db *gorm.DB, id string) error {
	result := db.Delete(&models.SectionItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
