package services

import (
	"errors"

	"github.com/expostands/expostands-api/internal/models"
	"gorm.io/gorm"
)

// cityChildren lists the six preloadable child collections of a city.
var cityChildren = []string{
	"Services", "ContentSections", "PortfolioItems",
	"Components", "PreferredServices", "ContactDetails",
}

// ListCities returns a page of cities plus the total count. When activeOnly
// is set, only active cities count and appear.
func ListCities(db *gorm.DB, page, limit int, activeOnly bool) ([]models.City, int64, error) {
	query := db.Model(&models.City{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var cities []models.City
	err := query.
		Order("name").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&cities).Error
	if err != nil {
		return nil, 0, err
	}

	return cities, total, nil
}

// GetCityBySlug returns the full city aggregate: the city row plus its six
// child collections, each ordered by sort_order. On the public path only
// active children are included.
func GetCityBySlug(db *gorm.DB, slug string, publicOnly bool) (*models.City, error) {
	query := db.Where("slug = ?", slug)
	if publicOnly {
		query = query.Where("is_active = ?", true)
	}

	for _, child := range cityChildren {
		if publicOnly {
			query = query.Preload(child, func(tx *gorm.DB) *gorm.DB {
				return tx.Where("is_active = ?", true).Order("sort_order, created_at")
			})
		} else {
			query = query.Preload(child, func(tx *gorm.DB) *gorm.DB {
				return tx.Order("sort_order, created_at")
			})
		}
	}

	var city models.City
	if err := query.First(&city).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &city, nil
}

// CreateCity inserts a city together with any supplied child rows in one
// transaction.
func CreateCity(db *gorm.DB, city *models.City) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(city).Error
	})
}

// UpdateCity overwrites the editable fields of the city row itself.
// Child collections are edited through their own endpoints; replacing them
// here would turn every save into a bulk rewrite.
func UpdateCity(db *gorm.DB, slug string, input *models.City) (*models.City, error) {
	var existing models.City
	if err := db.First(&existing, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := db.Model(&existing).Select(
		"Name", "Country", "Heading", "Description", "HeroImage",
		"MetaTitle", "MetaDescription", "IsActive",
	).Updates(input).Error; err != nil {
		return nil, err
	}

	return GetCityBySlug(db, slug, false)
}

// DeleteCity removes the city and all six child collections in one
// transaction.
func DeleteCity(db *gorm.DB, slug string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var city models.City
		if err := tx.First(&city, "slug = ?", slug).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		children := []interface{}{
			&models.CityService{}, &models.CityContentSection{}, &models.CityPortfolioItem{},
			&models.CityComponent{}, &models.CityPreferredService{}, &models.CityContactDetail{},
		}
		for _, child := range children {
			if err := tx.Where("city_id = ?", city.ID).Delete(child).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&city).Error
	})
}
