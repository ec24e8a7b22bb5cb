package services

import (
	"errors"

	"github.com/expostands/expostands-api/internal/models"
	"gorm.io/gorm"
)

// UpsertAdminUser mirrors a user.created/user.updated event into the
// admin_users table, keyed by the provider's external ID.
func UpsertAdminUser(db *gorm.DB, user *models.AdminUser) (*models.AdminUser, error) {
	var existing models.AdminUser
	err := db.Where("external_id = ?", user.ExternalID).First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err := db.Create(user).Error; err != nil {
			return nil, err
		}
		return user, nil
	}

	if err := db.Model(&existing).Select(
		"Email", "GivenName", "FamilyName", "Roles", "Picture",
	).Updates(user).Error; err != nil {
		return nil, err
	}

	return &existing, nil
}

// DeleteAdminUser mirrors a user.deleted event. Deleting an unknown user
// is not an error; the provider may replay events.
func DeleteAdminUser(db *gorm.DB, externalID string) error {
	return db.Delete(&models.AdminUser{}, "external_id = ?", externalID).Error
}

// ListAdminUsers returns the mirrored users ordered by email.
func ListAdminUsers(db *gorm.DB) ([]models.AdminUser, error) {
	var rows []models.AdminUser
	if err := db.Order("email").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
