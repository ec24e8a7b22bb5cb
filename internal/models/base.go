package models

import (
	"github.com/google/uuid"
)

// ensureID fills a char(36) primary key before insert when the caller did
// not provide one. Rows created by one-off scripts keep their original IDs.
func ensureID(id *string) {
	if *id == "" {
		*id = uuid.New().String()
	}
}

// AllModels returns every model migrated by database.AutoMigrate,
// in dependency order.
func AllModels() []interface{} {
	return []interface{}{
		&PageSection{},
		&SectionItem{},
		&City{},
		&CityService{},
		&CityContentSection{},
		&CityPortfolioItem{},
		&CityComponent{},
		&CityPreferredService{},
		&CityContactDetail{},
		&ContactSubmission{},
		&EventCategory{},
		&EventSubmission{},
		&Company{},
		&MapSettings{},
		&FormSettings{},
		&PrivacyPolicy{},
		&BlogCategory{},
		&BlogTag{},
		&BlogPost{},
		&AdminUser{},
	}
}
