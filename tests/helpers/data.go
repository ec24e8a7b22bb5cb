// data.go
//
// Content and data service for the ExpoStands exhibition stand marketing site
// Copyright (c) 2026 ExpoStands OU <dev@expostands.com> (https://www.expostands.com)
//
// This file is part of expostands-api.
// expostands-api is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// expostands-api is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with expostands-api.
// If not, see <https://www.gnu.org/licenses/>.

package helpers

import (
	"fmt"
	"testing"

	"github.com/expostands/expostands-api/internal/models"
	"gorm.io/gorm"
)

// CreateTestSection creates an active page section
func CreateTestSection(t *testing.T, db *gorm.DB, page, section, heading string) *models.PageSection {
	t.Helper()
	row := &models.PageSection{
		Page:     page,
		Section:  section,
		Heading:  heading,
		IsActive: true,
	}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("Failed to create section: %v", err)
	}
	return row
}

// CreateTestSectionItem creates a child item of a section
func CreateTestSectionItem(t *testing.T, db *gorm.DB, sectionID, title string, sortOrder int) *models.SectionItem {
	t.Helper()
	row := &models.SectionItem{
		SectionID: sectionID,
		Title:     title,
		SortOrder: sortOrder,
		IsActive:  true,
	}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("Failed to create section item: %v", err)
	}
	return row
}

// CreateTestCity creates an active city with one service and one portfolio item
func CreateTestCity(t *testing.T, db *gorm.DB, slug, name string) *models.City {
	t.Helper()
	city := &models.City{
		Slug:     slug,
		Name:     name,
		IsActive: true,
	}
	if err := db.Create(city).Error; err != nil {
		t.Fatalf("Failed to create city: %v", err)
	}

	service := &models.CityService{
		CityID:   city.ID,
		Title:    fmt.Sprintf("Stand design in %s", name),
		IsActive: true,
	}
	if err := db.Create(service).Error; err != nil {
		t.Fatalf("Failed to create city service: %v", err)
	}

	item := &models.CityPortfolioItem{
		CityID:   city.ID,
		Title:    fmt.Sprintf("%s showcase", name),
		IsActive: true,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("Failed to create portfolio item: %v", err)
	}

	return city
}

// CreateTestSubmission creates a contact submission in the given status
func CreateTestSubmission(t *testing.T, db *gorm.DB, name, email, status string) *models.ContactSubmission {
	t.Helper()
	row := &models.ContactSubmission{
		Name:    name,
		Email:   email,
		Message: "I need a stand",
		Status:  status,
	}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("Failed to create submission: %v", err)
	}
	return row
}

// CreateTestCompany creates an active company office card
func CreateTestCompany(t *testing.T, db *gorm.DB, region string, sortOrder int) *models.Company {
	t.Helper()
	row := &models.Company{
		Region:    region,
		Address:   "1 Expo Way",
		Phone:     "+372 5555 5555",
		Email:     "office@expostands.com",
		SortOrder: sortOrder,
		IsActive:  true,
	}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("Failed to create company: %v", err)
	}
	return row
}

// CreateTestEventCategory creates an active event category
func CreateTestEventCategory(t *testing.T, db *gorm.DB, name, slug string) *models.EventCategory {
	t.Helper()
	row := &models.EventCategory{
		Name:     name,
		Slug:     slug,
		IsActive: true,
	}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("Failed to create event category: %v", err)
	}
	return row
}

// CreateTestPost creates a blog post in the given status with one tag
func CreateTestPost(t *testing.T, db *gorm.DB, slug, title, status string) *models.BlogPost {
	t.Helper()
	post := &models.BlogPost{
		Slug:    slug,
		Title:   title,
		Content: "## " + title + "\n\nBody text.",
		Status:  status,
		Tags:    []models.BlogTag{{Name: "Trade fairs", Slug: "trade-fairs-" + slug}},
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("Failed to create blog post: %v", err)
	}
	return post
}
