package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/expostands/expostands-api/internal/handlers"
	"github.com/expostands/expostands-api/internal/models"
	"github.com/expostands/expostands-api/tests/helpers"
)

// TestListCitiesPagination tests page/limit handling with a list envelope
func TestListCitiesPagination(t *testing.T) {
	db := setupTestDB(t)

	for i := 1; i <= 12; i++ {
		helpers.CreateTestCity(t, db, fmt.Sprintf("city-%02d", i), fmt.Sprintf("City %02d", i))
	}

	app := newTestApp()
	handler := &handlers.CityHandler{DB: db, AdminDB: db}
	app.Get("/api/cities", handler.ListCities)

	req := httptest.NewRequest("GET", "/api/cities?page=2&limit=5", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	env := helpers.ParseEnvelope(t, resp)
	if !env.Success {
		t.Fatalf("Expected success, got error: %s", env.Error)
	}
	if env.Total == nil || *env.Total != 12 {
		t.Errorf("Expected total 12, got %v", env.Total)
	}
	if env.Page == nil || *env.Page != 2 {
		t.Errorf("Expected page 2, got %v", env.Page)
	}
	if env.Limit == nil || *env.Limit != 5 {
		t.Errorf("Expected limit 5, got %v", env.Limit)
	}

	var cities []models.City
	if err := json.Unmarshal(env.Data, &cities); err != nil {
		t.Fatalf("Failed to decode data payload: %v", err)
	}
	if len(cities) != 5 {
		t.Errorf("Expected 5 cities on page 2, got %d", len(cities))
	}
}

// TestGetCityAggregate tests that a city read carries its child collections
func TestGetCityAggregate(t *testing.T) {
	db := setupTestDB(t)

	helpers.CreateTestCity(t, db, "hamburg", "Hamburg")

	app := newTestApp()
	handler := &handlers.CityHandler{DB: db, AdminDB: db}
	app.Get("/api/cities/:slug", handler.GetCity)

	req := httptest.NewRequest("GET", "/api/cities/hamburg", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var city models.City
	helpers.AssertSuccess(t, resp, &city)
	if city.Name != "Hamburg" {
		t.Errorf("Expected name Hamburg, got %q", city.Name)
	}
	if len(city.Services) != 1 {
		t.Errorf("Expected 1 service, got %d", len(city.Services))
	}
	if len(city.PortfolioItems) != 1 {
		t.Errorf("Expected 1 portfolio item, got %d", len(city.PortfolioItems))
	}
}

// TestGetCityNotFound tests the 404 envelope for an unknown slug
func TestGetCityNotFound(t *testing.T) {
	db := setupTestDB(t)

	app := newTestApp()
	handler := &handlers.CityHandler{DB: db, AdminDB: db}
	app.Get("/api/cities/:slug", handler.GetCity)

	req := httptest.NewRequest("GET", "/api/cities/atlantis", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	helpers.AssertStatus(t, resp, 404)
	helpers.AssertError(t, resp, "City not found")
}

// TestGetCityHidesInactive tests that an inactive city reads as 404 publicly
func TestGetCityHidesInactive(t *testing.T) {
	db := setupTestDB(t)

	city := helpers.CreateTestCity(t, db, "gdansk", "Gdansk")
	db.Model(city).Update("is_active", false)

	app := newTestApp()
	handler := &handlers.CityHandler{DB: db, AdminDB: db}
	app.Get("/api/cities/:slug", handler.GetCity)
	app.Get("/api/admin/cities/:slug", handler.GetCityAdmin)

	req := httptest.NewRequest("GET", "/api/cities/gdansk", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 404)

	// The admin read still sees it
	req = httptest.NewRequest("GET", "/api/admin/cities/gdansk", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)
}

// TestCreateCityValidation tests the named-field validation messages
func TestCreateCityValidation(t *testing.T) {
	db := setupTestDB(t)

	app := newTestApp()
	handler := &handlers.CityHandler{DB: db, AdminDB: db}
	app.Post("/api/cities", handler.CreateCity)

	cases := []struct {
		name    string
		payload map[string]interface{}
		message string
	}{
		{"missing slug", map[string]interface{}{"name": "Berlin"}, "Slug is required"},
		{"missing name", map[string]interface{}{"slug": "berlin"}, "Name is required"},
		{"bad hero image", map[string]interface{}{"slug": "berlin", "name": "Berlin", "hero_image": "not-a-url"}, "Hero image must be a valid URL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/cities", jsonBody(t, tc.payload))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("Failed to execute request: %v", err)
			}
			helpers.AssertStatus(t, resp, 400)
			helpers.AssertError(t, resp, tc.message)
		})
	}
}

// TestCityRoundTrip tests create, update, delete through the handlers
func TestCityRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	app := newTestApp()
	handler := &handlers.CityHandler{DB: db, AdminDB: db}
	app.Post("/api/cities", handler.CreateCity)
	app.Put("/api/cities/:slug", handler.UpdateCity)
	app.Delete("/api/cities/:slug", handler.DeleteCity)
	app.Get("/api/cities/:slug", handler.GetCity)

	// Create
	req := httptest.NewRequest("POST", "/api/cities",
		jsonBody(t, map[string]interface{}{"slug": "vienna", "name": "Vienna", "country": "Austria"}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	// Update
	req = httptest.NewRequest("PUT", "/api/cities/vienna",
		jsonBody(t, map[string]interface{}{"name": "Wien"}))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var updated models.City
	helpers.AssertSuccess(t, resp, &updated)
	if updated.Name != "Wien" {
		t.Errorf("Expected updated name Wien, got %q", updated.Name)
	}

	// Delete
	req = httptest.NewRequest("DELETE", "/api/cities/vienna", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	// Gone
	req = httptest.NewRequest("GET", "/api/cities/vienna", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 404)
}

// TestDeleteCityRemovesChildren tests that the delete clears child rows too
func TestDeleteCityRemovesChildren(t *testing.T) {
	db := setupTestDB(t)

	city := helpers.CreateTestCity(t, db, "prague", "Prague")

	app := newTestApp()
	handler := &handlers.CityHandler{DB: db, AdminDB: db}
	app.Delete("/api/cities/:slug", handler.DeleteCity)

	req := httptest.NewRequest("DELETE", "/api/cities/prague", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var services int64
	db.Model(&models.CityService{}).Where("city_id = ?", city.ID).Count(&services)
	if services != 0 {
		t.Errorf("Expected 0 services after city delete, got %d", services)
	}
}
