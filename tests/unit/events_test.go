package handlers_test

import (
	"net/http/httptest"
	"testing"

	"github.com/expostands/expostands-api/internal/handlers"
	"github.com/expostands/expostands-api/internal/models"
	"github.com/expostands/expostands-api/tests/helpers"
)

// TestCreateEventSubmission tests the public event form with a date string
func TestCreateEventSubmission(t *testing.T) {
	db := setupTestDB(t)

	category := helpers.CreateTestEventCategory(t, db, "Trade fair", "trade-fair")

	app := newTestApp()
	handler := &handlers.EventHandler{DB: db, AdminDB: db}
	app.Post("/api/events/submissions", handler.CreateSubmission)

	req := httptest.NewRequest("POST", "/api/events/submissions",
		jsonBody(t, map[string]interface{}{
			"name":        "Jaan Kask",
			"email":       "jaan@example.com",
			"event_name":  "Hannover Messe",
			"event_date":  "2026-04-20",
			"city":        "Hannover",
			"stand_size":  "40sqm",
			"category_id": category.ID,
		}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var sub models.EventSubmission
	helpers.AssertSuccess(t, resp, &sub)
	if sub.EventDate == nil {
		t.Fatal("Expected parsed event date")
	}
	if sub.Status != models.SubmissionStatusNew {
		t.Errorf("Expected status new, got %q", sub.Status)
	}
}

// TestCreateEventSubmissionBadInput tests the validation paths
func TestCreateEventSubmissionBadInput(t *testing.T) {
	db := setupTestDB(t)

	app := newTestApp()
	handler := &handlers.EventHandler{DB: db, AdminDB: db}
	app.Post("/api/events/submissions", handler.CreateSubmission)

	// Missing event name
	req := httptest.NewRequest("POST", "/api/events/submissions",
		jsonBody(t, map[string]interface{}{"name": "A", "email": "a@b.c"}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 400)
	helpers.AssertError(t, resp, "Event name is required")

	// Unparseable date
	req = httptest.NewRequest("POST", "/api/events/submissions",
		jsonBody(t, map[string]interface{}{
			"name":       "A",
			"email":      "a@b.c",
			"event_name": "Expo",
			"event_date": "April 20th",
		}))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 400)
	helpers.AssertError(t, resp, "Event date must be RFC 3339 or YYYY-MM-DD")

	// Unknown category
	req = httptest.NewRequest("POST", "/api/events/submissions",
		jsonBody(t, map[string]interface{}{
			"name":        "A",
			"email":       "a@b.c",
			"event_name":  "Expo",
			"category_id": "00000000-0000-0000-0000-000000000000",
		}))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 404)
	helpers.AssertError(t, resp, "Category not found")
}

// TestDeleteEventCategoryInUse tests the referential delete guard
func TestDeleteEventCategoryInUse(t *testing.T) {
	db := setupTestDB(t)

	category := helpers.CreateTestEventCategory(t, db, "Congress", "congress")
	sub := &models.EventSubmission{
		Name:       "A",
		Email:      "a@b.c",
		EventName:  "MedTech Congress",
		CategoryID: category.ID,
	}
	if err := db.Create(sub).Error; err != nil {
		t.Fatalf("Failed to create submission: %v", err)
	}

	app := newTestApp()
	handler := &handlers.EventHandler{DB: db, AdminDB: db}
	app.Delete("/api/events/categories/:id", handler.DeleteCategory)

	req := httptest.NewRequest("DELETE", "/api/events/categories/"+category.ID, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 400)
	helpers.AssertError(t, resp, "Category has event submissions and cannot be deleted")

	// After the submission goes away, the delete succeeds
	if err := db.Delete(sub).Error; err != nil {
		t.Fatalf("Failed to delete submission: %v", err)
	}

	req = httptest.NewRequest("DELETE", "/api/events/categories/"+category.ID, nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)
}

// TestEventCategoryRoundTrip tests create, get, update through the handlers
func TestEventCategoryRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	app := newTestApp()
	handler := &handlers.EventHandler{DB: db, AdminDB: db}
	app.Post("/api/events/categories", handler.CreateCategory)
	app.Get("/api/events/categories/:id", handler.GetCategory)
	app.Put("/api/events/categories/:id", handler.UpdateCategory)

	req := httptest.NewRequest("POST", "/api/events/categories",
		jsonBody(t, map[string]interface{}{"name": "Expo", "slug": "expo"}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var created models.EventCategory
	helpers.AssertSuccess(t, resp, &created)

	req = httptest.NewRequest("PUT", "/api/events/categories/"+created.ID,
		jsonBody(t, map[string]interface{}{"name": "Expositions", "slug": "expo"}))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	req = httptest.NewRequest("GET", "/api/events/categories/"+created.ID, nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var fetched models.EventCategory
	helpers.AssertSuccess(t, resp, &fetched)
	if fetched.Name != "Expositions" {
		t.Errorf("Expected updated name, got %q", fetched.Name)
	}
}
