package handlers_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/expostands/expostands-api/internal/handlers"
	"github.com/expostands/expostands-api/internal/models"
	"github.com/expostands/expostands-api/tests/helpers"
)

// TestCreateContactSubmission tests the public contact form endpoint
func TestCreateContactSubmission(t *testing.T) {
	db := setupTestDB(t)

	app := newTestApp()
	handler := &handlers.ContactHandler{DB: db, AdminDB: db}
	app.Post("/api/contact/submissions", handler.CreateSubmission)

	req := httptest.NewRequest("POST", "/api/contact/submissions",
		jsonBody(t, map[string]interface{}{
			"name":    "Mari Tamm",
			"email":   "mari@example.com",
			"message": "We need a 20sqm stand in Cologne",
			// Visitors cannot set lifecycle fields
			"status":  "archived",
			"is_spam": true,
		}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var sub models.ContactSubmission
	helpers.AssertSuccess(t, resp, &sub)
	if sub.Status != models.SubmissionStatusNew {
		t.Errorf("Expected status new, got %q", sub.Status)
	}
	if sub.IsSpam {
		t.Error("Expected is_spam false on visitor create")
	}
}

// TestCreateContactSubmissionValidation tests the named-field messages
func TestCreateContactSubmissionValidation(t *testing.T) {
	db := setupTestDB(t)

	app := newTestApp()
	handler := &handlers.ContactHandler{DB: db, AdminDB: db}
	app.Post("/api/contact/submissions", handler.CreateSubmission)

	cases := []struct {
		name    string
		payload map[string]interface{}
		message string
	}{
		{"missing name", map[string]interface{}{"email": "a@b.c", "message": "hi"}, "Name is required"},
		{"missing email", map[string]interface{}{"name": "A", "message": "hi"}, "Email is required"},
		{"missing message", map[string]interface{}{"name": "A", "email": "a@b.c"}, "Message is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/contact/submissions", jsonBody(t, tc.payload))
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

// TestListSubmissionsFilter tests the status filter on the admin list
func TestListSubmissionsFilter(t *testing.T) {
	db := setupTestDB(t)

	helpers.CreateTestSubmission(t, db, "A", "a@example.com", models.SubmissionStatusNew)
	helpers.CreateTestSubmission(t, db, "B", "b@example.com", models.SubmissionStatusRead)
	helpers.CreateTestSubmission(t, db, "C", "c@example.com", models.SubmissionStatusNew)

	app := newTestApp()
	handler := &handlers.ContactHandler{DB: db, AdminDB: db}
	app.Get("/api/contact/submissions", handler.ListSubmissions)

	req := httptest.NewRequest("GET", "/api/contact/submissions?status=new", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	env := helpers.ParseEnvelope(t, resp)
	if env.Total == nil || *env.Total != 2 {
		t.Errorf("Expected total 2, got %v", env.Total)
	}
}

// TestPatchSubmissionStatus tests status transitions and the invalid value guard
func TestPatchSubmissionStatus(t *testing.T) {
	db := setupTestDB(t)

	sub := helpers.CreateTestSubmission(t, db, "A", "a@example.com", models.SubmissionStatusNew)

	app := newTestApp()
	handler := &handlers.ContactHandler{DB: db, AdminDB: db}
	app.Patch("/api/contact/submissions/:id", handler.PatchSubmission)

	req := httptest.NewRequest("PATCH", "/api/contact/submissions/"+sub.ID,
		jsonBody(t, map[string]interface{}{"status": "responded", "admin_notes": "Quoted"}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var updated models.ContactSubmission
	helpers.AssertSuccess(t, resp, &updated)
	if updated.Status != models.SubmissionStatusResponded {
		t.Errorf("Expected status responded, got %q", updated.Status)
	}
	if updated.AdminNotes != "Quoted" {
		t.Errorf("Expected admin notes, got %q", updated.AdminNotes)
	}

	// Unknown status values are rejected
	req = httptest.NewRequest("PATCH", "/api/contact/submissions/"+sub.ID,
		jsonBody(t, map[string]interface{}{"status": "bogus"}))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 400)
	helpers.AssertError(t, resp, "Invalid status value")
}

// TestDeleteSubmissionIdempotence tests delete then 404
func TestDeleteSubmissionIdempotence(t *testing.T) {
	db := setupTestDB(t)

	sub := helpers.CreateTestSubmission(t, db, "A", "a@example.com", models.SubmissionStatusSpam)

	app := newTestApp()
	handler := &handlers.ContactHandler{DB: db, AdminDB: db}
	app.Delete("/api/contact/submissions/:id", handler.DeleteSubmission)

	req := httptest.NewRequest("DELETE", "/api/contact/submissions/"+sub.ID, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	req = httptest.NewRequest("DELETE", "/api/contact/submissions/"+sub.ID, nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 404)
	helpers.AssertError(t, resp, "Submission not found")
}

// TestCompanyOrderingAndValidation tests sort order defaults and messages
func TestCompanyOrderingAndValidation(t *testing.T) {
	db := setupTestDB(t)

	helpers.CreateTestCompany(t, db, "Estonia", 1)
	helpers.CreateTestCompany(t, db, "Germany", 2)

	app := newTestApp()
	handler := &handlers.ContactHandler{DB: db, AdminDB: db}
	app.Get("/api/contact/companies", handler.ListCompanies)
	app.Post("/api/contact/companies", handler.CreateCompany)

	// Missing Region names the field
	req := httptest.NewRequest("POST", "/api/contact/companies",
		jsonBody(t, map[string]interface{}{"address": "1 Expo Way", "phone": "+1", "email": "x@y.z"}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 400)
	helpers.AssertError(t, resp, "Region is required")

	// A valid create lands at the end of the ordering
	req = httptest.NewRequest("POST", "/api/contact/companies",
		jsonBody(t, map[string]interface{}{
			"region":  "Poland",
			"address": "2 Fair St",
			"phone":   "+48 22 000 0000",
			"email":   "warsaw@expostands.com",
		}))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var created models.Company
	helpers.AssertSuccess(t, resp, &created)
	if created.SortOrder != 3 {
		t.Errorf("Expected sort_order 3, got %d", created.SortOrder)
	}

	req = httptest.NewRequest("GET", "/api/contact/companies", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var companies []models.Company
	helpers.AssertSuccess(t, resp, &companies)
	if len(companies) != 3 {
		t.Fatalf("Expected 3 companies, got %d", len(companies))
	}
	if companies[0].Region != "Estonia" || companies[2].Region != "Poland" {
		t.Errorf("Expected sort_order ordering, got %q .. %q", companies[0].Region, companies[2].Region)
	}
}

// TestMapSettingsUpsert tests the singleton map configuration
func TestMapSettingsUpsert(t *testing.T) {
	db := setupTestDB(t)

	app := newTestApp()
	handler := &handlers.ContactHandler{DB: db, AdminDB: db}
	app.Get("/api/contact/map", handler.GetMap)
	app.Put("/api/contact/map", handler.UpsertMap)

	// No configuration yet
	req := httptest.NewRequest("GET", "/api/contact/map", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 404)

	// Create with zoom defaulting
	req = httptest.NewRequest("PUT", "/api/contact/map",
		jsonBody(t, map[string]interface{}{"embed_url": "https://maps.example.com/embed?x=1"}))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var settings models.MapSettings
	helpers.AssertSuccess(t, resp, &settings)
	if settings.Zoom != 12 {
		t.Errorf("Expected default zoom 12, got %d", settings.Zoom)
	}

	// Second upsert replaces, it does not add a row
	req = httptest.NewRequest("PUT", "/api/contact/map",
		jsonBody(t, map[string]interface{}{"embed_url": "https://maps.example.com/embed?x=2", "zoom": 9}))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var count int64
	db.Model(&models.MapSettings{}).Where("is_active = ?", true).Count(&count)
	if count != 1 {
		t.Errorf("Expected 1 active map settings row, got %d", count)
	}
}

// TestFormSettingsLifecycle tests create, patch, delete of a form variant
func TestFormSettingsLifecycle(t *testing.T) {
	db := setupTestDB(t)

	app := newTestApp()
	handler := &handlers.ContactHandler{DB: db, AdminDB: db}
	app.Post("/api/contact/form-settings", handler.CreateFormSettings)
	app.Patch("/api/contact/form-settings/:id", handler.PatchFormSettings)
	app.Delete("/api/contact/form-settings/:id", handler.DeleteFormSettings)

	req := httptest.NewRequest("POST", "/api/contact/form-settings",
		jsonBody(t, map[string]interface{}{
			"form_key": "contact",
			"title":    "Talk to us",
			"fields":   []map[string]interface{}{{"name": "email", "type": "email"}},
		}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var created models.FormSettings
	helpers.AssertSuccess(t, resp, &created)

	req = httptest.NewRequest("PATCH", "/api/contact/form-settings/"+created.ID,
		jsonBody(t, map[string]interface{}{"title": "Contact us"}))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var patched models.FormSettings
	helpers.AssertSuccess(t, resp, &patched)
	if patched.Title != "Contact us" {
		t.Errorf("Expected patched title, got %q", patched.Title)
	}

	req = httptest.NewRequest("DELETE", "/api/contact/form-settings/"+created.ID, nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)
}

// TestListSubmissionsDateOnlyUpperBound tests that a date-only "to" filter
// includes submissions from that whole day
func TestListSubmissionsDateOnlyUpperBound(t *testing.T) {
	db := setupTestDB(t)

	sub := helpers.CreateTestSubmission(t, db, "A", "a@example.com", models.SubmissionStatusNew)
	stamp := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	if err := db.Model(sub).Update("created_at", stamp).Error; err != nil {
		t.Fatalf("Failed to backdate submission: %v", err)
	}

	app := newTestApp()
	handler := &handlers.ContactHandler{DB: db, AdminDB: db}
	app.Get("/api/contact/submissions", handler.ListSubmissions)

	cases := []struct {
		name  string
		query string
		total int64
	}{
		{"SameDayIncluded", "to=2026-03-10", 1},
		{"PriorDayExcluded", "to=2026-03-09", 0},
		{"TimestampStaysExact", "to=2026-03-10T15:00:00Z", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", "/api/contact/submissions?"+tc.query, nil))
			if err != nil {
				t.Fatalf("Failed to execute request: %v", err)
			}
			helpers.AssertStatus(t, resp, 200)
			env := helpers.ParseEnvelope(t, resp)
			if env.Total == nil || *env.Total != tc.total {
				t.Errorf("Expected total %d, got %v", tc.total, env.Total)
			}
		})
	}
}
