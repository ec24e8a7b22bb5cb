package handlers_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/expostands/expostands-api/internal/handlers"
	"github.com/expostands/expostands-api/tests/helpers"
	"github.com/gofiber/fiber/v2"
)

// TestPrivacyPolicyLifecycle tests the singleton upsert and rendered read
func TestPrivacyPolicyLifecycle(t *testing.T) {
	db := setupTestDB(t)

	app := newTestApp()
	handler := &handlers.PrivacyHandler{DB: db, AdminDB: db}
	app.Get("/api/privacy-policy", handler.GetPolicy)
	app.Post("/api/privacy-policy", handler.UpsertPolicy)
	app.Put("/api/privacy-policy", handler.UpsertPolicy)

	// Nothing published yet
	resp, err := app.Test(httptest.NewRequest("GET", "/api/privacy-policy", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 404)
	helpers.AssertError(t, resp, "Privacy policy not found")

	// Missing content
	req := httptest.NewRequest("POST", "/api/privacy-policy",
		jsonBody(t, map[string]interface{}{"title": "Privacy"}))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 400)
	helpers.AssertError(t, resp, "Content is required")

	// Create, then replace
	req = httptest.NewRequest("POST", "/api/privacy-policy",
		jsonBody(t, map[string]interface{}{
			"title":   "Privacy policy",
			"content": "## Data\n\nWe keep **only** form submissions.",
		}))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	req = httptest.NewRequest("PUT", "/api/privacy-policy",
		jsonBody(t, map[string]interface{}{
			"title":   "Privacy policy",
			"content": "## Data\n\nRevised wording.",
		}))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/privacy-policy", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var policy fiber.Map
	helpers.AssertSuccess(t, resp, &policy)
	html, _ := policy["html"].(string)
	if !strings.Contains(html, "<h2") || !strings.Contains(html, "Revised wording") {
		t.Errorf("Expected rendered replacement content, got %q", html)
	}
}
