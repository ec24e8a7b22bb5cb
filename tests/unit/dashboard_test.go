package handlers_test

import (
	"net/http/httptest"
	"testing"

	"github.com/expostands/expostands-api/internal/handlers"
	"github.com/expostands/expostands-api/internal/models"
	"github.com/expostands/expostands-api/internal/services"
	"github.com/expostands/expostands-api/tests/helpers"
)

// TestDashboardStats tests the fan-out counts against seeded rows
func TestDashboardStats(t *testing.T) {
	db := setupTestDB(t)

	helpers.CreateTestSubmission(t, db, "A", "a@b.c", models.SubmissionStatusNew)
	helpers.CreateTestSubmission(t, db, "B", "b@b.c", models.SubmissionStatusResponded)
	helpers.CreateTestCity(t, db, "berlin", "Berlin")
	helpers.CreateTestPost(t, db, "p1", "Post one", models.PostStatusPublished)
	helpers.CreateTestPost(t, db, "p2", "Post two", models.PostStatusDraft)
	helpers.CreateTestSection(t, db, "home", "hero", "Welcome")
	helpers.CreateTestCompany(t, db, "Estonia", 1)

	app := newTestApp()
	handler := &handlers.DashboardHandler{AdminDB: db}
	app.Get("/api/admin/dashboard", handler.GetStats)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/admin/dashboard", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var stats services.DashboardStats
	helpers.AssertSuccess(t, resp, &stats)

	if stats.ContactSubmissions != 2 {
		t.Errorf("Expected 2 contact submissions, got %d", stats.ContactSubmissions)
	}
	if stats.NewContactSubmissions != 1 {
		t.Errorf("Expected 1 new contact submission, got %d", stats.NewContactSubmissions)
	}
	if stats.Cities != 1 {
		t.Errorf("Expected 1 city, got %d", stats.Cities)
	}
	if stats.BlogPosts != 2 {
		t.Errorf("Expected 2 blog posts, got %d", stats.BlogPosts)
	}
	if stats.PublishedBlogPosts != 1 {
		t.Errorf("Expected 1 published post, got %d", stats.PublishedBlogPosts)
	}
	if stats.PageSections != 1 {
		t.Errorf("Expected 1 page section, got %d", stats.PageSections)
	}
	if stats.Companies != 1 {
		t.Errorf("Expected 1 company, got %d", stats.Companies)
	}
	if stats.EventSubmissions != 0 || stats.AdminUsers != 0 {
		t.Errorf("Expected empty event and user counts, got %d and %d",
			stats.EventSubmissions, stats.AdminUsers)
	}
}
