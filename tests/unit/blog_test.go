package handlers_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/expostands/expostands-api/internal/handlers"
	"github.com/expostands/expostands-api/internal/models"
	"github.com/expostands/expostands-api/tests/helpers"
)

// TestListPublicPostsOnlyPublished tests that the public list never leaks drafts
func TestListPublicPostsOnlyPublished(t *testing.T) {
	db := setupTestDB(t)

	helpers.CreateTestPost(t, db, "published-post", "Published", models.PostStatusPublished)
	helpers.CreateTestPost(t, db, "draft-post", "Draft", models.PostStatusDraft)

	app := newTestApp()
	handler := &handlers.BlogHandler{DB: db, AdminDB: db}
	app.Get("/api/blog/posts", handler.ListPosts)
	app.Get("/api/blog/posts/all", handler.ListPostsAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/blog/posts", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	env := helpers.ParseEnvelope(t, resp)
	if env.Total == nil || *env.Total != 1 {
		t.Fatalf("Expected 1 public post, got %v", env.Total)
	}

	// Admin list sees both
	resp, err = app.Test(httptest.NewRequest("GET", "/api/blog/posts/all", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	env = helpers.ParseEnvelope(t, resp)
	if env.Total == nil || *env.Total != 2 {
		t.Fatalf("Expected 2 admin posts, got %v", env.Total)
	}
}

// TestGetPostRendersMarkdown tests read-time rendering, sanitization, and the view counter
func TestGetPostRendersMarkdown(t *testing.T) {
	db := setupTestDB(t)

	post := &models.BlogPost{
		Slug:    "messe-guide",
		Title:   "Messe guide",
		Content: "## Planning\n\nSome **bold** advice.\n\n<script>alert(1)</script>",
		Status:  models.PostStatusPublished,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("Failed to create post: %v", err)
	}

	app := newTestApp()
	handler := &handlers.BlogHandler{DB: db, AdminDB: db}
	app.Get("/api/blog/posts/:slug", handler.GetPost)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/blog/posts/messe-guide", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var rendered struct {
		models.BlogPost
		HTML string `json:"html"`
	}
	helpers.AssertSuccess(t, resp, &rendered)

	if !strings.Contains(rendered.HTML, "<h2") {
		t.Errorf("Expected rendered heading, got %q", rendered.HTML)
	}
	if !strings.Contains(rendered.HTML, "<strong>bold</strong>") {
		t.Errorf("Expected rendered emphasis, got %q", rendered.HTML)
	}
	if strings.Contains(rendered.HTML, "<script") {
		t.Errorf("Expected script tags stripped, got %q", rendered.HTML)
	}
	if rendered.ViewCount != 1 {
		t.Errorf("Expected view count 1, got %d", rendered.ViewCount)
	}

	// Second read bumps the counter again
	resp, err = app.Test(httptest.NewRequest("GET", "/api/blog/posts/messe-guide", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertSuccess(t, resp, &rendered)
	if rendered.ViewCount != 2 {
		t.Errorf("Expected view count 2, got %d", rendered.ViewCount)
	}
}

// TestGetPostDraftHidden tests that drafts 404 on the public route
func TestGetPostDraftHidden(t *testing.T) {
	db := setupTestDB(t)

	helpers.CreateTestPost(t, db, "wip", "Work in progress", models.PostStatusDraft)

	app := newTestApp()
	handler := &handlers.BlogHandler{DB: db, AdminDB: db}
	app.Get("/api/blog/posts/:slug", handler.GetPost)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/blog/posts/wip", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 404)
	helpers.AssertError(t, resp, "Post not found")
}

// TestCreatePostValidation tests each rejected input in turn
func TestCreatePostValidation(t *testing.T) {
	db := setupTestDB(t)

	app := newTestApp()
	handler := &handlers.BlogHandler{DB: db, AdminDB: db}
	app.Post("/api/blog/posts", handler.CreatePost)

	cases := []struct {
		name     string
		payload  map[string]interface{}
		expected string
	}{
		{
			"missing slug",
			map[string]interface{}{"title": "T", "content": "C"},
			"Slug is required",
		},
		{
			"missing title",
			map[string]interface{}{"slug": "s", "content": "C"},
			"Title is required",
		},
		{
			"missing content",
			map[string]interface{}{"slug": "s", "title": "T"},
			"Content is required",
		},
		{
			"bad status",
			map[string]interface{}{"slug": "s", "title": "T", "content": "C", "status": "live"},
			"Invalid status value",
		},
		{
			"bad cover image",
			map[string]interface{}{"slug": "s", "title": "T", "content": "C", "cover_image": "not a url"},
			"Cover image must be a valid URL",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/blog/posts", jsonBody(t, tc.payload))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("Failed to execute request: %v", err)
			}
			helpers.AssertStatus(t, resp, 400)
			helpers.AssertError(t, resp, tc.expected)
		})
	}
}

// TestCreatePostPublishStampsDate tests PublishedAt stamping and tag creation
func TestCreatePostPublishStampsDate(t *testing.T) {
	db := setupTestDB(t)

	app := newTestApp()
	handler := &handlers.BlogHandler{DB: db, AdminDB: db}
	app.Post("/api/blog/posts", handler.CreatePost)

	req := httptest.NewRequest("POST", "/api/blog/posts",
		jsonBody(t, map[string]interface{}{
			"slug":    "launch",
			"title":   "Launch",
			"content": "We are live.",
			"status":  models.PostStatusPublished,
			"tags":    []string{"news", "company"},
		}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var post models.BlogPost
	helpers.AssertSuccess(t, resp, &post)
	if post.PublishedAt == nil {
		t.Error("Expected PublishedAt stamped on publish")
	}
	if len(post.Tags) != 2 {
		t.Errorf("Expected 2 tags, got %d", len(post.Tags))
	}

	var tagCount int64
	if err := db.Model(&models.BlogTag{}).Count(&tagCount).Error; err != nil {
		t.Fatalf("Failed to count tags: %v", err)
	}
	if tagCount != 2 {
		t.Errorf("Expected 2 tag rows created on the fly, got %d", tagCount)
	}

	// Drafts stay unstamped
	req = httptest.NewRequest("POST", "/api/blog/posts",
		jsonBody(t, map[string]interface{}{
			"slug": "later", "title": "Later", "content": "Soon.",
		}))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	var draft models.BlogPost
	helpers.AssertSuccess(t, resp, &draft)
	if draft.PublishedAt != nil {
		t.Error("Expected no PublishedAt on a draft")
	}
	if draft.Status != models.PostStatusDraft {
		t.Errorf("Expected default status draft, got %q", draft.Status)
	}
}

// TestUpdatePostReplacesTags tests publish-on-update and tag replacement
func TestUpdatePostReplacesTags(t *testing.T) {
	db := setupTestDB(t)

	helpers.CreateTestPost(t, db, "roadmap", "Roadmap", models.PostStatusDraft)

	app := newTestApp()
	handler := &handlers.BlogHandler{DB: db, AdminDB: db}
	app.Put("/api/blog/posts/:slug", handler.UpdatePost)
	app.Delete("/api/blog/posts/:slug", handler.DeletePost)

	req := httptest.NewRequest("PUT", "/api/blog/posts/roadmap",
		jsonBody(t, map[string]interface{}{
			"title":   "Roadmap 2026",
			"content": "Updated body.",
			"status":  models.PostStatusPublished,
			"tags":    []string{"planning"},
		}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var post models.BlogPost
	helpers.AssertSuccess(t, resp, &post)
	if post.PublishedAt == nil {
		t.Error("Expected PublishedAt stamped when an update publishes")
	}
	if len(post.Tags) != 1 || post.Tags[0].Slug != "planning" {
		t.Errorf("Expected tag set replaced with [planning], got %+v", post.Tags)
	}

	req = httptest.NewRequest("DELETE", "/api/blog/posts/roadmap", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	req = httptest.NewRequest("DELETE", "/api/blog/posts/roadmap", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 404)
	helpers.AssertError(t, resp, "Post not found")
}

// TestDeleteBlogCategoryInUse tests the referential delete guard
func TestDeleteBlogCategoryInUse(t *testing.T) {
	db := setupTestDB(t)

	cat := &models.BlogCategory{Name: "Guides", Slug: "guides"}
	if err := db.Create(cat).Error; err != nil {
		t.Fatalf("Failed to create category: %v", err)
	}
	post := helpers.CreateTestPost(t, db, "stand-guide", "Stand guide", models.PostStatusPublished)
	if err := db.Model(post).Update("category_id", cat.ID).Error; err != nil {
		t.Fatalf("Failed to assign category: %v", err)
	}

	app := newTestApp()
	handler := &handlers.BlogHandler{DB: db, AdminDB: db}
	app.Delete("/api/blog/categories/:id", handler.DeleteCategory)

	req := httptest.NewRequest("DELETE", "/api/blog/categories/"+cat.ID, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 400)
	helpers.AssertError(t, resp, "Category has posts and cannot be deleted")
}

// TestBlogTagRoundTrip tests tag create, list, and delete with join cleanup
func TestBlogTagRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	post := helpers.CreateTestPost(t, db, "tagged", "Tagged", models.PostStatusPublished)

	app := newTestApp()
	handler := &handlers.BlogHandler{DB: db, AdminDB: db}
	app.Post("/api/blog/tags", handler.CreateTag)
	app.Delete("/api/blog/tags/:id", handler.DeleteTag)
	app.Get("/api/blog/posts/:slug", handler.GetPost)

	// Missing slug
	req := httptest.NewRequest("POST", "/api/blog/tags",
		jsonBody(t, map[string]interface{}{"name": "Design"}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 400)
	helpers.AssertError(t, resp, "Slug is required")

	req = httptest.NewRequest("POST", "/api/blog/tags",
		jsonBody(t, map[string]interface{}{"name": "Design", "slug": "design"}))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	// Delete the tag the seeded post carries; the post survives untagged
	req = httptest.NewRequest("DELETE", "/api/blog/tags/"+post.Tags[0].ID, nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/blog/posts/tagged", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	var read struct {
		models.BlogPost
		HTML string `json:"html"`
	}
	helpers.AssertSuccess(t, resp, &read)
	if len(read.Tags) != 0 {
		t.Errorf("Expected no tags after delete, got %+v", read.Tags)
	}

	// Deleting again reads as not found
	req = httptest.NewRequest("DELETE", "/api/blog/tags/"+post.Tags[0].ID, nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 404)
	helpers.AssertError(t, resp, "Tag not found")
}
