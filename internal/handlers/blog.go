package handlers

import (
	"errors"
	"log"

	"github.com/expostands/expostands-api/internal/models"
	"github.com/expostands/expostands-api/internal/services"
	"github.com/expostands/expostands-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BlogHandler handles blog posts, categories, and tags.
type BlogHandler struct {
	DB      *gorm.DB
	AdminDB *gorm.DB
}

// renderedPost is a post plus its rendered, sanitized HTML body.
type renderedPost struct {
	*models.BlogPost
	HTML string `json:"html"`
}

// ListPosts handles GET /api/blog/posts
// @Summary List published blog posts
// @Tags Blog
// @Produce json
// @Param category query string false "Category slug"
// @Param tag query string false "Tag slug"
// @Param search query string false "Substring over title and excerpt"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} utils.EnvelopeStruct
// @Router /blog/posts [get]
func (h *BlogHandler) ListPosts(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	filter := services.PostFilter{
		Status:       models.PostStatusPublished,
		CategorySlug: c.Query("category"),
		TagSlug:      c.Query("tag"),
		Search:       c.Query("search"),
	}

	posts, total, err := services.ListBlogPosts(h.DB, filter, page, limit)
	if err != nil {
		return utils.InternalErrorResponse(c, "listBlogPosts", err)
	}

	return utils.ListResponse(c, posts, total, page, limit)
}

// ListPostsAdmin handles GET /api/blog/posts/all with any status.
func (h *BlogHandler) ListPostsAdmin(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	filter := services.PostFilter{
		Status:       c.Query("status"),
		CategorySlug: c.Query("category"),
		TagSlug:      c.Query("tag"),
		Search:       c.Query("search"),
	}
	if filter.Status != "" && !models.ValidPostStatus(filter.Status) {
		return utils.ValidationErrorResponse(c, "Invalid status value")
	}

	posts, total, err := services.ListBlogPosts(h.AdminDB, filter, page, limit)
	if err != nil {
		return utils.InternalErrorResponse(c, "listBlogPostsAdmin", err)
	}

	return utils.ListResponse(c, posts, total, page, limit)
}

// GetPost handles GET /api/blog/posts/:slug
// @Summary Get a published post and increment its view counter
// @Tags Blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} utils.EnvelopeStruct
// @Failure 404 {object} utils.EnvelopeStruct
// @Router /blog/posts/{slug} [get]
func (h *BlogHandler) GetPost(c *fiber.Ctx) error {
	slug := c.Params("slug")

	post, err := services.GetBlogPost(h.DB, slug, true)
	if err != nil {
		return respondServiceError(c, "getBlogPost", err, "Post not found")
	}

	// The counter bump is best effort; a failed increment never fails the read.
	if err := services.IncrementViewCount(h.DB, post.ID); err != nil {
		log.Printf("view count increment failed for %s: %v", slug, err)
	} else {
		post.ViewCount++
	}

	html, err := services.RenderMarkdown(post.Content)
	if err != nil {
		return utils.InternalErrorResponse(c, "renderBlogPost", err)
	}

	return utils.SuccessResponse(c, renderedPost{BlogPost: post, HTML: html})
}

type postInput struct {
	Slug       string   `json:"slug"`
	Title      string   `json:"title"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"`
	CoverImage string   `json:"cover_image"`
	Status     string   `json:"status"`
	CategoryID string   `json:"category_id"`
	Tags       []string `json:"tags"`
}

func (in *postInput) validate(requireSlug bool) string {
	required := map[string]string{"Title": in.Title, "Content": in.Content}
	order := []string{"Title", "Content"}
	if requireSlug {
		required["Slug"] = in.Slug
		order = []string{"Slug", "Title", "Content"}
	}
	if msg := utils.RequireFields(required, order); msg != "" {
		return msg
	}
	if in.Status != "" && !models.ValidPostStatus(in.Status) {
		return "Invalid status value"
	}
	return utils.ValidateURLField("Cover image", in.CoverImage)
}

// CreatePost handles POST /api/blog/posts
// @Summary Create a blog post
// @Tags Blog
// @Accept json
// @Produce json
// @Success 200 {object} utils.EnvelopeStruct
// @Failure 400 {object} utils.EnvelopeStruct
// @Security CookieAuth
// @Router /blog/posts [post]
func (h *BlogHandler) CreatePost(c *fiber.Ctx) error {
	var body postInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if msg := body.validate(true); msg != "" {
		return utils.ValidationErrorResponse(c, msg)
	}

	post := &models.BlogPost{
		Slug:       body.Slug,
		Title:      body.Title,
		Excerpt:    body.Excerpt,
		Content:    body.Content,
		CoverImage: body.CoverImage,
		Status:     body.Status,
		CategoryID: body.CategoryID,
	}
	if post.Status == "" {
		post.Status = models.PostStatusDraft
	}

	if err := services.CreateBlogPost(h.AdminDB, post, body.Tags); err != nil {
		return utils.InternalErrorResponse(c, "createBlogPost", err)
	}

	return utils.SuccessResponse(c, post)
}

// UpdatePost handles PUT /api/blog/posts/:slug
func (h *BlogHandler) UpdatePost(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var body postInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if msg := body.validate(false); msg != "" {
		return utils.ValidationErrorResponse(c, msg)
	}

	input := &models.BlogPost{
		Title:      body.Title,
		Excerpt:    body.Excerpt,
		Content:    body.Content,
		CoverImage: body.CoverImage,
		Status:     body.Status,
		CategoryID: body.CategoryID,
	}
	if input.Status == "" {
		input.Status = models.PostStatusDraft
	}

	post, err := services.UpdateBlogPost(h.AdminDB, slug, input, body.Tags)
	if err != nil {
		return respondServiceError(c, "updateBlogPost", err, "Post not found")
	}

	return utils.SuccessResponse(c, post)
}

// DeletePost handles DELETE /api/blog/posts/:slug
func (h *BlogHandler) DeletePost(c *fiber.Ctx) error {
	slug := c.Params("slug")

	if err := services.DeleteBlogPost(h.AdminDB, slug); err != nil {
		return respondServiceError(c, "deleteBlogPost", err, "Post not found")
	}

	return utils.SuccessResponse(c, fiber.Map{"deleted": slug})
}

// ListCategories handles GET /api/blog/categories
func (h *BlogHandler) ListCategories(c *fiber.Ctx) error {
	rows, err := services.ListBlogCategories(h.DB)
	if err != nil {
		return utils.InternalErrorResponse(c, "listBlogCategories", err)
	}
	return utils.SuccessResponse(c, rows)
}

// CreateCategory handles POST /api/blog/categories
func (h *BlogHandler) CreateCategory(c *fiber.Ctx) error {
	var body struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if msg := utils.RequireFields(map[string]string{
		"Name": body.Name,
		"Slug": body.Slug,
	}, []string{"Name", "Slug"}); msg != "" {
		return utils.ValidationErrorResponse(c, msg)
	}

	cat := &models.BlogCategory{Name: body.Name, Slug: body.Slug}
	if err := services.CreateBlogCategory(h.AdminDB, cat); err != nil {
		return utils.InternalErrorResponse(c, "createBlogCategory", err)
	}

	return utils.SuccessResponse(c, cat)
}

// DeleteCategory handles DELETE /api/blog/categories/:id
func (h *BlogHandler) DeleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := services.DeleteBlogCategory(h.AdminDB, id); err != nil {
		if errors.Is(err, services.ErrCategoryInUse) {
			return utils.ValidationErrorResponse(c, "Category has posts and cannot be deleted")
		}
		return respondServiceError(c, "deleteBlogCategory", err, "Category not found")
	}

	return utils.SuccessResponse(c, fiber.Map{"deleted": id})
}

// ListTags handles GET /api/blog/tags
func (h *BlogHandler) ListTags(c *fiber.Ctx) error {
	rows, err := services.ListBlogTags(h.DB)
	if err != nil {
		return utils.InternalErrorResponse(c, "listBlogTags", err)
	}
	return utils.SuccessResponse(c, rows)
}

// CreateTag handles POST /api/blog/tags
func (h *BlogHandler) CreateTag(c *fiber.Ctx) error {
	var body struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if msg := utils.RequireFields(map[string]string{
		"Name": body.Name,
		"Slug": body.Slug,
	}, []string{"Name", "Slug"}); msg != "" {
		return utils.ValidationErrorResponse(c, msg)
	}

	tag := &models.BlogTag{Name: body.Name, Slug: body.Slug}
	if err := services.CreateBlogTag(h.AdminDB, tag); err != nil {
		return utils.InternalErrorResponse(c, "createBlogTag", err)
	}

	return utils.SuccessResponse(c, tag)
}

// DeleteTag handles DELETE /api/blog/tags/:id
func (h *BlogHandler) DeleteTag(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := services.DeleteBlogTag(h.AdminDB, id); err != nil {
		return respondServiceError(c, "deleteBlogTag", err, "Tag not found")
	}

	return utils.SuccessResponse(c, fiber.Map{"deleted": id})
}
