package services

import (
	"bytes"
	"errors"
	"time"

	"github.com/expostands/expostands-api/internal/models"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gorm.io/gorm"
)

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// RenderMarkdown converts markdown to sanitized HTML. Rendering happens at
// read time; only the markdown source is stored.
func RenderMarkdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return sanitizer.Sanitize(buf.String()), nil
}

// PostFilter holds the optional query filters of blog post lists.
type PostFilter struct {
	Status       string
	CategorySlug string
	TagSlug      string
	Search       string // substring over title and excerpt
}

// ListBlogPosts returns a page of posts, newest published first.
func ListBlogPosts(db *gorm.DB, filter PostFilter, page, limit int) ([]models.BlogPost, int64, error) {
	query := db.Model(&models.BlogPost{})

	if filter.Status != "" {
		query = query.Where("blog_posts.status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("blog_posts.title LIKE ? OR blog_posts.excerpt LIKE ?", like, like)
	}
	if filter.CategorySlug != "" {
		query = query.
			Joins("JOIN blog_categories ON blog_categories.id = blog_posts.category_id").
			Where("blog_categories.slug = ?", filter.CategorySlug)
	}
	if filter.TagSlug != "" {
		query = query.
			Joins("JOIN blog_posts_tags ON blog_posts_tags.blog_post_id = blog_posts.id").
			Joins("JOIN blog_tags ON blog_tags.id = blog_posts_tags.blog_tag_id").
			Where("blog_tags.slug = ?", filter.TagSlug)
	}

	var total int64
	if err := query.Distinct("blog_posts.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.BlogPost
	err := query.
		Distinct().
		Preload("Category").
		Preload("Tags").
		Order("blog_posts.published_at DESC, blog_posts.created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// GetBlogPost returns one post by slug. When publishedOnly is set, drafts
// and archived posts read as not found.
func GetBlogPost(db *gorm.DB, slug string, publishedOnly bool) (*models.BlogPost, error) {
	query := db.Preload("Category").Preload("Tags").Where("slug = ?", slug)
	if publishedOnly {
		query = query.Where("status = ?", models.PostStatusPublished)
	}

	var post models.BlogPost
	if err := query.First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// IncrementViewCount bumps the denormalized view counter. Concurrent reads
// race benignly; the increment runs in the database so no count is lost.
func IncrementViewCount(db *gorm.DB, postID string) error {
	return db.Model(&models.BlogPost{}).
		Where("id = ?", postID).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

// CreateBlogPost inserts a post with its tag associations. Publishing a
// post stamps PublishedAt when absent.
func CreateBlogPost(db *gorm.DB, post *models.BlogPost, tagSlugs []string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if post.Status == models.PostStatusPublished && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}

		tags, err := resolveTags(tx, tagSlugs)
		if err != nil {
			return err
		}
		post.Tags = tags

		return tx.Create(post).Error
	})
}

// UpdateBlogPost overwrites the editable fields of a post and replaces its
// tag set.
func UpdateBlogPost(db *gorm.DB, slug string, input *models.BlogPost, tagSlugs []string) (*models.BlogPost, error) {
	var updated *models.BlogPost
	err := db.Transaction(func(tx *gorm.DB) error {
		var existing models.BlogPost
		if err := tx.First(&existing, "slug = ?", slug).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if input.Status == models.PostStatusPublished && existing.PublishedAt == nil {
			now := time.Now()
			input.PublishedAt = &now
		}

		if err := tx.Model(&existing).Select(
			"Title", "Excerpt", "Content", "CoverImage", "Status", "PublishedAt", "CategoryID",
		).Updates(input).Error; err != nil {
			return err
		}

		if tagSlugs != nil {
			tags, err := resolveTags(tx, tagSlugs)
			if err != nil {
				return err
			}
			if err := tx.Model(&existing).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}

		updated = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return GetBlogPost(db, updated.Slug, false)
}

// DeleteBlogPost removes a post and its tag associations.
func DeleteBlogPost(db *gorm.DB, slug string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var post models.BlogPost
		if err := tx.First(&post, "slug = ?", slug).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Model(&post).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}

// resolveTags maps tag slugs to rows, creating missing tags on the fly.
func resolveTags(tx *gorm.DB, slugs []string) ([]models.BlogTag, error) {
	tags := make([]models.BlogTag, 0, len(slugs))
	for _, slug := range slugs {
		if slug == "" {
			continue
		}
		var tag models.BlogTag
		err := tx.Where("slug = ?", slug).First(&tag).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			tag = models.BlogTag{Name: slug, Slug: slug}
			if err := tx.Create(&tag).Error; err != nil {
				return nil, err
			}
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// ListBlogCategories returns all categories ordered by name.
func ListBlogCategories(db *gorm.DB) ([]models.BlogCategory, error) {
	var rows []models.BlogCategory
	if err := db.Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateBlogCategory inserts a category.
func CreateBlogCategory(db *gorm.DB, cat *models.BlogCategory) error {
	return db.Create(cat).Error
}

// DeleteBlogCategory removes a category unless posts still reference it.
func DeleteBlogCategory(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var cat models.BlogCategory
		if err := tx.First(&cat, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var dependents int64
		if err := tx.Model(&models.BlogPost{}).
			Where("category_id = ?", id).
			Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return ErrCategoryInUse
		}

		return tx.Delete(&cat).Error
	})
}

// CreateBlogTag inserts a tag.
func CreateBlogTag(db *gorm.DB, tag *models.BlogTag) error {
	return db.Create(tag).Error
}

// DeleteBlogTag removes a tag and its post associations.
func DeleteBlogTag(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var tag models.BlogTag
		if err := tx.First(&tag, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Exec("DELETE FROM blog_posts_tags WHERE blog_tag_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&tag).Error
	})
}

// ListBlogTags returns all tags ordered by name.
func ListBlogTags(db *gorm.DB) ([]models.BlogTag, error) {
	var rows []models.BlogTag
	if err := db.Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
