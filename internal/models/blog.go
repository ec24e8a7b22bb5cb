package models

import (
	"time"

	"gorm.io/gorm"
)

// Blog post publish lifecycle: draft -> published -> archived.
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
	PostStatusArchived  = "archived"
)

// ValidPostStatus reports whether s is a member of the post status enum.
func ValidPostStatus(s string) bool {
	return s == PostStatusDraft || s == PostStatusPublished || s == PostStatusArchived
}

// BlogCategory is the single category a post belongs to.
type BlogCategory struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Slug      string    `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BlogTag is a freeform label; posts carry many.
type BlogTag struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Slug      string    `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BlogPost is a slug-identified content entity. Content is markdown;
// the rendered, sanitized HTML is produced at read time, never stored.
// ViewCount is denormalized and incremented on each public read.
type BlogPost struct {
	ID          string     `gorm:"type:char(36);primaryKey" json:"id"`
	Slug        string     `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Title       string     `gorm:"size:500;not null" json:"title"`
	Excerpt     string     `gorm:"size:1000" json:"excerpt"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	CoverImage  string     `gorm:"size:1000" json:"cover_image"`
	Status      string     `gorm:"size:20;not null;default:draft;index" json:"status"`
	PublishedAt *time.Time `json:"published_at"`
	ViewCount   int64      `gorm:"not null;default:0" json:"view_count"`
	CategoryID  string     `gorm:"type:char(36);index" json:"category_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Category *BlogCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags     []BlogTag     `gorm:"many2many:blog_posts_tags;" json:"tags,omitempty"`
}

func (b *BlogCategory) BeforeCreate(tx *gorm.DB) error { ensureID(&b.ID); return nil }
func (b *BlogTag) BeforeCreate(tx *gorm.DB) error      { ensureID(&b.ID); return nil }
func (b *BlogPost) BeforeCreate(tx *gorm.DB) error     { ensureID(&b.ID); return nil }

func (BlogCategory) TableName() string { return "blog_categories" }
func (BlogTag) TableName() string      { return "blog_tags" }
func (BlogPost) TableName() string     { return "blog_posts" }
