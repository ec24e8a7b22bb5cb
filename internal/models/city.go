package models

import (
	"time"

	"gorm.io/gorm"
)

// City is the richest section aggregate: one city row plus six related
// child collections, each independently orderable and toggleable.
type City struct {
	ID              string    `gorm:"type:char(36);primaryKey" json:"id"`
	Slug            string    `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Name            string    `gorm:"size:200;not null" json:"name"`
	Country         string    `gorm:"size:200" json:"country"`
	Heading         string    `gorm:"size:500" json:"heading"`
	Description     string    `gorm:"type:text" json:"description"`
	HeroImage       string    `gorm:"size:1000" json:"hero_image"`
	MetaTitle       string    `gorm:"size:500" json:"meta_title"`
	MetaDescription string    `gorm:"size:1000" json:"meta_description"`
	IsActive        bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Services          []CityService          `gorm:"foreignKey:CityID" json:"services,omitempty"`
	ContentSections   []CityContentSection   `gorm:"foreignKey:CityID" json:"content_sections,omitempty"`
	PortfolioItems    []CityPortfolioItem    `gorm:"foreignKey:CityID" json:"portfolio_items,omitempty"`
	Components        []CityComponent        `gorm:"foreignKey:CityID" json:"components,omitempty"`
	PreferredServices []CityPreferredService `gorm:"foreignKey:CityID" json:"preferred_services,omitempty"`
	ContactDetails    []CityContactDetail    `gorm:"foreignKey:CityID" json:"contact_details,omitempty"`
}

// CityService is a service offered in a city (stand design, build, logistics).
type CityService struct {
	ID          string    `gorm:"type:char(36);primaryKey" json:"id"`
	CityID      string    `gorm:"type:char(36);not null;index" json:"city_id"`
	Title       string    `gorm:"size:500;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Icon        string    `gorm:"size:100" json:"icon"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CityContentSection is a freeform text/image block on a city page.
type CityContentSection struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	CityID    string    `gorm:"type:char(36);not null;index" json:"city_id"`
	Heading   string    `gorm:"size:500" json:"heading"`
	Body      string    `gorm:"type:text" json:"body"`
	ImageURL  string    `gorm:"size:1000" json:"image_url"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CityPortfolioItem is a completed-stand showcase entry for a city.
type CityPortfolioItem struct {
	ID         string    `gorm:"type:char(36);primaryKey" json:"id"`
	CityID     string    `gorm:"type:char(36);not null;index" json:"city_id"`
	Title      string    `gorm:"size:500;not null" json:"title"`
	ClientName string    `gorm:"size:200" json:"client_name"`
	ImageURL   string    `gorm:"size:1000" json:"image_url"`
	StandSize  string    `gorm:"size:100" json:"stand_size"`
	SortOrder  int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive   bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CityComponent is a reusable page component toggle for a city page
// (hero, FAQ, testimonial strip, CTA band).
type CityComponent struct {
	ID            string    `gorm:"type:char(36);primaryKey" json:"id"`
	CityID        string    `gorm:"type:char(36);not null;index" json:"city_id"`
	ComponentType string    `gorm:"size:100;not null" json:"component_type"`
	Title         string    `gorm:"size:500" json:"title"`
	Content       string    `gorm:"type:text" json:"content"`
	SortOrder     int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CityPreferredService is a highlighted service link shown in the city sidebar.
type CityPreferredService struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	CityID    string    `gorm:"type:char(36);not null;index" json:"city_id"`
	Label     string    `gorm:"size:200;not null" json:"label"`
	URL       string    `gorm:"size:1000" json:"url"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CityContactDetail is a local office/contact entry for a city.
type CityContactDetail struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	CityID    string    `gorm:"type:char(36);not null;index" json:"city_id"`
	Label     string    `gorm:"size:200;not null" json:"label"`
	Address   string    `gorm:"size:1000" json:"address"`
	Phone     string    `gorm:"size:100" json:"phone"`
	Email     string    `gorm:"size:200" json:"email"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *City) BeforeCreate(tx *gorm.DB) error                 { ensureID(&c.ID); return nil }
func (c *CityService) BeforeCreate(tx *gorm.DB) error          { ensureID(&c.ID); return nil }
func (c *CityContentSection) BeforeCreate(tx *gorm.DB) error   { ensureID(&c.ID); return nil }
func (c *CityPortfolioItem) BeforeCreate(tx *gorm.DB) error    { ensureID(&c.ID); return nil }
func (c *CityComponent) BeforeCreate(tx *gorm.DB) error        { ensureID(&c.ID); return nil }
func (c *CityPreferredService) BeforeCreate(tx *gorm.DB) error { ensureID(&c.ID); return nil }
func (c *CityContactDetail) BeforeCreate(tx *gorm.DB) error    { ensureID(&c.ID); return nil }

func (City) TableName() string                 { return "cities" }
func (CityService) TableName() string          { return "city_services" }
func (CityContentSection) TableName() string   { return "city_content_sections" }
func (CityPortfolioItem) TableName() string    { return "city_portfolio_items" }
func (CityComponent) TableName() string        { return "city_components" }
func (CityPreferredService) TableName() string { return "city_preferred_services" }
func (CityContactDetail) TableName() string    { return "city_contact_details" }
