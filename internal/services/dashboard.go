package services

import (
	"log"
	"sync"

	"github.com/expostands/expostands-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// DashboardStats is the admin landing page summary.
type DashboardStats struct {
	ContactSubmissions    int64 `json:"contact_submissions"`
	NewContactSubmissions int64 `json:"new_contact_submissions"`
	EventSubmissions      int64 `json:"event_submissions"`
	NewEventSubmissions   int64 `json:"new_event_submissions"`
	Cities                int64 `json:"cities"`
	BlogPosts             int64 `json:"blog_posts"`
	PublishedBlogPosts    int64 `json:"published_blog_posts"`
	PageSections          int64 `json:"page_sections"`
	Companies             int64 `json:"companies"`
	AdminUsers            int64 `json:"admin_users"`
}

// GetDashboardStats fans the independent counts out to goroutines and
// collects them. A failed count logs and reports zero instead of failing
// the whole dashboard.
func GetDashboardStats(db *gorm.DB) DashboardStats {
	stats := DashboardStats{}

	counts := []struct {
		name   string
		target *int64
		query  func(*gorm.DB) *gorm.DB
	}{
		{"contact_submissions", &stats.ContactSubmissions, func(q *gorm.DB) *gorm.DB {
			return q.Model(&models.ContactSubmission{})
		}},
		{"new_contact_submissions", &stats.NewContactSubmissions, func(q *gorm.DB) *gorm.DB {
			return q.Model(&models.ContactSubmission{}).Where("status = ?", models.SubmissionStatusNew)
		}},
		{"event_submissions", &stats.EventSubmissions, func(q *gorm.DB) *gorm.DB {
			return q.Model(&models.EventSubmission{})
		}},
		{"new_event_submissions", &stats.NewEventSubmissions, func(q *gorm.DB) *gorm.DB {
			return q.Model(&models.EventSubmission{}).Where("status = ?", models.SubmissionStatusNew)
		}},
		{"cities", &stats.Cities, func(q *gorm.DB) *gorm.DB {
			return q.Model(&models.City{})
		}},
		{"blog_posts", &stats.BlogPosts, func(q *gorm.DB) *gorm.DB {
			return q.Model(&models.BlogPost{})
		}},
		{"published_blog_posts", &stats.PublishedBlogPosts, func(q *gorm.DB) *gorm.DB {
			return q.Model(&models.BlogPost{}).Where("status = ?", models.PostStatusPublished)
		}},
		{"page_sections", &stats.PageSections, func(q *gorm.DB) *gorm.DB {
			return q.Model(&models.PageSection{})
		}},
		{"companies", &stats.Companies, func(q *gorm.DB) *gorm.DB {
			return q.Model(&models.Company{})
		}},
		{"admin_users", &stats.AdminUsers, func(q *gorm.DB) *gorm.DB {
			return q.Model(&models.AdminUser{})
		}},
	}

	var wg sync.WaitGroup
	for _, c := range counts {
		wg.Add(1)
		go func(name string, target *int64, build func(*gorm.DB) *gorm.DB) {
			defer wg.Done()
			// Tag the query so slow-log entries attribute to the dashboard.
			query := build(db.Session(&gorm.Session{NewDB: true}).
				Clauses(hints.CommentBefore("select", "dashboard")))
			if err := query.Count(target).Error; err != nil {
				log.Printf("dashboard count %s failed: %v", name, err)
				*target = 0
			}
		}(c.name, c.target, c.query)
	}
	wg.Wait()

	return stats
}
