package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	"github.com/expostands/expostands-api/internal/config"
	"github.com/expostands/expostands-api/internal/database"
	"github.com/expostands/expostands-api/internal/handlers"
	"github.com/expostands/expostands-api/internal/middleware"
	"github.com/expostands/expostands-api/internal/services"
	"github.com/expostands/expostands-api/internal/storage"
	"github.com/expostands/expostands-api/internal/types"

	_ "github.com/expostands/expostands-api/docs/api" // Swagger docs
)

// @title ExpoStands API
// @version 1.0.0
// @description Content and data service for the ExpoStands exhibition stand marketing site
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://www.expostands.com
// @contact.email dev@expostands.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database (public read pool)
	publicDB, err := database.ConnectPublic(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to public database: %v", err)
	}
	defer database.Close(publicDB)

	// Connect to database (service pool, admin mutations)
	serviceDB, err := database.ConnectService(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to service database: %v", err)
	}
	defer database.Close(serviceDB)

	// Run auto-migrations on the service pool
	if err := database.AutoMigrate(serviceDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Prepare object storage buckets
	store := storage.New(cfg.StorageRoot, cfg.SiteBaseURL)
	for name := range store.Buckets {
		if _, err := store.EnsureBucket(name); err != nil {
			log.Fatalf("Failed to prepare storage bucket %s: %v", name, err)
		}
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: false,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("expostands")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Public bucket files
	app.Static("/storage", cfg.StorageRoot)

	// Health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		result := services.HealthCheck(cfg, publicDB)
		status := fiber.StatusOK
		if result.Status != "healthy" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(result)
	})

	// Create handlers
	sectionHandler := &handlers.SectionHandler{DB: publicDB, AdminDB: serviceDB}
	cityHandler := &handlers.CityHandler{DB: publicDB, AdminDB: serviceDB}
	contactHandler := &handlers.ContactHandler{DB: publicDB, AdminDB: serviceDB}
	eventHandler := &handlers.EventHandler{DB: publicDB, AdminDB: serviceDB}
	blogHandler := &handlers.BlogHandler{DB: publicDB, AdminDB: serviceDB}
	privacyHandler := &handlers.PrivacyHandler{DB: publicDB, AdminDB: serviceDB}
	dashboardHandler := &handlers.DashboardHandler{AdminDB: serviceDB}
	uploadHandler := &handlers.UploadHandler{Store: store}
	webhookHandler := &handlers.WebhookHandler{AdminDB: serviceDB}

	admin := middleware.AuthAdmin(cfg)

	// API routes under /api
	api := app.Group("/api")

	// Auth provider webhook (HMAC-verified, no session)
	api.Post("/webhooks/auth",
		middleware.VerifyWebhookSignature(cfg.AuthWebhookSecret),
		webhookHandler.HandleAuthEvent)

	// Page sections
	api.Post("/sections/items", admin, sectionHandler.CreateSectionItem)
	api.Put("/sections/items/:id", admin, sectionHandler.UpdateSectionItem)
	api.Delete("/sections/items/:id", admin, sectionHandler.DeleteSectionItem)
	api.Get("/sections/:page", sectionHandler.GetPageSections)
	api.Get("/sections/:page/:section", sectionHandler.GetSection)
	api.Post("/sections/:page/:section", admin, sectionHandler.UpsertSection)
	api.Put("/sections/:page/:section", admin, sectionHandler.UpsertSection)

	// Cities
	api.Get("/cities", cityHandler.ListCities)
	api.Post("/cities", admin, cityHandler.CreateCity)
	api.Get("/cities/:slug", cityHandler.GetCity)
	api.Get("/admin/cities/:slug", admin, cityHandler.GetCityAdmin)
	api.Put("/cities/:slug", admin, cityHandler.UpdateCity)
	api.Delete("/cities/:slug", admin, cityHandler.DeleteCity)

	// Contact
	api.Post("/contact/submissions", contactHandler.CreateSubmission)
	api.Get("/contact/submissions", admin, contactHandler.ListSubmissions)
	api.Get("/contact/submissions/:id", admin, contactHandler.GetSubmission)
	api.Patch("/contact/submissions/:id", admin, contactHandler.PatchSubmission)
	api.Delete("/contact/submissions/:id", admin, contactHandler.DeleteSubmission)
	api.Get("/contact/companies", contactHandler.ListCompanies)
	api.Post("/contact/companies", admin, contactHandler.CreateCompany)
	api.Put("/contact/companies/:id", admin, contactHandler.UpdateCompany)
	api.Delete("/contact/companies/:id", admin, contactHandler.DeleteCompany)
	api.Get("/contact/map", contactHandler.GetMap)
	api.Post("/contact/map", admin, contactHandler.UpsertMap)
	api.Put("/contact/map", admin, contactHandler.UpsertMap)
	api.Get("/contact/form-settings", contactHandler.ListFormSettings)
	api.Post("/contact/form-settings", admin, contactHandler.CreateFormSettings)
	api.Patch("/contact/form-settings/:id", admin, contactHandler.PatchFormSettings)
	api.Delete("/contact/form-settings/:id", admin, contactHandler.DeleteFormSettings)

	// Events
	api.Get("/events/categories", eventHandler.ListCategories)
	api.Post("/events/categories", admin, eventHandler.CreateCategory)
	api.Get("/events/categories/:id", admin, eventHandler.GetCategory)
	api.Put("/events/categories/:id", admin, eventHandler.UpdateCategory)
	api.Delete("/events/categories/:id", admin, eventHandler.DeleteCategory)
	api.Post("/events/submissions", eventHandler.CreateSubmission)
	api.Get("/events/submissions", admin, eventHandler.ListSubmissions)
	api.Get("/events/submissions/:id", admin, eventHandler.GetSubmission)
	api.Patch("/events/submissions/:id", admin, eventHandler.PatchSubmission)
	api.Delete("/events/submissions/:id", admin, eventHandler.DeleteSubmission)

	// Blog
	api.Get("/blog/posts", blogHandler.ListPosts)
	api.Get("/blog/posts/all", admin, blogHandler.ListPostsAdmin)
	api.Post("/blog/posts", admin, blogHandler.CreatePost)
	api.Get("/blog/posts/:slug", blogHandler.GetPost)
	api.Put("/blog/posts/:slug", admin, blogHandler.UpdatePost)
	api.Delete("/blog/posts/:slug", admin, blogHandler.DeletePost)
	api.Get("/blog/categories", blogHandler.ListCategories)
	api.Post("/blog/categories", admin, blogHandler.CreateCategory)
	api.Delete("/blog/categories/:id", admin, blogHandler.DeleteCategory)
	api.Get("/blog/tags", blogHandler.ListTags)
	api.Post("/blog/tags", admin, blogHandler.CreateTag)
	api.Delete("/blog/tags/:id", admin, blogHandler.DeleteTag)

	// Privacy policy
	api.Get("/privacy-policy", privacyHandler.GetPolicy)
	api.Post("/privacy-policy", admin, privacyHandler.UpsertPolicy)
	api.Put("/privacy-policy", admin, privacyHandler.UpsertPolicy)

	// Dashboard
	api.Get("/admin/dashboard", admin, dashboardHandler.GetStats)

	// Uploads
	api.Post("/contact/images/upload", admin, uploadHandler.Upload)
	api.Get("/storage/:bucket", admin, uploadHandler.List)
	api.Delete("/storage/:bucket/:filename", admin, uploadHandler.Remove)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Resource not found",
			"url":     c.OriginalURL(),
		})
	})

	log.Printf("Authorizer will be initialized on first authenticated request")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler shapes uncaught errors into the response envelope.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	var custom *types.CustomError
	if errors.As(err, &custom) {
		code = custom.Code
		message = custom.Message
	}

	if code == fiber.StatusInternalServerError {
		log.Printf("unhandled error at %s: %v", c.OriginalURL(), err)
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"success":   false,
		"error":     message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
