package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/expostands/expostands-api/internal/models"
	"github.com/expostands/expostands-api/internal/types"
	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Every pooled connection to :memory: is a distinct database, so the
	// pool must stay at one connection.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// newTestApp creates a Fiber app with the same error mapping the server uses,
// so middleware errors reach assertions as the production envelope.
func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
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
			return c.Status(code).JSON(fiber.Map{"success": false, "error": message})
		},
	})
}

// jsonBody marshals a payload for use as a request body
func jsonBody(t *testing.T, payload interface{}) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to marshal request body: %v", err)
	}
	return bytes.NewReader(body)
}
