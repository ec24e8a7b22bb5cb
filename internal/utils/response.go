// response.go
//
// Content and data service for the ExpoStands exhibition stand marketing site
// Copyright (c) 2026 ExpoStands OU <dev@expostands.com> (https://www.expostands.com)
//
// This file is part of expostands-api.
// expostands-api is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// expostands-api is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with expostands-api.
// If not, see <https://www.gnu.org/licenses/>.

package utils

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// SuccessResponse sends the uniform success envelope
func SuccessResponse(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// ListResponse sends the success envelope for paginated lists
func ListResponse(c *fiber.Ctx, data interface{}, total int64, page, limit int) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    data,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

// ErrorResponse sends the uniform error envelope
func ErrorResponse(c *fiber.Ctx, message string, status int) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// NotFoundResponse sends a 404 error envelope
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, message, fiber.StatusNotFound)
}

// ValidationErrorResponse sends a 400 error envelope with a specific message
func ValidationErrorResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, message, fiber.StatusBadRequest)
}

// InternalErrorResponse logs the raw error server-side and returns a generic
// 500 envelope. Database error text is never exposed to clients.
func InternalErrorResponse(c *fiber.Ctx, op string, err error) error {
	log.Printf("%s: %v", op, err)
	return ErrorResponse(c, "Internal server error", fiber.StatusInternalServerError)
}

// EnvelopeStruct defines the response envelope schema for swagger
type EnvelopeStruct struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Total   int64       `json:"total,omitempty"`
	Page    int         `json:"page,omitempty"`
	Limit   int         `json:"limit,omitempty"`
}
