// common.go
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

package handlers

import (
	"errors"
	"time"

	"github.com/expostands/expostands-api/internal/services"
	"github.com/expostands/expostands-api/internal/types"
	"github.com/expostands/expostands-api/internal/utils"
	"github.com/gofiber/fiber/v2"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// parsePagination extracts page/limit query parameters with defaults and
// clamps limit to maxLimit.
func parsePagination(c *fiber.Ctx) (page, limit int) {
	page = c.QueryInt("page", defaultPage)
	if page < 1 {
		page = defaultPage
	}
	limit = c.QueryInt("limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// parseSubmissionFilter extracts the optional submission list filters:
// status, search substring, and a from/to date range (RFC 3339 or
// YYYY-MM-DD).
func parseSubmissionFilter(c *fiber.Ctx) services.SubmissionFilter {
	filter := services.SubmissionFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
	if from := parseDate(c.Query("from")); from != nil {
		filter.From = from
	}
	if to := parseDate(c.Query("to")); to != nil {
		// A date-only upper bound covers the whole day
		if len(c.Query("to")) == len("2006-01-02") {
			end := to.AddDate(0, 0, 1).Add(-time.Second)
			to = &end
		}
		filter.To = to
	}
	return filter
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

// respondServiceError maps a service-layer error onto the envelope:
// ErrNotFound becomes a 404 with the supplied message, CustomError keeps
// its own status, anything else is logged and returned as a generic 500.
func respondServiceError(c *fiber.Ctx, op string, err error, notFoundMsg string) error {
	if errors.Is(err, services.ErrNotFound) {
		return utils.NotFoundResponse(c, notFoundMsg)
	}

	var custom *types.CustomError
	if errors.As(err, &custom) {
		return utils.ErrorResponse(c, custom.Message, custom.Code)
	}

	return utils.InternalErrorResponse(c, op, err)
}
