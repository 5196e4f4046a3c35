// Package handler exposes the HTTP handlers for the movie-ticketing
// API. Every response uses the common envelope
// {success, data?, error?, details?} so the frontend's generic client
// can treat all endpoints uniformly.
package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticketing/internal/validator"
)

// respondData writes a success envelope with the given payload.
func respondData(c echo.Context, status int, data any) error {
	return c.JSON(status, echo.Map{"success": true, "data": data})
}

// respondError writes a failure envelope with a single error message.
func respondError(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"success": false, "error": msg})
}

// respondValidation writes the 400 envelope carrying field-level details.
func respondValidation(c echo.Context, details []validator.FieldError) error {
	return c.JSON(400, echo.Map{
		"success": false,
		"error":   "Validation failed",
		"details": details,
	})
}

// pagination is the catalog paging block. totalPages is
// ceil(totalCount/limit); movies.length never exceeds limit.
type pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int64 `json:"totalPages"`
}

func newPagination(page, limit int, total int64) pagination {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return pagination{Page: page, Limit: limit, TotalCount: total, TotalPages: pages}
}
