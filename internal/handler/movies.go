package handler

import (
	"context"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticketing/internal/model"
	"github.com/iliyamo/movie-ticketing/internal/repository"
	"github.com/iliyamo/movie-ticketing/internal/validator"
)

// MoviesHandler serves the public movie catalog.
type MoviesHandler struct {
	Movies repository.MovieRepository
}

func NewMoviesHandler(movies repository.MovieRepository) *MoviesHandler {
	return &MoviesHandler{Movies: movies}
}

var sortFields = []string{"title", "rating", "releaseYear"}

// List handles GET /api/movies: optional search/genre/mpaaRating/
// releaseYear filters (ANDed), sorting and 1-indexed pagination.
// Malformed query values fail with field-level details before the
// store is touched; an out-of-range page is an empty slice, not an
// error.
func (h *MoviesHandler) List(c echo.Context) error {
	q, details := parseListQuery(c)
	if len(details) > 0 {
		return respondValidation(c, details)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movies, total, err := h.Movies.Search(ctx, q)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "Failed to load movies")
	}
	return respondData(c, http.StatusOK, echo.Map{
		"movies":     movies,
		"pagination": newPagination(q.Page, q.Limit, total),
	})
}

// parseListQuery validates the catalog query parameters and builds the
// normalized search query. All failures are collected so the client
// sees every bad field at once.
func parseListQuery(c echo.Context) (repository.MovieSearchQuery, []validator.FieldError) {
	var details []validator.FieldError

	q := repository.MovieSearchQuery{
		Search: c.QueryParam("search"),
		Genre:  c.QueryParam("genre"),
	}

	if v := c.QueryParam("mpaaRating"); v != "" {
		if !slices.Contains(model.MpaaRatings, v) {
			details = append(details, validator.FieldError{
				Field: "mpaaRating", Message: "mpaaRating must be G, PG, PG-13, R, or NR",
			})
		}
		q.MpaaRating = v
	}
	if v := c.QueryParam("releaseYear"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			details = append(details, validator.FieldError{
				Field: "releaseYear", Message: "releaseYear must be an integer",
			})
		}
		q.ReleaseYear = n
	}
	if v := c.QueryParam("sortBy"); v != "" {
		if !slices.Contains(sortFields, v) {
			details = append(details, validator.FieldError{
				Field: "sortBy", Message: "sortBy must be title, rating, or releaseYear",
			})
		}
		q.SortBy = v
	}
	if v := c.QueryParam("sortOrder"); v != "" {
		if v != "asc" && v != "desc" {
			details = append(details, validator.FieldError{
				Field: "sortOrder", Message: "sortOrder must be asc or desc",
			})
		}
		q.SortOrder = v
	}
	if v := c.QueryParam("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			details = append(details, validator.FieldError{
				Field: "page", Message: "page must be a positive integer",
			})
		}
		q.Page = n
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			details = append(details, validator.FieldError{
				Field: "limit", Message: "limit must be a positive integer",
			})
		}
		q.Limit = n
	}

	q.Normalize()
	return q, details
}
