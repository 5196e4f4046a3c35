package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/movie-ticketing/internal/middleware"
	"github.com/iliyamo/movie-ticketing/internal/model"
	"github.com/iliyamo/movie-ticketing/internal/queue"
	"github.com/iliyamo/movie-ticketing/internal/repository"
	queue_publisher "github.com/iliyamo/movie-ticketing/internal/service"
	"github.com/iliyamo/movie-ticketing/internal/validator"
)

// WatchlistHandler serves the per-user watchlist. Every endpoint runs
// behind JWTAuth, so the identity is always present.
type WatchlistHandler struct {
	Watchlist repository.WatchlistRepository
	Movies    repository.MovieRepository
}

func NewWatchlistHandler(w repository.WatchlistRepository, m repository.MovieRepository) *WatchlistHandler {
	return &WatchlistHandler{Watchlist: w, Movies: m}
}

type addWatchlistReq struct {
	MovieID string `json:"movieId" validate:"required,objectid"`
}

// List returns the caller's saved movies newest-entry first. Entries
// whose movie no longer resolves are dropped from the output; Count
// deliberately still includes them (it counts raw entries).
func (h *WatchlistHandler) List(c echo.Context) error {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "Authentication required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	entries, err := h.Watchlist.ListByUser(ctx, id.UserID)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "Failed to load watchlist")
	}

	movieIDs := make([]primitive.ObjectID, 0, len(entries))
	for _, e := range entries {
		movieIDs = append(movieIDs, e.MovieID)
	}
	resolved, err := h.Movies.GetByIDs(ctx, movieIDs)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "Failed to load watchlist")
	}

	movies := make([]model.Movie, 0, len(entries))
	for _, e := range entries {
		if m, ok := resolved[e.MovieID]; ok {
			movies = append(movies, m)
		}
	}
	return respondData(c, http.StatusOK, echo.Map{"watchlist": movies})
}

// Count returns the raw entry count for the caller.
func (h *WatchlistHandler) Count(c echo.Context) error {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "Authentication required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	count, err := h.Watchlist.CountByUser(ctx, id.UserID)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "Failed to count watchlist")
	}
	return respondData(c, http.StatusOK, echo.Map{"count": count})
}

// Add saves a movie for the caller. The movie must exist; the pair
// must be new. The returned count is recomputed from the store after
// the insert so concurrent writers cannot make it drift.
func (h *WatchlistHandler) Add(c echo.Context) error {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "Authentication required")
	}

	var req addWatchlistReq
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, validator.Details(err))
	}
	movieID, err := primitive.ObjectIDFromHex(req.MovieID)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid movie ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movie, err := h.Movies.GetByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return respondError(c, http.StatusNotFound, "Movie not found")
		}
		return respondError(c, http.StatusInternalServerError, "Failed to add to watchlist")
	}

	exists, err := h.Watchlist.Exists(ctx, id.UserID, movieID)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "Failed to add to watchlist")
	}
	if exists {
		return respondError(c, http.StatusConflict, "Movie already in watchlist")
	}

	entry, err := h.Watchlist.Create(ctx, id.UserID, movieID)
	if err != nil {
		// A concurrent add can slip between the pre-check and the
		// insert; the unique index reports it as a duplicate.
		if errors.Is(err, repository.ErrAlreadyInWatchlist) {
			return respondError(c, http.StatusConflict, "Movie already in watchlist")
		}
		return respondError(c, http.StatusInternalServerError, "Failed to add to watchlist")
	}

	count, err := h.Watchlist.CountByUser(ctx, id.UserID)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "Failed to add to watchlist")
	}

	h.publishUpdate(id.UserID, movieID, movie.Title, "added", count)

	return respondData(c, http.StatusCreated, echo.Map{
		"watchlistItem": echo.Map{"id": entry.ID, "movieId": entry.MovieID},
		"count":         count,
	})
}

// Remove deletes the caller's entry for a movie. Malformed ids never
// reach the store; a missing entry is 404. The count is recomputed
// after the delete.
func (h *WatchlistHandler) Remove(c echo.Context) error {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "Authentication required")
	}

	movieID, err := primitive.ObjectIDFromHex(c.Param("movieId"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid movie ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Watchlist.Delete(ctx, id.UserID, movieID); err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return respondError(c, http.StatusNotFound, "Movie not in watchlist")
		}
		return respondError(c, http.StatusInternalServerError, "Failed to remove from watchlist")
	}

	count, err := h.Watchlist.CountByUser(ctx, id.UserID)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "Failed to remove from watchlist")
	}

	h.publishUpdate(id.UserID, movieID, "", "removed", count)

	return respondData(c, http.StatusOK, echo.Map{
		"message": "Movie removed from watchlist",
		"count":   count,
	})
}

// publishUpdate emits a watchlist event, fire-and-forget; broker
// failures never surface to the API caller.
func (h *WatchlistHandler) publishUpdate(userID, movieID primitive.ObjectID, title, action string, count int64) {
	go func() {
		_ = queue_publisher.PublishWatchlistUpdated(context.Background(), queue.WatchlistUpdatedEvent{
			UserID:     userID.Hex(),
			MovieID:    movieID.Hex(),
			MovieTitle: title,
			Action:     action,
			Count:      count,
			OccurredAt: time.Now().UTC().Format(time.RFC3339),
		})
	}()
}
