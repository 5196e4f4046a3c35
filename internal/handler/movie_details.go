package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/movie-ticketing/internal/model"
	"github.com/iliyamo/movie-ticketing/internal/repository"
)

// MovieDetailsHandler serves the movie-detail aggregation: one movie
// joined with its showtimes grouped per theater.
type MovieDetailsHandler struct {
	Movies    repository.MovieRepository
	Showtimes repository.ShowtimeRepository
	Theaters  repository.TheaterRepository
}

func NewMovieDetailsHandler(m repository.MovieRepository, s repository.ShowtimeRepository, t repository.TheaterRepository) *MovieDetailsHandler {
	return &MovieDetailsHandler{Movies: m, Showtimes: s, Theaters: t}
}

// showtimeView is the per-theater showtime projection.
type showtimeView struct {
	ID   primitive.ObjectID `json:"id"`
	Date time.Time          `json:"date"`
	Time string             `json:"time"`
}

// theaterGroup pairs a theater snapshot with its ordered showtimes.
type theaterGroup struct {
	Theater  model.Theater  `json:"theater"`
	Showtimes []showtimeView `json:"showtimes"`
}

// GetByID handles GET /api/movies/:id. A malformed id is rejected with
// 400 before the store is touched; a missing movie is 404. Showtimes
// arrive pre-sorted by (date, time) and are grouped per theater in one
// pass; no showtimes (or only dangling ones) means an empty theaters
// array, not an error.
func (h *MovieDetailsHandler) GetByID(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid movie ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movie, err := h.Movies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return respondError(c, http.StatusNotFound, "Movie not found")
		}
		return respondError(c, http.StatusInternalServerError, "Failed to load movie")
	}

	showtimes, err := h.Showtimes.ListByMovie(ctx, id)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "Failed to load showtimes")
	}

	theaterIDs := make([]primitive.ObjectID, 0, len(showtimes))
	seen := make(map[primitive.ObjectID]bool, len(showtimes))
	for _, s := range showtimes {
		if !seen[s.TheaterID] {
			seen[s.TheaterID] = true
			theaterIDs = append(theaterIDs, s.TheaterID)
		}
	}
	theaters, err := h.Theaters.GetByIDs(ctx, theaterIDs)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "Failed to load theaters")
	}

	return respondData(c, http.StatusOK, echo.Map{
		"movie":    movie,
		"theaters": groupByTheater(showtimes, theaters),
	})
}

// groupByTheater walks the (date, time)-ordered showtime list once,
// grouping entries per theater. The output array is ordered by first
// appearance of each theater, and showtimes whose theater does not
// resolve are dropped.
func groupByTheater(showtimes []model.Showtime, theaters map[primitive.ObjectID]model.Theater) []theaterGroup {
	groups := make([]theaterGroup, 0, len(theaters))
	index := make(map[primitive.ObjectID]int, len(theaters))

	for _, s := range showtimes {
		theater, ok := theaters[s.TheaterID]
		if !ok {
			continue // dangling reference
		}
		i, ok := index[s.TheaterID]
		if !ok {
			i = len(groups)
			index[s.TheaterID] = i
			groups = append(groups, theaterGroup{Theater: theater, Showtimes: []showtimeView{}})
		}
		groups[i].Showtimes = append(groups[i].Showtimes, showtimeView{
			ID:   s.ID,
			Date: s.Date,
			Time: s.Time,
		})
	}
	return groups
}
