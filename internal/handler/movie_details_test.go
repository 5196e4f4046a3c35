package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/movie-ticketing/internal/handler"
	"github.com/iliyamo/movie-ticketing/internal/model"
)

type detailsResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Movie    model.Movie `json:"movie"`
		Theaters []struct {
			Theater   model.Theater `json:"theater"`
			Showtimes []struct {
				ID   string    `json:"id"`
				Date time.Time `json:"date"`
				Time string    `json:"time"`
			} `json:"showtimes"`
		} `json:"theaters"`
	} `json:"data"`
}

func getDetails(t *testing.T, h *handler.MovieDetailsHandler, id string) (int, detailsResponse, string) {
	t.Helper()
	e := newTestEcho()
	c, rec := doJSON(e, http.MethodGet, "/api/movies/"+id, "")
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.GetByID(c))
	var body detailsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body, rec.Body.String()
}

func TestDetailsInvalidID(t *testing.T) {
	h := handler.NewMovieDetailsHandler(&fakeMovieRepo{}, &fakeShowtimeRepo{}, &fakeTheaterRepo{})
	code, _, raw := getDetails(t, h, "not-a-hex-id")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, raw, "Invalid movie ID")
}

func TestDetailsMovieNotFound(t *testing.T) {
	h := handler.NewMovieDetailsHandler(&fakeMovieRepo{}, &fakeShowtimeRepo{}, &fakeTheaterRepo{})
	code, _, raw := getDetails(t, h, primitive.NewObjectID().Hex())
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, raw, "Movie not found")
}

func TestDetailsNoShowtimes(t *testing.T) {
	movie := sampleMovie("Quiet Release", 4.0, 2024)
	h := handler.NewMovieDetailsHandler(
		&fakeMovieRepo{movies: []model.Movie{movie}},
		&fakeShowtimeRepo{},
		&fakeTheaterRepo{},
	)

	code, body, _ := getDetails(t, h, movie.ID.Hex())
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Quiet Release", body.Data.Movie.Title)
	assert.NotNil(t, body.Data.Theaters)
	assert.Empty(t, body.Data.Theaters)
}

// Theaters appear in order of their first showtime, and each group keeps
// its showtimes in (date, time) order even when the theater's slots
// interleave with other theaters'.
func TestDetailsGroupsShowtimesByTheater(t *testing.T) {
	movie := sampleMovie("Matinee", 4.2, 2020)
	theaterA := model.Theater{ID: primitive.NewObjectID(), Name: "Theater A", City: "New York", State: "NY"}
	theaterB := model.Theater{ID: primitive.NewObjectID(), Name: "Theater B", City: "New York", State: "NY"}
	day := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	s1 := model.Showtime{ID: primitive.NewObjectID(), MovieID: movie.ID, TheaterID: theaterA.ID, Date: day, Time: "10:00"}
	s2 := model.Showtime{ID: primitive.NewObjectID(), MovieID: movie.ID, TheaterID: theaterB.ID, Date: day, Time: "09:00"}
	s3 := model.Showtime{ID: primitive.NewObjectID(), MovieID: movie.ID, TheaterID: theaterA.ID, Date: day, Time: "11:00"}

	h := handler.NewMovieDetailsHandler(
		&fakeMovieRepo{movies: []model.Movie{movie}},
		&fakeShowtimeRepo{showtimes: []model.Showtime{s1, s2, s3}},
		&fakeTheaterRepo{theaters: []model.Theater{theaterA, theaterB}},
	)

	code, body, _ := getDetails(t, h, movie.ID.Hex())
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body.Data.Theaters, 2)

	// 09:00 at B sorts first, so B is the first group
	first, second := body.Data.Theaters[0], body.Data.Theaters[1]
	assert.Equal(t, "Theater B", first.Theater.Name)
	require.Len(t, first.Showtimes, 1)
	assert.Equal(t, s2.ID.Hex(), first.Showtimes[0].ID)

	assert.Equal(t, "Theater A", second.Theater.Name)
	require.Len(t, second.Showtimes, 2)
	assert.Equal(t, "10:00", second.Showtimes[0].Time)
	assert.Equal(t, "11:00", second.Showtimes[1].Time)
}

// A showtime pointing at a theater that no longer exists is silently
// dropped instead of failing the whole aggregation.
func TestDetailsDropsDanglingTheater(t *testing.T) {
	movie := sampleMovie("Orphan Slot", 3.1, 2015)
	theater := model.Theater{ID: primitive.NewObjectID(), Name: "Surviving Theater", City: "Boston", State: "MA"}
	day := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	kept := model.Showtime{ID: primitive.NewObjectID(), MovieID: movie.ID, TheaterID: theater.ID, Date: day, Time: "18:00"}
	dangling := model.Showtime{ID: primitive.NewObjectID(), MovieID: movie.ID, TheaterID: primitive.NewObjectID(), Date: day, Time: "17:00"}

	h := handler.NewMovieDetailsHandler(
		&fakeMovieRepo{movies: []model.Movie{movie}},
		&fakeShowtimeRepo{showtimes: []model.Showtime{kept, dangling}},
		&fakeTheaterRepo{theaters: []model.Theater{theater}},
	)

	code, body, _ := getDetails(t, h, movie.ID.Hex())
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body.Data.Theaters, 1)
	assert.Equal(t, "Surviving Theater", body.Data.Theaters[0].Theater.Name)
	require.Len(t, body.Data.Theaters[0].Showtimes, 1)
	assert.Equal(t, kept.ID.Hex(), body.Data.Theaters[0].Showtimes[0].ID)
}
