package handler_test

// In-memory repository fakes shared by the handler tests. Fakes (not a
// mock framework) keep the tests dependency-free and easy to read.

import (
	"context"
	"net/http/httptest"
	"sort"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/movie-ticketing/internal/middleware"
	"github.com/iliyamo/movie-ticketing/internal/model"
	"github.com/iliyamo/movie-ticketing/internal/repository"
	"github.com/iliyamo/movie-ticketing/internal/router"
	"github.com/iliyamo/movie-ticketing/internal/validator"
)

// newTestEcho returns an Echo instance configured like the server:
// request validator plus centralized error handler.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = router.HTTPErrorHandler("test")
	return e
}

// doJSON builds a request/recorder pair bound to a fresh context.
func doJSON(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// ----- users -----

type fakeUserRepo struct {
	users map[primitive.ObjectID]model.User
	err   error // when set, every call fails with it
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]model.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, email, passwordHash, name string) (model.User, error) {
	if f.err != nil {
		return model.User{}, f.err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range f.users {
		if u.Email == email {
			return model.User{}, repository.ErrEmailExists
		}
	}
	u := model.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Password:  passwordHash,
		Name:      name,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	if f.err != nil {
		return model.User{}, f.err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, repository.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (model.User, error) {
	if f.err != nil {
		return model.User{}, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

// ----- movies -----

type fakeMovieRepo struct {
	movies []model.Movie
	err    error
}

func (f *fakeMovieRepo) Search(ctx context.Context, q repository.MovieSearchQuery) ([]model.Movie, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	q.Normalize()

	matched := make([]model.Movie, 0, len(f.movies))
	for _, m := range f.movies {
		if q.Search != "" && !strings.Contains(strings.ToLower(m.Title), strings.ToLower(q.Search)) {
			continue
		}
		if q.Genre != "" {
			found := false
			for _, g := range m.Genres {
				if g == q.Genre {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		if q.MpaaRating != "" && m.MpaaRating != q.MpaaRating {
			continue
		}
		if q.ReleaseYear != 0 && m.ReleaseYear != q.ReleaseYear {
			continue
		}
		matched = append(matched, m)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if q.SortOrder == "desc" {
			a, b = b, a
		}
		switch q.SortBy {
		case "rating":
			return a.Rating < b.Rating
		case "releaseYear":
			return a.ReleaseYear < b.ReleaseYear
		default:
			return a.Title < b.Title
		}
	})

	total := int64(len(matched))
	start := int(q.Skip())
	if start > len(matched) {
		start = len(matched)
	}
	end := start + q.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakeMovieRepo) GetByID(ctx context.Context, id primitive.ObjectID) (model.Movie, error) {
	if f.err != nil {
		return model.Movie{}, f.err
	}
	for _, m := range f.movies {
		if m.ID == id {
			return m, nil
		}
	}
	return model.Movie{}, repository.ErrMovieNotFound
}

func (f *fakeMovieRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[primitive.ObjectID]model.Movie)
	for _, id := range ids {
		for _, m := range f.movies {
			if m.ID == id {
				out[id] = m
			}
		}
	}
	return out, nil
}

// ----- theaters -----

type fakeTheaterRepo struct {
	theaters []model.Theater
	err      error
}

func (f *fakeTheaterRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.Theater, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[primitive.ObjectID]model.Theater)
	for _, id := range ids {
		for _, t := range f.theaters {
			if t.ID == id {
				out[id] = t
			}
		}
	}
	return out, nil
}

// ----- showtimes -----

type fakeShowtimeRepo struct {
	showtimes []model.Showtime
	err       error
}

func (f *fakeShowtimeRepo) ListByMovie(ctx context.Context, movieID primitive.ObjectID) ([]model.Showtime, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Showtime
	for _, s := range f.showtimes {
		if s.MovieID == movieID {
			out = append(out, s)
		}
	}
	// Mirror the store's (date, time) ascending sort.
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

// ----- watchlist -----

type fakeWatchlistRepo struct {
	entries []model.WatchlistEntry
	err     error
}

func (f *fakeWatchlistRepo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]model.WatchlistEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.WatchlistEntry
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeWatchlistRepo) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, e := range f.entries {
		if e.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeWatchlistRepo) Exists(ctx context.Context, userID, movieID primitive.ObjectID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, e := range f.entries {
		if e.UserID == userID && e.MovieID == movieID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeWatchlistRepo) Create(ctx context.Context, userID, movieID primitive.ObjectID) (model.WatchlistEntry, error) {
	if f.err != nil {
		return model.WatchlistEntry{}, f.err
	}
	for _, e := range f.entries {
		if e.UserID == userID && e.MovieID == movieID {
			return model.WatchlistEntry{}, repository.ErrAlreadyInWatchlist
		}
	}
	e := model.WatchlistEntry{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		MovieID:   movieID,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	f.entries = append(f.entries, e)
	return e, nil
}

func (f *fakeWatchlistRepo) Delete(ctx context.Context, userID, movieID primitive.ObjectID) error {
	if f.err != nil {
		return f.err
	}
	for i, e := range f.entries {
		if e.UserID == userID && e.MovieID == movieID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return repository.ErrEntryNotFound
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)
var _ repository.MovieRepository = (*fakeMovieRepo)(nil)
var _ repository.TheaterRepository = (*fakeTheaterRepo)(nil)
var _ repository.ShowtimeRepository = (*fakeShowtimeRepo)(nil)
var _ repository.WatchlistRepository = (*fakeWatchlistRepo)(nil)

// sampleMovie builds a catalog movie for tests.
func sampleMovie(title string, rating float64, year int, genres ...string) model.Movie {
	if len(genres) == 0 {
		genres = []string{"Drama"}
	}
	return model.Movie{
		ID:              primitive.NewObjectID(),
		Title:           title,
		Description:     "test synopsis",
		PosterURL:       "https://example.com/poster.jpg",
		Genres:          genres,
		MpaaRating:      "PG-13",
		Rating:          rating,
		ReleaseYear:     year,
		DurationMinutes: 120,
		Cast:            []string{"Someone"},
		Director:        "A Director",
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
}

// authed stores an Identity on the context the way JWTAuth does after
// a successful token check.
func authed(c echo.Context, userID primitive.ObjectID, email string) {
	c.Set("identity", middleware.Identity{UserID: userID, Email: email})
}
