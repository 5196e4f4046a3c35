package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/movie-ticketing/internal/model"
)

// UserRepository provides access to user documents.
type UserRepository interface {
	// Create inserts a user with an already-hashed password and
	// returns the stored document. Returns ErrEmailExists when the
	// email is taken.
	Create(ctx context.Context, email, passwordHash, name string) (model.User, error)
	// GetByEmail fetches a user by normalized email. Returns
	// ErrUserNotFound when absent.
	GetByEmail(ctx context.Context, email string) (model.User, error)
	// GetByID fetches a user by id. Returns ErrUserNotFound when absent.
	GetByID(ctx context.Context, id primitive.ObjectID) (model.User, error)
}

// MovieRepository provides read access to the movie catalog.
type MovieRepository interface {
	// Search runs the catalog query and returns the page slice plus
	// the total count of matching movies.
	Search(ctx context.Context, q MovieSearchQuery) ([]model.Movie, int64, error)
	// GetByID fetches a movie. Returns ErrMovieNotFound when absent.
	GetByID(ctx context.Context, id primitive.ObjectID) (model.Movie, error)
	// GetByIDs fetches the movies for the given ids, keyed by id.
	// Missing ids are simply absent from the map.
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.Movie, error)
}

// TheaterRepository provides read access to theaters.
type TheaterRepository interface {
	// GetByIDs fetches the theaters for the given ids, keyed by id.
	// Missing ids are simply absent from the map.
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.Theater, error)
}

// ShowtimeRepository provides read access to showtimes.
type ShowtimeRepository interface {
	// ListByMovie returns all showtimes for a movie ordered by
	// (date ascending, time ascending).
	ListByMovie(ctx context.Context, movieID primitive.ObjectID) ([]model.Showtime, error)
}

// WatchlistRepository provides access to per-user watchlist entries.
type WatchlistRepository interface {
	// ListByUser returns the user's entries newest first.
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]model.WatchlistEntry, error)
	// CountByUser counts raw entries, including ones whose movie no
	// longer resolves.
	CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
	// Exists reports whether an entry for (userID, movieID) exists.
	Exists(ctx context.Context, userID, movieID primitive.ObjectID) (bool, error)
	// Create inserts an entry. Returns ErrAlreadyInWatchlist when the
	// pair already exists, including when a concurrent insert wins the
	// race and this one hits the unique index.
	Create(ctx context.Context, userID, movieID primitive.ObjectID) (model.WatchlistEntry, error)
	// Delete removes the entry for (userID, movieID). Returns
	// ErrEntryNotFound when nothing was deleted.
	Delete(ctx context.Context, userID, movieID primitive.ObjectID) error
}
