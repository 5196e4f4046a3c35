// Package repository defines per-entity data access. Sentinel errors
// declared here let handlers distinguish domain failures (missing
// record, duplicate record) from infrastructure failures, which map to
// HTTP 500. Each repository is defined as an interface backed by a
// MongoDB implementation; tests substitute in-memory fakes.
package repository

import "errors"

// ErrUserNotFound is returned when a user lookup matches no document.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailExists is returned when signup attempts to reuse an email.
// Handlers translate this into HTTP 400 with a duplicate-email message.
var ErrEmailExists = errors.New("email already exists")

// ErrMovieNotFound is returned when a movie lookup matches no document.
var ErrMovieNotFound = errors.New("movie not found")

// ErrAlreadyInWatchlist is returned when an insert collides with an
// existing (userId, movieId) pair, whether through the pre-check or the
// unique index. Handlers translate this into HTTP 409.
var ErrAlreadyInWatchlist = errors.New("movie already in watchlist")

// ErrEntryNotFound is returned when a watchlist delete matches no
// document. Handlers translate this into HTTP 404.
var ErrEntryNotFound = errors.New("movie not in watchlist")
