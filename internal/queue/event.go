// Package queue defines message payloads exchanged over the message broker.
package queue

// UserSignedUpEvent is published when signup completes. Downstream
// consumers can use it for welcome mail or analytics without querying
// the primary database.
type UserSignedUpEvent struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	SignedAt string `json:"signed_at"`
}

// WatchlistUpdatedEvent is published when a movie is added to or
// removed from a user's watchlist. Action is "added" or "removed";
// Count is the post-mutation entry count.
type WatchlistUpdatedEvent struct {
	UserID     string `json:"user_id"`
	MovieID    string `json:"movie_id"`
	MovieTitle string `json:"movie_title,omitempty"`
	Action     string `json:"action"`
	Count      int64  `json:"count"`
	OccurredAt string `json:"occurred_at"`
}
