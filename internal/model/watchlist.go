package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WatchlistEntry models a single saved movie in the `watchlist`
// collection. The pair (UserID, MovieID) carries a unique compound
// index, so a race between two concurrent adds for the same pair
// yields exactly one document.
//
// Fields:
//  ID        – ObjectID primary key.
//  UserID    – owner of the entry.
//  MovieID   – saved movie; may dangle if the movie is later removed.
//  CreatedAt – when the entry was added; list order is newest first.
type WatchlistEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	MovieID   primitive.ObjectID `bson:"movieId" json:"movieId"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
