package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MpaaRatings lists the accepted values for Movie.MpaaRating.
var MpaaRatings = []string{"G", "PG", "PG-13", "R", "NR"}

// Movie represents a catalog entry in the `movies` collection. Movies
// are created by the seed tool only; the API treats them as read-only.
//
// Fields:
//  ID              – ObjectID primary key.
//  Title           – movie title (max 200 chars).
//  Description     – synopsis (max 2000 chars).
//  PosterURL       – poster image URL.
//  Genres          – non-empty ordered list of genre names.
//  MpaaRating      – one of G, PG, PG-13, R, NR.
//  Rating          – aggregate score in [0, 5].
//  ReleaseYear     – ≥1900 and at most two years in the future.
//  DurationMinutes – running time in minutes, ≥1.
//  Cast            – non-empty ordered list of actor names.
//  Director        – director name.
//  TrailerURL      – optional trailer link.
type Movie struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	PosterURL       string             `bson:"posterUrl" json:"posterUrl"`
	Genres          []string           `bson:"genres" json:"genres"`
	MpaaRating      string             `bson:"mpaaRating" json:"mpaaRating"`
	Rating          float64            `bson:"rating" json:"rating"`
	ReleaseYear     int                `bson:"releaseYear" json:"releaseYear"`
	DurationMinutes int                `bson:"durationMinutes" json:"durationMinutes"`
	Cast            []string           `bson:"cast" json:"cast"`
	Director        string             `bson:"director" json:"director"`
	TrailerURL      string             `bson:"trailerUrl,omitempty" json:"trailerUrl,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
