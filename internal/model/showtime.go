package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Showtime links a movie to a theater at a specific date and time.
// Time is kept as a "HH:MM" 24-hour string so that lexicographic order
// equals chronological order within a day; the store sorts on
// (date, time) directly.
type Showtime struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MovieID   primitive.ObjectID `bson:"movieId" json:"movieId"`
	TheaterID primitive.ObjectID `bson:"theaterId" json:"theaterId"`
	Date      time.Time          `bson:"date" json:"date"`
	Time      string             `bson:"time" json:"time"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
