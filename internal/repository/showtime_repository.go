package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iliyamo/movie-ticketing/internal/model"
)

// ShowtimeRepo is the MongoDB-backed ShowtimeRepository.
type ShowtimeRepo struct{ col *mongo.Collection }

func NewShowtimeRepo(db *mongo.Database) *ShowtimeRepo {
	return &ShowtimeRepo{col: db.Collection("showtimes")}
}

// ListByMovie returns all showtimes for a movie sorted by date then
// time. Time is an "HH:MM" string, so ascending lexicographic order is
// chronological within a day.
func (r *ShowtimeRepo) ListByMovie(ctx context.Context, movieID primitive.ObjectID) ([]model.Showtime, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"movieId": movieID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []model.Showtime
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
