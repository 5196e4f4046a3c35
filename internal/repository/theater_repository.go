package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/movie-ticketing/internal/model"
)

// TheaterRepo is the MongoDB-backed TheaterRepository.
type TheaterRepo struct{ col *mongo.Collection }

func NewTheaterRepo(db *mongo.Database) *TheaterRepo {
	return &TheaterRepo{col: db.Collection("theaters")}
}

// GetByIDs fetches theaters in one batch, keyed by id. Showtimes whose
// theater id is missing from the result are dangling references and
// get dropped by the aggregation.
func (r *TheaterRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.Theater, error) {
	out := make(map[primitive.ObjectID]model.Theater, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var t model.Theater
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		out[t.ID] = t
	}
	return out, cur.Err()
}
