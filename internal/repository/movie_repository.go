package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iliyamo/movie-ticketing/internal/model"
)

// MovieRepo is the MongoDB-backed MovieRepository.
type MovieRepo struct{ col *mongo.Collection }

func NewMovieRepo(db *mongo.Database) *MovieRepo {
	return &MovieRepo{col: db.Collection("movies")}
}

// Search runs the filtered, sorted, paginated catalog query and
// returns the page slice together with the total match count. An
// out-of-range page yields an empty slice, not an error.
func (r *MovieRepo) Search(ctx context.Context, q MovieSearchQuery) ([]model.Movie, int64, error) {
	q.Normalize()
	filter := q.Filter()

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(q.Sort()).
		SetSkip(q.Skip()).
		SetLimit(int64(q.Limit))
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	movies := make([]model.Movie, 0, q.Limit)
	if err := cur.All(ctx, &movies); err != nil {
		return nil, 0, err
	}
	return movies, total, nil
}

// GetByID fetches a single movie.
func (r *MovieRepo) GetByID(ctx context.Context, id primitive.ObjectID) (model.Movie, error) {
	var m model.Movie
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return model.Movie{}, ErrMovieNotFound
	}
	return m, err
}

// GetByIDs fetches movies in one batch, keyed by id. Ids that resolve
// to nothing are left out of the map; callers treat those references
// as dangling.
func (r *MovieRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.Movie, error) {
	out := make(map[primitive.ObjectID]model.Movie, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var m model.Movie
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out[m.ID] = m
	}
	return out, cur.Err()
}
