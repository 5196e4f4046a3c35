package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iliyamo/movie-ticketing/internal/model"
)

// WatchlistRepo is the MongoDB-backed WatchlistRepository.
type WatchlistRepo struct{ col *mongo.Collection }

func NewWatchlistRepo(db *mongo.Database) *WatchlistRepo {
	return &WatchlistRepo{col: db.Collection("watchlist")}
}

// ListByUser returns the user's entries, most recently added first.
func (r *WatchlistRepo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]model.WatchlistEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []model.WatchlistEntry
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountByUser counts raw entries for the user. Entries whose movie no
// longer resolves still count; only the list operation drops them.
func (r *WatchlistRepo) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"userId": userID})
}

// Exists reports whether the (userID, movieID) pair is present.
func (r *WatchlistRepo) Exists(ctx context.Context, userID, movieID primitive.ObjectID) (bool, error) {
	err := r.col.FindOne(ctx, bson.M{"userId": userID, "movieId": movieID}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts an entry. The unique compound index on
// (userId, movieId) makes the insert the arbiter under concurrency: a
// duplicate-key error means another writer got there first and is
// reported as ErrAlreadyInWatchlist.
func (r *WatchlistRepo) Create(ctx context.Context, userID, movieID primitive.ObjectID) (model.WatchlistEntry, error) {
	now := time.Now().UTC()
	e := model.WatchlistEntry{
		UserID:    userID,
		MovieID:   movieID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	res, err := r.col.InsertOne(ctx, e)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.WatchlistEntry{}, ErrAlreadyInWatchlist
		}
		return model.WatchlistEntry{}, err
	}
	e.ID = res.InsertedID.(primitive.ObjectID)
	return e, nil
}

// Delete removes the entry for (userID, movieID).
func (r *WatchlistRepo) Delete(ctx context.Context, userID, movieID primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"userId": userID, "movieId": movieID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrEntryNotFound
	}
	return nil
}
