package repository

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// MovieSearchQuery defines filters, sorting and pagination for the
// catalog listing. All filters are optional and logically ANDed.
// Filter, Sort and Skip are pure functions over the struct so the
// query construction can be tested without a store.
type MovieSearchQuery struct {
	Search      string // case-insensitive title substring
	Genre       string // exact genre membership
	MpaaRating  string // exact match
	ReleaseYear int    // exact match; 0 means unset
	SortBy      string // title | rating | releaseYear
	SortOrder   string // asc | desc
	Page        int    // 1-indexed
	Limit       int    // page size
}

// Normalize applies the documented defaults: sort by title ascending,
// page 1, limit 20.
func (q *MovieSearchQuery) Normalize() {
	if q.SortBy == "" {
		q.SortBy = "title"
	}
	if q.SortOrder == "" {
		q.SortOrder = "asc"
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 20
	}
}

// Filter builds the Mongo filter document. The search term is
// regexp-quoted so user input matches literally.
func (q MovieSearchQuery) Filter() bson.M {
	filter := bson.M{}
	if q.Search != "" {
		filter["title"] = bson.M{"$regex": regexp.QuoteMeta(q.Search), "$options": "i"}
	}
	if q.Genre != "" {
		filter["genres"] = q.Genre
	}
	if q.MpaaRating != "" {
		filter["mpaaRating"] = q.MpaaRating
	}
	if q.ReleaseYear != 0 {
		filter["releaseYear"] = q.ReleaseYear
	}
	return filter
}

// Sort builds the Mongo sort document.
func (q MovieSearchQuery) Sort() bson.D {
	dir := 1
	if strings.EqualFold(q.SortOrder, "desc") {
		dir = -1
	}
	return bson.D{{Key: q.SortBy, Value: dir}}
}

// Skip returns the number of documents to skip for the requested page.
func (q MovieSearchQuery) Skip() int64 {
	return int64(q.Page-1) * int64(q.Limit)
}
