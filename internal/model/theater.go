package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Theater represents a row in the `theaters` collection. Theaters are
// seed-only and read-only via the API. Distance is an optional display
// value in miles; a nil pointer means the seed data did not supply one.
type Theater struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Address   string             `bson:"address" json:"address"`
	City      string             `bson:"city" json:"city"`
	State     string             `bson:"state" json:"state"` // 2-letter code
	ZipCode   string             `bson:"zipCode" json:"zipCode"`
	Distance  *float64           `bson:"distance,omitempty" json:"distance,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
