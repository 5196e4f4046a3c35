package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an application user document as stored in the
// `users` collection. Emails are normalized to lowercase before
// insertion and carry a unique index. The password field holds a
// bcrypt hash and is never serialized into API responses; the json
// "-" tag guarantees it cannot leak through any response envelope.
//
// Fields:
//  ID        – ObjectID primary key.
//  Email     – unique, lowercase email address.
//  Password  – bcrypt hash of the user's password.
//  Name      – display name shown in the UI.
//  CreatedAt – timestamp of creation.
//  UpdatedAt – timestamp of last update.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SanitizedUser is the projection of a User returned by the auth
// endpoints. It intentionally contains only the fields the frontend
// needs and never the password hash.
type SanitizedUser struct {
	ID    primitive.ObjectID `json:"id"`
	Email string             `json:"email"`
	Name  string             `json:"name"`
}

// Sanitize returns the public view of the user.
func (u User) Sanitize() SanitizedUser {
	return SanitizedUser{ID: u.ID, Email: u.Email, Name: u.Name}
}
