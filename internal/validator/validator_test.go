package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsObjectID(t *testing.T) {
	assert.True(t, IsObjectID("507f1f77bcf86cd799439011"))
	assert.True(t, IsObjectID("ABCDEF0123456789abcdef01"))

	assert.False(t, IsObjectID(""))
	assert.False(t, IsObjectID("507f1f77bcf86cd79943901"))   // 23 chars
	assert.False(t, IsObjectID("507f1f77bcf86cd7994390111")) // 25 chars
	assert.False(t, IsObjectID("507f1f77bcf86cd79943901g"))  // non-hex
}

func TestDetailsUsesJSONFieldNames(t *testing.T) {
	type req struct {
		Email   string `json:"email" validate:"required,email"`
		MovieID string `json:"movieId" validate:"required,objectid"`
	}

	err := New().Validate(&req{Email: "nope", MovieID: "bad"})
	require.Error(t, err)

	details := Details(err)
	require.Len(t, details, 2)
	assert.Equal(t, "email", details[0].Field)
	assert.Equal(t, "Please provide a valid email address", details[0].Message)
	assert.Equal(t, "movieId", details[1].Field)
	assert.Equal(t, "Invalid movie ID format", details[1].Message)
}

func TestDetailsMinLengthMessage(t *testing.T) {
	type req struct {
		Password string `json:"password" validate:"required,min=6"`
	}

	err := New().Validate(&req{Password: "123"})
	require.Error(t, err)

	details := Details(err)
	require.Len(t, details, 1)
	assert.Equal(t, "password", details[0].Field)
	assert.Equal(t, "password must be at least 6 characters long", details[0].Message)
}

func TestDetailsUnknownError(t *testing.T) {
	details := Details(assert.AnError)
	require.Len(t, details, 1)
	assert.Equal(t, "Invalid request", details[0].Message)
}
