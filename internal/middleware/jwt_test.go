package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/movie-ticketing/internal/utils"
)

const jwtTestSecret = "unit-test-secret"

func runJWTAuth(t *testing.T, authorization string) (*httptest.ResponseRecorder, *Identity) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured *Identity
	handler := JWTAuth(jwtTestSecret)(func(c echo.Context) error {
		if id, ok := CurrentIdentity(c); ok {
			captured = &id
		}
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, captured
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	userID := primitive.NewObjectID()
	tok, err := utils.NewAuthToken(jwtTestSecret, userID.Hex(), "ana@example.com", 7)
	require.NoError(t, err)

	rec, id := runJWTAuth(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, id)
	assert.Equal(t, userID, id.UserID)
	assert.Equal(t, "ana@example.com", id.Email)
}

func TestJWTAuthMissingHeader(t *testing.T) {
	rec, id := runJWTAuth(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authentication required")
	assert.Nil(t, id)
}

func TestJWTAuthRejectsNonBearerScheme(t *testing.T) {
	rec, id := runJWTAuth(t, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authentication required")
	assert.Nil(t, id)
}

func TestJWTAuthRejectsTamperedToken(t *testing.T) {
	tok, err := utils.NewAuthToken("some-other-secret", primitive.NewObjectID().Hex(), "x@example.com", 7)
	require.NoError(t, err)

	rec, id := runJWTAuth(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
	assert.Nil(t, id)
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	tok, err := utils.NewAuthToken(jwtTestSecret, primitive.NewObjectID().Hex(), "x@example.com", -1)
	require.NoError(t, err)

	rec, id := runJWTAuth(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, id)
}

func TestJWTAuthRejectsMalformedUserIDClaim(t *testing.T) {
	tok, err := utils.NewAuthToken(jwtTestSecret, "not-an-object-id", "x@example.com", 7)
	require.NoError(t, err)

	rec, id := runJWTAuth(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, id)
}

func TestCurrentIdentityAbsent(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	_, ok := CurrentIdentity(c)
	assert.False(t, ok)
}
