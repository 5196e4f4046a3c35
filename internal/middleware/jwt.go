package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/movie-ticketing/internal/utils"
)

// identityKey is the context key under which JWTAuth stores the
// authenticated Identity.
const identityKey = "identity"

// Identity is the explicit authenticated-request context produced by
// JWTAuth. Handlers receive it through CurrentIdentity instead of
// fishing raw claims out of the request.
type Identity struct {
	UserID primitive.ObjectID
	Email  string
}

// JWTAuth returns an Echo middleware that validates a Bearer token and
// stores the caller's Identity in the request context. The provided
// secret must match the one used when issuing tokens. Requests with a
// missing, malformed, expired or otherwise invalid token are rejected
// with 401 before the handler runs.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false,
					"error":   "Authentication required",
				})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, err := utils.ParseAuthToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false,
					"error":   "Invalid or expired token",
				})
			}
			// The userId claim must be a well-formed ObjectID; a token
			// carrying anything else was not issued by this service.
			uid, err := primitive.ObjectIDFromHex(claims.UserID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false,
					"error":   "Invalid or expired token",
				})
			}

			c.Set(identityKey, Identity{UserID: uid, Email: claims.Email})
			return next(c)
		}
	}
}

// CurrentIdentity returns the Identity stored by JWTAuth. The second
// return is false on routes that never passed through the middleware.
func CurrentIdentity(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityKey).(Identity)
	return id, ok
}
