package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticketing/internal/config"
	"github.com/iliyamo/movie-ticketing/internal/middleware"
	"github.com/iliyamo/movie-ticketing/internal/model"
	"github.com/iliyamo/movie-ticketing/internal/queue"
	"github.com/iliyamo/movie-ticketing/internal/repository"
	queue_publisher "github.com/iliyamo/movie-ticketing/internal/service"
	"github.com/iliyamo/movie-ticketing/internal/utils"
	"github.com/iliyamo/movie-ticketing/internal/validator"
)

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users repository.UserRepository
}

func NewAuthHandler(cfg config.Config, users repository.UserRepository) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

// ----- DTOs -----

type signupReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
}
type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResp struct {
	Token string              `json:"token"`
	User  model.SanitizedUser `json:"user"`
}

// Signup creates a user and returns a bearer token immediately. A
// taken email yields 400 with a duplicate-email message; the unique
// index guarantees at most one user per email even under concurrent
// signups.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, validator.Details(err))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "Failed to create user")
	}
	u, err := h.Users.Create(ctx, req.Email, hash, req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return respondError(c, http.StatusBadRequest, "User with this email already exists")
		}
		return respondError(c, http.StatusInternalServerError, "Failed to create user")
	}

	token, err := utils.NewAuthToken(h.Cfg.JWTSecret, u.ID.Hex(), u.Email, h.Cfg.TokenTTLDay)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "Failed to issue token")
	}

	// Fire-and-forget; a broker outage never fails a signup.
	go func() {
		_ = queue_publisher.PublishUserSignedUp(context.Background(), queue.UserSignedUpEvent{
			UserID:   u.ID.Hex(),
			Email:    u.Email,
			Name:     u.Name,
			SignedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}()

	return respondData(c, http.StatusCreated, authResp{Token: token.Token, User: u.Sanitize()})
}

// Login verifies credentials and returns a fresh token. Lookup and
// password failures share one message so the endpoint cannot be used
// to enumerate accounts.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, validator.Details(err))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return respondError(c, http.StatusUnauthorized, "Invalid email or password")
		}
		return respondError(c, http.StatusInternalServerError, "Login failed")
	}
	if !utils.VerifyPassword(u.Password, req.Password) {
		return respondError(c, http.StatusUnauthorized, "Invalid email or password")
	}

	token, err := utils.NewAuthToken(h.Cfg.JWTSecret, u.ID.Hex(), u.Email, h.Cfg.TokenTTLDay)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "Failed to issue token")
	}
	return respondData(c, http.StatusOK, authResp{Token: token.Token, User: u.Sanitize()})
}

// Profile returns the sanitized user for the authenticated caller.
func (h *AuthHandler) Profile(c echo.Context) error {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "Authentication required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return respondError(c, http.StatusNotFound, "User not found")
		}
		return respondError(c, http.StatusInternalServerError, "Failed to load profile")
	}
	return respondData(c, http.StatusOK, echo.Map{"user": u.Sanitize()})
}

// Logout always succeeds: tokens are stateless, so discarding the
// token client-side is the whole operation.
func (h *AuthHandler) Logout(c echo.Context) error {
	return respondData(c, http.StatusOK, echo.Map{"message": "Logged out successfully"})
}
