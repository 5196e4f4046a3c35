// Package router defines how HTTP routes are registered for the API.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/movie-ticketing/internal/config"
	"github.com/iliyamo/movie-ticketing/internal/handler"
	"github.com/iliyamo/movie-ticketing/internal/middleware"
)

// Deps bundles everything route registration needs. Handlers carry
// their own repositories; the Redis client powers the optional cache
// and rate-limit middlewares and may be nil.
type Deps struct {
	Cfg       config.Config
	Auth      *handler.AuthHandler
	Movies    *handler.MoviesHandler
	Details   *handler.MovieDetailsHandler
	Watchlist *handler.WatchlistHandler
	Redis     *redis.Client
}

// Register wires all routes onto the Echo instance.
//
//	GET  /health                      liveness probe
//	POST /api/auth/signup             create account
//	POST /api/auth/login              exchange credentials for a token
//	GET  /api/auth/profile            authenticated profile
//	POST /api/auth/logout             stateless logout
//	GET  /api/movies                  catalog with filters (cached)
//	GET  /api/movies/:id              movie + showtimes per theater (cached)
//	GET  /api/watchlist               saved movies, newest first
//	GET  /api/watchlist/count         raw entry count
//	POST /api/watchlist               save a movie
//	DELETE /api/watchlist/:movieId    remove a saved movie
func Register(e *echo.Echo, d Deps) {
	e.GET("/health", handler.Health)

	api := e.Group("/api")
	api.Use(middleware.RateLimit(config.LoadRateLimitConfig(), d.Redis))

	auth := api.Group("/auth")
	auth.POST("/signup", d.Auth.Signup)
	auth.POST("/login", d.Auth.Login)
	auth.GET("/profile", d.Auth.Profile, middleware.JWTAuth(d.Cfg.JWTSecret))
	auth.POST("/logout", d.Auth.Logout, middleware.JWTAuth(d.Cfg.JWTSecret))

	// Catalog routes are public and cacheable; the cache must never
	// wrap authenticated, per-user routes.
	movies := api.Group("/movies", middleware.ResponseCache(config.LoadCacheConfig(), d.Redis))
	movies.GET("", d.Movies.List)
	movies.GET("/:id", d.Details.GetByID)

	watchlist := api.Group("/watchlist", middleware.JWTAuth(d.Cfg.JWTSecret))
	watchlist.GET("", d.Watchlist.List)
	watchlist.GET("/count", d.Watchlist.Count)
	watchlist.POST("", d.Watchlist.Add)
	watchlist.DELETE("/:movieId", d.Watchlist.Remove)
}

// HTTPErrorHandler is the centralized handler for errors no route
// handled itself: routing misses, panics surfaced by the recover
// middleware, and anything a handler returned as a bare error. The
// message of unexpected errors is suppressed outside development.
func HTTPErrorHandler(env string) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if he, ok := err.(*echo.HTTPError); ok {
			msg, ok := he.Message.(string)
			if !ok {
				msg = http.StatusText(he.Code)
			}
			_ = c.JSON(he.Code, echo.Map{"success": false, "error": msg})
			return
		}
		msg := "Internal server error"
		if env == "development" {
			msg = err.Error()
		}
		_ = c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": msg})
	}
}
