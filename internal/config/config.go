package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values. The struct is built
// once in main and passed by reference to the components that need it;
// nothing reads environment variables ad hoc after startup.
type Config struct {
	Env         string // application environment ("development" or "production")
	Port        string // HTTP port to listen on
	MongoURI    string // MongoDB connection string
	MongoDBName string // database name within the MongoDB deployment
	JWTSecret   string // secret used to sign bearer tokens
	CORSOrigin  string // frontend origin allowed by CORS
	BcryptCost  int    // bcrypt cost for password hashing
	TokenTTLDay int    // bearer token time-to-live in days
}

// Load reads configuration from environment variables and returns a
// Config. Every value has a documented default except JWT_SECRET,
// which has no safe default: in production posture a missing secret
// aborts startup, in development a throwaway value is substituted with
// a loud warning so local runs still work.
//
//	APP_ENV        development | production    (default development)
//	PORT           HTTP listen port            (default 5000)
//	MONGODB_URI    store connection string     (default mongodb://localhost:27017)
//	MONGODB_DB     database name               (default movie_ticketing)
//	JWT_SECRET     token signing secret        (required in production)
//	FRONTEND_URL   CORS-allowed origin         (default http://localhost:3000)
//	BCRYPT_COST    password hash cost          (default 10)
//	TOKEN_TTL_DAYS bearer token lifetime       (default 7)
func Load() Config {
	cfg := Config{
		Env:         getenv("APP_ENV", "development"),
		Port:        getenv("PORT", "5000"),
		MongoURI:    getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDBName: getenv("MONGODB_DB", "movie_ticketing"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		CORSOrigin:  getenv("FRONTEND_URL", "http://localhost:3000"),
		BcryptCost:  getenvInt("BCRYPT_COST", 10),
		TokenTTLDay: getenvInt("TOKEN_TTL_DAYS", 7),
	}
	if cfg.JWTSecret == "" {
		if cfg.Env == "production" {
			log.Fatal("missing required env var: JWT_SECRET")
		}
		log.Println("WARNING: JWT_SECRET not set, using an insecure development secret")
		cfg.JWTSecret = "dev-only-insecure-secret"
	}
	if cfg.BcryptCost < 10 {
		// lower costs are only acceptable inside tests
		cfg.BcryptCost = 10
	}
	return cfg
}

// getenv retrieves an environment variable or returns the default when
// it is unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getenvInt is like getenv but converts the value to an integer. A
// malformed value falls back to the default rather than aborting.
func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid int for %s: %q, using default %d", key, v, def)
		return def
	}
	return n
}
