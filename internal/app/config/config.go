// Package config loads process-wide configuration once at startup.
// Request-handling code never reads the environment directly; everything it
// needs is injected through this struct.
package config

import (
	"errors"
	"os"
)

const (
	// EnvKeySecret is the environment variable holding the JWT signing secret.
	EnvKeySecret = "BLINKY_SECRET_KEY"

	defaultAddr       = ":8080"
	defaultSQLitePath = "blinky.db"
)

// Config carries all externally supplied settings for the server process.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string

	// DatabaseDSN is a PostgreSQL connection string. When empty the server
	// falls back to a local SQLite file (SQLitePath).
	DatabaseDSN string

	// SQLitePath is the SQLite database file used when DatabaseDSN is empty.
	SQLitePath string

	// JWTSecret signs and verifies access tokens. The process refuses to
	// start without it.
	JWTSecret string

	// RedisAddr is the host:port of the Redis instance backing the login
	// rate limiter. Empty disables rate limiting.
	RedisAddr string

	// RedisPassword is the Redis AUTH password, if any.
	RedisPassword string

	// AllowedOrigins is the CORS allow-list for the browser frontend.
	AllowedOrigins []string
}

// Load builds a Config from environment variables.
// It returns an error when the JWT secret is absent so that main can fail
// fast instead of serving tokens signed with an empty key.
func Load() (*Config, error) {
	secret := os.Getenv(EnvKeySecret)
	if secret == "" {
		return nil, errors.New("BLINKY_SECRET_KEY is not set")
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = defaultAddr
	}

	sqlitePath := os.Getenv("SQLITE_PATH")
	if sqlitePath == "" {
		sqlitePath = defaultSQLitePath
	}

	var redisAddr string
	if host := os.Getenv("REDIS_HOST"); host != "" {
		redisAddr = host + ":" + os.Getenv("REDIS_PORT")
	}

	return &Config{
		Addr:          addr,
		DatabaseDSN:   os.Getenv("DATABASE_URL"),
		SQLitePath:    sqlitePath,
		JWTSecret:     secret,
		RedisAddr:     redisAddr,
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		AllowedOrigins: []string{
			"http://localhost",
			"http://127.0.0.1",
			"https://neswanths.github.io",
		},
	}, nil
}
