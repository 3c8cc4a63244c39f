package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr  string
	Auth  Auth
	Redis Redis
}

// Auth holds the secrets the authenticator is constructed with. Salts are
// injected here instead of living as package constants so deployments can
// rotate them.
type Auth struct {
	Salt       string
	AdminSalt  string
	AdminLogin string
}

// Redis configures the store backing. An empty URL means redis is not
// configured and the in-memory store is used instead.
type Redis struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// ScoreCacheTTL bounds how long a computed score stays valid in the cache.
var ScoreCacheTTL = 60 * time.Minute

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("SCORING_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	salt := os.Getenv("SCORING_SALT")
	if salt == "" {
		// Development default - must be overridden in production
		salt = "Otus"
	}
	adminSalt := os.Getenv("SCORING_ADMIN_SALT")
	if adminSalt == "" {
		adminSalt = "42"
	}
	adminLogin := os.Getenv("SCORING_ADMIN_LOGIN")
	if adminLogin == "" {
		adminLogin = "admin"
	}

	return Server{
		Addr: addr,
		Auth: Auth{
			Salt:       salt,
			AdminSalt:  adminSalt,
			AdminLogin: adminLogin,
		},
		Redis: Redis{
			URL:          os.Getenv("SCORING_REDIS_URL"),
			PoolSize:     envInt("SCORING_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("SCORING_REDIS_MIN_IDLE", 2),
			DialTimeout:  envDuration("SCORING_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("SCORING_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("SCORING_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
	}
}

func envInt(key string, def int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if raw := os.Getenv(key); raw != "" {
		if v, err := time.ParseDuration(raw); err == nil {
			return v
		}
	}
	return def
}
