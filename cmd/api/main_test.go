package main

import (
	"testing"
	"time"

	"github.com/ylyas2004/react-backend/internal/domain/storage"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"ADDR", "DB_DRIVER", "DB_MAX_OPEN_CONNS", "CACHE_TTL", "RATELIMITER_REQUESTS_COUNT", "RATE_LIMITER_ENABLED", "REDIS_ADDR"} {
		t.Setenv(key, "")
	}

	cfg := loadConfig()
	if cfg.addr != ":8080" {
		t.Errorf("addr = %q", cfg.addr)
	}
	if cfg.db.driver != storage.DriverPostgres {
		t.Errorf("driver = %q", cfg.db.driver)
	}
	if cfg.cache.redisAddr != "" {
		t.Errorf("redis addr = %q, want cache disabled", cfg.cache.redisAddr)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/v.db")
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("RATELIMITER_REQUESTS_COUNT", "50")
	t.Setenv("RATE_LIMITER_ENABLED", "true")

	cfg := loadConfig()
	if cfg.addr != ":9090" || cfg.db.driver != "sqlite" || cfg.db.sqlitePath != "/tmp/v.db" {
		t.Errorf("config = %+v", cfg)
	}
	if cfg.db.maxConns != 7 {
		t.Errorf("maxConns = %d", cfg.db.maxConns)
	}
	if cfg.cache.ttl != 90*time.Second || cfg.cache.redisAddr != "localhost:6379" {
		t.Errorf("cache = %+v", cfg.cache)
	}
	if cfg.rateLimiter.RequestsPerTimeFrame != 50 || !cfg.rateLimiter.Enabled {
		t.Errorf("rate limiter = %+v", cfg.rateLimiter)
	}
}

func TestGetEnvFallbacks(t *testing.T) {
	t.Setenv("BAD_INT", "abc")
	t.Setenv("BAD_BOOL", "maybe")
	t.Setenv("BAD_DURATION", "soon")

	if got := getEnvInt("BAD_INT", 3); got != 3 {
		t.Errorf("getEnvInt = %d", got)
	}
	if got := getEnvBool("BAD_BOOL", true); !got {
		t.Errorf("getEnvBool = %t", got)
	}
	if got := getEnvDuration("BAD_DURATION", time.Minute); got != time.Minute {
		t.Errorf("getEnvDuration = %v", got)
	}
	if got := getEnv("UNSET_FOR_TEST", "x"); got != "x" {
		t.Errorf("getEnv = %q", got)
	}
}
