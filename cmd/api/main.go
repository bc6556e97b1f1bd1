package main

import (
	"expvar"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/ylyas2004/react-backend/internal/domain/storage"
	"github.com/ylyas2004/react-backend/internal/ratelimiter"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	return ratelimiter.Config{
		RequestsPerTimeFrame: getEnvInt("RATELIMITER_REQUESTS_COUNT", 200),
		TimeFrame:            5 * time.Second,
		Enabled:              getEnvBool("RATE_LIMITER_ENABLED", false),
	}
}

func loadConfig() config {
	return config{
		addr:   getEnv("ADDR", ":8080"),
		env:    getEnv("ENV", "development"),
		apiURL: getEnv("EXTERNAL_URL", "localhost:8080"),
		db: dbConfig{
			driver:      getEnv("DB_DRIVER", storage.DriverPostgres),
			addr:        os.Getenv("DB_ADDR"),
			sqlitePath:  getEnv("SQLITE_PATH", "./data/venues.db"),
			maxConns:    int32(getEnvInt("DB_MAX_OPEN_CONNS", 30)),
			maxIdleTime: getEnv("DB_MAX_IDLE_TIME", "15m"),
		},
		cache: cacheConfig{
			redisAddr: os.Getenv("REDIS_ADDR"),
			ttl:       getEnvDuration("CACHE_TTL", 5*time.Minute),
		},
		auth: authConfig{
			basic: basicConfig{
				user: os.Getenv("AUTH_BASIC_USER"),
				pass: os.Getenv("AUTH_BASIC_PASS"),
			},
		},
		rateLimiter: LoadRateLimiterConfig(),
	}
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		fmt.Printf("Invalid %s, defaulting to %d\n", key, fallback)
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		fmt.Printf("Invalid %s, defaulting to %t\n", key, fallback)
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		fmt.Printf("Invalid %s, defaulting to %s\n", key, fallback)
		return fallback
	}
	return parsed
}

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	core := zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), zapcore.InfoLevel)

	return zap.New(core).Sugar(), nil
}

var version = "1.0.0"

//	@title			Venues API
//	@description	Venues with embedded opening hours and comments.

//	@license.name	MIT

//	@BasePath	/api

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded (%v), reading process environment", err)
	}

	cfg := loadConfig()

	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	store, err := storage.Open(storage.Config{
		Driver:      cfg.db.driver,
		Addr:        cfg.db.addr,
		SQLitePath:  cfg.db.sqlitePath,
		MaxConns:    cfg.db.maxConns,
		MaxIdleTime: cfg.db.maxIdleTime,
		RedisAddr:   cfg.cache.redisAddr,
		CacheTTL:    cfg.cache.ttl,
	}, logger)
	if err != nil {
		logger.Fatal(err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Errorw("closing storage", "error", err.Error())
		}
	}()

	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	app := &application{
		config:      cfg,
		logger:      logger,
		store:       store,
		rateLimiter: rateLimiter,
	}

	//Metrics collected http://localhost:8080/api/debug/vars
	expvar.NewString("version").Set(version)
	if store.Pool != nil {
		expvar.Publish("database", expvar.Func(func() any {
			s := store.Pool.Stat()
			return map[string]any{
				"total_conns":    s.TotalConns(),
				"idle_conns":     s.IdleConns(),
				"acquired_conns": s.AcquiredConns(),
				"max_conns":      s.MaxConns(),
			}
		}))
	}
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	if err := app.run(mux); err != nil {
		logger.Errorw("server error", "error", err.Error())
	}
}
