package config

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port             string
	BindAddress      string
	DBDriver         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	SQLitePath       string
	AutoMigrate      bool
	RedisHost        string
	RedisPort        string
	RedisPassword    string
	RedisDB          int
	CategoryCacheTTL time.Duration
	LogLevel         slog.Level
	GinMode          string
}

// Load reads the configuration from the environment. Values from a .env
// file in the working directory are applied first; real environment
// variables win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		BindAddress:   getEnv("BIND_ADDRESS", ""),
		DBDriver:      strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "trivia"),
		DBPassword:    getEnv("DB_PASSWORD", "trivia"),
		DBName:        getEnv("DB_NAME", "trivia"),
		SQLitePath:    getEnv("SQLITE_PATH", "trivia.db"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		GinMode:       getEnv("GIN_MODE", "release"),
	}

	var err error
	if cfg.AutoMigrate, err = strconv.ParseBool(getEnv("AUTO_MIGRATE", "true")); err != nil {
		return nil, fmt.Errorf("invalid AUTO_MIGRATE: %w", err)
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	if cfg.CategoryCacheTTL, err = time.ParseDuration(getEnv("CATEGORY_CACHE_TTL", "5m")); err != nil {
		return nil, fmt.Errorf("invalid CATEGORY_CACHE_TTL: %w", err)
	}
	if err = cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return nil, fmt.Errorf("invalid GIN_MODE %q", cfg.GinMode)
	}
	if cfg.DBDriver != DriverPostgres && cfg.DBDriver != DriverSQLite {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.BindAddress + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.DBDriver == DriverSQLite {
		// sqlite serializes writers; an in-memory database also lives on a
		// single connection only.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql handle: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// InitRedis returns nil when the category cache is disabled.
func InitRedis(cfg *Config) *redis.Client {
	if cfg.RedisHost == "" || cfg.CategoryCacheTTL <= 0 {
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

func NewLogger(cfg *Config) *slog.Logger {
	return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      cfg.LogLevel,
		AddSource:  true,
		TimeFormat: time.DateTime,
	}))
}
