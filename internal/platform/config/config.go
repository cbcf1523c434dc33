package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Store backends selectable through STORE_BACKEND.
const (
	StoreMemory   = "memory"
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
)

// Lock backends selectable through LOCK_BACKEND.
const (
	LockLocal = "local"
	LockRedis = "redis"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	StoreBackend   string
	MongoURI       string
	MongoDatabase  string
	DatabaseURL    string
	EnableDBCheck  bool
	RunMigrations  bool
	MigrationsPath string

	LockBackend   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	LockTTL       time.Duration

	// AppendMaxAttempts bounds how often an append re-reads the wallet after a version conflict.
	AppendMaxAttempts int

	DoctorCommissionRate   decimal.Decimal
	PharmacyCommissionRate decimal.Decimal
	DefaultPharmacyID      string

	RateLimit        string
	CORSAllowOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORE_BACKEND", StoreMemory)
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "healthconnect")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RUN_MIGRATIONS", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("LOCK_BACKEND", LockLocal)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("LOCK_TTL", "10s")
	viper.SetDefault("APPEND_MAX_ATTEMPTS", 3)
	viper.SetDefault("DOCTOR_COMMISSION_RATE", "0.20")
	viper.SetDefault("PHARMACY_COMMISSION_RATE", "0.10")
	viper.SetDefault("DEFAULT_PHARMACY_ID", "pharmacy_001")
	viper.SetDefault("RATE_LIMIT", "600-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:              viper.GetString("PORT"),
		IsProduction:      viper.GetBool("IS_PRODUCTION"),
		StoreBackend:      strings.ToLower(viper.GetString("STORE_BACKEND")),
		MongoURI:          viper.GetString("MONGO_URI"),
		MongoDatabase:     viper.GetString("MONGO_DATABASE"),
		DatabaseURL:       viper.GetString("PGSQL_URL"),
		EnableDBCheck:     viper.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:     viper.GetBool("RUN_MIGRATIONS"),
		MigrationsPath:    viper.GetString("MIGRATIONS_PATH"),
		LockBackend:       strings.ToLower(viper.GetString("LOCK_BACKEND")),
		RedisAddr:         viper.GetString("REDIS_ADDR"),
		RedisPassword:     viper.GetString("REDIS_PASSWORD"),
		RedisDB:           viper.GetInt("REDIS_DB"),
		AppendMaxAttempts: viper.GetInt("APPEND_MAX_ATTEMPTS"),
		DefaultPharmacyID: viper.GetString("DEFAULT_PHARMACY_ID"),
		RateLimit:         viper.GetString("RATE_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StoreBackend {
	case StoreMemory:
	case StoreMongo:
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("MONGO_URI must be set when STORE_BACKEND=%s", StoreMongo)
		}
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL must be set when STORE_BACKEND=%s", StorePostgres)
		}
	default:
		return nil, fmt.Errorf("unsupported STORE_BACKEND %q", cfg.StoreBackend)
	}

	switch cfg.LockBackend {
	case LockLocal, LockRedis:
	default:
		return nil, fmt.Errorf("unsupported LOCK_BACKEND %q", cfg.LockBackend)
	}

	lockTTLStr := viper.GetString("LOCK_TTL")
	lockTTL, err := time.ParseDuration(lockTTLStr)
	if err != nil || lockTTL <= 0 {
		lockTTL = 10 * time.Second
		log.Printf("Warning: Invalid value for LOCK_TTL ('%s'). Defaulting to %s.\n", lockTTLStr, lockTTL.String())
	}
	cfg.LockTTL = lockTTL

	if cfg.AppendMaxAttempts < 1 {
		log.Printf("Warning: APPEND_MAX_ATTEMPTS must be at least 1, got %d. Defaulting to 3.\n", cfg.AppendMaxAttempts)
		cfg.AppendMaxAttempts = 3
	}

	if cfg.DoctorCommissionRate, err = parseRate("DOCTOR_COMMISSION_RATE"); err != nil {
		return nil, err
	}
	if cfg.PharmacyCommissionRate, err = parseRate("PHARMACY_COMMISSION_RATE"); err != nil {
		return nil, err
	}

	if cfg.DefaultPharmacyID == "" {
		return nil, fmt.Errorf("DEFAULT_PHARMACY_ID cannot be empty")
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOW_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, origin)
		}
	}

	return cfg, nil
}

// parseRate reads a commission rate in [0, 1).
func parseRate(key string) (decimal.Decimal, error) {
	raw := viper.GetString(key)
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return decimal.Zero, fmt.Errorf("%s must be within [0, 1), got %s", key, rate.String())
	}
	return rate, nil
}
