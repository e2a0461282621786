package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Supported key-value drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverLayered  = "layered"
)

// API configuration struct.
type APIConfiguration struct {
	Port          string
	GRPCPort      string
	BasePath      string
	StatsCacheTTL time.Duration
	LogToStdout   bool
}

// Key-value store configuration struct.
type KVConfiguration struct {
	Driver string
}

// Database configuration struct.
type DatabaseConfiguration struct {
	DSN            string
	Database       string
	MigrationsPath string
}

// Redis configuration struct.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// Bucket configuration for the log uploads.
type BucketConfiguration struct {
	Region       string
	Endpoint     string
	AccessKey    string
	AccessSecret string
	LogBucket    string
}

// Client configuration used by the console SDK.
type ClientConfiguration struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Config is the full configuration of every binary.
type Config struct {
	Environment string
	API         APIConfiguration
	KV          KVConfiguration
	Database    DatabaseConfiguration
	Redis       RedisConfiguration
	Bucket      BucketConfiguration
	Client      ClientConfiguration
}

// Load the variables.
// The .env file is only read outside of docker, and a missing file is not an error.
func Load() (*Config, error) {
	environment := os.Getenv("ENVIRONMENT")
	if environment != "docker" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	statsTTL, err := getDuration("STATS_CACHE_TTL", 0)
	if err != nil {
		return nil, err
	}

	clientTimeout, err := getDuration("CLIENT_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Environment: environment,
		API: APIConfiguration{
			Port:          getEnv("API_PORT", "8080"),
			GRPCPort:      getEnv("GRPC_PORT", "50051"),
			BasePath:      os.Getenv("API_BASE_PATH"),
			StatsCacheTTL: statsTTL,
			LogToStdout:   getEnv("LOG_STDOUT", "true") == "true",
		},
		KV: KVConfiguration{
			Driver: getEnv("KV_DRIVER", DriverMemory),
		},
		Database: DatabaseConfiguration{
			DSN:            os.Getenv("DATABASE_DSN"),
			Database:       getEnv("POSTGRES_DB", "fitconsole"),
			MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
		},
		Redis: RedisConfiguration{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Bucket: BucketConfiguration{
			Region:       os.Getenv("BUCKET_REGION"),
			Endpoint:     os.Getenv("BUCKET_ENDPOINT"),
			AccessKey:    os.Getenv("BUCKET_ACCESS_KEY"),
			AccessSecret: os.Getenv("BUCKET_ACCESS_SECRET"),
			LogBucket:    os.Getenv("BUCKET_LOG_BUCKET"),
		},
		Client: ClientConfiguration{
			BaseURL: getEnv("CONSOLE_API_URL", "http://localhost:8080"),
			Token:   os.Getenv("CONSOLE_API_TOKEN"),
			Timeout: clientTimeout,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// BucketEnabled reports whether the log bucket is configured.
func (c *Config) BucketEnabled() bool {
	return c.Bucket.LogBucket != "" && c.Bucket.Endpoint != ""
}

// RequireSharedStore fails for drivers whose data lives in the process.
// Binaries writing for the api, like the scheduler and the seeder, need it.
func (c *Config) RequireSharedStore() error {
	if c.KV.Driver == DriverMemory {
		return fmt.Errorf("KV_DRIVER %q isn't shared with the api, use %s, %s or %s", c.KV.Driver, DriverPostgres, DriverRedis, DriverLayered)
	}
	return nil
}

// validate checks the values that can't be defaulted.
func (c *Config) validate() error {
	switch c.KV.Driver {
	case DriverMemory, DriverRedis:
	case DriverPostgres, DriverLayered:
		if c.Database.DSN == "" {
			return fmt.Errorf("DATABASE_DSN is required for the %s driver", c.KV.Driver)
		}
	default:
		return fmt.Errorf("unknown KV_DRIVER %q", c.KV.Driver)
	}

	for name, port := range map[string]string{"API_PORT": c.API.Port, "GRPC_PORT": c.API.GRPCPort} {
		if _, err := strconv.Atoi(port); err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, port, err)
		}
	}

	if c.API.StatsCacheTTL < 0 {
		return fmt.Errorf("STATS_CACHE_TTL can't be negative")
	}

	return nil
}

// getEnv returns the variable or the fallback when empty.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getDuration parses a duration variable.
func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}
