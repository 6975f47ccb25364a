package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"nobel-stats/utils"
)

const (
	SourceFile     = "file"
	SourceHTTP     = "http"
	SourceMongo    = "mongo"
	SourcePostgres = "postgres"
)

type Config struct {
	AppEnv           string        `validate:"oneof=development production test"`
	Port             string        `validate:"required,numeric"`
	LogLevel         string        `validate:"oneof=debug info warn error"`
	DataSource       string        `validate:"oneof=file http mongo postgres"`
	PrizeLocation    string        `validate:"required"`
	LaureateLocation string        `validate:"required"`
	MongoURI         string        `validate:"required_if=DataSource mongo"`
	MongoDatabase    string        `validate:"required_if=DataSource mongo"`
	PostgresDSN      string        `validate:"required_if=DataSource postgres"`
	TopN             int           `validate:"min=1,max=50"`
	LoadTimeout      time.Duration
	ShutdownTimeout  time.Duration
}

// LoadEnv loads .env files into the process environment. A missing file is
// not an error; values already set in the environment win.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

// Load reads the configuration from the environment after loading .env.
func Load() (*Config, error) {
	if err := LoadEnv(); err != nil {
		return nil, err
	}

	topN, err := strconv.Atoi(getEnv("TOP_N", "5"))
	if err != nil {
		return nil, fmt.Errorf("TOP_N: %w", err)
	}
	loadTimeout, err := time.ParseDuration(getEnv("LOAD_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("LOAD_TIMEOUT: %w", err)
	}
	shutdownTimeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}

	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "production"),
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DataSource:       getEnv("DATA_SOURCE", SourceFile),
		PrizeLocation:    getEnv("PRIZE_LOCATION", "data/prize.json"),
		LaureateLocation: getEnv("LAUREATE_LOCATION", "data/laureate.json"),
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDatabase:    getEnv("MONGO_DATABASE", "nobel"),
		PostgresDSN:      os.Getenv("POSTGRES_DSN"),
		TopN:             topN,
		LoadTimeout:      loadTimeout,
		ShutdownTimeout:  shutdownTimeout,
	}

	if err := utils.ValidateStruct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
