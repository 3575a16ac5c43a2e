package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config holds application configuration from env.
type Config struct {
	SourceFile   string  `validate:"required"`
	InOutputDir  string  `validate:"required"`
	OutOutputDir string  `validate:"required"`
	NPerm        int     `validate:"gte=0"`
	WindowBars   int     `validate:"gt=0"`
	PermuteRatio float64 `validate:"gt=0,lt=1"`
	Seed         *int64  // nil → time-seeded, non-reproducible run
	Workers      int     `validate:"gte=1"`
	SaveFormat   string  `validate:"oneof=csv parquet json"`
	LogLevel     string  // debug | info | warn | error
}

// LoadConfig reads config from environment.
func LoadConfig() *Config {
	cfg := &Config{
		SourceFile:   os.Getenv("SOURCE_FILE"),
		InOutputDir:  getEnv("IN_OUTPUT_DIR", "data/in_data_perm"),
		OutOutputDir: getEnv("OUT_OUTPUT_DIR", "data/out_data_perm"),
		NPerm:        getEnvInt("N_PERM", 50),
		WindowBars:   getEnvInt("WINDOW_BARS", 2000),
		PermuteRatio: getEnvFloat("PERMUTE_RATIO", 0.8),
		Workers:      getEnvInt("WORKERS", 4),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
	cfg.SaveFormat = getSaveFormat()
	if s := os.Getenv("SEED"); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			cfg.Seed = &v
		}
	}
	return cfg
}

// Validate checks field constraints before any computation starts.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// BaseName returns the source file name without extension, used to name
// every output file.
func (c *Config) BaseName() string {
	name := filepath.Base(c.SourceFile)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v
		}
	}
	return def
}

func getSaveFormat() string {
	if v := os.Getenv("SAVE_FORMAT"); v != "" {
		return v
	}
	switch os.Getenv("PROFILE") {
	case "dev", "development":
		return "csv"
	case "prod", "production", "":
		return "parquet"
	default:
		return "parquet"
	}
}
