package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Gemini  GeminiConfig
	Catalog CatalogConfig
	Storage StorageConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type CatalogConfig struct {
	BaseURL      string
	MaxRetries   int
	RetryBackoff time.Duration
	TrendingYear int
}

type StorageConfig struct {
	SQLitePath string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8080"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "nagare.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", ""),
		},
		Catalog: CatalogConfig{
			BaseURL:      getEnv("YTMUSIC_BASE_URL", "http://localhost:4000"),
			MaxRetries:   getEnvAsInt("YTMUSIC_MAX_RETRIES", 3),
			RetryBackoff: time.Duration(getEnvAsInt("YTMUSIC_RETRY_BACKOFF_MS", 500)) * time.Millisecond,
			TrendingYear: getEnvAsInt("TRENDING_YEAR", 2024),
		},
		Storage: StorageConfig{
			SQLitePath: getEnv("SQLITE_PATH", "nagare.db"),
		},
	}
}

// IsProduction reports whether the app runs with production logging.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
