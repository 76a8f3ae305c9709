package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Gemini    GeminiConfig
	Storage   StorageConfig
	Matching  MatchingConfig
	Summaries SummaryConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type GeminiConfig struct {
	APIKey string
	// EmbedModel is pinned: job and resume embeddings must come from the same
	// model version or the similarity scores are not comparable.
	EmbedModel string
	GenModel   string
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type MatchingConfig struct {
	// MaxResults is clamped to [5, 10].
	MaxResults int
	// TextCharLimit is the deterministic truncation cap applied to every text
	// before embedding, job description and resumes alike.
	TextCharLimit int
}

type SummaryConfig struct {
	Concurrency int
	Timeout     time.Duration
	MaxAttempts int
}

const (
	MinResults = 5
	MaxResults = 10
)

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "candidate_recommendation"),
		},
		Gemini: GeminiConfig{
			APIKey:     getEnv("GEMINI_API_KEY", ""),
			EmbedModel: getEnv("EMBEDDING_MODEL", "text-embedding-004"),
			GenModel:   getEnv("GENERATION_MODEL", "gemini-2.5-flash"),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Matching: MatchingConfig{
			MaxResults:    getEnvAsInt("MAX_RESULTS", 10),
			TextCharLimit: getEnvAsInt("TEXT_CHAR_LIMIT", 40000),
		},
		Summaries: SummaryConfig{
			Concurrency: getEnvAsInt("SUMMARY_CONCURRENCY", 3),
			Timeout:     getEnvAsDuration("SUMMARY_TIMEOUT", "30s"),
			MaxAttempts: getEnvAsInt("SUMMARY_MAX_ATTEMPTS", 2),
		},
	}

	cfg.Matching.MaxResults = clampResults(cfg.Matching.MaxResults)

	return cfg
}

// clampResults keeps the result bound inside the product requirement of
// returning between 5 and 10 recommendations.
func clampResults(n int) int {
	if n < MinResults {
		return MinResults
	}
	if n > MaxResults {
		return MaxResults
	}
	return n
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
