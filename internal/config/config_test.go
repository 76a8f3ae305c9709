package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "text-embedding-004", cfg.Gemini.EmbedModel)
	assert.Equal(t, 10, cfg.Matching.MaxResults)
	assert.Equal(t, 40000, cfg.Matching.TextCharLimit)
	assert.Equal(t, 3, cfg.Summaries.Concurrency)
}

func TestMaxResultsClamping(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want int
	}{
		{"above product bound", "50", 10},
		{"below product bound", "1", 5},
		{"inside bound", "7", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MAX_RESULTS", tt.env)
			cfg := Load()
			assert.Equal(t, tt.want, cfg.Matching.MaxResults)
		})
	}
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "db",
			Port:     "5433",
			User:     "app",
			Password: "secret",
			DBName:   "resumes",
		},
	}

	assert.Equal(t,
		"host=db port=5433 user=app password=secret dbname=resumes sslmode=disable",
		cfg.GetDatabaseDSN())
}
