package config

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "LLM_PROVIDER", "LLM_TIMEOUT", "QUERY_EXECUTE_FUNCTION", "MAX_FILE_SIZE"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, ProviderGroq, cfg.LLM.Provider)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "execute_sql", cfg.Query.ExecuteFunction)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", ProviderGemini)
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("MAX_FILE_SIZE", "not-a-number")

	cfg := Load()

	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "g-key", cfg.LLM.APIKey())
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
}

func TestLLMConfig_APIKey(t *testing.T) {
	tests := []struct {
		name     string
		cfg      LLMConfig
		expected string
	}{
		{name: "groq", cfg: LLMConfig{Provider: ProviderGroq, GroqAPIKey: "k1", GeminiAPIKey: "k2"}, expected: "k1"},
		{name: "gemini", cfg: LLMConfig{Provider: ProviderGemini, GroqAPIKey: "k1", GeminiAPIKey: "k2"}, expected: "k2"},
		{name: "unknown provider", cfg: LLMConfig{Provider: "openai", GroqAPIKey: "k1"}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.APIKey())
		})
	}
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: "5433", User: "u", Password: "p", DBName: "portal", SSLMode: "require",
	}}

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=portal sslmode=require", cfg.GetDatabaseDSN())
}

func TestInitQueryPool_RejectsBadFunctionName(t *testing.T) {
	cfg := &Config{Query: QueryConfig{ExecuteFunction: "execute_sql; drop table jobs"}}

	pool, err := InitQueryPool(context.Background(), cfg)
	require.Error(t, err)
	assert.Nil(t, pool)
	assert.Contains(t, err.Error(), "invalid query function name")
}

func TestQueryFunctionSQL(t *testing.T) {
	stmt := fmt.Sprintf(queryFunctionSQL, "execute_sql")

	assert.Contains(t, stmt, "CREATE OR REPLACE FUNCTION execute_sql(query text) RETURNS json")
	assert.Contains(t, stmt, "FROM (%s) t")
}
