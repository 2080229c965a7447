package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/hiring-portal/internal/config"
)

func TestGroqClient_Generate(t *testing.T) {
	var got chatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  SELECT * FROM jobs  "}}]}`))
	}))
	defer server.Close()

	client := NewGroqClient(server.URL+"/", "test-key", "", 5*time.Second)

	text, err := client.Generate(context.Background(), "system", "user", 0.1)
	require.NoError(t, err)

	assert.Equal(t, "SELECT * FROM jobs", text)
	assert.Equal(t, defaultGroqModel, got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, chatMessage{Role: "system", Content: "system"}, got.Messages[0])
	assert.Equal(t, chatMessage{Role: "user", Content: "user"}, got.Messages[1])
	assert.InDelta(t, 0.1, got.Temperature, 0.0001)
}

func TestGroqClient_GenerateErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		errContains string
	}{
		{name: "provider error", status: http.StatusUnauthorized, body: `{"error":{"message":"invalid api key","type":"auth"}}`, errContains: "invalid api key"},
		{name: "non json failure", status: http.StatusBadGateway, body: `upstream down`, errContains: "status 502"},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`, errContains: "no choices"},
		{name: "malformed body", status: http.StatusOK, body: `{"choices":`, errContains: "decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewGroqClient(server.URL, "key", "llama", time.Second)

			_, err := client.Generate(context.Background(), "s", "u", 0.1)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrGeneration))
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestGroqClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewGroqClient(url, "key", "", time.Second)

	_, err := client.Generate(context.Background(), "s", "u", 0.1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGeneration))
}

func TestNewGenerationClient(t *testing.T) {
	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewGenerationClient(context.Background(), config.LLMConfig{Provider: "openai", GroqAPIKey: "k"})
		assert.Error(t, err)
	})

	t.Run("missing key disables generation", func(t *testing.T) {
		client, err := NewGenerationClient(context.Background(), config.LLMConfig{Provider: config.ProviderGroq})
		require.NoError(t, err)
		assert.Nil(t, client)
	})

	t.Run("groq with key", func(t *testing.T) {
		client, err := NewGenerationClient(context.Background(), config.LLMConfig{
			Provider:    config.ProviderGroq,
			GroqAPIKey:  "k",
			GroqBaseURL: "http://localhost",
		})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}
