package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const defaultGroqModel = "llama-3.1-8b-instant"

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// groqClient talks to an OpenAI-compatible chat completions endpoint.
type groqClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewGroqClient(baseURL, apiKey, model string, timeout time.Duration) GenerationClient {
	if model == "" {
		model = defaultGroqModel
	}

	return &groqClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Generate implements GenerationClient.
func (g *groqClient) Generate(ctx context.Context, systemInstruction, userPrompt string, temperature float32) (string, error) {
	reqBody := chatCompletionRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: userPrompt},
		},
		Temperature: temperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("❌ Groq API error: %v", err)
		return "", fmt.Errorf("%w: groq request failed: %w", ErrGeneration, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read groq response: %w", ErrGeneration, err)
	}

	var result chatCompletionResponse
	decodeErr := json.Unmarshal(body, &result)

	if resp.StatusCode != http.StatusOK {
		if decodeErr == nil && result.Error != nil {
			return "", fmt.Errorf("%w: groq returned status %d: %s", ErrGeneration, resp.StatusCode, result.Error.Message)
		}
		return "", fmt.Errorf("%w: groq returned status %d", ErrGeneration, resp.StatusCode)
	}

	if decodeErr != nil {
		return "", fmt.Errorf("%w: failed to decode groq response: %w", ErrGeneration, decodeErr)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: groq returned no choices", ErrGeneration)
	}

	text := strings.TrimSpace(result.Choices[0].Message.Content)
	log.Printf("📊 Groq response received: %d characters", len(text))
	return text, nil
}
