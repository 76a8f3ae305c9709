package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"
)

type GeminiService interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
	GenerateText(ctx context.Context, prompt string, temperature float32, maxTokens int32) (string, error)
	GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxTokens int32, maxAttempts int) (string, error)
}

type geminiService struct {
	client        *genai.Client
	embedModel    string
	genModel      string
	textCharLimit int
}

// NewGeminiService creates the Gemini client. The embedding model is pinned by
// configuration and reused for the lifetime of the process so job and resume
// vectors always come from the same model version.
func NewGeminiService(apiKey, embedModel, genModel string, textCharLimit int) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:        client,
		embedModel:    embedModel,
		genModel:      genModel,
		textCharLimit: textCharLimit,
	}, nil
}

// GenerateEmbedding implements GeminiService. The text is normalized and
// deterministically truncated before the call, so the same input always maps
// to the same vector. Any backend failure is fatal for the request: ranking
// without embeddings is impossible.
func (g *geminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	text = NormalizeText(text)
	if text == "" {
		return nil, fmt.Errorf("cannot embed empty text: %w", ErrInvalidInput)
	}
	text = TruncateText(text, g.textCharLimit)

	if g.client == nil {
		return nil, ErrModelUnavailable
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("%w: empty embedding result", ErrModelUnavailable)
	}

	return result.Embeddings[0].Values, nil
}

// GenerateText implements GeminiService.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, temperature float32, maxTokens int32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: maxTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.genModel, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}

// GenerateTextWithRetry implements GeminiService. Attempts are bounded and the
// loop bails out as soon as the context is cancelled.
func (g *geminiService) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxTokens int32, maxAttempts int) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err := g.GenerateText(ctx, prompt, temperature, maxTokens)
		if err == nil {
			return result, nil
		}

		lastErr = err

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		if attempt < maxAttempts {
			log.Printf("⚠️  Attempt %d failed: %v. Retrying...\n", attempt, err)
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", maxAttempts, lastErr)
}
