package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// fakeVocabulary spans the toy embedding space used by tests. Each dimension
// counts occurrences of one term, which makes embeddings pure functions of the
// input text.
var fakeVocabulary = []string{
	"go", "python", "distributed", "backend",
	"react", "css", "javascript",
	"data", "statistics", "machine",
}

// fakeGemini is a deterministic in-memory stand-in for the Gemini client.
type fakeGemini struct {
	mu sync.Mutex

	embedErr      error
	summaryFailOn []string
	callDelay     time.Duration

	inFlight    int
	maxInFlight int
	embedCalls  int
}

func newFakeGemini() *fakeGemini {
	return &fakeGemini{}
}

func (f *fakeGemini) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	f.mu.Lock()
	f.embedCalls++
	f.mu.Unlock()

	if f.embedErr != nil {
		return nil, f.embedErr
	}

	lower := strings.ToLower(text)
	vec := make([]float32, len(fakeVocabulary))
	for i, term := range fakeVocabulary {
		vec[i] = float32(strings.Count(lower, term))
	}
	return vec, nil
}

func (f *fakeGemini) GenerateText(ctx context.Context, prompt string, temperature float32, maxTokens int32) (string, error) {
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()

	if f.callDelay > 0 {
		select {
		case <-time.After(f.callDelay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	for _, marker := range f.summaryFailOn {
		if strings.Contains(prompt, marker) {
			return "", fmt.Errorf("simulated generation failure for %q", marker)
		}
	}

	return "Strong alignment between the candidate's experience and the role.", nil
}

func (f *fakeGemini) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxTokens int32, maxAttempts int) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err := f.GenerateText(ctx, prompt, temperature, maxTokens)
		if err == nil {
			return result, nil
		}
		lastErr = err
	}
	return "", lastErr
}
