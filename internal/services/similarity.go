package services

import (
	"fmt"
	"math"
)

// CosineSimilarity returns dot(a,b) / (‖a‖·‖b‖) in [-1, 1]. A zero-norm vector
// is a degenerate embedding and scores 0.0 instead of raising a division
// error, so one malformed text cannot abort a whole batch. The raw value is
// returned at full precision; turning it into a percentage is a display
// concern.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, fmt.Errorf("empty embedding vector: %w", ErrDimensionMismatch)
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("got %d and %d dimensions: %w", len(a), len(b), ErrDimensionMismatch)
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
