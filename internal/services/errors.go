package services

import "errors"

var (
	// ErrInvalidInput covers empty job descriptions and candidate sets with no
	// usable resume text. Surfaced before any pipeline work is done.
	ErrInvalidInput = errors.New("invalid input")

	// ErrModelUnavailable means the embedding backend cannot serve the request.
	// Fatal for the whole match: no ranking is possible without embeddings.
	ErrModelUnavailable = errors.New("embedding model unavailable")

	// ErrDimensionMismatch means two vectors from supposedly the same embedding
	// model disagree on dimensionality.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)
