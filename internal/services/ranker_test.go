package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jagrut70/A-Candidate-Recommendation-Engine/internal/models"
)

func embeddedCandidate(id string, vec ...float32) EmbeddedCandidate {
	return EmbeddedCandidate{
		Candidate: models.Candidate{ID: id, Name: id, Source: models.SourceManualEntry, ResumeText: id},
		Embedding: vec,
	}
}

func TestRankOrdersByScoreDescending(t *testing.T) {
	ranker := NewRankerService(10)
	job := []float32{1, 0}

	ranked, err := ranker.Rank(job, []EmbeddedCandidate{
		embeddedCandidate("low", 0, 1),
		embeddedCandidate("high", 1, 0),
		embeddedCandidate("mid", 1, 1),
	})
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "high", ranked[0].Candidate.ID)
	assert.Equal(t, "mid", ranked[1].Candidate.ID)
	assert.Equal(t, "low", ranked[2].Candidate.ID)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRankAssignsOneBasedRanks(t *testing.T) {
	ranker := NewRankerService(10)

	ranked, err := ranker.Rank([]float32{1, 0}, []EmbeddedCandidate{
		embeddedCandidate("a", 1, 0),
		embeddedCandidate("b", 0, 1),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 2, ranked[1].Rank)
}

func TestRankTiesPreserveInputOrder(t *testing.T) {
	ranker := NewRankerService(10)
	job := []float32{1, 0}

	// Every candidate scores exactly 1.0 against the job vector.
	candidates := []EmbeddedCandidate{
		embeddedCandidate("first", 2, 0),
		embeddedCandidate("second", 5, 0),
		embeddedCandidate("third", 1, 0),
	}

	ranked, err := ranker.Rank(job, candidates)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "first", ranked[0].Candidate.ID)
	assert.Equal(t, "second", ranked[1].Candidate.ID)
	assert.Equal(t, "third", ranked[2].Candidate.ID)
}

func TestRankTruncatesToMaxResults(t *testing.T) {
	ranker := NewRankerService(5)
	job := []float32{1, 0}

	var candidates []EmbeddedCandidate
	for i := 0; i < 8; i++ {
		// Increasing second component lowers similarity to the job vector, so
		// earlier candidates are the strongest.
		candidates = append(candidates, embeddedCandidate(fmt.Sprintf("c%d", i), 1, float32(i)))
	}

	ranked, err := ranker.Rank(job, candidates)
	require.NoError(t, err)
	require.Len(t, ranked, 5)

	// The five highest-scoring candidates survive truncation.
	for i := 0; i < 5; i++ {
		assert.Equal(t, fmt.Sprintf("c%d", i), ranked[i].Candidate.ID)
		assert.Equal(t, i+1, ranked[i].Rank)
	}
}

func TestRankFewerCandidatesThanLimit(t *testing.T) {
	ranker := NewRankerService(10)

	ranked, err := ranker.Rank([]float32{1}, []EmbeddedCandidate{
		embeddedCandidate("only", 1),
	})
	require.NoError(t, err)
	assert.Len(t, ranked, 1)
}

func TestRankEmptyCandidateList(t *testing.T) {
	ranker := NewRankerService(10)

	ranked, err := ranker.Rank([]float32{1, 0}, nil)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRankDegenerateEmbeddingScoresZero(t *testing.T) {
	ranker := NewRankerService(10)

	ranked, err := ranker.Rank([]float32{1, 0}, []EmbeddedCandidate{
		embeddedCandidate("normal", 1, 0),
		embeddedCandidate("degenerate", 0, 0),
	})
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, "degenerate", ranked[1].Candidate.ID)
	assert.Equal(t, 0.0, ranked[1].Score)
}

func TestRankDimensionMismatchFails(t *testing.T) {
	ranker := NewRankerService(10)

	_, err := ranker.Rank([]float32{1, 0}, []EmbeddedCandidate{
		embeddedCandidate("bad", 1, 0, 0),
	})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
