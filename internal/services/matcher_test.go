package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jagrut70/A-Candidate-Recommendation-Engine/internal/models"
)

func newTestMatcher(fake *fakeGemini, maxResults int) MatcherService {
	summarizer := NewSummarizerService(fake, NewSkillExtractor(), 2, time.Second, 1)
	return NewMatcherService(fake, NewRankerService(maxResults), summarizer)
}

func manualCandidate(id, name, resume string) models.Candidate {
	return models.Candidate{
		ID:         id,
		Name:       name,
		Source:     models.SourceManualEntry,
		ResumeText: resume,
	}
}

func TestMatchRejectsEmptyJobDescription(t *testing.T) {
	matcher := newTestMatcher(newFakeGemini(), 10)

	_, err := matcher.Match(context.Background(), "   \n\t ", []models.Candidate{
		manualCandidate("c1", "C1", "backend engineer"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMatchEmptyCandidateListSucceeds(t *testing.T) {
	matcher := newTestMatcher(newFakeGemini(), 10)

	resp, err := matcher.Match(context.Background(), "backend engineer", nil)
	require.NoError(t, err)

	assert.Empty(t, resp.Recommendations)
	assert.Equal(t, 0, resp.TotalCandidates)
}

func TestMatchAllCandidatesUnusableFails(t *testing.T) {
	matcher := newTestMatcher(newFakeGemini(), 10)

	_, err := matcher.Match(context.Background(), "backend engineer", []models.Candidate{
		manualCandidate("c1", "C1", ""),
		manualCandidate("c2", "C2", "   "),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMatchExcludesCandidatesWithEmptyResumes(t *testing.T) {
	matcher := newTestMatcher(newFakeGemini(), 10)

	resp, err := matcher.Match(context.Background(), "go backend", []models.Candidate{
		manualCandidate("c1", "C1", "go backend engineer"),
		manualCandidate("c2", "C2", ""),
	})
	require.NoError(t, err)

	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "c1", resp.Recommendations[0].ID)
	assert.Equal(t, 1, resp.TotalCandidates)
}

func TestMatchEmbeddingFailureAbortsRequest(t *testing.T) {
	fake := newFakeGemini()
	fake.embedErr = ErrModelUnavailable
	matcher := newTestMatcher(fake, 10)

	resp, err := matcher.Match(context.Background(), "backend engineer", []models.Candidate{
		manualCandidate("c1", "C1", "backend engineer"),
	})
	assert.ErrorIs(t, err, ErrModelUnavailable)
	assert.Nil(t, resp, "a hard failure must not return partial results")
}

func TestMatchBackendJobRanksBackendCandidateFirst(t *testing.T) {
	matcher := newTestMatcher(newFakeGemini(), 10)

	job := "Senior backend engineer, 5+ years, distributed systems, Go and Python"
	resp, err := matcher.Match(context.Background(), job, []models.Candidate{
		manualCandidate("c2", "Frontend", "Frontend developer with React, CSS and JavaScript"),
		manualCandidate("c3", "DataSci", "Data scientist, Python, statistics, machine learning"),
		manualCandidate("c1", "Backend", "Backend engineer, Go and Python, distributed systems at scale"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 3)

	assert.Equal(t, "c1", resp.Recommendations[0].ID)
	for i := 1; i < len(resp.Recommendations); i++ {
		assert.GreaterOrEqual(t,
			resp.Recommendations[i-1].SimilarityScore,
			resp.Recommendations[i].SimilarityScore)
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	matcher := newTestMatcher(newFakeGemini(), 10)

	job := "Senior backend engineer, distributed systems, Go"
	candidates := []models.Candidate{
		manualCandidate("c1", "A", "go backend distributed systems"),
		manualCandidate("c2", "B", "python data statistics"),
		manualCandidate("c3", "C", "react css javascript"),
	}

	first, err := matcher.Match(context.Background(), job, candidates)
	require.NoError(t, err)
	second, err := matcher.Match(context.Background(), job, candidates)
	require.NoError(t, err)

	require.Len(t, second.Recommendations, len(first.Recommendations))
	for i := range first.Recommendations {
		assert.Equal(t, first.Recommendations[i].ID, second.Recommendations[i].ID)
		assert.Equal(t, first.Recommendations[i].SimilarityScore, second.Recommendations[i].SimilarityScore)
	}
}

func TestMatchSummaryFailureKeepsCandidateRanked(t *testing.T) {
	fake := newFakeGemini()
	// Fail generation only for the prompt containing this resume.
	fake.summaryFailOn = []string{"FLAKY-RESUME-MARKER"}
	matcher := newTestMatcher(fake, 10)

	resp, err := matcher.Match(context.Background(), "go backend engineer", []models.Candidate{
		manualCandidate("c1", "Solid", "go backend engineer"),
		manualCandidate("c2", "Flaky", "go backend FLAKY-RESUME-MARKER"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 2)

	var flaky, solid *models.Recommendation
	for i := range resp.Recommendations {
		switch resp.Recommendations[i].ID {
		case "c1":
			solid = &resp.Recommendations[i]
		case "c2":
			flaky = &resp.Recommendations[i]
		}
	}
	require.NotNil(t, flaky, "failed summary must not drop the candidate")
	require.NotNil(t, solid)

	assert.Equal(t, UnavailableSummary(flaky.SimilarityScore), flaky.AISummary)
	assert.NotContains(t, solid.AISummary, "unavailable", "sibling summaries are unaffected")
}

func TestMatchDegenerateResumeScoresZero(t *testing.T) {
	matcher := newTestMatcher(newFakeGemini(), 10)

	// No vocabulary overlap at all produces a zero vector in the fake model.
	resp, err := matcher.Match(context.Background(), "go backend", []models.Candidate{
		manualCandidate("c1", "Match", "go backend"),
		manualCandidate("c2", "Unrelated", "floristry and gardening"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 2)

	assert.Equal(t, "c2", resp.Recommendations[1].ID)
	assert.Equal(t, 0.0, resp.Recommendations[1].SimilarityScore)
}

func TestMatchTruncatesToConfiguredLimit(t *testing.T) {
	matcher := newTestMatcher(newFakeGemini(), 5)

	var candidates []models.Candidate
	resumes := []string{
		"go backend distributed",
		"go backend",
		"go",
		"python data",
		"python",
		"react css",
		"javascript",
	}
	for i, resume := range resumes {
		candidates = append(candidates, manualCandidate(
			string(rune('a'+i)), "Candidate", resume))
	}

	resp, err := matcher.Match(context.Background(), "go backend distributed python", candidates)
	require.NoError(t, err)

	assert.Len(t, resp.Recommendations, 5)
	assert.Equal(t, len(resumes), resp.TotalCandidates)
}
