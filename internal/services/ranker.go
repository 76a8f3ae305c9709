package services

import (
	"fmt"
	"sort"

	"github.com/jagrut70/A-Candidate-Recommendation-Engine/internal/models"
)

type RankerService interface {
	Rank(jobEmbedding []float32, candidates []EmbeddedCandidate) ([]models.ScoredCandidate, error)
}

// EmbeddedCandidate is a candidate whose resume text has already been turned
// into a vector by the same model as the job description.
type EmbeddedCandidate struct {
	Candidate models.Candidate
	Embedding []float32
}

type rankerService struct {
	maxResults int
}

func NewRankerService(maxResults int) RankerService {
	return &rankerService{maxResults: maxResults}
}

// Rank implements RankerService. Scores every candidate against the job
// embedding, orders descending with a stable sort (equal scores keep input
// order, so identical inputs always produce identical output), truncates to
// the configured result bound and assigns 1-based ranks.
func (r *rankerService) Rank(jobEmbedding []float32, candidates []EmbeddedCandidate) ([]models.ScoredCandidate, error) {
	scored := make([]models.ScoredCandidate, 0, len(candidates))

	for _, ec := range candidates {
		score, err := CosineSimilarity(jobEmbedding, ec.Embedding)
		if err != nil {
			return nil, fmt.Errorf("failed to score candidate %s: %w", ec.Candidate.ID, err)
		}
		scored = append(scored, models.ScoredCandidate{
			Candidate: ec.Candidate,
			Score:     score,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if r.maxResults > 0 && len(scored) > r.maxResults {
		scored = scored[:r.maxResults]
	}

	for i := range scored {
		scored[i].Rank = i + 1
	}

	return scored, nil
}
