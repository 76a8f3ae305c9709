package services

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/jagrut70/A-Candidate-Recommendation-Engine/internal/models"
)

type MatcherService interface {
	Match(ctx context.Context, jobDescription string, candidates []models.Candidate) (*models.MatchResponse, error)
}

type matcherService struct {
	gemini     GeminiService
	ranker     RankerService
	summarizer SummarizerService
}

func NewMatcherService(
	gemini GeminiService,
	ranker RankerService,
	summarizer SummarizerService,
) MatcherService {
	return &matcherService{
		gemini:     gemini,
		ranker:     ranker,
		summarizer: summarizer,
	}
}

// Match implements MatcherService. One request runs
// validate → embed → score → rank → summarize → assemble. Validation and
// embedding failures abort the whole request with no partial ranking;
// summarization is best-effort and can only degrade individual entries.
// Everything is request-scoped: nothing is cached or shared across calls.
func (m *matcherService) Match(ctx context.Context, jobDescription string, candidates []models.Candidate) (*models.MatchResponse, error) {
	jobDescription = NormalizeText(jobDescription)
	if jobDescription == "" {
		return nil, fmt.Errorf("job description is required: %w", ErrInvalidInput)
	}

	// An empty candidate list is a valid request with an empty answer. A
	// non-empty list where no candidate has usable resume text is not.
	if len(candidates) == 0 {
		return &models.MatchResponse{
			Recommendations: []models.Recommendation{},
			TotalCandidates: 0,
		}, nil
	}

	usable := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if NormalizeText(c.ResumeText) == "" {
			log.Printf("⚠️  Skipping candidate %s: empty resume text\n", c.ID)
			continue
		}
		usable = append(usable, c)
	}
	if len(usable) == 0 {
		return nil, fmt.Errorf("no candidate has usable resume text: %w", ErrInvalidInput)
	}

	log.Printf("🔄 Matching %d candidates against job description\n", len(usable))

	jobEmbedding, embedded, err := m.embedAll(ctx, jobDescription, usable)
	if err != nil {
		return nil, err
	}

	ranked, err := m.ranker.Rank(jobEmbedding, embedded)
	if err != nil {
		return nil, fmt.Errorf("failed to rank candidates: %w", err)
	}

	// Ranking is final before any summary call starts, so summary failures
	// cannot change scores or order.
	summaries := m.summarizer.SummarizeAll(ctx, jobDescription, ranked)

	recommendations := make([]models.Recommendation, len(ranked))
	for i, sc := range ranked {
		recommendations[i] = models.Recommendation{
			ID:              sc.Candidate.ID,
			Name:            sc.Candidate.Name,
			SimilarityScore: sc.Score,
			AISummary:       summaries[i],
		}
	}

	log.Printf("✅ Returning %d recommendations\n", len(recommendations))

	return &models.MatchResponse{
		Recommendations: recommendations,
		TotalCandidates: len(usable),
	}, nil
}

// embedAll computes the job embedding and every candidate embedding in
// parallel. All embeddings must complete before ranking; the first failure
// cancels the remaining calls and aborts the request.
func (m *matcherService) embedAll(ctx context.Context, jobDescription string, candidates []models.Candidate) ([]float32, []EmbeddedCandidate, error) {
	var jobEmbedding []float32
	embedded := make([]EmbeddedCandidate, len(candidates))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		vec, err := m.gemini.GenerateEmbedding(gctx, jobDescription)
		if err != nil {
			return fmt.Errorf("failed to embed job description: %w", err)
		}
		jobEmbedding = vec
		return nil
	})

	for i, c := range candidates {
		g.Go(func() error {
			vec, err := m.gemini.GenerateEmbedding(gctx, c.ResumeText)
			if err != nil {
				return fmt.Errorf("failed to embed resume for candidate %s: %w", c.ID, err)
			}
			embedded[i] = EmbeddedCandidate{Candidate: c, Embedding: vec}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return jobEmbedding, embedded, nil
}
