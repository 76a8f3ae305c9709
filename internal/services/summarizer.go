package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jagrut70/A-Candidate-Recommendation-Engine/internal/models"
)

// summaryMaxTokens caps the generated rationale length.
const summaryMaxTokens = 150

// summaryTemperature matches the tone the product wants for recruiter-facing
// text: varied but not creative-writing loose.
const summaryTemperature = 0.7

type SummarizerService interface {
	// SummarizeAll returns one summary per ranked candidate, in the same order.
	// It never fails: a candidate whose generation call errors out gets the
	// unavailable sentinel instead, and its rank is untouched.
	SummarizeAll(ctx context.Context, jobDescription string, ranked []models.ScoredCandidate) []string
}

type summarizerService struct {
	gemini        GeminiService
	skills        SkillExtractor
	promptBuilder *PromptBuilder
	concurrency   int
	timeout       time.Duration
	maxAttempts   int
}

func NewSummarizerService(
	gemini GeminiService,
	skills SkillExtractor,
	concurrency int,
	timeout time.Duration,
	maxAttempts int,
) SummarizerService {
	if concurrency < 1 {
		concurrency = 1
	}
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &summarizerService{
		gemini:        gemini,
		skills:        skills,
		promptBuilder: NewPromptBuilder(),
		concurrency:   concurrency,
		timeout:       timeout,
		maxAttempts:   maxAttempts,
	}
}

// SummarizeAll implements SummarizerService. Calls fan out with a bounded
// concurrency limit to respect the generation service's rate limits; each call
// carries its own timeout and is independently cancelable, so one slow or
// failing candidate never affects its siblings. Cancelling the request context
// cancels every in-flight call.
func (s *summarizerService) SummarizeAll(ctx context.Context, jobDescription string, ranked []models.ScoredCandidate) []string {
	summaries := make([]string, len(ranked))

	jobSkills := s.skills.ExtractSkills(jobDescription)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, sc := range ranked {
		g.Go(func() error {
			summaries[i] = s.summarizeOne(ctx, jobDescription, jobSkills, sc)
			return nil
		})
	}

	// Workers never return an error; failures are recorded per candidate.
	_ = g.Wait()

	return summaries
}

func (s *summarizerService) summarizeOne(ctx context.Context, jobDescription string, jobSkills map[string][]string, sc models.ScoredCandidate) string {
	resumeSkills := s.skills.ExtractSkills(sc.Candidate.ResumeText)
	matches := s.skills.MatchSkills(jobSkills, resumeSkills)

	prompt := s.promptBuilder.BuildFitSummaryPrompt(
		jobDescription,
		sc.Candidate.ResumeText,
		sc.Score,
		s.skills.SkillSummary(matches),
		s.skills.TopSkills(matches, 3),
	)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	summary, err := s.gemini.GenerateTextWithRetry(callCtx, prompt, summaryTemperature, summaryMaxTokens, s.maxAttempts)
	if err != nil {
		log.Printf("⚠️  Summary failed for candidate %s: %v\n", sc.Candidate.ID, err)
		return UnavailableSummary(sc.Score)
	}

	return summary
}

// UnavailableSummary is the sentinel used when the generation call fails. The
// candidate keeps its score and rank; only the rationale degrades.
func UnavailableSummary(score float64) string {
	return fmt.Sprintf("AI summary unavailable. Similarity score: %.3f", score)
}
