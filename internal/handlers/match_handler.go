package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jagrut70/A-Candidate-Recommendation-Engine/internal/models"
	"github.com/jagrut70/A-Candidate-Recommendation-Engine/internal/repositories"
	"github.com/jagrut70/A-Candidate-Recommendation-Engine/internal/services"
)

type MatchHandler struct {
	docRepo  repositories.DocumentRepository
	matcher  services.MatcherService
	validate *validator.Validate
}

func NewMatchHandler(
	docRepo repositories.DocumentRepository,
	matcher services.MatcherService,
) *MatchHandler {
	return &MatchHandler{
		docRepo:  docRepo,
		matcher:  matcher,
		validate: validator.New(),
	}
}

// HandleMatch handles POST /match. Runs the pipeline over previously uploaded
// resumes: the ones named by document_ids, or every uploaded resume when the
// list is omitted.
func (h *MatchHandler) HandleMatch(c *fiber.Ctx) error {
	var req models.MatchRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Invalid request: %v", err),
		})
	}

	docs, err := h.loadDocuments(req.DocumentIDs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load uploaded resumes",
		})
	}

	candidates := make([]models.Candidate, 0, len(docs))
	for _, doc := range docs {
		candidates = append(candidates, models.Candidate{
			ID:         doc.ID.String(),
			Name:       doc.CandidateName,
			Source:     models.SourceFileUpload,
			ResumeText: doc.ExtractedText,
		})
	}

	response, err := h.matcher.Match(c.UserContext(), req.JobDescription, candidates)
	if err != nil {
		return matchError(c, err)
	}

	return c.JSON(response)
}

// HandleManualMatch handles POST /match/manual with inline candidates instead
// of uploaded documents. IDs are assigned here; unnamed candidates get a
// positional default.
func (h *MatchHandler) HandleManualMatch(c *fiber.Ctx) error {
	var req models.ManualMatchRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Invalid request: %v", err),
		})
	}

	candidates := make([]models.Candidate, 0, len(req.Candidates))
	for i, mc := range req.Candidates {
		name := mc.Name
		if name == "" {
			name = fmt.Sprintf("Candidate %d", i+1)
		}
		candidates = append(candidates, models.Candidate{
			ID:         uuid.New().String(),
			Name:       name,
			Source:     models.SourceManualEntry,
			ResumeText: mc.ResumeText,
		})
	}

	response, err := h.matcher.Match(c.UserContext(), req.JobDescription, candidates)
	if err != nil {
		return matchError(c, err)
	}

	return c.JSON(response)
}

func (h *MatchHandler) loadDocuments(documentIDs []string) ([]models.Document, error) {
	if len(documentIDs) == 0 {
		return h.docRepo.FindAll()
	}

	ids := make([]uuid.UUID, 0, len(documentIDs))
	for _, raw := range documentIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			// Format is enforced by validation; a parse failure here would be
			// a programming error.
			continue
		}
		ids = append(ids, id)
	}

	return h.docRepo.FindByIDs(ids)
}

// matchError maps pipeline errors to HTTP statuses: invalid input is the
// caller's fault, a missing embedding backend is a server-side outage.
func matchError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, services.ErrModelUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
