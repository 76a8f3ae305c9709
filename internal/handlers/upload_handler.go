package handlers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jagrut70/A-Candidate-Recommendation-Engine/internal/models"
	"github.com/jagrut70/A-Candidate-Recommendation-Engine/internal/repositories"
	"github.com/jagrut70/A-Candidate-Recommendation-Engine/internal/services"
)

type UploadHandler struct {
	docRepo        repositories.DocumentRepository
	storageService services.StorageService
	resumeParser   services.ResumeParserService
	maxFileSize    int64
}

func NewUploadHandler(
	docRepo repositories.DocumentRepository,
	storageService services.StorageService,
	resumeParser services.ResumeParserService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		docRepo:        docRepo,
		storageService: storageService,
		resumeParser:   resumeParser,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /upload. Accepts one or more resume files in the
// "resumes" multipart field. A file that cannot be stored or yields no text is
// reported in the skipped list instead of becoming an empty candidate.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	files := form.File["resumes"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resumes uploaded. Please upload 'resumes' as PDF or TXT files.",
		})
	}

	var documents []models.UploadedDocument
	var skipped []models.SkippedFile

	for _, file := range files {
		if file.Size > h.maxFileSize {
			skipped = append(skipped, models.SkippedFile{
				Filename: file.Filename,
				Reason:   fmt.Sprintf("file too large, max size: %d bytes", h.maxFileSize),
			})
			continue
		}

		filename, filePath, err := h.storageService.SaveFile(file)
		if err != nil {
			skipped = append(skipped, models.SkippedFile{
				Filename: file.Filename,
				Reason:   err.Error(),
			})
			continue
		}

		text, err := h.resumeParser.ExtractText(filePath)
		if err != nil {
			// A resume with no extractable text cannot be scored; drop the
			// stored file so it never reaches the pipeline.
			h.storageService.DeleteFile(filename)
			skipped = append(skipped, models.SkippedFile{
				Filename: file.Filename,
				Reason:   fmt.Sprintf("failed to extract text: %v", err),
			})
			continue
		}

		doc := models.Document{
			ID:               uuid.New(),
			Filename:         filename,
			OriginalFileName: file.Filename,
			CandidateName:    candidateNameFromFilename(file.Filename),
			FileType:         strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), "."),
			FilePath:         filePath,
			ExtractedText:    text,
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		}

		if err := h.docRepo.Create(&doc); err != nil {
			h.storageService.DeleteFile(filename)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to save document record: %v", err),
			})
		}

		documents = append(documents, models.UploadedDocument{
			ID:            doc.ID.String(),
			Filename:      doc.Filename,
			OriginalName:  doc.OriginalFileName,
			CandidateName: doc.CandidateName,
			FileType:      doc.FileType,
		})
	}

	if len(documents) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "No valid resumes uploaded. Please upload PDF or TXT files.",
			"skipped": skipped,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.UploadResponse{
		Message:   fmt.Sprintf("Successfully uploaded %d resumes", len(documents)),
		Documents: documents,
		Skipped:   skipped,
	})
}

// candidateNameFromFilename derives the candidate name by dropping the file
// extension, the same default the upload UI shows.
func candidateNameFromFilename(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
