package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumatch/api/internal/models"
	"resumatch/api/internal/repositories"
	"resumatch/api/internal/services"
)

type ScoreHandler struct {
	docRepo      repositories.DocumentRepository
	analysisRepo repositories.AnalysisRepository
	keywords     services.KeywordExtractorService
	similarity   services.SimilarityService
	auditor      services.AuditorService
}

func NewScoreHandler(
	docRepo repositories.DocumentRepository,
	analysisRepo repositories.AnalysisRepository,
	keywords services.KeywordExtractorService,
	similarity services.SimilarityService,
	auditor services.AuditorService,
) *ScoreHandler {
	return &ScoreHandler{
		docRepo:      docRepo,
		analysisRepo: analysisRepo,
		keywords:     keywords,
		similarity:   similarity,
		auditor:      auditor,
	}
}

// HandleScore runs the full analysis of one resume against one job
// description: TF-IDF similarity, keyword coverage, structural findings, and
// suggestions. The normalized texts are kept in the session so the rewrite
// action can reuse them verbatim.
func (h *ScoreHandler) HandleScore(c *fiber.Ctx) error {
	var req models.ScoreRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	resumeText := req.ResumeText
	if req.ResumeDocumentID != "" {
		docID, err := uuid.Parse(req.ResumeDocumentID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid resume_document_id format",
			})
		}

		doc, err := h.docRepo.FindByID(docID)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Resume document not found or expired",
			})
		}
		resumeText = doc.Text
	}

	resumeText = services.NormalizeText(resumeText)
	jobText := services.NormalizeText(req.JobDescription)

	// Scoring is skipped entirely when either side is missing, not attempted
	// with partial data.
	if resumeText == "" || jobText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please provide both a resume and a job description.",
		})
	}

	coverage := h.keywords.Coverage(resumeText, jobText)

	report := models.MatchReport{
		SimilarityScore: h.similarity.Score(resumeText, jobText),
		Coverage:        coverage,
		Findings:        h.auditor.StructuralFindings(resumeText),
		Suggestions:     h.auditor.Suggestions(resumeText, coverage),
	}

	analysis := &models.Analysis{
		ID:         uuid.New(),
		ResumeText: resumeText,
		JobText:    jobText,
		Report:     report,
		CreatedAt:  time.Now(),
	}

	if err := h.analysisRepo.Create(analysis); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store analysis",
		})
	}

	return c.JSON(models.ScoreResponse{
		ID:     analysis.ID.String(),
		Report: report,
	})
}
