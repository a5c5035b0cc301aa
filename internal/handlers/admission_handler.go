package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumatch/api/internal/models"
	"resumatch/api/internal/repositories"
	"resumatch/api/internal/services"
)

type AdmissionHandler struct {
	docRepo    repositories.DocumentRepository
	admissions services.AdmissionService
	auditor    services.AuditorService
}

func NewAdmissionHandler(
	docRepo repositories.DocumentRepository,
	admissions services.AdmissionService,
	auditor services.AuditorService,
) *AdmissionHandler {
	return &AdmissionHandler{
		docRepo:    docRepo,
		admissions: admissions,
		auditor:    auditor,
	}
}

// HandleEstimate blends the supplied baseline admission rate, academic
// metrics and a document-quality score into an adjusted acceptance
// probability. The document (statement or resume) may come from a prior
// upload or as raw text; with no document the quality signal stays neutral.
func (h *AdmissionHandler) HandleEstimate(c *fiber.Ctx) error {
	var req models.EstimateRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.CGPA < 0 || req.CGPA > 4 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cgpa must be between 0 and 4",
		})
	}
	if req.GRE != nil && (*req.GRE < 0 || *req.GRE > 340) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "gre must be between 0 and 340",
		})
	}
	if req.IELTS != nil && (*req.IELTS < 0 || *req.IELTS > 9) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ielts must be between 0 and 9",
		})
	}
	if req.BaselineRate != nil && (*req.BaselineRate < 0 || *req.BaselineRate > 1) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "baseline_rate must be between 0 and 1",
		})
	}

	docText := req.DocumentText
	if req.DocumentID != "" {
		docID, err := uuid.Parse(req.DocumentID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid document_id format",
			})
		}

		doc, err := h.docRepo.FindByID(docID)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("Document not found or expired: %s", req.DocumentID),
			})
		}
		docText = doc.Text
	}

	docText = services.NormalizeText(docText)

	// No document means no quality evidence either way; keep the signal
	// neutral so it adds nothing to the blend.
	quality := 0.5
	findings := []models.AuditFinding{}
	if docText != "" {
		quality = h.auditor.QualityScore(docText)
		findings = h.auditor.StructuralFindings(docText)
	}

	probability := h.admissions.Estimate(services.AcceptanceInput{
		BaselineRate:    req.BaselineRate,
		CGPA:            req.CGPA,
		GRE:             req.GRE,
		IELTS:           req.IELTS,
		DocumentQuality: quality,
	})

	return c.JSON(models.EstimateResponse{
		Probability:     probability,
		DocumentQuality: quality,
		Findings:        findings,
	})
}
