package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumatch/api/internal/models"
	"resumatch/api/internal/repositories"
	"resumatch/api/internal/services"
)

type RewriteHandler struct {
	analysisRepo repositories.AnalysisRepository
	rewrite      services.RewriteService
}

func NewRewriteHandler(
	analysisRepo repositories.AnalysisRepository,
	rewrite services.RewriteService,
) *RewriteHandler {
	return &RewriteHandler{
		analysisRepo: analysisRepo,
		rewrite:      rewrite,
	}
}

// HandleRewrite feeds the session's normalized resume and job description to
// the generative collaborator. Any failure is a descriptive, non-fatal
// message; the rest of the API stays usable.
func (h *RewriteHandler) HandleRewrite(c *fiber.Ctx) error {
	var req models.RewriteRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.AnalysisID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "analysis_id is required. Score a resume first.",
		})
	}

	analysisID, err := uuid.Parse(req.AnalysisID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis_id format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found or expired. Score the resume again.",
		})
	}

	revised, err := h.rewrite.Rewrite(c.UserContext(), analysis.ResumeText, analysis.JobText)
	if err != nil {
		if errors.Is(err, services.ErrRewriteUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": fmt.Sprintf("Rewrite failed: %v", err),
		})
	}

	return c.JSON(models.RewriteResponse{
		RevisedResume: revised,
	})
}
