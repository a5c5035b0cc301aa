package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"resumatch/api/internal/services"
)

type CollegeHandler struct {
	scorecard services.ScorecardService
}

func NewCollegeHandler(scorecard services.ScorecardService) *CollegeHandler {
	return &CollegeHandler{
		scorecard: scorecard,
	}
}

// HandleSearch proxies a paginated name query to the institution catalog.
// Catalog failures come back as a non-fatal message.
func (h *CollegeHandler) HandleSearch(c *fiber.Ctx) error {
	query := c.Query("name")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name query parameter is required",
		})
	}

	page := c.QueryInt("page", 0)

	result, err := h.scorecard.Search(c.UserContext(), query, page)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": fmt.Sprintf("College search failed: %v", err),
		})
	}

	return c.JSON(result)
}
