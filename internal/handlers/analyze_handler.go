package handlers

import (
	"github.com/gofiber/fiber/v2"

	"sialabs/recruiting-agent/internal/models"
	"sialabs/recruiting-agent/internal/services"
)

type AnalyzeHandler struct {
	sourcer services.CandidateSourcer
}

func NewAnalyzeHandler(sourcer services.CandidateSourcer) *AnalyzeHandler {
	return &AnalyzeHandler{sourcer: sourcer}
}

// HandleAnalyze handles POST /api/analyze-job-description
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeJobDescriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, err)
	}

	payload, err := h.sourcer.Generate(c.Context(), req.RoleBrief, req.AppendedFeedback)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(models.AnalyzeJobDescriptionResponse{
		Success:  true,
		Response: payload,
	})
}

// errorJSON reports a failure the way every endpoint does: HTTP 500 with the
// raw error message, never retried.
func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
		Success: false,
		Error:   err.Error(),
	})
}
