package handlers

import (
	"github.com/gofiber/fiber/v2"

	"sialabs/recruiting-agent/internal/models"
	"sialabs/recruiting-agent/internal/services"
)

type ProfileHandler struct {
	sourcer services.CandidateSourcer
}

func NewProfileHandler(sourcer services.CandidateSourcer) *ProfileHandler {
	return &ProfileHandler{sourcer: sourcer}
}

// HandleGenerate handles POST /api/generate-candidate-profile
func (h *ProfileHandler) HandleGenerate(c *fiber.Ctx) error {
	var req models.CandidateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, err)
	}

	profile, err := h.sourcer.EnrichOne(c.Context(), req.RoleBrief, req.AppendedFeedback, req.CandidateSummary)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(models.CandidateProfileResponse{
		Success: true,
		Profile: profile,
	})
}
