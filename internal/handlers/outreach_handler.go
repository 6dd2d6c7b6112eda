package handlers

import (
	"github.com/gofiber/fiber/v2"

	"sialabs/recruiting-agent/internal/models"
	"sialabs/recruiting-agent/internal/services"
)

type OutreachHandler struct {
	outreach services.OutreachService
}

func NewOutreachHandler(outreach services.OutreachService) *OutreachHandler {
	return &OutreachHandler{outreach: outreach}
}

// HandleGenerate handles POST /api/generate-outreach-email
func (h *OutreachHandler) HandleGenerate(c *fiber.Ctx) error {
	var req models.OutreachEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, err)
	}

	email, err := h.outreach.Generate(c.Context(), req.RoleBrief, req.ScreeningQuestions)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(models.OutreachEmailResponse{
		Success:   true,
		Subject:   email.Subject,
		EmailBody: email.Body,
	})
}
