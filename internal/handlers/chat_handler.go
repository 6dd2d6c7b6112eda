package handlers

import (
	"github.com/gofiber/fiber/v2"

	"sialabs/recruiting-agent/internal/models"
	"sialabs/recruiting-agent/internal/services"
)

type ChatHandler struct {
	orchestrator services.RegenerationOrchestrator
}

func NewChatHandler(orchestrator services.RegenerationOrchestrator) *ChatHandler {
	return &ChatHandler{orchestrator: orchestrator}
}

// HandleChat handles POST /api/recruiter-chat
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req models.RecruiterChatRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, err)
	}

	outcome, err := h.orchestrator.HandleChatTurn(c.Context(), req)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(models.RecruiterChatResponse{
		Success:       true,
		Response:      outcome.Reply,
		NewCandidates: outcome.NewCandidates,
	})
}
