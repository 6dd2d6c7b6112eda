package handlers

import (
	"github.com/gofiber/fiber/v2"

	"sialabs/recruiting-agent/internal/models"
	"sialabs/recruiting-agent/internal/services"
)

type QuestionsHandler struct {
	questions services.ScreeningQuestionService
}

func NewQuestionsHandler(questions services.ScreeningQuestionService) *QuestionsHandler {
	return &QuestionsHandler{questions: questions}
}

// HandleGenerate handles POST /api/generate-screening-questions
func (h *QuestionsHandler) HandleGenerate(c *fiber.Ctx) error {
	var req models.ScreeningQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, err)
	}

	questions, err := h.questions.Generate(c.Context(), req.JobDescription)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(models.ScreeningQuestionsResponse{
		Success:   true,
		Questions: questions,
	})
}
