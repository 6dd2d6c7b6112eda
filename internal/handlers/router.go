package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"sialabs/recruiting-agent/internal/models"
)

// RegisterRoutes mounts the API surface on app. All endpoints live under
// /api with no version segment.
func RegisterRoutes(
	app *fiber.App,
	analyze *AnalyzeHandler,
	questions *QuestionsHandler,
	outreach *OutreachHandler,
	chat *ChatHandler,
	profile *ProfileHandler,
) {
	api := app.Group("/api")

	api.Get("/health", HandleHealth)
	api.Post("/analyze-job-description", analyze.HandleAnalyze)
	api.Post("/generate-screening-questions", questions.HandleGenerate)
	api.Post("/generate-outreach-email", outreach.HandleGenerate)
	api.Post("/recruiter-chat", chat.HandleChat)
	api.Post("/generate-candidate-profile", profile.HandleGenerate)
}

// HandleHealth handles GET /api/health
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:    "ok",
		Message:   "API health check successful",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
