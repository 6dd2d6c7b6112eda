package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"sialabs/recruiting-agent/internal/config"
	"sialabs/recruiting-agent/internal/handlers"
	"sialabs/recruiting-agent/internal/prompts"
	"sialabs/recruiting-agent/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Load prompt templates
	registry, err := prompts.LoadDefault(cfg.Prompts.Path)
	if err != nil {
		log.Fatalf("❌ Failed to load prompt templates: %v", err)
	}
	log.Println("✅ Prompt templates loaded")

	// Initialize Gemini AI
	llm, err := services.NewGeminiLLM(cfg.Gemini.APIKey, cfg.Gemini.Model, registry)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize services
	avatars := buildAvatarAssigner(cfg)
	sourcer := services.NewCandidateSourcer(llm, avatars, cfg.Enrichment.Enabled, cfg.Enrichment.Concurrency)
	questionService := services.NewScreeningQuestionService(llm)
	outreachService := services.NewOutreachService(llm, registry)
	consolidator := services.NewFeedbackConsolidator(llm, registry)
	orchestrator := services.NewRegenerationOrchestrator(llm, registry, consolidator, sourcer)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(sourcer)
	questionsHandler := handlers.NewQuestionsHandler(questionService)
	outreachHandler := handlers.NewOutreachHandler(outreachService)
	chatHandler := handlers.NewChatHandler(orchestrator)
	profileHandler := handlers.NewProfileHandler(sourcer)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Recruiting Agent API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	handlers.RegisterRoutes(app, analyzeHandler, questionsHandler, outreachHandler, chatHandler, profileHandler)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Recruiting Agent API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/analyze-job-description",
				"POST /api/generate-screening-questions",
				"POST /api/generate-outreach-email",
				"POST /api/recruiter-chat",
				"POST /api/generate-candidate-profile",
				"GET /api/health",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func buildAvatarAssigner(cfg *config.Config) services.AvatarAssigner {
	switch cfg.Avatar.Policy {
	case "shuffle":
		return services.NewShuffleAvatarAssigner(services.DefaultAvatarPool)
	case "remote":
		if cfg.Avatar.LookupURL == "" {
			log.Println("⚠️  AVATAR_POLICY=remote but AVATAR_LOOKUP_URL is empty, using hash policy")
			return services.NewHashAvatarAssigner(services.DefaultAvatarPool)
		}
		lookup := services.NewHTTPAvatarLookup(cfg.Avatar.LookupURL)
		return services.NewRemoteAvatarAssigner(lookup, cfg.Avatar.LookupConcurrency)
	default:
		return services.NewHashAvatarAssigner(services.DefaultAvatarPool)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}
