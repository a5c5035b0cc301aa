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

	"resumatch/api/internal/config"
	"resumatch/api/internal/handlers"
	"resumatch/api/internal/repositories"
	"resumatch/api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize session repositories
	docRepo := repositories.NewDocumentRepository(cfg.Session.TTL, cfg.Session.MaxEntries)
	analysisRepo := repositories.NewAnalysisRepository(cfg.Session.TTL, cfg.Session.MaxEntries)
	log.Println("✅ Session repositories initialized successfully")

	// Initialize analysis services
	extractor := services.NewExtractorService()
	keywords := services.NewKeywordExtractorService()
	similarity := services.NewSimilarityService()
	auditor := services.NewAuditorService()
	admissions := services.NewAdmissionService()
	log.Printf("✅ Analysis services initialized (formats: %v)\n", extractor.Formats())

	// Initialize external collaborators
	rewrite := services.NewRewriteService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if rewrite.Available() {
		log.Println("✅ Rewrite service initialized successfully")
	} else {
		log.Println("⚠️  Rewrite service unavailable (no GEMINI_API_KEY); /rewrite will report it")
	}

	scorecard := services.NewScorecardService(
		cfg.Scorecard.BaseURL,
		cfg.Scorecard.APIKey,
		cfg.Scorecard.Timeout,
		cfg.Scorecard.PerPage,
	)
	log.Println("✅ Scorecard client initialized successfully")

	// Initialize handlers
	uploadHandler := handlers.NewUploadHandler(docRepo, extractor, cfg.Upload.MaxFileSize)
	scoreHandler := handlers.NewScoreHandler(docRepo, analysisRepo, keywords, similarity, auditor)
	rewriteHandler := handlers.NewRewriteHandler(analysisRepo, rewrite)
	collegeHandler := handlers.NewCollegeHandler(scorecard)
	admissionHandler := handlers.NewAdmissionHandler(docRepo, admissions, auditor)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Match API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize),
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
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/upload", uploadHandler.HandleUpload)
	api.Post("/score", scoreHandler.HandleScore)
	api.Post("/rewrite", rewriteHandler.HandleRewrite)
	api.Get("/colleges", collegeHandler.HandleSearch)
	api.Post("/admissions/estimate", admissionHandler.HandleEstimate)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Match API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/upload",
				"POST /api/v1/score",
				"POST /api/v1/rewrite",
				"GET /api/v1/colleges",
				"POST /api/v1/admissions/estimate",
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

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
