package main

import (
	"context"
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

	"alfredoptarigan/hiring-portal/internal/app"
	"alfredoptarigan/hiring-portal/internal/config"
	"alfredoptarigan/hiring-portal/internal/handlers"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	container, cleanup, err := app.Bootstrap(context.Background(), cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize application: %v", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			log.Printf("❌ Cleanup error: %v", err)
		}
	}()

	// Initialize Handlers
	evaluateHandler := handlers.NewEvaluationHandler(container.Evaluator)
	queryHandler := handlers.NewQueryHandler(container.Translator)
	applyHandler := handlers.NewApplyHandler(container.Apply, cfg.Storage.MaxFileSize)
	applicationHandler := handlers.NewApplicationHandler(
		container.ApplicationRepo,
		container.StudentRepo,
		container.JobRepo,
	)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	server := fiber.New(fiber.Config{
		AppName:      "Hiring Portal API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1<<20,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	server.Use(recover.New())
	server.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	server.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := server.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/evaluate", evaluateHandler.HandleEvaluate)
	api.Post("/nlpsql", queryHandler.HandleQuery)
	api.Post("/apply", applyHandler.HandleApply)
	api.Get("/applications/:id", applicationHandler.HandleGetApplication)

	// Root route
	server.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Hiring Portal API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/evaluate",
				"POST /api/v1/nlpsql",
				"POST /api/v1/apply",
				"GET /api/v1/applications/:id",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("🛑 Shutting down server...")
		if err := server.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := server.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"ok":    false,
		"error": err.Error(),
	})
}
