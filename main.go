package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"drivebox/internal/auth"
	"drivebox/internal/config"
	"drivebox/internal/constants"
	"drivebox/internal/database"
	"drivebox/internal/handlers"
	"drivebox/internal/routes"
	"drivebox/internal/services"
	"drivebox/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	pkgConfig "github.com/kerimovok/go-pkg-utils/config"
	pkgValidator "github.com/kerimovok/go-pkg-utils/validator"
)

func init() {
	// Load all configs
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("failed to load configs: %v", err)
	}

	// Validate environment variables
	if err := pkgValidator.ValidateConfig(constants.EnvValidationRules); err != nil {
		log.Fatalf("configuration validation failed: %v", err)
	}

	// Connect to database
	if err := database.ConnectDB(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
}

func setupApp() *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // 100MB limit for file uploads
	})

	// Middleware
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(compress.New())
	app.Use(healthcheck.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string {
			return uuid.New().String()
		},
	}))
	app.Use(logger.New())

	return app
}

func main() {
	// Connect to object storage
	store, err := storage.NewMinioStore()
	if err != nil {
		log.Fatalf("failed to connect to object storage: %v", err)
	}

	// Setup Fiber app
	app := setupApp()

	// Wire services and handlers
	fileService := services.NewFileService(database.DB, store)
	shareService := services.NewShareService(database.DB, store)
	folderService := services.NewFolderService(database.DB)

	verifier := auth.NewVerifier()
	authHandler := handlers.NewAuthHandler(auth.NewClient())
	fileHandler := handlers.NewFileHandler(fileService, shareService)
	folderHandler := handlers.NewFolderHandler(folderService)

	// Setup routes
	routes.SetupRoutes(app, verifier, authHandler, fileHandler, folderHandler)

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Gracefully shutting down...")

		// Shutdown the server
		if err := app.Shutdown(); err != nil {
			log.Printf("error during server shutdown: %v", err)
		}

		log.Println("Server gracefully stopped")
		os.Exit(0)
	}()

	// Start server
	if err := app.Listen(":" + pkgConfig.GetEnv("PORT")); err != nil && err != http.ErrServerClosed {
		log.Fatalf("failed to start server: %v", err)
	}
}
