package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"menugate/internal/adapters/http/middleware"
	"menugate/internal/adapters/http/routes"
	"menugate/internal/adapters/persistence/models"
	"menugate/internal/adapters/persistence/repositories"
	"menugate/internal/config"
	"menugate/internal/core/services"
	"menugate/internal/pkg/token"

	"github.com/gofiber/fiber/v2"

	_ "menugate/docs" // Swagger docs
)

// @title MenuGate API
// @version 1.0
// @description Role-based menu access backend: sessions, authorization gates and menu administration.

// @contact.name API Support

// @host localhost:7000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}
	log.Println("database migration completed")

	// Seed fixed roles, starter menus and the bootstrap super user
	if err := config.Seed(db); err != nil {
		log.Printf("warning: failed to seed data: %v", err)
	}

	// Token service shared by the auth routes and the session sweeper
	tokens := token.NewService(
		cfg.JWT.Secret,
		cfg.JWT.RefreshSecret,
		time.Duration(cfg.JWT.AccessTokenMins)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenHours)*time.Hour,
	)

	// Nightly sweep of expired persisted refresh tokens
	cronService := services.NewCronService(repositories.NewUserRepository(db), tokens)
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "MenuGate API v1.0",
		ErrorHandler: middleware.ErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg, tokens)

	// Graceful shutdown
	go gracefulShutdown(app)

	log.Printf("server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
	log.Println("server stopped gracefully")
}
