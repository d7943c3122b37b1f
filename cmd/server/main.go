package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"torrealta-portal/internal/adapters/http/middleware"
	"torrealta-portal/internal/adapters/http/routes"
	"torrealta-portal/internal/adapters/persistence/repositories"
	"torrealta-portal/internal/config"
	"torrealta-portal/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "torrealta-portal/docs" // Swagger docs
)

// @title Torre Alta Portal API
// @version 1.0
// @description API del portal de gestión residencial Edificio Torre Alta
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email soporte@torrealta.co

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host api.torrealta.co
// @BasePath /api/v1
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Build the in-memory repository set
	store := repositories.NewStore()

	// Seed the demo dataset
	seeder := config.NewSeeder(store.Users, store.Units, store.Events, store.Requests, store.Notifications)
	if err := seeder.Run(); err != nil {
		log.Fatalf("❌ Failed to seed data: %v", err)
	}

	// Start Cron Service (payment reminders 08:30, session cleanup 03:00)
	notifyService := services.NewNotificationService(store.Notifications)
	cronService := services.NewCronService(store.Users, store.Sessions, notifyService)
	if err := cronService.Start(); err != nil {
		log.Fatalf("❌ Failed to start cron jobs: %v", err)
	}
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Torre Alta Portal API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass the repository set and cfg for dependency injection)
	routes.Setup(app, store, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
