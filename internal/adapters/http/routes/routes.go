package routes

import (
	"torrealta-portal/internal/adapters/http/handlers"
	"torrealta-portal/internal/adapters/http/middleware"
	"torrealta-portal/internal/adapters/persistence/repositories"
	"torrealta-portal/internal/config"
	"torrealta-portal/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, store *repositories.Store, cfg *config.Config) {
	// Initialize services
	notifyService := services.NewNotificationService(store.Notifications)
	authService := services.NewAuthService(store.Users, store.Sessions, cfg)
	paymentService := services.NewPaymentService(store.Users, store.Units, notifyService, cfg.Payment.ProcessingDelay)
	requestService := services.NewRequestService(store.Requests, store.Users, notifyService)
	catalogService := services.NewCatalogService(store.Units, store.Events)
	dashboardService := services.NewDashboardService(
		store.Users,
		store.Units,
		store.Requests,
		store.Notifications,
		store.Events,
		paymentService,
	)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	unitHandler := handlers.NewUnitHandler(catalogService)
	eventHandler := handlers.NewEventHandler(catalogService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	requestHandler := handlers.NewRequestHandler(requestService)
	notificationHandler := handlers.NewNotificationHandler(notifyService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	setupAPIV1Routes(apiV1, healthHandler, authHandler, unitHandler, eventHandler,
		paymentHandler, requestHandler, notificationHandler, dashboardHandler, cfg)
}

// setupAPIV1Routes configures API v1 routes
func setupAPIV1Routes(
	router fiber.Router,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	unitHandler *handlers.UnitHandler,
	eventHandler *handlers.EventHandler,
	paymentHandler *handlers.PaymentHandler,
	requestHandler *handlers.RequestHandler,
	notificationHandler *handlers.NotificationHandler,
	dashboardHandler *handlers.DashboardHandler,
	cfg *config.Config,
) {
	// API Info
	router.Get("/", healthHandler.APIInfo)

	// Auth routes (public)
	authRoutes := router.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Catalog routes (public, cached)
	unitRoutes := router.Group("/units")
	setupUnitRoutes(unitRoutes, unitHandler, cfg)

	eventRoutes := router.Group("/events")
	setupEventRoutes(eventRoutes, eventHandler)

	// Payment routes (Residents)
	paymentRoutes := router.Group("/payments")
	paymentRoutes.Use(middleware.AuthMiddleware(cfg))
	paymentRoutes.Use(middleware.ResidentOnly())
	setupPaymentRoutes(paymentRoutes, paymentHandler)

	// Support request routes (Authenticated users)
	requestRoutes := router.Group("/requests")
	requestRoutes.Use(middleware.AuthMiddleware(cfg))
	setupRequestRoutes(requestRoutes, requestHandler)

	// Notification routes (Admin only)
	notificationRoutes := router.Group("/notifications")
	notificationRoutes.Use(middleware.AuthMiddleware(cfg))
	notificationRoutes.Use(middleware.AdminOnly())
	setupNotificationRoutes(notificationRoutes, notificationHandler)

	// Dashboard routes
	dashboardRoutes := router.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware(cfg))
	setupDashboardRoutes(dashboardRoutes, dashboardHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (5 req/min/IP against brute force)
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupUnitRoutes configures the unit catalog routes
func setupUnitRoutes(router fiber.Router, handler *handlers.UnitHandler, cfg *config.Config) {
	// Public catalog (cached)
	router.Get("/", middleware.CatalogCache(), handler.List)
	router.Get("/map", middleware.CatalogCache(), handler.Map)
	router.Get("/:id", middleware.CatalogCache(), handler.Get)

	// Admin only
	router.Patch("/:id/estado", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), handler.UpdateEstado)
}

// setupEventRoutes configures the community event routes
func setupEventRoutes(router fiber.Router, handler *handlers.EventHandler) {
	router.Get("/", middleware.CatalogCache(), handler.List)
}

// setupPaymentRoutes configures payment routes (Residents)
func setupPaymentRoutes(router fiber.Router, handler *handlers.PaymentHandler) {
	router.Get("/summary", handler.Summary)
	router.Get("/history", handler.History)

	// Payment submission (3 req/min/IP)
	router.Post("/", middleware.StrictRateLimiter(), handler.Pay)
}

// setupRequestRoutes configures support request routes
func setupRequestRoutes(router fiber.Router, handler *handlers.RequestHandler) {
	// Any authenticated user
	router.Post("/", handler.Submit)
	router.Get("/mine", handler.ListMine)

	// Admin only
	adminRoutes := router.Group("")
	adminRoutes.Use(middleware.AdminOnly())
	adminRoutes.Get("/", handler.List)
	adminRoutes.Get("/stats", handler.Stats)
	adminRoutes.Patch("/:id/estado", handler.UpdateStatus)
}

// setupNotificationRoutes configures the notification feed routes (Admin only)
func setupNotificationRoutes(router fiber.Router, handler *handlers.NotificationHandler) {
	router.Get("/", handler.List)
	router.Get("/unread-count", handler.UnreadCount)
	router.Patch("/read-all", handler.MarkAllRead)
	router.Patch("/:id/read", handler.MarkRead)
}

// setupDashboardRoutes configures dashboard routes
func setupDashboardRoutes(router fiber.Router, handler *handlers.DashboardHandler) {
	// Auto-detect role dashboard (All authenticated users)
	router.Get("/", handler.GetMyDashboard)

	// Resident dashboard
	router.Get("/resident", middleware.ResidentOnly(), handler.GetResidentDashboard)

	// Admin dashboard (Admin only)
	router.Get("/admin", middleware.AdminOnly(), handler.GetAdminDashboard)
}
