// Package routes wires repositories, services and handlers onto the Fiber app.
package routes

import (
	"kalyanamaalai/internal/handlers"
	"kalyanamaalai/internal/middleware"
	"kalyanamaalai/internal/models"
	"kalyanamaalai/internal/repositories"
	"kalyanamaalai/internal/repositories/cache"
	"kalyanamaalai/internal/services/admin"
	"kalyanamaalai/internal/services/auth"
	"kalyanamaalai/internal/services/connection"
	"kalyanamaalai/internal/services/form"
	"kalyanamaalai/internal/services/mailer"
	"kalyanamaalai/internal/services/notification"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes. cacheSvc may be nil.
func SetupRoutes(app *fiber.App, db *gorm.DB, cacheSvc *cache.Service, mail mailer.Mailer) {
	// Repositories
	userRepo := repositories.NewUserRepository(db, cacheSvc)
	formRepo := repositories.NewFormRepository(db)
	connRepo := repositories.NewConnectionRepository(db)
	notifRepo := repositories.NewNotificationRepository(db)

	// Services
	notifService := notification.NewService(notifRepo, userRepo, mail)
	authService := auth.NewService(userRepo, mail)
	formService := form.NewService(db, formRepo, userRepo)
	connService := connection.NewService(connRepo, userRepo, formRepo, notifService)
	adminService := admin.NewService(db, userRepo, formRepo, connRepo, mail)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userRepo)
	formHandler := handlers.NewFormHandler(formService)
	connHandler := handlers.NewConnectionHandler(connService)
	notifHandler := handlers.NewNotificationHandler(notifService)
	adminHandler := handlers.NewAdminHandler(adminService)
	healthHandler := handlers.NewHealthHandler(db)

	app.Get("/health", healthHandler.Check)

	api := app.Group("/api/v1")

	// Public auth endpoints
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", middleware.RequireAuth, authHandler.Me)

	// User endpoints
	user := api.Group("/user", middleware.RequireAuth, middleware.RequireRole(models.RoleUser))
	user.Get("/profile", userHandler.Profile)
	user.Put("/profile", userHandler.UpdateProfile)
	user.Post("/forms", formHandler.Submit)
	user.Get("/forms", formHandler.List)
	user.Get("/forms/status", formHandler.Status)
	user.Get("/forms/:id", formHandler.Get)
	user.Get("/approved", connHandler.ApprovedProfiles)
	user.Post("/connect", connHandler.Connect)
	user.Get("/connections", connHandler.ApprovedMatches)
	user.Get("/notifications", notifHandler.List)
	user.Put("/notifications/mark-read", notifHandler.MarkRead)

	// Admin endpoints
	adminGroup := api.Group("/admin")
	adminGroup.Post("/login", authHandler.AdminLogin)

	adminOnly := adminGroup.Use(middleware.RequireAuth, middleware.RequireRole(models.RoleAdmin))
	adminOnly.Get("/forms/pending", adminHandler.PendingForms)
	adminOnly.Put("/forms/approve/:id", adminHandler.ApproveForm)
	adminOnly.Put("/forms/reject/:id", adminHandler.RejectForm)
	adminOnly.Get("/users", adminHandler.Users)
	adminOnly.Get("/user/:id", adminHandler.UserDetails)
	adminOnly.Delete("/user/:id", adminHandler.DeleteUser)
	adminOnly.Get("/connections/pending", adminHandler.PendingConnections)
	adminOnly.Put("/connections/approve/:id", adminHandler.ApproveConnection)
	adminOnly.Put("/connections/reject/:id", adminHandler.RejectConnection)
}
