// Package main is the entry point for the API server. It loads configuration,
// connects the database and cache, and starts the Fiber HTTP server.
package main

import (
	"context"
	"log"
	"time"

	"kalyanamaalai/internal/config"
	"kalyanamaalai/internal/middleware"
	"kalyanamaalai/internal/repositories"
	"kalyanamaalai/internal/routes"
	"kalyanamaalai/internal/services/mailer"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer repositories.Close()

	sqlDB, err := repositories.DB.DB()
	if err != nil {
		log.Fatalf("failed to get database instance: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	// Periodic pool stats line; useful when tuning DB_MAX_* settings.
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			stats := sqlDB.Stats()
			log.Printf("db stats: open=%d idle=%d inUse=%d waitCount=%d waitDuration=%s",
				stats.OpenConnections, stats.Idle, stats.InUse, stats.WaitCount, stats.WaitDuration)
		}
	}()

	if repositories.CacheService != nil {
		if err := repositories.CacheService.FlushAll(context.Background()); err != nil {
			log.Printf("failed to flush redis cache: %v", err)
		}
	}

	uploadDir, err := middleware.UploadDir()
	if err != nil {
		log.Fatalf("failed to prepare upload directory: %v", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetEnv("CORS_ORIGIN", "http://localhost:5173"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	authLimiter := limiter.New(limiter.Config{
		Max:        5,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	})
	app.Use("/api/v1/auth/register", authLimiter)
	app.Use("/api/v1/auth/login", authLimiter)
	app.Use("/api/v1/admin/login", authLimiter)

	app.Static("/uploads", uploadDir)

	routes.SetupRoutes(app, repositories.DB, repositories.CacheService, mailer.FromEnv())

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "5000")))
}
