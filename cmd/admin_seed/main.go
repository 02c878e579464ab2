// Package main seeds the admin account. Idempotent: an existing account with
// ADMIN_EMAIL is left untouched.
package main

import (
	"log"
	"os"

	"kalyanamaalai/internal/config"
	"kalyanamaalai/internal/models"
	"kalyanamaalai/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	adminName := config.GetEnv("ADMIN_NAME", "Administrator")

	if adminEmail == "" || adminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set in environment")
	}

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer repositories.Close()

	var existing models.User
	if err := repositories.DB.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		log.Println("admin account already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	adminUser := models.User{
		Name:     adminName,
		Email:    adminEmail,
		Password: string(hashed),
		Role:     models.RoleAdmin,
		Status:   models.AccountApproved,
	}
	if err := repositories.DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("failed to create admin account: %v", err)
	}

	log.Println("admin account created")
}
