package main

import (
	"fmt"
	"log"
	"os"

	"github.com/harbourmove/leadsgo/internal/config"
	"github.com/harbourmove/leadsgo/internal/database"
	"github.com/harbourmove/leadsgo/internal/models"
	"github.com/harbourmove/leadsgo/internal/utils"
)

func main() {
	fmt.Println("🌱 Admin Account Seeder")

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("❌ SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are required")
	}
	if len(password) < 8 {
		log.Fatal("❌ SEED_ADMIN_PASSWORD must be at least 8 characters")
	}

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	fmt.Println("✅ Connected to database")

	// Run migrations first
	if err := db.AutoMigrate(&models.UserAuth{}); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	// Refuse to overwrite an existing account
	var count int64
	db.Model(&models.UserAuth{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		fmt.Printf("⚠️  Account %s already exists. Nothing to do.\n", email)
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}

	admin := models.UserAuth{
		Email:    email,
		Password: hash,
		Name:     os.Getenv("SEED_ADMIN_NAME"),
		Role:     "admin",
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("❌ Failed to create admin: %v", err)
	}

	fmt.Printf("✅ Admin account created: %s (id %s)\n", admin.Email, admin.ID)
}
