package main

import (
	"log"
	"os"

	"wordscramble/internal/config"
	"wordscramble/internal/database"
	"wordscramble/internal/seed"
)

// Seeds the database with the default word catalogue and an admin account.
// Destructive: existing users, categories and words are replaced.
func main() {
	cfg := config.Load()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPass := os.Getenv("ADMIN_PASS")
	if adminEmail == "" || adminPass == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASS must be set")
	}

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	summary, err := seed.Run(db, adminEmail, adminPass)
	if err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	log.Println("Seed data created successfully")
	log.Printf("  Admin:      %s", summary.AdminEmail)
	log.Printf("  Categories: %d", summary.Categories)
	log.Printf("  Words:      %d", summary.Words)
}
