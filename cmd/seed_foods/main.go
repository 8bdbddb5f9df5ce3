package main

import (
	"log"

	"github.com/nutriplan/backend/config"
	"github.com/nutriplan/backend/internal/database"
	"github.com/nutriplan/backend/internal/store"
)

// Seeds the catalogue database with the built-in food and activity data,
// macro embeddings included. Existing keys are left untouched, so the
// command is safe to run on every deploy.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if !cfg.HasDatabase() {
		log.Fatal("no database configured, set DB_HOST")
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	s := store.NewGormStore(db)
	if err := s.Seed(); err != nil {
		log.Fatalf("failed to seed catalogue: %v", err)
	}

	log.Printf("catalogue seeded: %d foods, %d activities", len(s.Foods()), len(s.Activities()))
}
