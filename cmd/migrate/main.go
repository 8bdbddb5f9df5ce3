package main

import (
	"flag"
	"log"

	"github.com/nutriplan/backend/config"
	"github.com/nutriplan/backend/internal/database"
)

func main() {
	dir := flag.String("dir", "", "migrations directory (defaults to the configured one)")
	flag.Parse()

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

	migrationsDir := cfg.MigrationsDir
	if *dir != "" {
		migrationsDir = *dir
	}

	if err := database.RunMigrations(db, migrationsDir); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}
	log.Println("migrations applied")
}
