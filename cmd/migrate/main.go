package main

import (
	"log"

	"novitatravel/internal/app/config"
	"novitatravel/internal/app/repository"
)

// Standalone migration/seed step: creates the schema, the bootstrap admin
// and the default content without starting the server.
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	repo, err := repository.New(cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database migration completed successfully")

	if err := repo.EnsureAdmin(cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	if err := repo.SeedDefaults(); err != nil {
		log.Fatalf("Failed to seed defaults: %v", err)
	}

	log.Println("Database initialized successfully")
}
