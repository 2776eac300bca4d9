package main

import (
	"context"
	"log"

	"gorm.io/gorm"

	"wardrobe/internal/config"
	"wardrobe/internal/db"
	"wardrobe/internal/model"
	"wardrobe/internal/repository"
)

// Starter taxonomy. Categories and types are shared across all users and
// append-only, so seeding is idempotent: existing names are left alone.
var (
	seedCategories = []string{"トップス", "ボトムス", "アウター", "シューズ", "小物"}
	seedTypes      = []string{"Tシャツ", "シャツ", "ニット", "パンツ", "スカート", "ジャケット", "コート", "スニーカー"}
)

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.Category{}, &model.Type{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	categoryRepo := repository.NewCategoryRepository(gormDB)
	typeRepo := repository.NewTypeRepository(gormDB)

	created := 0
	for _, name := range seedCategories {
		if _, err := categoryRepo.FindByName(ctx, name); err == nil {
			continue
		} else if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check category %q: %v", name, err)
		}
		if err := categoryRepo.Create(ctx, &model.Category{Name: name}); err != nil {
			log.Fatalf("Failed to create category %q: %v", name, err)
		}
		created++
	}
	log.Printf("Seeded %d categories (%d already present)", created, len(seedCategories)-created)

	created = 0
	for _, name := range seedTypes {
		if _, err := typeRepo.FindByName(ctx, name); err == nil {
			continue
		} else if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check type %q: %v", name, err)
		}
		if err := typeRepo.Create(ctx, &model.Type{Name: name}); err != nil {
			log.Fatalf("Failed to create type %q: %v", name, err)
		}
		created++
	}
	log.Printf("Seeded %d types (%d already present)", created, len(seedTypes)-created)

	log.Println("Seed completed")
}
