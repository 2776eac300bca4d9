package main

import (
	"log"
	"net/http"
	"os"

	_ "wardrobe/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"wardrobe/internal/auth"
	"wardrobe/internal/cache"
	"wardrobe/internal/config"
	"wardrobe/internal/db"
	"wardrobe/internal/handler"
	"wardrobe/internal/metrics"
	"wardrobe/internal/model"
	"wardrobe/internal/repository"
	"wardrobe/internal/router"
	"wardrobe/internal/service"
)

// @title Wardrobe API
// @version 1.0
// @description Personal wardrobe catalog with token authentication and random outfit suggestions.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Clothes{},
			&model.Category{},
			&model.Type{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Type{},
		&model.Clothes{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	cacheClient := cache.New(redisClient)

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	typeRepo := repository.NewTypeRepository(gormDB)
	clothesRepo := repository.NewClothesRepository(gormDB)

	// Initialize auth components
	tokenStore := auth.NewTokenStore(redisClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenStore)
	catalogService := service.NewCatalogService(categoryRepo, typeRepo, cacheClient)
	clothesService := service.NewClothesService(clothesRepo)
	suggestService := service.NewSuggestService(clothesRepo, collector)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	clothesHandler := handler.NewClothesHandler(clothesService)
	suggestHandler := handler.NewSuggestHandler(suggestService)

	// Register routes
	router.Register(
		e,
		authService,
		collector,
		registry,
		authHandler,
		catalogHandler,
		clothesHandler,
		suggestHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
