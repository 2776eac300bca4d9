package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"wardrobe/internal/cache"
	apperrors "wardrobe/internal/errors"
	"wardrobe/internal/model"
	"wardrobe/internal/repository"
)

const (
	catalogCacheTTL    = 5 * time.Minute
	categoriesCacheKey = "categories"
	typesCacheKey      = "types"
)

// CatalogService manages the shared category and type taxonomy. Both
// collections are world-readable and append-only; names are globally unique.
type CatalogService interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	ListTypes(ctx context.Context) ([]model.Type, error)
	CreateType(ctx context.Context, name string) (*model.Type, error)
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	typeRepo     repository.TypeRepository
	cache        *cache.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(categoryRepo repository.CategoryRepository, typeRepo repository.TypeRepository, cache *cache.Client) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		typeRepo:     typeRepo,
		cache:        cache,
	}
}

// ListCategories lists all categories with read-through caching.
func (s *catalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	if data, _ := s.cache.Get(ctx, categoriesCacheKey); data != nil {
		var cached []model.Category
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	if payload, err := json.Marshal(categories); err == nil {
		_ = s.cache.Set(ctx, categoriesCacheKey, payload, catalogCacheTTL)
	}
	return categories, nil
}

// CreateCategory registers a new category name.
func (s *catalogService) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	existing, err := s.categoryRepo.FindByName(ctx, name)
	if err == nil && existing != nil {
		return nil, apperrors.ErrCategoryNameTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check category name: %w", err)
	}

	category := &model.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		// Racing creates can both pass the name check; the unique
		// index decides the loser.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrCategoryNameTaken
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	_ = s.cache.Delete(ctx, categoriesCacheKey)
	return category, nil
}

// ListTypes lists all types with read-through caching.
func (s *catalogService) ListTypes(ctx context.Context) ([]model.Type, error) {
	if data, _ := s.cache.Get(ctx, typesCacheKey); data != nil {
		var cached []model.Type
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	types, err := s.typeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list types: %w", err)
	}

	if payload, err := json.Marshal(types); err == nil {
		_ = s.cache.Set(ctx, typesCacheKey, payload, catalogCacheTTL)
	}
	return types, nil
}

// CreateType registers a new type name.
func (s *catalogService) CreateType(ctx context.Context, name string) (*model.Type, error) {
	existing, err := s.typeRepo.FindByName(ctx, name)
	if err == nil && existing != nil {
		return nil, apperrors.ErrTypeNameTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check type name: %w", err)
	}

	typ := &model.Type{Name: name}
	if err := s.typeRepo.Create(ctx, typ); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTypeNameTaken
		}
		return nil, fmt.Errorf("create type: %w", err)
	}

	_ = s.cache.Delete(ctx, typesCacheKey)
	return typ, nil
}
