package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "wardrobe/internal/errors"
	"wardrobe/internal/model"
	"wardrobe/internal/repository"
)

// CreateClothesInput holds the fields a caller may set when creating a
// clothes record. The owner is never part of the input; it is always the
// authenticated user.
type CreateClothesInput struct {
	Name       string
	CategoryID uint
	TypeID     uint
	Color      string
	Season     model.SeasonList
}

// UpdateClothesInput carries partial-update fields; nil means "leave as is".
type UpdateClothesInput struct {
	Name       *string
	CategoryID *uint
	TypeID     *uint
	Color      *string
	Season     *model.SeasonList
}

// ClothesService exposes the owner-scoped clothes operations. Every method
// takes the authenticated user explicitly; there is no ambient request state.
type ClothesService interface {
	List(ctx context.Context, user *model.User, filter ClothesFilter) ([]model.Clothes, error)
	Create(ctx context.Context, user *model.User, input CreateClothesInput) (*model.Clothes, error)
	Get(ctx context.Context, user *model.User, id uint) (*model.Clothes, error)
	Update(ctx context.Context, user *model.User, id uint, input UpdateClothesInput) (*model.Clothes, error)
	Delete(ctx context.Context, user *model.User, id uint) error
}

type clothesService struct {
	repo repository.ClothesRepository
}

// NewClothesService creates a new clothes service.
func NewClothesService(repo repository.ClothesRepository) ClothesService {
	return &clothesService{repo: repo}
}

// List returns the user's records matching the optional filter.
func (s *clothesService) List(ctx context.Context, user *model.User, filter ClothesFilter) ([]model.Clothes, error) {
	items, err := s.repo.ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list clothes: %w", err)
	}
	return filter.Apply(items), nil
}

// Create inserts a record owned by user. Ownership cannot be spoofed: the
// record's UserID comes from the authenticated user, never from the input.
func (s *clothesService) Create(ctx context.Context, user *model.User, input CreateClothesInput) (*model.Clothes, error) {
	clothes := &model.Clothes{
		UserID:     user.ID,
		CategoryID: input.CategoryID,
		TypeID:     input.TypeID,
		Name:       input.Name,
		Color:      input.Color,
		Season:     input.Season,
	}
	if err := s.repo.CreateWithRefs(ctx, clothes); err != nil {
		if err == apperrors.ErrCategoryNotFound || err == apperrors.ErrTypeNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("create clothes: %w", err)
	}

	// Reload for the denormalized category/type names.
	return s.Get(ctx, user, clothes.ID)
}

// Get returns a single owned record; missing and non-owned are the same.
func (s *clothesService) Get(ctx context.Context, user *model.User, id uint) (*model.Clothes, error) {
	clothes, err := s.repo.FindByIDAndOwner(ctx, id, user.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrClothesNotFound
		}
		return nil, fmt.Errorf("get clothes: %w", err)
	}
	return clothes, nil
}

// Update applies only the fields present in input.
func (s *clothesService) Update(ctx context.Context, user *model.User, id uint, input UpdateClothesInput) (*model.Clothes, error) {
	clothes, err := s.Get(ctx, user, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		clothes.Name = *input.Name
	}
	if input.CategoryID != nil {
		clothes.CategoryID = *input.CategoryID
	}
	if input.TypeID != nil {
		clothes.TypeID = *input.TypeID
	}
	if input.Color != nil {
		clothes.Color = *input.Color
	}
	if input.Season != nil {
		clothes.Season = *input.Season
	}

	if err := s.repo.UpdateWithRefs(ctx, clothes); err != nil {
		if err == apperrors.ErrCategoryNotFound || err == apperrors.ErrTypeNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("update clothes: %w", err)
	}

	return s.Get(ctx, user, id)
}

// Delete removes an owned record permanently.
func (s *clothesService) Delete(ctx context.Context, user *model.User, id uint) error {
	if err := s.repo.DeleteByIDAndOwner(ctx, id, user.ID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrClothesNotFound
		}
		return fmt.Errorf("delete clothes: %w", err)
	}
	return nil
}
