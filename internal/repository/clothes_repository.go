package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "wardrobe/internal/errors"
	"wardrobe/internal/model"
)

// ClothesRepository defines clothes persistence operations. Every read and
// write that targets a single record is scoped by owner, so a record that
// exists but belongs to someone else behaves exactly like a missing one.
type ClothesRepository interface {
	CreateWithRefs(ctx context.Context, clothes *model.Clothes) error
	UpdateWithRefs(ctx context.Context, clothes *model.Clothes) error
	FindByIDAndOwner(ctx context.Context, id, userID uint) (*model.Clothes, error)
	ListByOwner(ctx context.Context, userID uint) ([]model.Clothes, error)
	DeleteByIDAndOwner(ctx context.Context, id, userID uint) error
}

type clothesRepository struct {
	db *gorm.DB
}

// NewClothesRepository creates a new clothes repository.
func NewClothesRepository(db *gorm.DB) ClothesRepository {
	return &clothesRepository{db: db}
}

// CreateWithRefs inserts a clothes record. The referenced category and type
// must exist at insert time; the existence checks run in the same transaction
// as the insert so the references cannot dangle.
func (r *clothesRepository) CreateWithRefs(ctx context.Context, clothes *model.Clothes) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkRefs(tx, clothes); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(clothes).Error
	})
}

// UpdateWithRefs saves an already-loaded clothes record under the same
// referential guarantee as CreateWithRefs.
func (r *clothesRepository) UpdateWithRefs(ctx context.Context, clothes *model.Clothes) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkRefs(tx, clothes); err != nil {
			return err
		}
		// The record may carry preloaded Category/Type associations; saving
		// them would overwrite CategoryID/TypeID with the stale values.
		return tx.Omit(clause.Associations).Save(clothes).Error
	})
}

func checkRefs(tx *gorm.DB, clothes *model.Clothes) error {
	var category model.Category
	if err := tx.Select("id").First(&category, clothes.CategoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrCategoryNotFound
		}
		return err
	}
	var typ model.Type
	if err := tx.Select("id").First(&typ, clothes.TypeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrTypeNotFound
		}
		return err
	}
	return nil
}

func (r *clothesRepository) FindByIDAndOwner(ctx context.Context, id, userID uint) (*model.Clothes, error) {
	var clothes model.Clothes
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Type").
		Where("id = ? AND user_id = ?", id, userID).
		First(&clothes).Error
	if err != nil {
		return nil, err
	}
	return &clothes, nil
}

func (r *clothesRepository) ListByOwner(ctx context.Context, userID uint) ([]model.Clothes, error) {
	var clothes []model.Clothes
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Type").
		Where("user_id = ?", userID).
		Find(&clothes).Error
	if err != nil {
		return nil, err
	}
	return clothes, nil
}

// DeleteByIDAndOwner removes a record permanently. Returns
// gorm.ErrRecordNotFound when nothing owned by userID matched.
func (r *clothesRepository) DeleteByIDAndOwner(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Clothes{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
