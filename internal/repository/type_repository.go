package repository

import (
	"context"

	"gorm.io/gorm"

	"wardrobe/internal/model"
)

// TypeRepository defines type persistence operations.
type TypeRepository interface {
	Create(ctx context.Context, typ *model.Type) error
	FindByID(ctx context.Context, id uint) (*model.Type, error)
	FindByName(ctx context.Context, name string) (*model.Type, error)
	List(ctx context.Context) ([]model.Type, error)
}

type typeRepository struct {
	db *gorm.DB
}

// NewTypeRepository creates a new type repository.
func NewTypeRepository(db *gorm.DB) TypeRepository {
	return &typeRepository{db: db}
}

func (r *typeRepository) Create(ctx context.Context, typ *model.Type) error {
	return r.db.WithContext(ctx).Create(typ).Error
}

func (r *typeRepository) FindByID(ctx context.Context, id uint) (*model.Type, error) {
	var typ model.Type
	if err := r.db.WithContext(ctx).First(&typ, id).Error; err != nil {
		return nil, err
	}
	return &typ, nil
}

func (r *typeRepository) FindByName(ctx context.Context, name string) (*model.Type, error) {
	var typ model.Type
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&typ).Error; err != nil {
		return nil, err
	}
	return &typ, nil
}

func (r *typeRepository) List(ctx context.Context) ([]model.Type, error) {
	var types []model.Type
	if err := r.db.WithContext(ctx).Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}
