package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"wardrobe/internal/cache"
	apperrors "wardrobe/internal/errors"
	"wardrobe/internal/model"
)

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

// MockTypeRepository is a mock implementation of TypeRepository.
type MockTypeRepository struct {
	mock.Mock
}

func (m *MockTypeRepository) Create(ctx context.Context, typ *model.Type) error {
	args := m.Called(ctx, typ)
	return args.Error(0)
}

func (m *MockTypeRepository) FindByID(ctx context.Context, id uint) (*model.Type, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Type), args.Error(1)
}

func (m *MockTypeRepository) FindByName(ctx context.Context, name string) (*model.Type, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Type), args.Error(1)
}

func (m *MockTypeRepository) List(ctx context.Context) ([]model.Type, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Type), args.Error(1)
}

func TestCatalogService_CreateCategory(t *testing.T) {
	tests := []struct {
		name          string
		categoryName  string
		setupMock     func(*MockCategoryRepository)
		expectedError error
	}{
		{
			name:         "successful creation",
			categoryName: "Tops",
			setupMock: func(m *MockCategoryRepository) {
				m.On("FindByName", mock.Anything, "Tops").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Category")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:         "duplicate name",
			categoryName: "Tops",
			setupMock: func(m *MockCategoryRepository) {
				m.On("FindByName", mock.Anything, "Tops").Return(&model.Category{ID: 1, Name: "Tops"}, nil)
			},
			expectedError: apperrors.ErrCategoryNameTaken,
		},
		{
			name:         "name taken by a concurrent creation",
			categoryName: "Tops",
			setupMock: func(m *MockCategoryRepository) {
				m.On("FindByName", mock.Anything, "Tops").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Category")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrCategoryNameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCategories := new(MockCategoryRepository)
			mockTypes := new(MockTypeRepository)
			tt.setupMock(mockCategories)

			service := NewCatalogService(mockCategories, mockTypes, cache.New(nil))
			category, err := service.CreateCategory(context.Background(), tt.categoryName)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, category)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, category)
				assert.Equal(t, tt.categoryName, category.Name)
			}

			mockCategories.AssertExpectations(t)
		})
	}
}

func TestCatalogService_CreateType_Duplicate(t *testing.T) {
	mockCategories := new(MockCategoryRepository)
	mockTypes := new(MockTypeRepository)
	mockTypes.On("FindByName", mock.Anything, "Shirt").Return(&model.Type{ID: 1, Name: "Shirt"}, nil)

	service := NewCatalogService(mockCategories, mockTypes, cache.New(nil))
	typ, err := service.CreateType(context.Background(), "Shirt")

	assert.Equal(t, apperrors.ErrTypeNameTaken, err)
	assert.Nil(t, typ)
	mockTypes.AssertExpectations(t)
}

func TestCatalogService_CreateType_ConcurrentDuplicate(t *testing.T) {
	mockCategories := new(MockCategoryRepository)
	mockTypes := new(MockTypeRepository)
	mockTypes.On("FindByName", mock.Anything, "Shirt").Return(nil, gorm.ErrRecordNotFound)
	mockTypes.On("Create", mock.Anything, mock.AnythingOfType("*model.Type")).Return(gorm.ErrDuplicatedKey)

	service := NewCatalogService(mockCategories, mockTypes, cache.New(nil))
	typ, err := service.CreateType(context.Background(), "Shirt")

	assert.Equal(t, apperrors.ErrTypeNameTaken, err)
	assert.Nil(t, typ)
	mockTypes.AssertExpectations(t)
}

func TestCatalogService_Lists(t *testing.T) {
	mockCategories := new(MockCategoryRepository)
	mockTypes := new(MockTypeRepository)
	mockCategories.On("List", mock.Anything).Return([]model.Category{{ID: 1, Name: "Tops"}}, nil)
	mockTypes.On("List", mock.Anything).Return([]model.Type{{ID: 1, Name: "Shirt"}}, nil)

	service := NewCatalogService(mockCategories, mockTypes, cache.New(nil))

	categories, err := service.ListCategories(context.Background())
	assert.NoError(t, err)
	assert.Len(t, categories, 1)

	types, err := service.ListTypes(context.Background())
	assert.NoError(t, err)
	assert.Len(t, types, 1)

	mockCategories.AssertExpectations(t)
	mockTypes.AssertExpectations(t)
}
