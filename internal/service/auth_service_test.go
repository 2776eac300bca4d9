package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "wardrobe/internal/errors"
	"wardrobe/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByLoginID(ctx context.Context, loginID string) (*model.User, error) {
	args := m.Called(ctx, loginID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockTokenStore is a mock implementation of auth.TokenStore.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Save(ctx context.Context, token string, userID uint) error {
	args := m.Called(ctx, token, userID)
	return args.Error(0)
}

func (m *MockTokenStore) Resolve(ctx context.Context, token string) (uint, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockTokenStore) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		userName      string
		loginID       string
		password      string
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful registration",
			userName: "alice",
			loginID:  "alice1",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mTokens *MockTokenStore) {
				mRepo.On("FindByLoginID", mock.Anything, "alice1").Return(nil, gorm.ErrRecordNotFound)
				mRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				mTokens.On("Save", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("uint")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "login_id already taken",
			userName: "bob",
			loginID:  "alice1",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mTokens *MockTokenStore) {
				mRepo.On("FindByLoginID", mock.Anything, "alice1").Return(&model.User{LoginID: "alice1"}, nil)
			},
			expectedError: apperrors.ErrLoginIDTaken,
		},
		{
			name:     "login_id taken by a concurrent registration",
			userName: "bob",
			loginID:  "alice1",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mTokens *MockTokenStore) {
				mRepo.On("FindByLoginID", mock.Anything, "alice1").Return(nil, gorm.ErrRecordNotFound)
				mRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrLoginIDTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockTokens := new(MockTokenStore)
			tt.setupMock(mockRepo, mockTokens)

			service := NewAuthService(mockRepo, mockTokens)
			user, token, err := service.Register(context.Background(), tt.userName, tt.loginID, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.NotEmpty(t, token)
				assert.Equal(t, tt.userName, user.Name)
				assert.Equal(t, tt.loginID, user.LoginID)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
			mockTokens.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)

	tests := []struct {
		name          string
		loginID       string
		password      string
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			loginID:  "alice1",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mTokens *MockTokenStore) {
				mRepo.On("FindByLoginID", mock.Anything, "alice1").Return(&model.User{
					ID:           1,
					LoginID:      "alice1",
					PasswordHash: string(hashedPassword),
				}, nil)
				mTokens.On("Save", mock.Anything, mock.AnythingOfType("string"), uint(1)).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "no such user",
			loginID:  "nobody",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mTokens *MockTokenStore) {
				mRepo.On("FindByLoginID", mock.Anything, "nobody").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			loginID:  "alice1",
			password: "not-the-password",
			setupMock: func(mRepo *MockUserRepository, mTokens *MockTokenStore) {
				mRepo.On("FindByLoginID", mock.Anything, "alice1").Return(&model.User{
					ID:           1,
					LoginID:      "alice1",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockTokens := new(MockTokenStore)
			tt.setupMock(mockRepo, mockTokens)

			service := NewAuthService(mockRepo, mockTokens)
			user, token, err := service.Login(context.Background(), tt.loginID, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.NotEmpty(t, token)
			}

			mockRepo.AssertExpectations(t)
			mockTokens.AssertExpectations(t)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockTokens := new(MockTokenStore)
	mockTokens.On("Revoke", mock.Anything, "live-token").Return(nil)
	mockTokens.On("Revoke", mock.Anything, "dead-token").Return(apperrors.ErrInvalidToken)

	service := NewAuthService(mockRepo, mockTokens)

	assert.NoError(t, service.Logout(context.Background(), "live-token"))
	assert.Equal(t, apperrors.ErrInvalidToken, service.Logout(context.Background(), "dead-token"))

	mockTokens.AssertExpectations(t)
}

func TestAuthService_ResolveToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockTokens := new(MockTokenStore)
	mockTokens.On("Resolve", mock.Anything, "live-token").Return(uint(1), nil)
	mockTokens.On("Resolve", mock.Anything, "dead-token").Return(uint(0), apperrors.ErrInvalidToken)
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, LoginID: "alice1"}, nil)

	service := NewAuthService(mockRepo, mockTokens)

	user, err := service.ResolveToken(context.Background(), "live-token")
	assert.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)

	user, err = service.ResolveToken(context.Background(), "dead-token")
	assert.Equal(t, apperrors.ErrInvalidToken, err)
	assert.Nil(t, user)

	mockRepo.AssertExpectations(t)
	mockTokens.AssertExpectations(t)
}
