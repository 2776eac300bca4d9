package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"wardrobe/internal/auth"
	apperrors "wardrobe/internal/errors"
	"wardrobe/internal/model"
	"wardrobe/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration, login and session lifecycle.
type AuthService interface {
	Register(ctx context.Context, name, loginID, password string) (*model.User, string, error)
	Login(ctx context.Context, loginID, password string) (*model.User, string, error)
	Logout(ctx context.Context, token string) error
	ResolveToken(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	tokenStore auth.TokenStore
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, tokenStore auth.TokenStore) AuthService {
	return &authService{
		userRepo:   userRepo,
		tokenStore: tokenStore,
	}
}

// Register creates a user with a hashed password and issues a session token.
func (s *authService) Register(ctx context.Context, name, loginID, password string) (*model.User, string, error) {
	existing, err := s.userRepo.FindByLoginID(ctx, loginID)
	if err == nil && existing != nil {
		return nil, "", apperrors.ErrLoginIDTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, "", fmt.Errorf("check login_id: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		LoginID:      loginID,
		PasswordHash: string(hashedPassword),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Two racing registrations can both pass the check above; the
		// unique index on login_id decides the loser.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", apperrors.ErrLoginIDTaken
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.issueToken(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and issues a fresh token. Prior tokens stay
// valid; unknown login_id and wrong password answer identically.
func (s *authService) Login(ctx context.Context, loginID, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByLoginID(ctx, loginID)
	if err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout revokes exactly the presented token.
func (s *authService) Logout(ctx context.Context, token string) error {
	return s.tokenStore.Revoke(ctx, token)
}

// ResolveToken maps a live token to its user.
func (s *authService) ResolveToken(ctx context.Context, token string) (*model.User, error) {
	userID, err := s.tokenStore.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, fmt.Errorf("load session user: %w", err)
	}
	return user, nil
}

func (s *authService) issueToken(ctx context.Context, userID uint) (string, error) {
	token, err := auth.GenerateToken()
	if err != nil {
		return "", err
	}
	if err := s.tokenStore.Save(ctx, token, userID); err != nil {
		return "", err
	}
	return token, nil
}
