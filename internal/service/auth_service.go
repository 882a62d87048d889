package service

import (
	"blogcms/internal/models"
	"blogcms/internal/repository"
	"context"
	"errors"
	"fmt"
)

var ErrInvalidCredentials = errors.New("invalid login or password")

type AuthService interface {
	Register(ctx context.Context, login, password string) (*models.User, string, error)
	Login(ctx context.Context, login, password string) (*models.User, string, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenService) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Register(ctx context.Context, login, password string) (*models.User, string, error) {
	user := &models.User{
		Login: login,
		// TODO: every account is an admin for now, the dashboard has no
		// reader role yet. Revisit before opening registration up.
		IsAdmin: true,
	}

	err := s.userRepo.CreateUser(ctx, user, password)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, "", repository.ErrUsernameTaken
		}
		return nil, "", fmt.Errorf("failed to register user: %w", err)
	}

	token, err := s.tokens.Issue(user.UserID, user.Login, user.IsAdmin)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

func (s *authService) Login(ctx context.Context, login, password string) (*models.User, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, login, password)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.UserID, user.Login, user.IsAdmin)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}
