package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/haamee/haamee-api/internal/domain"
)

var ErrWrongCredentials = errors.New("wrong username or password")

// AuthService authenticates the single administrator account
// configured for the deployment.
type AuthService struct {
	username     string
	passwordHash []byte
}

func NewAuthService(username, password string) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	return &AuthService{
		username:     username,
		passwordHash: hash,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (domain.Admin, error) {
	if username != s.username {
		return domain.Admin{}, ErrWrongCredentials
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return domain.Admin{}, ErrWrongCredentials
	}

	return domain.Admin{
		Username: s.username,
		Name:     "مدیر سیستم",
	}, nil
}
