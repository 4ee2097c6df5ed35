package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"rentalhq-backend/internal/logger"
	"rentalhq-backend/internal/security"
)

type authService struct {
	adminEmail        string
	adminPasswordHash string
	tokens            security.TokenManager
}

func NewAuthService(adminEmail, adminPasswordHash string, tokens security.TokenManager) AuthService {
	return &authService{
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
		tokens:            tokens,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if email != s.adminEmail {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateSessionToken(email)
	if err != nil {
		return "", err
	}
	logger.Info("Admin logged in", "email", email)
	return token, nil
}
