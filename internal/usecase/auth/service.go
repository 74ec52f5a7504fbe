package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/marcos-nsantos/df-fix-backend/internal/domain"
	"github.com/marcos-nsantos/df-fix-backend/internal/infrastructure/auth"
)

type Service struct {
	jwtSvc         *auth.JWTService
	passwordHasher *auth.PasswordHasher
	passwordHash   string
}

func NewService(jwtSvc *auth.JWTService, passwordHasher *auth.PasswordHasher, passwordHash string) *Service {
	return &Service{
		jwtSvc:         jwtSvc,
		passwordHasher: passwordHasher,
		passwordHash:   passwordHash,
	}
}

type LoginInput struct {
	Operator string
	Password string
}

type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Login checks the shared operator password and issues a token naming the operator on watch.
func (s *Service) Login(_ context.Context, input LoginInput) (*Token, error) {
	if strings.TrimSpace(input.Operator) == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordHasher.Matches(s.passwordHash, input.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := s.jwtSvc.GenerateAccessToken(input.Operator)
	if err != nil {
		return nil, fmt.Errorf("generating access token: %w", err)
	}

	return &Token{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}
