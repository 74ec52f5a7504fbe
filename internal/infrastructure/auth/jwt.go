package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/marcos-nsantos/df-fix-backend/internal/domain"
)

const tokenIssuer = "df-fix"

// JWTService issues HS256 access tokens whose subject is the operator on watch.
type JWTService struct {
	secretKey      []byte
	accessTokenTTL time.Duration
	parser         *jwt.Parser
}

func NewJWTService(secretKey string, accessTokenTTL time.Duration) *JWTService {
	return &JWTService{
		secretKey:      []byte(secretKey),
		accessTokenTTL: accessTokenTTL,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(tokenIssuer),
			jwt.WithIssuedAt(),
			jwt.WithLeeway(5*time.Second),
		),
	}
}

func (s *JWTService) GenerateAccessToken(operator string) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.accessTokenTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   operator,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateAccessToken returns the operator named by a valid token.
func (s *JWTService) ValidateAccessToken(tokenStr string) (string, error) {
	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
		return s.secretKey, nil
	}); err != nil {
		return "", domain.ErrTokenInvalid
	}

	operator := strings.TrimSpace(claims.Subject)
	if operator == "" {
		return "", domain.ErrTokenInvalid
	}
	return operator, nil
}
