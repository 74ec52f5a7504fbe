package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/df-fix-backend/internal/infrastructure/auth"
	"github.com/marcos-nsantos/df-fix-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/df-fix-backend/internal/pkg/httputil"
)

const (
	OperatorKey  = "operator"
	BearerPrefix = "Bearer "
)

// AuthMiddleware guards the write routes. Reads stay public so plotting
// clients can follow fixes without credentials.
type AuthMiddleware struct {
	jwtSvc *auth.JWTService
}

func NewAuthMiddleware(jwtSvc *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtSvc: jwtSvc}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			httputil.Abort(c, apperror.Unauthorized("bearer token required"))
			return
		}

		operator, err := m.jwtSvc.ValidateAccessToken(token)
		if err != nil {
			httputil.Abort(c, apperror.Unauthorized("invalid or expired token"))
			return
		}

		c.Set(OperatorKey, operator)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	token, found := strings.CutPrefix(header, BearerPrefix)
	if !found || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}
