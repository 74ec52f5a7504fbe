package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/df-fix-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/df-fix-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain"
	"github.com/marcos-nsantos/df-fix-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/auth"
)

type AuthHandler struct {
	authSvc AuthService
}

func NewAuthHandler(authSvc AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login godoc
//
//	@Summary		Operator login
//	@Description	Exchange the operator password for an access token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.LoginRequest	true	"Login credentials"
//	@Success		200		{object}	response.TokenResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		401		{object}	httputil.ErrorResponse	"Invalid credentials"
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	token, err := h.authSvc.Login(c.Request.Context(), auth.LoginInput{
		Operator: req.Operator,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			httputil.ErrorWithCode(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid operator or password")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   token.ExpiresAt,
	})
}
