package auth

import (
	"net/http"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *AuthService
}

func NewAuthHandler(authService *AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login exchanges email and password for a token pair
func (a *AuthHandler) Login(c *gin.Context) {
	var request LoginRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := a.authService.Login(c.Request.Context(), &request)
	respondTokens(c, response, err)
}

// Refresh exchanges a refresh token for a new pair
func (a *AuthHandler) Refresh(c *gin.Context) {
	var request RefreshRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := a.authService.Refresh(c.Request.Context(), &request)
	respondTokens(c, response, err)
}

// 토큰 응답은 프록시나 브라우저에 캐시되면 안 된다
func respondTokens(c *gin.Context, response *LoginResponse, err error) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")

	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
