package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	sharedContext "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/context"
	sharedError "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/i18n"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/token"

	"github.com/gin-gonic/gin"
)

const (
	AuthorizationHeader = "Authorization"
	BearerScheme        = "Bearer"
)

// JWT error constants (errInfo)
const (
	missingToken  = "MISSING_TOKEN"
	invalidToken  = "INVALID_TOKEN"
	expiredToken  = "EXPIRED_TOKEN"
	invalidClaims = "INVALID_CLAIMS"
)

// Domain errors
var (
	ErrMissingToken  = sharedError.NewDomainError(missingToken)
	ErrInvalidToken  = sharedError.NewDomainError(invalidToken)
	ErrExpiredToken  = sharedError.NewDomainError(expiredToken)
	ErrInvalidClaims = sharedError.NewDomainError(invalidClaims)
)

var unauthorized = sharedError.ErrorResponse{
	Status:    http.StatusUnauthorized,
	Code:      "AUTH-000",
	Message:   "로그인을 해주세요.",
	MessageEn: "Please sign in.",
}

// Register JWT error responses
func init() {
	sharedError.RegisterDomainErrorResponse(missingToken, unauthorized)
	sharedError.RegisterDomainErrorResponse(invalidToken, unauthorized)
	sharedError.RegisterDomainErrorResponse(invalidClaims, unauthorized)

	sharedError.RegisterDomainErrorResponse(expiredToken, sharedError.ErrorResponse{
		Status:    http.StatusUnauthorized,
		Code:      "AUTH-001",
		Message:   "로그인이 만료되었습니다. 다시 로그인해 주세요.",
		MessageEn: "Your session has expired. Please sign in again.",
	})
}

// JWT authenticates the bearer access token and stores the actor in both the gin and request contexts
func JWT(tokenManager token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 요청 정보 (로깅용)
		clientIP := c.ClientIP()
		method := c.Request.Method
		path := c.Request.URL.Path

		// Step 1: 토큰 추출
		tokenString, err := extractToken(c)
		if err != nil {
			slog.Warn("JWT 토큰 추출 실패",
				"step", "extract_token",
				"error", err.Error(),
				"client_ip", clientIP,
				"method", method,
				"path", path,
			)
			handleJWTError(c, err)
			return
		}

		// Step 2: 토큰 검증
		claims, err := tokenManager.ValidateToken(tokenString)
		if err != nil {
			slog.Warn("JWT 토큰 검증 실패",
				"step", "validate_token",
				"error", err.Error(),
				"client_ip", clientIP,
				"method", method,
				"path", path,
			)
			handleJWTError(c, mapTokenError(err))
			return
		}

		// Refresh token은 API 호출에 사용할 수 없음
		if claims.TokenType != token.ACCESS {
			slog.Warn("JWT 토큰 종류 불일치",
				"step", "token_type",
				"token_type", claims.TokenType,
				"client_ip", clientIP,
				"path", path,
			)
			handleJWTError(c, ErrInvalidToken)
			return
		}

		// 인증 성공 - Context에 사용자 정보 저장
		c.Set(sharedContext.UserIDKey, claims.UserID)
		c.Set(sharedContext.UserEmailKey, claims.Email)
		c.Set(sharedContext.UserRoleKey, claims.Role)

		if userID, ok := sharedContext.GetUserID(c); ok {
			ctx := sharedContext.WithActor(c.Request.Context(), sharedContext.Actor{
				UserID: userID,
				Email:  claims.Email,
				Role:   claims.Role,
			})
			ctx = logger.With(ctx, "user_id", userID)
			c.Request = c.Request.WithContext(ctx)
		}

		c.Next()
	}
}

// RequireRole allows the request only when the authenticated role is one of roles.
// Must be registered after JWT.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := sharedContext.GetUserRole(c)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		slog.Warn("권한 부족으로 요청 거부",
			"role", role,
			"required", strings.Join(roles, ","),
			"path", c.Request.URL.Path,
		)
		c.JSON(sharedError.Forbidden.Status, sharedError.Forbidden.Localize(i18n.FromGin(c)))
		c.Abort()
	}
}

// handleJWTError handles JWT errors using the standardized error response format
// Note: Logging is done at the point of error detection in JWT() function
func handleJWTError(c *gin.Context, err error) {
	lang := i18n.FromGin(c)
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		c.JSON(resp.Status, resp.Localize(lang))
	} else {
		// 예상치 못한 에러 → Fallback 응답
		resp := sharedError.ErrorResponse{
			Status:    http.StatusUnauthorized,
			Code:      "AUTH-999",
			Message:   "인증에 실패했습니다.",
			MessageEn: "Authentication failed.",
		}
		c.JSON(resp.Status, resp.Localize(lang))
	}
	c.Abort()
}

func extractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], BearerScheme) || parts[1] == "" {
		return "", ErrInvalidToken
	}

	return parts[1], nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, token.ErrExpiredToken):
		return ErrExpiredToken
	case errors.Is(err, token.ErrInvalidClaims):
		return ErrInvalidClaims
	default:
		return ErrInvalidToken
	}
}
