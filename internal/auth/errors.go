package auth

import (
	"net/http"

	sharedError "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/error"
)

const (
	incorrectEmailPassword = "INCORRECT_EMAIL_PASSWORD" // errInfo
	inactiveUser           = "INACTIVE_USER"            // errInfo
	notRefreshToken        = "NOT_REFRESH_TOKEN"        // errInfo
	invalidRefreshToken    = "INVALID_REFRESH_TOKEN"    // errInfo
)

var (
	ErrInCorrectEmailPassword = sharedError.NewDomainError(incorrectEmailPassword)
	ErrInactiveUser           = sharedError.NewDomainError(inactiveUser)
	ErrNotRefreshToken        = sharedError.NewDomainError(notRefreshToken)
	ErrInvalidRefreshToken    = sharedError.NewDomainError(invalidRefreshToken)
)

func init() {
	sharedError.RegisterDomainErrorResponse(incorrectEmailPassword, sharedError.ErrorResponse{
		Status:    http.StatusBadRequest,
		Code:      "AUTH-003",
		Message:   "이메일 또는 비밀번호가 일치하지 않습니다.",
		MessageEn: "Incorrect email or password.",
	})

	sharedError.RegisterDomainErrorResponse(inactiveUser, sharedError.ErrorResponse{
		Status:    http.StatusForbidden,
		Code:      "AUTH-004",
		Message:   "비활성화된 계정입니다. 관리자에게 문의하세요.",
		MessageEn: "This account is disabled. Please contact an administrator.",
	})

	sharedError.RegisterDomainErrorResponse(notRefreshToken, sharedError.ErrorResponse{
		Status:    http.StatusUnauthorized,
		Code:      "AUTH-005",
		Message:   "refresh token이 아닙니다.",
		MessageEn: "Not a refresh token.",
	})

	sharedError.RegisterDomainErrorResponse(invalidRefreshToken, sharedError.ErrorResponse{
		Status:    http.StatusUnauthorized,
		Code:      "AUTH-000",
		Message:   "로그인을 해주세요.",
		MessageEn: "Please sign in.",
	})
}
