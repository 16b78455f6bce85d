package user

import (
	"net/http"

	sharedError "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/error"
)

const (
	userNotFound      = "USER_NOT_FOUND"      // errInfo
	userAlreadyExists = "USER_ALREADY_EXISTS" // errInfo
	cannotDeleteSelf  = "CANNOT_DELETE_SELF"  // errInfo
	incorrectPassword = "INCORRECT_PASSWORD"  // errInfo
)

var (
	ErrUserNotFound      = sharedError.NewDomainError(userNotFound)
	ErrUserAlreadyExists = sharedError.NewDomainError(userAlreadyExists)
	ErrCannotDeleteSelf  = sharedError.NewDomainError(cannotDeleteSelf)
	ErrIncorrectPassword = sharedError.NewDomainError(incorrectPassword)
)

func init() {
	sharedError.RegisterDomainErrorResponse(userNotFound, sharedError.ErrorResponse{
		Status:    http.StatusNotFound,
		Code:      "USER-001",
		Message:   "사용자 정보를 찾을 수 없습니다.",
		MessageEn: "User not found.",
	})

	sharedError.RegisterDomainErrorResponse(userAlreadyExists, sharedError.ErrorResponse{
		Status:    http.StatusConflict,
		Code:      "USER-002",
		Message:   "이미 등록된 이메일입니다.",
		MessageEn: "This email is already registered.",
	})

	sharedError.RegisterDomainErrorResponse(cannotDeleteSelf, sharedError.ErrorResponse{
		Status:    http.StatusBadRequest,
		Code:      "USER-003",
		Message:   "본인 계정은 삭제할 수 없습니다.",
		MessageEn: "You cannot delete your own account.",
	})

	sharedError.RegisterDomainErrorResponse(incorrectPassword, sharedError.ErrorResponse{
		Status:    http.StatusBadRequest,
		Code:      "USER-004",
		Message:   "현재 비밀번호가 일치하지 않습니다.",
		MessageEn: "The current password is incorrect.",
	})
}
