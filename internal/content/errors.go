package content

import (
	"net/http"

	sharedError "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/error"
)

const (
	contentNotFound   = "CONTENT_NOT_FOUND"   // errInfo
	invalidContentKey = "INVALID_CONTENT_KEY" // errInfo
)

var (
	ErrContentNotFound   = sharedError.NewDomainError(contentNotFound)
	ErrInvalidContentKey = sharedError.NewDomainError(invalidContentKey)
)

func init() {
	sharedError.RegisterDomainErrorResponse(contentNotFound, sharedError.ErrorResponse{
		Status:    http.StatusNotFound,
		Code:      "CONTENT-001",
		Message:   "콘텐츠를 찾을 수 없습니다.",
		MessageEn: "Content not found.",
	})

	sharedError.RegisterDomainErrorResponse(invalidContentKey, sharedError.ErrorResponse{
		Status:    http.StatusBadRequest,
		Code:      "CONTENT-002",
		Message:   "콘텐츠 키는 영문 소문자, 숫자, '-'만 사용할 수 있습니다.",
		MessageEn: "Content keys may only contain lowercase letters, digits and '-'.",
	})
}
