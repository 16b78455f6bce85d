package campaign

import (
	"net/http"

	sharedError "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/error"
)

const (
	noRecipients       = "NO_RECIPIENTS"        // errInfo
	posterWithoutImage = "POSTER_WITHOUT_IMAGE" // errInfo
)

var (
	ErrNoRecipients       = sharedError.NewDomainError(noRecipients)
	ErrPosterWithoutImage = sharedError.NewDomainError(posterWithoutImage)
)

func init() {
	sharedError.RegisterDomainErrorResponse(noRecipients, sharedError.ErrorResponse{
		Status:    http.StatusBadRequest,
		Code:      "CAMPAIGN-001",
		Message:   "메일을 받을 활성 여행사가 없습니다.",
		MessageEn: "No active travel agents to email.",
	})

	sharedError.RegisterDomainErrorResponse(posterWithoutImage, sharedError.ErrorResponse{
		Status:    http.StatusBadRequest,
		Code:      "CAMPAIGN-002",
		Message:   "포스터 이미지가 등록되지 않았습니다.",
		MessageEn: "The poster has no image.",
	})
}
