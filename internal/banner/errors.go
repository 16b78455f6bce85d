package banner

import (
	"net/http"

	sharedError "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/error"
)

const (
	bannerNotFound = "BANNER_NOT_FOUND" // errInfo
)

var (
	ErrBannerNotFound = sharedError.NewDomainError(bannerNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(bannerNotFound, sharedError.ErrorResponse{
		Status:    http.StatusNotFound,
		Code:      "BANNER-001",
		Message:   "배너를 찾을 수 없습니다.",
		MessageEn: "Banner not found.",
	})
}
