package spot

import (
	"net/http"

	sharedError "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/error"
)

const (
	spotNotFound = "SPOT_NOT_FOUND" // errInfo
)

var (
	ErrSpotNotFound = sharedError.NewDomainError(spotNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(spotNotFound, sharedError.ErrorResponse{
		Status:    http.StatusNotFound,
		Code:      "SPOT-001",
		Message:   "관광지를 찾을 수 없습니다.",
		MessageEn: "Spot not found.",
	})
}
