package poster

import (
	"net/http"

	sharedError "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/error"
)

const (
	posterNotFound = "POSTER_NOT_FOUND" // errInfo
)

var (
	ErrPosterNotFound = sharedError.NewDomainError(posterNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(posterNotFound, sharedError.ErrorResponse{
		Status:    http.StatusNotFound,
		Code:      "POSTER-001",
		Message:   "포스터를 찾을 수 없습니다.",
		MessageEn: "Poster not found.",
	})
}
