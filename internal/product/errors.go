package product

import (
	"net/http"

	sharedError "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/error"
)

const (
	productNotFound = "PRODUCT_NOT_FOUND" // errInfo
)

var (
	ErrProductNotFound = sharedError.NewDomainError(productNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(productNotFound, sharedError.ErrorResponse{
		Status:    http.StatusNotFound,
		Code:      "PRODUCT-001",
		Message:   "상품을 찾을 수 없습니다.",
		MessageEn: "Product not found.",
	})
}
