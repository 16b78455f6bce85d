package booking

import (
	"net/http"

	sharedError "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/error"
)

const (
	bookingNotFound   = "BOOKING_NOT_FOUND"  // errInfo
	invalidTransition = "INVALID_TRANSITION" // errInfo
	invalidDateRange  = "INVALID_DATE_RANGE" // errInfo
)

var (
	ErrBookingNotFound   = sharedError.NewDomainError(bookingNotFound)
	ErrInvalidTransition = sharedError.NewDomainError(invalidTransition)
	ErrInvalidDateRange  = sharedError.NewDomainError(invalidDateRange)
)

func init() {
	sharedError.RegisterDomainErrorResponse(bookingNotFound, sharedError.ErrorResponse{
		Status:    http.StatusNotFound,
		Code:      "BOOKING-001",
		Message:   "예약을 찾을 수 없습니다.",
		MessageEn: "Booking not found.",
	})

	sharedError.RegisterDomainErrorResponse(invalidTransition, sharedError.ErrorResponse{
		Status:    http.StatusConflict,
		Code:      "BOOKING-002",
		Message:   "현재 예약 상태에서 변경할 수 없는 상태입니다.",
		MessageEn: "The booking cannot move to that status.",
	})

	sharedError.RegisterDomainErrorResponse(invalidDateRange, sharedError.ErrorResponse{
		Status:    http.StatusBadRequest,
		Code:      "BOOKING-003",
		Message:   "조회 시작일이 종료일보다 늦습니다.",
		MessageEn: "The start date is after the end date.",
	})
}
