package booking

import (
	"net/http"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/handler"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/i18n"
	"github.com/gin-gonic/gin"
)

var (
	msgCreated       = i18n.Message{Ko: "예약이 등록되었습니다.", En: "Booking created."}
	msgReceived      = i18n.Message{Ko: "예약 신청이 접수되었습니다. 확인 후 연락드리겠습니다.", En: "Your booking request was received. We will contact you shortly."}
	msgUpdated       = i18n.Message{Ko: "예약이 수정되었습니다.", En: "Booking updated."}
	msgStatusChanged = i18n.Message{Ko: "예약 상태가 변경되었습니다.", En: "Booking status changed."}
	msgDeleted       = i18n.Message{Ko: "예약이 삭제되었습니다.", En: "Booking deleted."}
)

type BookingHandler struct {
	bookingService *BookingService
}

func NewBookingHandler(bookingService *BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

func (h *BookingHandler) List(c *gin.Context) {
	var query ListBookingsQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	response, err := h.bookingService.List(c.Request.Context(), &query, handler.ParsePage(c))
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	response, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *BookingHandler) Create(c *gin.Context) {
	h.create(c, false, msgCreated)
}

// CreatePublic accepts a booking request from the public site without a token
func (h *BookingHandler) CreatePublic(c *gin.Context) {
	h.create(c, true, msgReceived)
}

func (h *BookingHandler) create(c *gin.Context, public bool, msg i18n.Message) {
	var request BookingRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	id, err := h.bookingService.Create(c.Request.Context(), &request, public)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondCreated(c, id, msg)
}

func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	var request BookingRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.bookingService.Update(c.Request.Context(), id, &request); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondMessage(c, msgUpdated)
}

func (h *BookingHandler) ChangeStatus(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	var request StatusRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.bookingService.ChangeStatus(c.Request.Context(), id, request.Status); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondMessage(c, msgStatusChanged)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.bookingService.Delete(c.Request.Context(), id); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondMessage(c, msgDeleted)
}
