package activity

import (
	"net/http"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/handler"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/i18n"
	"github.com/gin-gonic/gin"
)

var msgLogCreated = i18n.Message{Ko: "활동 로그가 기록되었습니다.", En: "Activity logged."}

type ActivityHandler struct {
	activityService *ActivityService
}

func NewActivityHandler(activityService *ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

func (h *ActivityHandler) List(c *gin.Context) {
	var query ListLogsQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	response, err := h.activityService.List(c.Request.Context(), &query, handler.ParsePage(c))
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ActivityHandler) Create(c *gin.Context) {
	var request CreateLogRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	id, err := h.activityService.Create(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondCreated(c, id, msgLogCreated)
}
