package spot

import (
	"net/http"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/handler"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/i18n"
	"github.com/gin-gonic/gin"
)

var (
	msgCreated = i18n.Message{Ko: "관광지가 등록되었습니다.", En: "Spot created."}
	msgUpdated = i18n.Message{Ko: "관광지가 수정되었습니다.", En: "Spot updated."}
	msgDeleted = i18n.Message{Ko: "관광지가 삭제되었습니다.", En: "Spot deleted."}
)

type SpotHandler struct {
	spotService *SpotService
}

func NewSpotHandler(spotService *SpotService) *SpotHandler {
	return &SpotHandler{
		spotService: spotService,
	}
}

func (h *SpotHandler) List(c *gin.Context) {
	var query ListSpotsQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	items, err := h.spotService.List(c.Request.Context(), &query)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondItems(c, items)
}

func (h *SpotHandler) Get(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	response, err := h.spotService.Get(c.Request.Context(), id)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *SpotHandler) Create(c *gin.Context) {
	var request SpotRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	id, err := h.spotService.Create(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondCreated(c, id, msgCreated)
}

func (h *SpotHandler) Update(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	var request SpotRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.spotService.Update(c.Request.Context(), id, &request); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondMessage(c, msgUpdated)
}

func (h *SpotHandler) Delete(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.spotService.Delete(c.Request.Context(), id); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondMessage(c, msgDeleted)
}
