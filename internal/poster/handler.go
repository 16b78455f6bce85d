package poster

import (
	"net/http"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/handler"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/i18n"
	"github.com/gin-gonic/gin"
)

var (
	msgCreated   = i18n.Message{Ko: "포스터가 등록되었습니다.", En: "Poster created."}
	msgUpdated   = i18n.Message{Ko: "포스터가 수정되었습니다.", En: "Poster updated."}
	msgDeleted   = i18n.Message{Ko: "포스터가 삭제되었습니다.", En: "Poster deleted."}
	msgReordered = i18n.Message{Ko: "포스터 순서가 저장되었습니다.", En: "Poster order saved."}
)

type PosterHandler struct {
	posterService *PosterService
}

func NewPosterHandler(posterService *PosterService) *PosterHandler {
	return &PosterHandler{
		posterService: posterService,
	}
}

func (h *PosterHandler) List(c *gin.Context) {
	var query ListPostersQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	items, err := h.posterService.List(c.Request.Context(), &query)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondItems(c, items)
}

func (h *PosterHandler) Get(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	response, err := h.posterService.Get(c.Request.Context(), id)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PosterHandler) Create(c *gin.Context) {
	var request PosterRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	id, err := h.posterService.Create(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondCreated(c, id, msgCreated)
}

func (h *PosterHandler) Update(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	var request PosterRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.posterService.Update(c.Request.Context(), id, &request); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondMessage(c, msgUpdated)
}

func (h *PosterHandler) Delete(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.posterService.Delete(c.Request.Context(), id); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondMessage(c, msgDeleted)
}

func (h *PosterHandler) Reorder(c *gin.Context) {
	var request handler.ReorderRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.posterService.Reorder(c.Request.Context(), request.IDs); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondMessage(c, msgReordered)
}
