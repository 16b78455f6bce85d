package banner

import (
	"net/http"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/handler"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/i18n"
	"github.com/gin-gonic/gin"
)

var (
	msgCreated   = i18n.Message{Ko: "배너가 등록되었습니다.", En: "Banner created."}
	msgUpdated   = i18n.Message{Ko: "배너가 수정되었습니다.", En: "Banner updated."}
	msgDeleted   = i18n.Message{Ko: "배너가 삭제되었습니다.", En: "Banner deleted."}
	msgReordered = i18n.Message{Ko: "배너 순서가 저장되었습니다.", En: "Banner order saved."}
)

type BannerHandler struct {
	bannerService *BannerService
}

func NewBannerHandler(bannerService *BannerService) *BannerHandler {
	return &BannerHandler{
		bannerService: bannerService,
	}
}

func (h *BannerHandler) List(c *gin.Context) {
	var query ListBannersQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	items, err := h.bannerService.List(c.Request.Context(), &query)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondItems(c, items)
}

func (h *BannerHandler) Get(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	response, err := h.bannerService.Get(c.Request.Context(), id)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *BannerHandler) Create(c *gin.Context) {
	var request BannerRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	id, err := h.bannerService.Create(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondCreated(c, id, msgCreated)
}

func (h *BannerHandler) Update(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	var request BannerRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.bannerService.Update(c.Request.Context(), id, &request); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondMessage(c, msgUpdated)
}

func (h *BannerHandler) Delete(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.bannerService.Delete(c.Request.Context(), id); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondMessage(c, msgDeleted)
}

func (h *BannerHandler) Reorder(c *gin.Context) {
	var request handler.ReorderRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.bannerService.Reorder(c.Request.Context(), request.IDs); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondMessage(c, msgReordered)
}
