package content

import (
	"net/http"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/handler"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/i18n"
	"github.com/gin-gonic/gin"
)

var (
	msgSaved   = i18n.Message{Ko: "콘텐츠가 저장되었습니다.", En: "Content saved."}
	msgDeleted = i18n.Message{Ko: "콘텐츠가 삭제되었습니다.", En: "Content deleted."}
)

type ContentHandler struct {
	contentService *ContentService
}

func NewContentHandler(contentService *ContentService) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
	}
}

func (h *ContentHandler) List(c *gin.Context) {
	items, err := h.contentService.List(c.Request.Context())
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondItems(c, items)
}

func (h *ContentHandler) Get(c *gin.Context) {
	response, err := h.contentService.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetPublic serves the rendered page for ?lang= or Accept-Language
func (h *ContentHandler) GetPublic(c *gin.Context) {
	response, err := h.contentService.Render(c.Request.Context(), c.Param("key"), i18n.FromGin(c))
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ContentHandler) Upsert(c *gin.Context) {
	var request ContentRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	key := c.Param("key")
	created, err := h.contentService.Upsert(c.Request.Context(), key, &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"key":     key,
		"message": msgSaved.In(i18n.FromGin(c)),
	})
}

func (h *ContentHandler) Delete(c *gin.Context) {
	if err := h.contentService.Delete(c.Request.Context(), c.Param("key")); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondMessage(c, msgDeleted)
}
