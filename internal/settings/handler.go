package settings

import (
	"net/http"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/handler"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/i18n"
	"github.com/gin-gonic/gin"
)

var msgSaved = i18n.Message{Ko: "사이트 설정이 저장되었습니다.", En: "Site settings saved."}

type SettingsHandler struct {
	settingsService *SettingsService
}

func NewSettingsHandler(settingsService *SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// Get is served both to the admin screen and to the public site footer
func (h *SettingsHandler) Get(c *gin.Context) {
	response, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var request SettingsRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.settingsService.Update(c.Request.Context(), &request); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondMessage(c, msgSaved)
}
