package campaign

import (
	"net/http"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	campaignService *CampaignService
}

func NewCampaignHandler(campaignService *CampaignService) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
	}
}

func (h *CampaignHandler) Send(c *gin.Context) {
	var request SendRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.campaignService.Send(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
