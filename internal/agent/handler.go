package agent

import (
	"net/http"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/handler"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/i18n"
	"github.com/gin-gonic/gin"
)

var (
	msgCreated = i18n.Message{Ko: "여행사가 등록되었습니다.", En: "Travel agent created."}
	msgUpdated = i18n.Message{Ko: "여행사가 수정되었습니다.", En: "Travel agent updated."}
	msgDeleted = i18n.Message{Ko: "여행사가 삭제되었습니다.", En: "Travel agent deleted."}
)

type AgentHandler struct {
	agentService *AgentService
}

func NewAgentHandler(agentService *AgentService) *AgentHandler {
	return &AgentHandler{
		agentService: agentService,
	}
}

func (h *AgentHandler) List(c *gin.Context) {
	var query ListAgentsQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	items, err := h.agentService.List(c.Request.Context(), &query)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondItems(c, items)
}

func (h *AgentHandler) Get(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	response, err := h.agentService.Get(c.Request.Context(), id)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AgentHandler) Create(c *gin.Context) {
	var request AgentRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	id, err := h.agentService.Create(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondCreated(c, id, msgCreated)
}

func (h *AgentHandler) Update(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	var request AgentRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.agentService.Update(c.Request.Context(), id, &request); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondMessage(c, msgUpdated)
}

func (h *AgentHandler) Delete(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.agentService.Delete(c.Request.Context(), id); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondMessage(c, msgDeleted)
}
