package user

import (
	"net/http"

	sharedContext "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/handler"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/i18n"
	"github.com/gin-gonic/gin"
)

var (
	msgCreated         = i18n.Message{Ko: "사용자가 등록되었습니다.", En: "User created."}
	msgUpdated         = i18n.Message{Ko: "사용자 정보가 수정되었습니다.", En: "User updated."}
	msgDeleted         = i18n.Message{Ko: "사용자가 삭제되었습니다.", En: "User deleted."}
	msgPasswordChanged = i18n.Message{Ko: "비밀번호가 변경되었습니다.", En: "Password changed."}
)

type UserHandler struct {
	userService *UserService
}

func NewUserHandler(userService *UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) List(c *gin.Context) {
	items, err := h.userService.List(c.Request.Context())
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondItems(c, items)
}

func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	response, err := h.userService.Get(c.Request.Context(), userID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetMe returns the profile of the signed-in user
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := sharedContext.RequireUserID(c)
	if !ok {
		return
	}

	response, err := h.userService.Get(c.Request.Context(), userID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *UserHandler) Create(c *gin.Context) {
	var request CreateUserRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	userID, err := h.userService.Create(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondCreated(c, userID, msgCreated)
}

func (h *UserHandler) Update(c *gin.Context) {
	userID, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	var request UpdateUserRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.userService.Update(c.Request.Context(), userID, &request); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondMessage(c, msgUpdated)
}

func (h *UserHandler) Delete(c *gin.Context) {
	userID, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), userID); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondMessage(c, msgDeleted)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := sharedContext.RequireUserID(c)
	if !ok {
		return
	}

	var request ChangePasswordRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), userID, &request); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondMessage(c, msgPasswordChanged)
}
