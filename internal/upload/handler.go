package upload

import (
	"errors"
	"fmt"
	"net/http"

	sharedError "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

// multipartOverhead leaves room for boundaries and the folder field on top of the file itself
const multipartOverhead = 1 << 20

type UploadHandler struct {
	uploadService *UploadService
}

func NewUploadHandler(uploadService *UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.uploadService.MaxBytes()+multipartOverhead)

	header, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			handler.RespondServiceError(c, fmt.Errorf("%v %w", err, ErrFileTooLarge))
			return
		}
		handler.RespondError(c, err, sharedError.InvalidRequest)
		return
	}

	file, err := header.Open()
	if err != nil {
		handler.RespondError(c, err, sharedError.InvalidRequest)
		return
	}
	defer file.Close()

	object, err := h.uploadService.Upload(c.Request.Context(), c.PostForm("folder"), file)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, object)
}

func (h *UploadHandler) Delete(c *gin.Context) {
	var request DeleteFilesRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.uploadService.Delete(c.Request.Context(), request.Paths)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
