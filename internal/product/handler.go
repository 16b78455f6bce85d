package product

import (
	"net/http"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/handler"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/i18n"
	"github.com/gin-gonic/gin"
)

var (
	msgCreated   = i18n.Message{Ko: "상품이 등록되었습니다.", En: "Product created."}
	msgUpdated   = i18n.Message{Ko: "상품이 수정되었습니다.", En: "Product updated."}
	msgDeleted   = i18n.Message{Ko: "상품이 삭제되었습니다.", En: "Product deleted."}
	msgReordered = i18n.Message{Ko: "상품 순서가 저장되었습니다.", En: "Product order saved."}
)

type ProductHandler struct {
	productService *ProductService
}

func NewProductHandler(productService *ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

func (h *ProductHandler) List(c *gin.Context) {
	var query ListProductsQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	items, err := h.productService.List(c.Request.Context(), &query)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondItems(c, items)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	response, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var request ProductRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	id, err := h.productService.Create(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondCreated(c, id, msgCreated)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	var request ProductRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.productService.Update(c.Request.Context(), id, &request); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondMessage(c, msgUpdated)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondMessage(c, msgDeleted)
}

func (h *ProductHandler) Reorder(c *gin.Context) {
	var request handler.ReorderRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.productService.Reorder(c.Request.Context(), request.IDs); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondMessage(c, msgReordered)
}
