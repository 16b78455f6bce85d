package handler

import (
	"fmt"
	"net/http"
	"strconv"

	sharedError "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/i18n"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/validator"
	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// BindJSON parses and validates JSON request body
// Returns true if binding succeeded, false if failed (response already sent)
//
// Usage:
//
//	var req CreateBannerRequest
//	if !handler.BindJSON(c, &req) {
//	    return
//	}
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		respondBindError(c, err)
		return false
	}
	return true
}

// BindQuery parses and validates query parameters into obj
func BindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		respondBindError(c, err)
		return false
	}
	return true
}

func respondBindError(c *gin.Context, err error) {
	// Add error to context for middleware logging
	c.Error(err)

	lang := i18n.FromGin(c)

	// Check if it's a validation error
	if resp, ok := validator.ToErrorResponse(err, lang); ok {
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	// JSON parsing error or other binding errors
	c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest.Localize(lang))
}

// RespondError sends an error response with logging
//
// Usage:
//
//	if err := service.DoSomething(); err != nil {
//	    handler.RespondError(c, err, sharedError.InternalServerError)
//	    return
//	}
func RespondError(c *gin.Context, err error, errResp sharedError.ErrorResponse) {
	// Add error to context for middleware logging
	c.Error(err)

	// Send error response
	c.JSON(errResp.Status, errResp.Localize(i18n.FromGin(c)))
}

// RespondServiceError resolves a registered domain error or falls back to ERROR-003
func RespondServiceError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		RespondError(c, err, resp)
		return
	}

	RespondError(c, err, sharedError.InternalServerError)
}

// RespondCreated answers 201 with the new id and a localized message
func RespondCreated(c *gin.Context, id any, msg i18n.Message) {
	c.JSON(http.StatusCreated, gin.H{
		"id":      id,
		"message": msg.In(i18n.FromGin(c)),
	})
}

// RespondMessage answers 200 with a localized message
func RespondMessage(c *gin.Context, msg i18n.Message) {
	c.JSON(http.StatusOK, gin.H{
		"message": msg.In(i18n.FromGin(c)),
	})
}

// ParseID reads a numeric path parameter
// Returns false if the parameter is not a positive integer (response already sent)
func ParseID(c *gin.Context, name string) (uint32, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err == nil && id == 0 {
		err = fmt.Errorf("invalid %s: 0", name)
	}
	if err != nil {
		RespondError(c, err, sharedError.InvalidRequest)
		c.Abort()
		return 0, false
	}
	return uint32(id), true
}

// Page is a normalized page request
type Page struct {
	Page int
	Size int
}

// Offset returns the number of rows to skip
func (p Page) Offset() int {
	return (p.Page - 1) * p.Size
}

// ParsePage reads ?page= and ?size= with sane bounds
func ParsePage(c *gin.Context) Page {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(DefaultPageSize)))
	if err != nil || size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return Page{Page: page, Size: size}
}

// PageResponse wraps a paginated list
type PageResponse[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
}

// NewPageResponse builds a PageResponse, never returning a null items array
func NewPageResponse[T any](items []T, total int64, page Page) PageResponse[T] {
	if items == nil {
		items = []T{}
	}
	return PageResponse[T]{Items: items, Total: total, Page: page.Page, Size: page.Size}
}

// ReorderRequest is the body of every drag-and-drop ordering endpoint
type ReorderRequest struct {
	IDs []uint32 `json:"ids" binding:"required,min=1"`
}

// RespondItems answers 200 with an unpaginated list
func RespondItems[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
