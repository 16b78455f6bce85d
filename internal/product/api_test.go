package product_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/activity"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/product"
	sharedError "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/handler"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/locale"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/middleware"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestEnvironment(t *testing.T) (*gin.Engine, *gorm.DB, *testutil.MemoryStorage) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	files := testutil.NewMemoryStorage()
	recorder := activity.NewActivityService(db, activity.NewActivityRepository())

	productHandler := product.NewProductHandler(product.NewProductService(db, product.NewProductRepository(), files, recorder))

	router := testutil.SetupTestRouter()
	group := router.Group("/api/v1/products")
	group.Use(middleware.JWT(testutil.NewMockTokenManager()))
	group.GET("", productHandler.List)
	group.POST("", productHandler.Create)
	group.PUT("/order", productHandler.Reorder)
	group.GET("/:id", productHandler.Get)
	group.PUT("/:id", productHandler.Update)
	group.DELETE("/:id", productHandler.Delete)

	return router, db, files
}

func jejuRequest() product.ProductRequest {
	spotID := uint32(11)
	return product.ProductRequest{
		Title:         locale.Required{Ko: "제주 3박 4일", En: "Jeju 4 days"},
		Region:        "jeju",
		Category:      "package",
		Price:         890000,
		DurationDays:  4,
		ThumbnailURL:  testutil.URLFor("products/thumb.png"),
		ThumbnailPath: "products/thumb.png",
		Images: []product.FileRef{
			{URL: testutil.URLFor("products/a.png"), Path: "products/a.png"},
			{URL: testutil.URLFor("products/b.png"), Path: "products/b.png"},
		},
		Schedule: []product.ScheduleItem{
			{Day: 2, Title: locale.Required{Ko: "한라산 등반"}},
			{Day: 1, Title: locale.Required{Ko: "공항 도착"}, SpotID: &spotID},
		},
	}
}

func createProduct(t *testing.T, router *gin.Engine, request product.ProductRequest) uint32 {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/products",
		Token:  testutil.AdminToken,
		Body:   request,
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var response struct {
		ID uint32 `json:"id"`
	}
	testutil.ParseResponse(t, recorder, &response)
	return response.ID
}

func getProduct(t *testing.T, router *gin.Engine, id uint32) product.ProductResponse {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("/api/v1/products/%d", id),
		Token:  testutil.AdminToken,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response product.ProductResponse
	testutil.ParseResponse(t, recorder, &response)
	return response
}

func putFiles(files *testutil.MemoryStorage, paths ...string) {
	for _, p := range paths {
		files.Put(p, []byte(p))
	}
}

func TestCreate_WithScheduleAndImages(t *testing.T) {
	// Given
	router, _, _ := setupTestEnvironment(t)

	// When
	id := createProduct(t, router, jejuRequest())

	// Then
	response := getProduct(t, router, id)
	assert.Equal(t, "KRW", response.Currency)
	assert.True(t, response.IsActive)
	require.Len(t, response.Schedule, 2)
	assert.Equal(t, 1, response.Schedule[0].Day)
	require.NotNil(t, response.Schedule[0].SpotID)
	assert.Equal(t, uint32(11), *response.Schedule[0].SpotID)
	require.Len(t, response.Images, 2)
	assert.Equal(t, "products/a.png", response.Images[0].Path)
}

func TestCreate_ScheduleItemValidation(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	request := jejuRequest()
	request.Schedule = []product.ScheduleItem{{Day: 0, Title: locale.Required{Ko: "잘못된 일차"}}}

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/products",
		Token:  testutil.AdminToken,
		Body:   request,
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdate_ReplacesChildrenAndRemovesUnusedFiles(t *testing.T) {
	// Given
	router, db, files := setupTestEnvironment(t)
	putFiles(files, "products/thumb.png", "products/a.png", "products/b.png", "products/c.png")
	id := createProduct(t, router, jejuRequest())

	request := jejuRequest()
	request.Images = []product.FileRef{
		{URL: testutil.URLFor("products/c.png"), Path: "products/c.png"},
		{URL: testutil.URLFor("products/a.png"), Path: "products/a.png"},
	}
	request.Schedule = request.Schedule[:1]

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    fmt.Sprintf("/api/v1/products/%d", id),
		Token:  testutil.AdminToken,
		Body:   request,
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	assert.False(t, files.Has("products/b.png"))
	assert.True(t, files.Has("products/a.png"))
	assert.True(t, files.Has("products/thumb.png"))

	response := getProduct(t, router, id)
	require.Len(t, response.Images, 2)
	assert.Equal(t, "products/c.png", response.Images[0].Path)
	assert.Len(t, response.Schedule, 1)

	var scheduleCount int64
	require.NoError(t, db.Model(&model.ProductSchedule{}).Count(&scheduleCount).Error)
	assert.Equal(t, int64(1), scheduleCount)
}

func TestDelete_RemovesChildrenAndFiles(t *testing.T) {
	// Given
	router, db, files := setupTestEnvironment(t)
	putFiles(files, "products/thumb.png", "products/a.png", "products/b.png")
	id := createProduct(t, router, jejuRequest())

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    fmt.Sprintf("/api/v1/products/%d", id),
		Token:  testutil.AdminToken,
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, files.Paths())

	var imageCount, scheduleCount int64
	require.NoError(t, db.Model(&model.ProductImage{}).Count(&imageCount).Error)
	require.NoError(t, db.Model(&model.ProductSchedule{}).Count(&scheduleCount).Error)
	assert.Zero(t, imageCount)
	assert.Zero(t, scheduleCount)
}

func TestReorder_And_List(t *testing.T) {
	// Given
	router, _, _ := setupTestEnvironment(t)
	first := createProduct(t, router, jejuRequest())
	second := createProduct(t, router, jejuRequest())

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/products/order",
		Token:  testutil.AdminToken,
		Body:   handler.ReorderRequest{IDs: []uint32{second, first}},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	// Then
	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/products?region=jeju",
		Token:  testutil.AdminToken,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Items []product.ProductSummary `json:"items"`
	}
	testutil.ParseResponse(t, recorder, &response)
	require.Len(t, response.Items, 2)
	assert.Equal(t, second, response.Items[0].ID)
	assert.Equal(t, 0, response.Items[0].SortOrder)
}

func TestCreate_RejectsPathOutsideUploadFolders(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(r *product.ProductRequest)
	}{
		{name: "thumbnail", modify: func(r *product.ProductRequest) { r.ThumbnailPath = "backups/db.dump" }},
		{name: "itinerary", modify: func(r *product.ProductRequest) { r.ItineraryPath = "../backups/db.dump" }},
		{name: "gallery image", modify: func(r *product.ProductRequest) { r.Images[1].Path = "backups/db.dump" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			router, _, files := setupTestEnvironment(t)
			files.Put("backups/db.dump", []byte("dump"))
			request := jejuRequest()
			tc.modify(&request)

			// When
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/products",
				Token:  testutil.AdminToken,
				Body:   request,
			})

			// Then
			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.Equal(t, sharedError.ValidationFailed.Code, errorResponse.Code)
			assert.True(t, files.Has("backups/db.dump"))
		})
	}
}
