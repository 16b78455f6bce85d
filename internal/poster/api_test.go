package poster_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/activity"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/poster"
	sharedError "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/handler"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/locale"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/middleware"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestEnvironment(t *testing.T) (*gin.Engine, *testutil.MemoryStorage) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	files := testutil.NewMemoryStorage()
	recorder := activity.NewActivityService(db, activity.NewActivityRepository())

	posterHandler := poster.NewPosterHandler(poster.NewPosterService(db, poster.NewPosterRepository(), files, recorder))

	router := testutil.SetupTestRouter()
	group := router.Group("/api/v1/posters")
	group.Use(middleware.JWT(testutil.NewMockTokenManager()))
	group.GET("", posterHandler.List)
	group.POST("", posterHandler.Create)
	group.PUT("/order", posterHandler.Reorder)
	group.GET("/:id", posterHandler.Get)
	group.PUT("/:id", posterHandler.Update)
	group.DELETE("/:id", posterHandler.Delete)

	return router, files
}

func posterRequest(image, pdf string) poster.PosterRequest {
	request := poster.PosterRequest{
		Title:     locale.Required{Ko: "가을 프로모션", En: "Autumn promotion"},
		ImageURL:  testutil.URLFor(image),
		ImagePath: image,
	}
	if pdf != "" {
		request.PDFURL = testutil.URLFor(pdf)
		request.PDFPath = pdf
	}
	return request
}

func createPoster(t *testing.T, router *gin.Engine, request poster.PosterRequest) uint32 {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/posters",
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

func TestCreate_RequiresImage(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/posters",
		Token:  testutil.AdminToken,
		Body:   poster.PosterRequest{Title: locale.Required{Ko: "이미지 없음"}},
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdate_ReplacesPDF(t *testing.T) {
	// Given
	router, files := setupTestEnvironment(t)
	files.Put("posters/a.png", []byte("a"))
	files.Put("documents/old.pdf", []byte("old"))
	id := createPoster(t, router, posterRequest("posters/a.png", "documents/old.pdf"))

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    fmt.Sprintf("/api/v1/posters/%d", id),
		Token:  testutil.AdminToken,
		Body:   posterRequest("posters/a.png", "documents/new.pdf"),
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, files.Has("posters/a.png"))
	assert.False(t, files.Has("documents/old.pdf"))
}

func TestDelete_RemovesImageAndPDF(t *testing.T) {
	// Given
	router, files := setupTestEnvironment(t)
	files.Put("posters/a.png", []byte("a"))
	files.Put("documents/a.pdf", []byte("pdf"))
	id := createPoster(t, router, posterRequest("posters/a.png", "documents/a.pdf"))

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    fmt.Sprintf("/api/v1/posters/%d", id),
		Token:  testutil.AdminToken,
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, files.Paths())
}

func TestReorder(t *testing.T) {
	// Given
	router, _ := setupTestEnvironment(t)
	a := createPoster(t, router, posterRequest("posters/a.png", ""))
	b := createPoster(t, router, posterRequest("posters/b.png", ""))

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/posters/order",
		Token:  testutil.AdminToken,
		Body:   handler.ReorderRequest{IDs: []uint32{b, a}},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	// Then
	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/posters",
		Token:  testutil.AdminToken,
	})
	var response struct {
		Items []poster.PosterResponse `json:"items"`
	}
	testutil.ParseResponse(t, recorder, &response)
	require.Len(t, response.Items, 2)
	assert.Equal(t, b, response.Items[0].ID)
	assert.Equal(t, a, response.Items[1].ID)
}

func TestReorder_DuplicateID(t *testing.T) {
	router, _ := setupTestEnvironment(t)
	a := createPoster(t, router, posterRequest("posters/a.png", ""))
	createPoster(t, router, posterRequest("posters/b.png", ""))

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/posters/order",
		Token:  testutil.AdminToken,
		Body:   handler.ReorderRequest{IDs: []uint32{a, a}},
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreate_RejectsPathOutsideUploadFolders(t *testing.T) {
	testCases := []struct {
		name    string
		request poster.PosterRequest
	}{
		{name: "image", request: posterRequest("backups/db.dump", "")},
		{name: "pdf", request: posterRequest("posters/a.png", "backups/db.dump")},
		{name: "generated image", request: posterRequest("generated/batch/1.png", "")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			router, files := setupTestEnvironment(t)
			files.Put("backups/db.dump", []byte("dump"))

			// When
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/posters",
				Token:  testutil.AdminToken,
				Body:   tc.request,
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
