package banner_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/activity"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/banner"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
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

type testEnv struct {
	router  *gin.Engine
	db      *gorm.DB
	storage *testutil.MemoryStorage
}

func setupTestEnvironment(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	files := testutil.NewMemoryStorage()
	recorder := activity.NewActivityService(db, activity.NewActivityRepository())

	bannerService := banner.NewBannerService(db, banner.NewBannerRepository(), files, recorder)
	bannerHandler := banner.NewBannerHandler(bannerService)

	router := testutil.SetupTestRouter()
	group := router.Group("/api/v1/banners")
	group.Use(middleware.JWT(testutil.NewMockTokenManager()))
	group.GET("", bannerHandler.List)
	group.POST("", bannerHandler.Create)
	group.PUT("/order", bannerHandler.Reorder)
	group.GET("/:id", bannerHandler.Get)
	group.PUT("/:id", bannerHandler.Update)
	group.DELETE("/:id", bannerHandler.Delete)

	return &testEnv{router: router, db: db, storage: files}
}

func newBannerRequest(title, path string) banner.BannerRequest {
	return banner.BannerRequest{
		Title:     locale.Required{Ko: title, En: title + " (en)"},
		ImageURL:  testutil.URLFor(path),
		ImagePath: path,
	}
}

func createBanner(t *testing.T, env *testEnv, title, path string) uint32 {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/banners",
		Token:  testutil.AdminToken,
		Body:   newBannerRequest(title, path),
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var response struct {
		ID uint32 `json:"id"`
	}
	testutil.ParseResponse(t, recorder, &response)
	return response.ID
}

func listBanners(t *testing.T, env *testEnv) []banner.BannerResponse {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/banners",
		Token:  testutil.AdminToken,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Items []banner.BannerResponse `json:"items"`
	}
	testutil.ParseResponse(t, recorder, &response)
	return response.Items
}

func TestCreate_AppendsToOrder(t *testing.T) {
	// Given
	env := setupTestEnvironment(t)

	// When
	first := createBanner(t, env, "봄 특가", "banners/a.png")
	second := createBanner(t, env, "여름 특가", "banners/b.png")

	// Then
	items := listBanners(t, env)
	require.Len(t, items, 2)
	assert.Equal(t, first, items[0].ID)
	assert.Equal(t, 0, items[0].SortOrder)
	assert.Equal(t, second, items[1].ID)
	assert.Equal(t, 1, items[1].SortOrder)
	assert.True(t, items[0].IsActive)

	var stored model.Banner
	require.NoError(t, env.db.First(&stored, first).Error)
	require.NotNil(t, stored.CreatedBy)
	assert.Equal(t, uint32(1), *stored.CreatedBy)
}

func TestCreate_MissingTitle(t *testing.T) {
	env := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/banners",
		Token:  testutil.AdminToken,
		Body:   map[string]any{"title": map[string]string{"en": "only english"}, "imageUrl": "https://x"},
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdate_RemovesReplacedImage(t *testing.T) {
	// Given
	env := setupTestEnvironment(t)
	env.storage.Put("banners/old.png", []byte("old"))
	env.storage.Put("banners/new.png", []byte("new"))
	id := createBanner(t, env, "배너", "banners/old.png")

	// When
	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    fmt.Sprintf("/api/v1/banners/%d", id),
		Token:  testutil.AdminToken,
		Body:   newBannerRequest("배너 수정", "banners/new.png"),
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.False(t, env.storage.Has("banners/old.png"))
	assert.True(t, env.storage.Has("banners/new.png"))

	items := listBanners(t, env)
	require.Len(t, items, 1)
	assert.Equal(t, "배너 수정", items[0].Title.Ko)
}

func TestDelete_StorageFailureDoesNotFail(t *testing.T) {
	// Given
	env := setupTestEnvironment(t)
	env.storage.Put("banners/a.png", []byte("a"))
	env.storage.FailDelete["banners/a.png"] = true
	id := createBanner(t, env, "배너", "banners/a.png")

	// When
	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    fmt.Sprintf("/api/v1/banners/%d", id),
		Token:  testutil.AdminToken,
	})

	// Then
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, listBanners(t, env))

	var logs []model.ActivityLog
	require.NoError(t, env.db.Where("action_type = ?", model.ActionDelete).Find(&logs).Error)
	assert.Len(t, logs, 1)
}

func TestReorder(t *testing.T) {
	// Given
	env := setupTestEnvironment(t)
	a := createBanner(t, env, "A", "banners/a.png")
	b := createBanner(t, env, "B", "banners/b.png")
	c := createBanner(t, env, "C", "banners/c.png")

	// When
	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/banners/order",
		Token:  testutil.AdminToken,
		Body:   handler.ReorderRequest{IDs: []uint32{c, a, b}},
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)
	items := listBanners(t, env)
	require.Len(t, items, 3)
	assert.Equal(t, []uint32{c, a, b}, []uint32{items[0].ID, items[1].ID, items[2].ID})
}

func TestReorder_Mismatch(t *testing.T) {
	// Given
	env := setupTestEnvironment(t)
	a := createBanner(t, env, "A", "banners/a.png")
	createBanner(t, env, "B", "banners/b.png")

	// When: one id is missing
	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/banners/order",
		Token:  testutil.AdminToken,
		Body:   handler.ReorderRequest{IDs: []uint32{a}},
	})

	// Then
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "ORDER-001", errorResponse.Code)
}

func TestGet_NotFound_English(t *testing.T) {
	env := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method:   http.MethodGet,
		URL:      "/api/v1/banners/99",
		Token:    testutil.AdminToken,
		Language: "en-US,en;q=0.9",
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "BANNER-001", errorResponse.Code)
	assert.Equal(t, "Banner not found.", errorResponse.Message)
}

func TestList_ActiveFilter(t *testing.T) {
	// Given
	env := setupTestEnvironment(t)
	createBanner(t, env, "A", "banners/a.png")
	id := createBanner(t, env, "B", "banners/b.png")

	inactive := false
	request := newBannerRequest("B", "banners/b.png")
	request.IsActive = &inactive
	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    fmt.Sprintf("/api/v1/banners/%d", id),
		Token:  testutil.AdminToken,
		Body:   request,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	// When
	recorder = testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/banners?active=true",
		Token:  testutil.AdminToken,
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)
	var response struct {
		Items []banner.BannerResponse `json:"items"`
	}
	testutil.ParseResponse(t, recorder, &response)
	require.Len(t, response.Items, 1)
	assert.Equal(t, "A", response.Items[0].Title.Ko)
}

func TestCreate_RejectsPathOutsideUploadFolders(t *testing.T) {
	for _, path := range []string{"backups/db.dump", "generated/batch/1.png", "banners/../backups/db.dump"} {
		t.Run(path, func(t *testing.T) {
			// Given
			env := setupTestEnvironment(t)
			env.storage.Put("backups/db.dump", []byte("dump"))

			// When
			recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/banners",
				Token:  testutil.AdminToken,
				Body:   newBannerRequest("배너", path),
			})

			// Then
			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.Equal(t, sharedError.ValidationFailed.Code, errorResponse.Code)
			assert.Empty(t, listBanners(t, env))
			assert.True(t, env.storage.Has("backups/db.dump"))
		})
	}
}

func TestUpdate_RejectsPathOutsideUploadFolders(t *testing.T) {
	// Given
	env := setupTestEnvironment(t)
	env.storage.Put("banners/a.png", []byte("a"))
	env.storage.Put("backups/db.dump", []byte("dump"))
	id := createBanner(t, env, "배너", "banners/a.png")

	// When
	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    fmt.Sprintf("/api/v1/banners/%d", id),
		Token:  testutil.AdminToken,
		Body:   newBannerRequest("배너", "backups/db.dump"),
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    fmt.Sprintf("/api/v1/banners/%d", id),
		Token:  testutil.AdminToken,
	})

	// Then: only the banner's own file is removed
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.False(t, env.storage.Has("banners/a.png"))
	assert.True(t, env.storage.Has("backups/db.dump"))
}

func TestList_SharedSortOrderFallsBackToID(t *testing.T) {
	// Given: two banners appended at the same time
	env := setupTestEnvironment(t)
	first := createBanner(t, env, "A", "banners/a.png")
	second := createBanner(t, env, "B", "banners/b.png")
	require.NoError(t, env.db.Model(&model.Banner{}).Where("id = ?", second).Update("sort_order", 0).Error)

	// When
	items := listBanners(t, env)

	// Then
	require.Len(t, items, 2)
	assert.Equal(t, []uint32{first, second}, []uint32{items[0].ID, items[1].ID})
}
