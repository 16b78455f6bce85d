package booking_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/activity"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/booking"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/product"
	sharedError "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/handler"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/middleware"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestEnvironment(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	recorder := activity.NewActivityService(db, activity.NewActivityRepository())
	bookingService := booking.NewBookingService(db, booking.NewBookingRepository(), product.NewProductRepository(), recorder)
	bookingHandler := booking.NewBookingHandler(bookingService)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/public/bookings", bookingHandler.CreatePublic)

	group := router.Group("/api/v1/bookings")
	group.Use(middleware.JWT(testutil.NewMockTokenManager()))
	group.GET("", bookingHandler.List)
	group.POST("", bookingHandler.Create)
	group.GET("/:id", bookingHandler.Get)
	group.PUT("/:id", bookingHandler.Update)
	group.PATCH("/:id/status", bookingHandler.ChangeStatus)
	group.DELETE("/:id", bookingHandler.Delete)

	return router, db
}

func seedProduct(t *testing.T, db *gorm.DB, title string, active bool) uint32 {
	t.Helper()

	p := &model.Product{Title: model.LocalizedText{Ko: title}, Currency: "KRW", IsActive: true}
	require.NoError(t, db.Create(p).Error)
	if !active {
		require.NoError(t, db.Model(p).Update("is_active", false).Error)
	}
	return p.ID
}

func bookingRequest(productID uint32, travelDate string) booking.BookingRequest {
	agentID := uint32(5)
	return booking.BookingRequest{
		ProductID:     productID,
		CustomerName:  "홍길동",
		CustomerEmail: "hong@example.com",
		CustomerPhone: "010-1234-5678",
		TravelDate:    travelDate,
		Adults:        2,
		Children:      1,
		AgentID:       &agentID,
	}
}

func createBooking(t *testing.T, router *gin.Engine, request booking.BookingRequest) uint32 {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/bookings",
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

func changeStatus(t *testing.T, router *gin.Engine, id uint32, status string) int {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPatch,
		URL:    fmt.Sprintf("/api/v1/bookings/%d/status", id),
		Token:  testutil.AdminToken,
		Body:   booking.StatusRequest{Status: status},
	})
	return recorder.Code
}

func TestCreatePublic_PendingWithoutAgent(t *testing.T) {
	// Given
	router, db := setupTestEnvironment(t)
	productID := seedProduct(t, db, "제주 3박 4일", true)

	// When: no token
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:   http.MethodPost,
		URL:      "/api/v1/public/bookings",
		Body:     bookingRequest(productID, "2026-12-24"),
		Language: "en",
	})

	// Then
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var response struct {
		ID      uint32 `json:"id"`
		Message string `json:"message"`
	}
	testutil.ParseResponse(t, recorder, &response)
	assert.Contains(t, response.Message, "received")

	var stored model.Booking
	require.NoError(t, db.First(&stored, response.ID).Error)
	assert.Equal(t, model.BookingPending, stored.Status)
	assert.Equal(t, "제주 3박 4일", stored.ProductTitle)
	assert.Nil(t, stored.AgentID)
	assert.Nil(t, stored.CreatedBy)
}

func TestCreatePublic_InactiveProduct(t *testing.T) {
	router, db := setupTestEnvironment(t)
	productID := seedProduct(t, db, "판매 중지", false)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/public/bookings",
		Body:   bookingRequest(productID, "2026-12-24"),
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCreate_UnknownProduct(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/bookings",
		Token:  testutil.AdminToken,
		Body:   bookingRequest(404, "2026-12-24"),
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "PRODUCT-001", errorResponse.Code)
}

func TestCreate_InvalidTravelDate(t *testing.T) {
	router, db := setupTestEnvironment(t)
	productID := seedProduct(t, db, "제주", true)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/bookings",
		Token:  testutil.AdminToken,
		Body:   bookingRequest(productID, "24/12/2026"),
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestChangeStatus_Transitions(t *testing.T) {
	// Given
	router, db := setupTestEnvironment(t)
	productID := seedProduct(t, db, "제주", true)
	id := createBooking(t, router, bookingRequest(productID, "2026-12-24"))

	// When / Then
	assert.Equal(t, http.StatusConflict, changeStatus(t, router, id, model.BookingCompleted))
	assert.Equal(t, http.StatusOK, changeStatus(t, router, id, model.BookingConfirmed))
	assert.Equal(t, http.StatusOK, changeStatus(t, router, id, model.BookingCompleted))
	assert.Equal(t, http.StatusConflict, changeStatus(t, router, id, model.BookingCancelled))

	var stored model.Booking
	require.NoError(t, db.First(&stored, id).Error)
	assert.Equal(t, model.BookingCompleted, stored.Status)
}

func TestChangeStatus_InvalidStatusValue(t *testing.T) {
	router, db := setupTestEnvironment(t)
	id := createBooking(t, router, bookingRequest(seedProduct(t, db, "제주", true), "2026-12-24"))

	assert.Equal(t, http.StatusBadRequest, changeStatus(t, router, id, "shipped"))
}

func TestList_FiltersAndNewestFirst(t *testing.T) {
	// Given
	router, db := setupTestEnvironment(t)
	jeju := seedProduct(t, db, "제주", true)
	busan := seedProduct(t, db, "부산", true)
	first := createBooking(t, router, bookingRequest(jeju, "2026-11-01"))
	second := createBooking(t, router, bookingRequest(jeju, "2026-11-30"))
	createBooking(t, router, bookingRequest(busan, "2026-12-15"))
	require.Equal(t, http.StatusOK, changeStatus(t, router, second, model.BookingConfirmed))

	list := func(url string) handler.PageResponse[booking.BookingResponse] {
		recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
			Method: http.MethodGet,
			URL:    url,
			Token:  testutil.AdminToken,
		})
		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

		var response handler.PageResponse[booking.BookingResponse]
		testutil.ParseResponse(t, recorder, &response)
		return response
	}

	// When / Then
	all := list("/api/v1/bookings")
	assert.Equal(t, int64(3), all.Total)

	byProduct := list(fmt.Sprintf("/api/v1/bookings?productId=%d", jeju))
	require.Len(t, byProduct.Items, 2)
	assert.Equal(t, second, byProduct.Items[0].ID)
	assert.Equal(t, first, byProduct.Items[1].ID)

	confirmed := list("/api/v1/bookings?status=confirmed")
	require.Len(t, confirmed.Items, 1)
	assert.Equal(t, second, confirmed.Items[0].ID)

	november := list("/api/v1/bookings?from=2026-11-01&to=2026-11-30")
	assert.Equal(t, int64(2), november.Total)

	paged := list("/api/v1/bookings?page=2&size=2")
	assert.Len(t, paged.Items, 1)
	assert.Equal(t, int64(3), paged.Total)
}

func TestList_InvalidRange(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/bookings?from=2026-12-01&to=2026-11-01",
		Token:  testutil.AdminToken,
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "BOOKING-003", errorResponse.Code)
}

func TestUpdate_And_Delete(t *testing.T) {
	// Given
	router, db := setupTestEnvironment(t)
	jeju := seedProduct(t, db, "제주", true)
	busan := seedProduct(t, db, "부산", true)
	id := createBooking(t, router, bookingRequest(jeju, "2026-12-24"))

	// When: move to another product
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    fmt.Sprintf("/api/v1/bookings/%d", id),
		Token:  testutil.AdminToken,
		Body:   bookingRequest(busan, "2026-12-25"),
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	// Then
	var stored model.Booking
	require.NoError(t, db.First(&stored, id).Error)
	assert.Equal(t, "부산", stored.ProductTitle)
	assert.Equal(t, model.BookingPending, stored.Status)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    fmt.Sprintf("/api/v1/bookings/%d", id),
		Token:  testutil.AdminToken,
	})
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("/api/v1/bookings/%d", id),
		Token:  testutil.AdminToken,
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
