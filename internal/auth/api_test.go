package auth_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/activity"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/auth"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	sharedError "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/testutil"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/token"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testPassword = "password123"

type testEnv struct {
	router       *gin.Engine
	db           *gorm.DB
	tokenManager *token.JWTManager
}

// setupTestEnvironment creates all dependencies needed for auth handler tests
func setupTestEnvironment(t *testing.T) *testEnv {
	t.Helper()

	// Setup test database
	db := testutil.SetupTestDB(t)

	// Setup dependencies
	tokenManager := token.NewJWTManager(testutil.NewTestConfig())
	recorder := activity.NewActivityService(db, activity.NewActivityRepository())
	authService := auth.NewAuthService(db, user.NewUserRepository(), tokenManager, recorder)
	authHandler := auth.NewAuthHandler(authService)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/login", authHandler.Login)
	router.POST("/api/v1/auth/refresh", authHandler.Refresh)

	return &testEnv{router: router, db: db, tokenManager: tokenManager}
}

func seedUser(t *testing.T, db *gorm.DB, email string, active bool) *model.User {
	t.Helper()

	hashed, err := user.HashPassword(testPassword)
	require.NoError(t, err)

	account := model.NewUser("Test User", email, "010-1234-5678", hashed, model.RoleEditor)
	account.IsActive = active
	require.NoError(t, db.Create(account).Error)
	return account
}

func login(t *testing.T, env *testEnv, email, password string) (int, auth.LoginResponse, sharedError.ErrorResponse) {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body:   auth.LoginRequest{Email: email, Password: password},
	})

	var response auth.LoginResponse
	var errorResponse sharedError.ErrorResponse
	if recorder.Code == http.StatusOK {
		testutil.ParseResponse(t, recorder, &response)
	} else {
		testutil.ParseResponse(t, recorder, &errorResponse)
	}
	return recorder.Code, response, errorResponse
}

func TestLogin_Success(t *testing.T) {
	// Given: an active user
	env := setupTestEnvironment(t)
	account := seedUser(t, env.db, "editor@tour.test", true)

	// When
	code, response, _ := login(t, env, "editor@tour.test", testPassword)

	// Then: tokens carry the user's role
	require.Equal(t, http.StatusOK, code)

	claims, err := env.tokenManager.ValidateToken(response.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, token.ACCESS, claims.TokenType)
	assert.Equal(t, model.RoleEditor, claims.Role)
	assert.Equal(t, "editor@tour.test", claims.Email)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Equal(t, int64(env.tokenManager.AccessExpiry().Seconds()), response.ExpiresIn)

	// Then: last login is stamped and a login activity is written
	stored, err := user.NewUserRepository().FindByID(context.Background(), env.db, account.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLoginAt)

	var logs []model.ActivityLog
	require.NoError(t, env.db.Where("action_type = ?", model.ActionLogin).Find(&logs).Error)
	require.Len(t, logs, 1)
	require.NotNil(t, logs[0].ActorID)
	assert.Equal(t, account.ID, *logs[0].ActorID)
}

func TestLogin_Failures(t *testing.T) {
	env := setupTestEnvironment(t)
	seedUser(t, env.db, "editor@tour.test", true)
	seedUser(t, env.db, "disabled@tour.test", false)

	testCases := []struct {
		name     string
		email    string
		password string
		status   int
		code     string
	}{
		{name: "unknown email", email: "nobody@tour.test", password: testPassword, status: http.StatusBadRequest, code: "AUTH-003"},
		{name: "wrong password", email: "editor@tour.test", password: "wrong-password", status: http.StatusBadRequest, code: "AUTH-003"},
		{name: "inactive user", email: "disabled@tour.test", password: testPassword, status: http.StatusForbidden, code: "AUTH-004"},
		{name: "inactive user with wrong password", email: "disabled@tour.test", password: "wrong-password", status: http.StatusBadRequest, code: "AUTH-003"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, _, errorResponse := login(t, env, tc.email, tc.password)

			assert.Equal(t, tc.status, code)
			assert.Equal(t, tc.code, errorResponse.Code)
			assert.NotEmpty(t, errorResponse.Message)
		})
	}
}

func TestLogin_ValidationError(t *testing.T) {
	env := setupTestEnvironment(t)

	testCases := []struct {
		name string
		body map[string]string
	}{
		{name: "missing email", body: map[string]string{"password": testPassword}},
		{name: "invalid email", body: map[string]string{"email": "invalid-email-format", "password": testPassword}},
		{name: "short password", body: map[string]string{"email": "editor@tour.test", "password": "short"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/auth/login",
				Body:   tc.body,
			})

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestRefresh(t *testing.T) {
	// Given: a logged-in user
	env := setupTestEnvironment(t)
	seedUser(t, env.db, "editor@tour.test", true)
	code, pair, _ := login(t, env, "editor@tour.test", testPassword)
	require.Equal(t, http.StatusOK, code)

	testCases := []struct {
		name   string
		token  string
		status int
		code   string
	}{
		{name: "refresh token", token: pair.RefreshToken, status: http.StatusOK},
		{name: "access token rejected", token: pair.AccessToken, status: http.StatusUnauthorized, code: "AUTH-005"},
		{name: "garbage", token: "not-a-jwt", status: http.StatusUnauthorized, code: "AUTH-000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/auth/refresh",
				Body:   auth.RefreshRequest{RefreshToken: tc.token},
			})

			require.Equal(t, tc.status, recorder.Code)
			if tc.code == "" {
				var response auth.LoginResponse
				testutil.ParseResponse(t, recorder, &response)
				assert.NotEmpty(t, response.AccessToken)
				assert.NotEmpty(t, response.RefreshToken)
				return
			}

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.Equal(t, tc.code, errorResponse.Code)
		})
	}
}

func TestRefresh_DeactivatedUser(t *testing.T) {
	// Given
	env := setupTestEnvironment(t)
	account := seedUser(t, env.db, "editor@tour.test", true)
	code, pair, _ := login(t, env, "editor@tour.test", testPassword)
	require.Equal(t, http.StatusOK, code)

	// When: the account is disabled after login
	require.NoError(t, env.db.Model(account).UpdateColumn("is_active", false).Error)
	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/refresh",
		Body:   auth.RefreshRequest{RefreshToken: pair.RefreshToken},
	})

	// Then
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
