package agent_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/activity"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/agent"
	sharedError "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/error"
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

	agentHandler := agent.NewAgentHandler(agent.NewAgentService(db, agent.NewAgentRepository(), files, recorder))

	router := testutil.SetupTestRouter()
	group := router.Group("/api/v1/agents")
	group.Use(middleware.JWT(testutil.NewMockTokenManager()))
	group.GET("", agentHandler.List)
	group.POST("", agentHandler.Create)
	group.GET("/:id", agentHandler.Get)
	group.PUT("/:id", agentHandler.Update)
	group.DELETE("/:id", agentHandler.Delete)

	return router, files
}

func agentRequest(company, email string) agent.AgentRequest {
	return agent.AgentRequest{
		Name:        "담당자",
		CompanyName: company,
		Email:       email,
		PhoneNumber: "+81 3 1234 5678",
		Country:     "JP",
	}
}

func createAgent(t *testing.T, router *gin.Engine, request agent.AgentRequest) uint32 {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/agents",
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

func listAgents(t *testing.T, router *gin.Engine, url string) []agent.AgentResponse {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    url,
		Token:  testutil.AdminToken,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Items []agent.AgentResponse `json:"items"`
	}
	testutil.ParseResponse(t, recorder, &response)
	return response.Items
}

func TestCreate_DuplicateEmail(t *testing.T) {
	// Given
	router, _ := setupTestEnvironment(t)
	createAgent(t, router, agentRequest("Sakura Travel", "sales@sakura.test"))

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/agents",
		Token:  testutil.AdminToken,
		Body:   agentRequest("Other", "sales@sakura.test"),
	})

	// Then
	assert.Equal(t, http.StatusConflict, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "AGENT-002", errorResponse.Code)
}

func TestCreate_InvalidEmail(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/agents",
		Token:  testutil.AdminToken,
		Body:   agentRequest("Sakura Travel", "not-an-email"),
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdate_KeepOwnEmail(t *testing.T) {
	// Given
	router, _ := setupTestEnvironment(t)
	id := createAgent(t, router, agentRequest("Sakura Travel", "sales@sakura.test"))

	request := agentRequest("Sakura Travel Co.", "sales@sakura.test")
	inactive := false
	request.IsActive = &inactive

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    fmt.Sprintf("/api/v1/agents/%d", id),
		Token:  testutil.AdminToken,
		Body:   request,
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	assert.Empty(t, listAgents(t, router, "/api/v1/agents?active=true"))
	assert.Len(t, listAgents(t, router, "/api/v1/agents?active=false"), 1)
}

func TestList_Search(t *testing.T) {
	router, _ := setupTestEnvironment(t)
	createAgent(t, router, agentRequest("Sakura Travel", "sales@sakura.test"))
	createAgent(t, router, agentRequest("Maple Tours", "hello@maple.test"))

	found := listAgents(t, router, "/api/v1/agents?q=maple")
	require.Len(t, found, 1)
	assert.Equal(t, "Maple Tours", found[0].CompanyName)
}

func TestList_SearchMatchesWildcardsLiterally(t *testing.T) {
	router, _ := setupTestEnvironment(t)
	createAgent(t, router, agentRequest("100% Travel", "sales@hundred.test"))
	createAgent(t, router, agentRequest("Maple Tours", "hello@maple.test"))

	found := listAgents(t, router, "/api/v1/agents?q=%25")
	require.Len(t, found, 1)
	assert.Equal(t, "100% Travel", found[0].CompanyName)

	assert.Empty(t, listAgents(t, router, "/api/v1/agents?q=_"))
}

func TestDelete_RemovesLogo(t *testing.T) {
	// Given
	router, files := setupTestEnvironment(t)
	files.Put("agents/logo.png", []byte("logo"))
	request := agentRequest("Sakura Travel", "sales@sakura.test")
	request.LogoURL = testutil.URLFor("agents/logo.png")
	request.LogoPath = "agents/logo.png"
	id := createAgent(t, router, request)

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    fmt.Sprintf("/api/v1/agents/%d", id),
		Token:  testutil.AdminToken,
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.False(t, files.Has("agents/logo.png"))
}

func TestUpdate_RejectsLogoOutsideUploadFolders(t *testing.T) {
	// Given
	router, files := setupTestEnvironment(t)
	files.Put("backups/db.dump", []byte("dump"))
	id := createAgent(t, router, agentRequest("Sakura Travel", "sales@sakura.test"))

	request := agentRequest("Sakura Travel", "sales@sakura.test")
	request.LogoPath = "backups/db.dump"

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    fmt.Sprintf("/api/v1/agents/%d", id),
		Token:  testutil.AdminToken,
		Body:   request,
	})

	// Then
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, sharedError.ValidationFailed.Code, errorResponse.Code)
	assert.True(t, files.Has("backups/db.dump"))
}
